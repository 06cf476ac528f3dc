package cmd

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"droscher.com/BreweryTracker/configs"
	"droscher.com/BreweryTracker/pkg/repository"
	"droscher.com/BreweryTracker/pkg/seed"
	"droscher.com/BreweryTracker/pkg/tracker"
)

// environment holds what every command needs to work on the saved collection.
type environment struct {
	logger *zap.Logger
	conf   *configs.Config
	repo   *repository.Repository
	store  *tracker.Store
}

func newLogger(production bool, debug bool) *zap.Logger {
	logConfig := zap.NewDevelopmentConfig()
	logConfig.DisableStacktrace = true

	if production {
		logConfig = zap.NewProductionConfig()
	}

	if debug {
		logConfig.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	logger, _ := logConfig.Build()

	return logger
}

func openEnvironment(configFile string, logger *zap.Logger) (*environment, error) {
	conf, err := configs.GetConfig(configFile, logger)
	if err != nil {
		logger.Error("error loading config", zap.Error(err))

		return nil, err
	}

	repo, err := repository.Open(conf, logger)
	if err != nil {
		logger.Error("error connecting to database", zap.Error(err))

		return nil, err
	}

	if err := repo.Migrate(); err != nil {
		logger.Error("error migrating database", zap.Error(err))
		repo.Close()

		return nil, err
	}

	store := tracker.NewStore(logger,
		tracker.WithRaters(conf.Tracker.Raters...),
		tracker.WithClearDateOnUnvisit(conf.Tracker.ClearDateOnUnvisit),
	)

	return &environment{logger: logger, conf: conf, repo: repo, store: store}, nil
}

// loadCollection fills the store from the saved collection, falling back to
// the seed list when nothing was saved yet or the saved data is unreadable.
func (e *environment) loadCollection(ctx context.Context) error {
	breweries, err := e.repo.LoadBreweries(ctx, e.conf.Tracker.Raters)
	if err == nil {
		e.store.Replace(breweries)

		return nil
	}

	var formatErr *tracker.FormatError

	switch {
	case errors.Is(err, repository.ErrValueNotFound):
		e.logger.Info("no saved collection, loading seed data")
	case errors.As(err, &formatErr):
		e.logger.Warn("saved collection is corrupt, loading seed data", zap.Error(err))
	default:
		return err
	}

	breweries, err = seed.Load(e.conf.Tracker.SeedFile, e.conf.Tracker.Raters)
	if err != nil {
		e.logger.Error("error loading seed data", zap.Error(err))

		return err
	}

	e.store.Replace(breweries)

	return nil
}

func (e *environment) Close() {
	e.repo.Close()
}
