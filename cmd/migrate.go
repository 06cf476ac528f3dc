package cmd

import (
	"go.uber.org/zap"

	"droscher.com/BreweryTracker/configs"
	"droscher.com/BreweryTracker/pkg/repository"
)

type MigrateCmd struct {
	ConfigFile string `default:".BreweryTracker.toml" help:"Path to config file" short:"c"`
}

func (m *MigrateCmd) Run(ctx *Context) error {
	logger := newLogger(false, ctx.Debug)
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	conf, err := configs.GetConfig(m.ConfigFile, logger)
	if err != nil {
		logger.Error("error loading config", zap.Error(err))

		return err
	}

	repo, err := repository.Open(conf, logger)
	if err != nil {
		logger.Fatal("error connecting to database")
	}
	defer repo.Close()

	return repo.Migrate()
}
