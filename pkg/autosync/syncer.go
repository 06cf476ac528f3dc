package autosync

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"droscher.com/BreweryTracker/pkg/model"
	"droscher.com/BreweryTracker/pkg/repository"
	"droscher.com/BreweryTracker/pkg/tracker"
)

// Syncer saves the working collection and records when it last did so. It
// watches the store so the periodic loop only writes after something changed.
type Syncer struct {
	store       *tracker.Store
	repo        repository.CollectionRepository
	logger      *zap.Logger
	now         func() time.Time
	dirty       atomic.Bool
	enabled     atomic.Bool
	mu          sync.Mutex
	unsubscribe func()
}

type Option func(*Syncer)

func WithClock(now func() time.Time) Option {
	return func(s *Syncer) {
		s.now = now
	}
}

func New(store *tracker.Store, repo repository.CollectionRepository, logger *zap.Logger, opts ...Option) *Syncer {
	syncer := &Syncer{
		store:  store,
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
	syncer.enabled.Store(true)

	for _, opt := range opts {
		opt(syncer)
	}

	syncer.unsubscribe = store.Subscribe(func(tracker.Event) {
		syncer.dirty.Store(true)
	})

	return syncer
}

// Close stops watching the store.
func (s *Syncer) Close() {
	s.unsubscribe()
}

func (s *Syncer) Dirty() bool {
	return s.dirty.Load()
}

func (s *Syncer) Enabled() bool {
	return s.enabled.Load()
}

// Settings returns the stored sync settings, falling back to the defaults
// when none were saved yet.
func (s *Syncer) Settings(ctx context.Context) (model.SyncSettings, error) {
	settings, err := s.repo.LoadSyncSettings(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrValueNotFound) {
			return model.SyncSettings{AutoSyncEnabled: true}, nil
		}

		return model.SyncSettings{}, err
	}

	return *settings, nil
}

// LoadSettings applies the stored auto-sync toggle.
func (s *Syncer) LoadSettings(ctx context.Context) (model.SyncSettings, error) {
	settings, err := s.Settings(ctx)
	if err != nil {
		return settings, err
	}

	s.enabled.Store(settings.AutoSyncEnabled)

	return settings, nil
}

func (s *Syncer) SetAutoSync(ctx context.Context, enabled bool) (model.SyncSettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	settings, err := s.Settings(ctx)
	if err != nil {
		return settings, err
	}

	settings.AutoSyncEnabled = enabled
	if err := s.repo.SaveSyncSettings(ctx, settings); err != nil {
		return settings, err
	}

	s.enabled.Store(enabled)
	s.logger.Info("changed auto sync", zap.Bool("enabled", enabled))

	return settings, nil
}

// Save writes the collection without touching the last sync time. Snapshot
// and write happen under the sync lock so an older snapshot never lands
// after a newer one.
func (s *Syncer) Save(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.save(ctx)
}

// Sync saves the collection and touches the last sync time.
func (s *Syncer) Sync(ctx context.Context) (model.SyncSettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.save(ctx); err != nil {
		return model.SyncSettings{}, err
	}

	settings, err := s.Settings(ctx)
	if err != nil {
		return settings, err
	}

	now := s.now()
	settings.LastSyncTime = &now

	if err := s.repo.SaveSyncSettings(ctx, settings); err != nil {
		s.logger.Error("error saving sync settings", zap.Error(err))

		return settings, err
	}

	s.logger.Info("synchronized breweries", zap.Int("count", s.store.Len()), zap.Time("lastSyncTime", now))

	return settings, nil
}

// Run syncs on every tick while auto sync is enabled and the collection has
// changed. A final sync is attempted when ctx is cancelled with unsaved changes.
func (s *Syncer) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			if s.Dirty() {
				flushCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), interval)
				_, _ = s.Sync(flushCtx)
				cancel()
			}

			return
		case <-ticker.C:
			if !s.Enabled() || !s.Dirty() {
				continue
			}

			_, _ = s.Sync(ctx)
		}
	}
}

// Start runs the loop on its own goroutine. The returned function cancels it
// and waits for it to exit.
func (s *Syncer) Start(ctx context.Context, interval time.Duration) func() {
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	go func() {
		defer close(done)
		s.Run(ctx, interval)
	}()

	return func() {
		cancel()
		<-done
	}
}

func (s *Syncer) save(ctx context.Context) error {
	s.dirty.Store(false)

	if err := s.repo.SaveBreweries(ctx, s.store.Breweries()); err != nil {
		s.dirty.Store(true)
		s.logger.Error("error saving breweries", zap.Error(err))

		return err
	}

	return nil
}
