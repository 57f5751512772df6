package pipeline

import (
	"context"
	"os"
	"sync"
	"time"

	"github.com/osse101/ArcCompanion_Go/internal/assets"
	"github.com/osse101/ArcCompanion_Go/internal/domain"
	"github.com/osse101/ArcCompanion_Go/internal/logger"
	"github.com/osse101/ArcCompanion_Go/internal/storage"
)

// Snapshot is the dataset currently served.
type Snapshot struct {
	RunID       string
	Dataset     domain.Dataset
	Diagnostics domain.Diagnostics
	BuiltAt     time.Time
}

// ReloadHook is called after a new snapshot becomes current.
type ReloadHook func(ctx context.Context, snap *Snapshot)

// Service holds the current dataset for readers and rebuilds it on demand.
type Service interface {
	// Current returns domain.ErrDatasetNotLoaded until Load or Reload succeeded.
	Current() (*Snapshot, error)

	// Load makes the canonical dataset on disk current without running the pipeline.
	Load(ctx context.Context) (*Snapshot, error)

	// Reload runs the pipeline in memory and makes its result current.
	// Nothing is written back to the store.
	Reload(ctx context.Context) (*Snapshot, error)
}

// ServiceConfig tunes the runs started by a Service.
type ServiceConfig struct {
	Include  Include
	ImageDir string
}

type service struct {
	store *storage.Store
	cfg   ServiceConfig
	hooks []ReloadHook
	now   func() time.Time

	runMu sync.Mutex

	mu      sync.RWMutex
	current *Snapshot
}

// NewService creates a dataset service over store.
func NewService(store *storage.Store, cfg ServiceConfig, hooks ...ReloadHook) Service {
	return &service{
		store: store,
		cfg:   cfg,
		hooks: hooks,
		now:   time.Now,
	}
}

func (s *service) Current() (*Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil, domain.ErrDatasetNotLoaded
	}
	return s.current, nil
}

func (s *service) Load(ctx context.Context) (*Snapshot, error) {
	s.runMu.Lock()
	defer s.runMu.Unlock()

	ds, err := s.store.LoadPrior(ctx)
	if err != nil {
		return nil, err
	}
	snap := &Snapshot{Dataset: ds, BuiltAt: s.now().UTC()}
	s.publish(ctx, snap)
	logger.FromContext(ctx).Info(LogMsgSnapshotLoaded, "items", len(ds.Items), "quests", len(ds.Quests))
	return snap, nil
}

func (s *service) Reload(ctx context.Context) (*Snapshot, error) {
	s.runMu.Lock()
	defer s.runMu.Unlock()

	opts := Options{Include: s.cfg.Include}
	if s.cfg.ImageDir != "" {
		images, err := assets.NewLocalImages(os.DirFS(s.cfg.ImageDir), ".")
		if err != nil {
			return nil, err
		}
		opts.Images = images
	}

	result, err := Run(ctx, s.store, opts)
	if err != nil {
		return nil, err
	}
	snap := &Snapshot{
		RunID:       result.RunID,
		Dataset:     result.Dataset,
		Diagnostics: result.Diagnostics,
		BuiltAt:     s.now().UTC(),
	}
	s.publish(ctx, snap)
	logger.FromContext(ctx).Info(LogMsgSnapshotReloaded, "run_id", snap.RunID, "diagnostics", snap.Diagnostics.Len())
	return snap, nil
}

func (s *service) publish(ctx context.Context, snap *Snapshot) {
	s.mu.Lock()
	s.current = snap
	s.mu.Unlock()

	for _, hook := range s.hooks {
		hook(ctx, snap)
	}
}
