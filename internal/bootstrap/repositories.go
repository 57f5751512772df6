package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/ArcCompanion_Go/internal/config"
	"github.com/osse101/ArcCompanion_Go/internal/database"
	"github.com/osse101/ArcCompanion_Go/internal/database/postgres"
	"github.com/osse101/ArcCompanion_Go/internal/database/sqlite"
	"github.com/osse101/ArcCompanion_Go/internal/domain"
	"github.com/osse101/ArcCompanion_Go/internal/repository"
)

// WantListStore is an opened want-list repository together with the handle
// that backs it.
type WantListStore struct {
	Kind string
	Repo repository.WantListRepository
	// Pool is the readiness probe target
	Pool database.Pool
}

// Close releases the underlying connection pool or file.
func (s *WantListStore) Close() {
	if s != nil && s.Pool != nil {
		s.Pool.Close()
	}
}

// OpenWantListStore selects the backend from cfg.WantListDSN, connects and
// applies pending migrations.
func OpenWantListStore(ctx context.Context, cfg *config.Config) (*WantListStore, error) {
	switch {
	case database.IsPostgresDSN(cfg.WantListDSN):
		pool, err := database.NewPool(cfg.WantListDSN, cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgConnectPostgres, err)
		}
		if err := database.MigratePostgres(ctx, pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("%s: %w", ErrMsgMigratePostgres, err)
		}
		slog.Info(LogMsgWantListStoreOpened, "kind", StoreKindPostgres)
		return &WantListStore{Kind: StoreKindPostgres, Repo: postgres.NewWantListRepository(pool), Pool: pool}, nil

	case database.IsSQLiteDSN(cfg.WantListDSN):
		repo, err := sqlite.New(ctx, cfg.WantListDSN)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgOpenSQLite, err)
		}
		slog.Info(LogMsgWantListStoreOpened, "kind", StoreKindSQLite)
		return &WantListStore{Kind: StoreKindSQLite, Repo: repo, Pool: sqlitePool{repo}}, nil

	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedDSN, cfg.WantListDSN)
	}
}

// sqlitePool adapts the SQLite repository to database.Pool.
type sqlitePool struct {
	repo *sqlite.WantListRepository
}

func (p sqlitePool) Ping(ctx context.Context) error {
	return p.repo.Ping(ctx)
}

func (p sqlitePool) Close() {
	if err := p.repo.Close(); err != nil {
		slog.Error(LogMsgStoreCloseFailed, "error", err)
	}
}
