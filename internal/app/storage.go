package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/flashdeck/internal/adapter/memory"
	"github.com/heartmarshall/flashdeck/internal/adapter/postgres"
	pgkv "github.com/heartmarshall/flashdeck/internal/adapter/postgres/kv"
	"github.com/heartmarshall/flashdeck/internal/adapter/provider/deckfile"
	"github.com/heartmarshall/flashdeck/internal/adapter/provider/deckhttp"
	"github.com/heartmarshall/flashdeck/internal/adapter/sqlite"
	sqlitekv "github.com/heartmarshall/flashdeck/internal/adapter/sqlite/kv"
	"github.com/heartmarshall/flashdeck/internal/config"
	"github.com/heartmarshall/flashdeck/internal/domain"
)

// kvStore is the persistence every storage driver provides.
type kvStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Ping(ctx context.Context) error
}

// deckSource lists and fetches external decks.
type deckSource interface {
	List(ctx context.Context) ([]domain.DeckOption, error)
	Fetch(ctx context.Context, key domain.DeckKey) ([]domain.Card, error)
}

// openStore opens the configured driver, applies migrations and returns the
// store with a function releasing its resources.
func openStore(ctx context.Context, cfg config.StorageConfig, logger *slog.Logger) (kvStore, func(), error) {
	switch cfg.Driver {
	case config.DriverMemory:
		logger.Warn("using in-memory storage, the collection is lost on restart")
		return memory.NewKV(), func() {}, nil

	case config.DriverSQLite:
		db, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		if err := sqlite.Migrate(ctx, db, logger); err != nil {
			db.Close()
			return nil, nil, err
		}
		logger.Info("sqlite storage opened", slog.String("path", cfg.SQLitePath))
		return sqlitekv.New(db), func() { db.Close() }, nil

	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		if err := postgres.Migrate(ctx, pool, logger); err != nil {
			pool.Close()
			return nil, nil, err
		}
		logger.Info("postgres storage connected", slog.Int("max_conns", int(cfg.MaxConns)))
		return pgkv.New(pool), pool.Close, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}

func newDeckSource(cfg config.DecksConfig, logger *slog.Logger) (deckSource, error) {
	switch cfg.Source {
	case config.SourceDir:
		return deckfile.NewProvider(cfg.Dir, logger), nil
	case config.SourceHTTP:
		return deckhttp.NewProvider(cfg.BaseURL, cfg.Timeout, logger), nil
	default:
		return nil, fmt.Errorf("unknown deck source %q", cfg.Source)
	}
}
