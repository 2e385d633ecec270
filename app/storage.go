package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	archivedb "github.com/Black-And-White-Club/frolf-scorecard/app/modules/archive/infrastructure/repositories"
	archivemigrations "github.com/Black-And-White-Club/frolf-scorecard/app/modules/archive/infrastructure/repositories/migrations"
	"github.com/Black-And-White-Club/frolf-scorecard/config"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/migrate"
)

// Storage is the archive backend selected by config, plus whatever it holds open.
type Storage struct {
	Store   archivedb.Store
	DB      *bun.DB
	Driver  string
	closers []func() error
}

// OpenStorage opens the backend named by cfg.Storage.Driver. SQL backends are
// migrated to the latest schema before use.
func OpenStorage(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Storage, error) {
	switch cfg.Storage.Driver {
	case config.DriverMemory:
		store := archivedb.NewMemoryStore()
		return &Storage{Store: store, Driver: cfg.Storage.Driver, closers: []func() error{store.Close}}, nil

	case config.DriverSQLite, config.DriverPostgres:
		db, err := OpenDB(cfg)
		if err != nil {
			return nil, err
		}
		if err := MigrateLatest(ctx, db); err != nil {
			db.Close()
			return nil, err
		}
		logger.Info("SQL archive store ready", "driver", cfg.Storage.Driver)
		store := archivedb.NewSQLStore(db)
		return &Storage{Store: store, DB: db, Driver: cfg.Storage.Driver, closers: []func() error{store.Close}}, nil

	case config.DriverNATS:
		conn, err := nats.Connect(cfg.NATS.URL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to NATS: %w", err)
		}
		js, err := jetstream.New(conn)
		if err != nil {
			conn.Close()
			return nil, fmt.Errorf("failed to create JetStream context: %w", err)
		}
		kv, err := archivedb.EnsureBucket(ctx, js, cfg.NATS.Bucket)
		if err != nil {
			conn.Close()
			return nil, err
		}
		logger.Info("NATS archive bucket ready", "bucket", cfg.NATS.Bucket)
		return &Storage{
			Store:  archivedb.NewNATSStore(kv),
			Driver: cfg.Storage.Driver,
			closers: []func() error{func() error {
				conn.Close()
				return nil
			}},
		}, nil
	}
	return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
}

// OpenDB opens the bun database for a SQL storage driver.
func OpenDB(cfg *config.Config) (*bun.DB, error) {
	switch cfg.Storage.Driver {
	case config.DriverPostgres:
		return archivedb.OpenPostgres(cfg.Postgres.DSN), nil
	case config.DriverSQLite:
		if err := ensureDBDir(cfg.SQLite.Path); err != nil {
			return nil, err
		}
		return archivedb.OpenSQLite(cfg.SQLite.Path)
	}
	return nil, fmt.Errorf("storage driver %q has no SQL database", cfg.Storage.Driver)
}

// NewMigrator returns the migrator for the archive schema.
func NewMigrator(db *bun.DB) *migrate.Migrator {
	return migrate.NewMigrator(db, archivemigrations.Migrations)
}

// MigrateLatest creates the migration tables if needed and applies every pending migration.
func MigrateLatest(ctx context.Context, db *bun.DB) error {
	migrator := NewMigrator(db)
	if err := migrator.Init(ctx); err != nil {
		return fmt.Errorf("failed to initialize migrations: %w", err)
	}
	if _, err := migrator.Migrate(ctx); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

func ensureDBDir(path string) error {
	if path == "" || path == ":memory:" {
		return nil
	}
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create database directory: %w", err)
	}
	return nil
}

// Close releases the backend.
func (s *Storage) Close() error {
	var errs []error
	for _, c := range s.closers {
		if err := c(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
