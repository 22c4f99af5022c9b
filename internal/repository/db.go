package repository

import (
	"context"
	"database/sql"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

type Config struct {
	URL             string
	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
	DialTimeout     time.Duration
}

// Open connects to the registry database. Postgres DSNs get a pgx pool
// wrapped as database/sql; anything else is treated as a sqlite file or URI
// (the embedded default). The returned close func releases everything.
func Open(ctx context.Context, cfg Config, logger *slog.Logger) (*sql.DB, func(), error) {
	if isPostgres(cfg.URL) {
		return openPostgres(ctx, cfg, logger)
	}
	return openSQLite(ctx, cfg, logger)
}

func isPostgres(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}

func openPostgres(ctx context.Context, cfg Config, logger *slog.Logger) (*sql.DB, func(), error) {
	logger.Info("connecting to database", "driver", "pgx")
	pc, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		logger.Error("failed to parse database url", "error", err)
		return nil, nil, err
	}

	pc.MaxConns = cfg.MaxConns
	pc.MinConns = cfg.MinConns
	pc.MaxConnLifetime = cfg.MaxConnLifetime
	pc.MaxConnIdleTime = cfg.MaxConnIdleTime
	pc.ConnConfig.RuntimeParams["application_name"] = "workshop-tracker"

	dialCtx := ctx
	if cfg.DialTimeout > 0 {
		var cancel context.CancelFunc
		dialCtx, cancel = context.WithTimeout(ctx, cfg.DialTimeout)
		defer cancel()
	}
	pool, err := pgxpool.NewWithConfig(dialCtx, pc)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		return nil, nil, err
	}

	db := stdlib.OpenDBFromPool(pool)
	closeAll := func() {
		logger.Info("closing database connections")
		if err := db.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
		pool.Close()
	}

	if err := migrate(ctx, db); err != nil {
		closeAll()
		return nil, nil, err
	}
	logger.Info("successfully connected to database")
	return db, closeAll, nil
}

func openSQLite(ctx context.Context, cfg Config, logger *slog.Logger) (*sql.DB, func(), error) {
	logger.Info("connecting to database", "driver", "sqlite", "path", cfg.URL)
	db, err := sql.Open("sqlite", cfg.URL)
	if err != nil {
		logger.Error("failed to open sqlite database", "error", err)
		return nil, nil, err
	}
	// modernc sqlite serializes writers itself; one open connection avoids
	// SQLITE_BUSY on concurrent handlers.
	db.SetMaxOpenConns(1)

	closeAll := func() {
		logger.Info("closing database connections")
		if err := db.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}

	if err := migrate(ctx, db); err != nil {
		closeAll()
		return nil, nil, err
	}
	logger.Info("successfully connected to database")
	return db, closeAll, nil
}

const vehiclesSchema = `
CREATE TABLE IF NOT EXISTS vehicles (
	registration_key TEXT PRIMARY KEY,
	registration     TEXT NOT NULL,
	state            TEXT NOT NULL DEFAULT '',
	vin              TEXT NOT NULL DEFAULT '',
	make             TEXT NOT NULL DEFAULT '',
	model            TEXT NOT NULL DEFAULT '',
	engine           TEXT NOT NULL DEFAULT '',
	transmission     TEXT NOT NULL DEFAULT '',
	owner_name       TEXT NOT NULL DEFAULT '',
	owner_phone      TEXT NOT NULL DEFAULT '',
	created_at       TIMESTAMP NOT NULL,
	updated_at       TIMESTAMP NOT NULL
)`

func migrate(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, vehiclesSchema)
	return err
}

// HealthCheck pings the database to catch DSN issues early.
func HealthCheck(ctx context.Context, db *sql.DB, timeout time.Duration, logger *slog.Logger) error {
	logger.Debug("pinging database")
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	return db.PingContext(ctx)
}
