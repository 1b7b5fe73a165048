// Package storage implements the storage gateway: it owns the single
// process-wide database handle, runs schema migrations, and hands out
// scoped transactional sessions to the access layer.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/avdoshkin/helpnet/internal/logging"
	"github.com/avdoshkin/helpnet/internal/storage/migrations"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

// Dialect identifies the backing SQL engine.
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite"
)

// Gateway owns the shared *sql.DB and the schema. It is constructed once
// at process start and closed at shutdown; all reads and writes go through
// sessions opened from it.
type Gateway struct {
	db      *sql.DB
	dialect Dialect
	logger  logging.Logger
}

// New opens the backing store identified by dsn, verifies connectivity,
// and runs any pending schema migrations.
//
// A postgres:// (or postgresql://) DSN selects the pgx driver; anything
// else is treated as a SQLite database path. An optional sqlite: prefix is
// stripped, and foreign-key enforcement, a busy timeout and WAL journaling
// are enabled on every SQLite connection. WAL keeps open read sessions from
// blocking a concurrent writer.
func New(ctx context.Context, dsn string, logger logging.Logger) (*Gateway, error) {
	dialect, driver, dataSource := resolveDSN(dsn)

	db, err := sql.Open(driver, dataSource)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db ping error: %w", err)
	}

	g := &Gateway{db: db, dialect: dialect, logger: logger}

	if err := g.migrate(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db migration error: %w", err)
	}

	logger.Info(ctx, "storage gateway ready", "dialect", string(dialect))
	return g, nil
}

func resolveDSN(dsn string) (Dialect, string, string) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return DialectPostgres, "pgx", dsn
	}

	path := strings.TrimPrefix(dsn, "sqlite:")
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	path += sep + "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	return DialectSQLite, "sqlite", path
}

func (g *Gateway) migrate(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)

	switch g.dialect {
	case DialectPostgres:
		if err := goose.SetDialect("pgx"); err != nil {
			return err
		}
		return goose.UpContext(ctx, g.db, "postgres")
	default:
		if err := goose.SetDialect("sqlite3"); err != nil {
			return err
		}
		return goose.UpContext(ctx, g.db, "sqlite")
	}
}

// Dialect reports which SQL engine the gateway is backed by.
func (g *Gateway) Dialect() Dialect {
	return g.dialect
}

// DB exposes the underlying handle for callers that need non-transactional
// access (reads outside a session, health checks).
func (g *Gateway) DB() *sql.DB {
	return g.db
}

// Close releases the database handle. Sessions opened from the gateway
// must be closed before calling Close.
func (g *Gateway) Close() error {
	return g.db.Close()
}
