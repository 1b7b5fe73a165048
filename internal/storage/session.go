package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

// Session is a scoped unit of work over the gateway's store. It satisfies
// dbx.DBTX, so repositories operate on it directly. Writes staged through
// a session become durable and visible to other sessions only on Commit.
//
// A session is owned by exactly one caller for its lifetime. Callers must
// guarantee release on every exit path:
//
//	sess, err := gw.OpenSession(ctx)
//	if err != nil { ... }
//	defer sess.Close()
type Session struct {
	id   string
	tx   *sql.Tx
	done bool
}

// OpenSession begins a new transaction and wraps it in a Session. Sessions
// from concurrent callers are independent; the pool beneath the gateway
// handles cross-goroutine use.
func (g *Gateway) OpenSession(ctx context.Context) (*Session, error) {
	tx, err := g.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	s := &Session{id: uuid.NewString(), tx: tx}
	g.logger.Debug(ctx, "session opened", "session_id", s.id)
	return s, nil
}

// ID returns the session's correlation id, used in logs.
func (s *Session) ID() string {
	return s.id
}

// ExecContext runs a statement within the session's transaction.
func (s *Session) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return s.tx.ExecContext(ctx, query, args...)
}

// QueryContext runs a query within the session's transaction.
func (s *Session) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return s.tx.QueryContext(ctx, query, args...)
}

// QueryRowContext runs a single-row query within the session's transaction.
func (s *Session) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return s.tx.QueryRowContext(ctx, query, args...)
}

// Commit durably persists all staged changes. Constraint violations that
// the engine defers to commit time are translated via MapError.
func (s *Session) Commit() error {
	if s.done {
		return sql.ErrTxDone
	}
	s.done = true
	if err := s.tx.Commit(); err != nil {
		return MapError(err)
	}
	return nil
}

// Rollback discards all staged changes since the last commit. Calling it
// on a finished session is a no-op.
func (s *Session) Rollback() error {
	if s.done {
		return nil
	}
	s.done = true
	return s.tx.Rollback()
}

// Close releases the session, rolling back anything uncommitted. It is
// idempotent and safe to defer alongside explicit Commit/Rollback calls.
func (s *Session) Close() {
	_ = s.Rollback()
}
