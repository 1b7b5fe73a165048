// Package repomanager vends repository implementations matching the
// storage gateway's dialect, each bound to a caller-provided DBTX
// (typically an open storage.Session).
package repomanager

import (
	"github.com/avdoshkin/helpnet/internal/dbx"
	"github.com/avdoshkin/helpnet/internal/repositories/requests"
	"github.com/avdoshkin/helpnet/internal/repositories/users"
	"github.com/avdoshkin/helpnet/internal/storage"
)

// Manager vends repositories bound to the provided DBTX.
type Manager interface {
	Users(db dbx.DBTX) users.Repository
	Requests(db dbx.DBTX) requests.Repository
}

// ForDialect returns the Manager matching the gateway's SQL dialect.
func ForDialect(d storage.Dialect) Manager {
	if d == storage.DialectPostgres {
		return &PostgresManager{}
	}
	return &SQLiteManager{}
}
