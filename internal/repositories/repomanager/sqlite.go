package repomanager

import (
	"github.com/avdoshkin/helpnet/internal/dbx"
	"github.com/avdoshkin/helpnet/internal/repositories/requests"
	"github.com/avdoshkin/helpnet/internal/repositories/users"
)

// SQLiteManager vends SQLite-backed repositories.
type SQLiteManager struct{}

// Users returns a users.Repository bound to the provided DBTX.
func (m *SQLiteManager) Users(db dbx.DBTX) users.Repository {
	return users.NewSQLiteRepository(db)
}

// Requests returns a requests.Repository bound to the provided DBTX.
func (m *SQLiteManager) Requests(db dbx.DBTX) requests.Repository {
	return requests.NewSQLiteRepository(db)
}
