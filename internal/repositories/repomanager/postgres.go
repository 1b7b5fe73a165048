package repomanager

import (
	"github.com/avdoshkin/helpnet/internal/dbx"
	"github.com/avdoshkin/helpnet/internal/repositories/requests"
	"github.com/avdoshkin/helpnet/internal/repositories/users"
)

// PostgresManager vends PostgreSQL-backed repositories.
type PostgresManager struct{}

// Users returns a users.Repository bound to the provided DBTX.
func (m *PostgresManager) Users(db dbx.DBTX) users.Repository {
	return users.NewPostgresRepository(db)
}

// Requests returns a requests.Repository bound to the provided DBTX.
func (m *PostgresManager) Requests(db dbx.DBTX) requests.Repository {
	return requests.NewPostgresRepository(db)
}
