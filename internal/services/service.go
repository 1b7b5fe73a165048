// Package services contains the access layer: entity creation, lookups,
// and credential verification built on the storage gateway's session
// contract. Callers open a session from the gateway and pass it into each
// operation; the operation commits or rolls back as a unit.
package services

import (
	"github.com/avdoshkin/helpnet/internal/dbx"
	"github.com/avdoshkin/helpnet/internal/logging"
	"github.com/avdoshkin/helpnet/internal/repositories/repomanager"
)

// Session is the unit of work the access layer operates in. It is the
// read/write surface of a storage.Session; a fake implementation is enough
// for tests.
type Session interface {
	dbx.DBTX
	ID() string
	Commit() error
	Rollback() error
}

// Service exposes the account and service-request operations. It holds no
// per-request state; a single instance serves concurrent callers, each
// with their own session.
type Service struct {
	repos  repomanager.Manager
	logger logging.Logger
}

// New constructs a Service on top of the given repository manager.
func New(repos repomanager.Manager, logger logging.Logger) *Service {
	return &Service{repos: repos, logger: logger}
}
