// Package models defines the data shapes persisted by the storage layer,
// plus the caller-supplied drafts used to construct them. Entities are
// plain structs; all persistence behavior lives in the repositories.
package models

import (
	"fmt"
	"net/mail"
	"time"

	"github.com/avdoshkin/helpnet/internal/common"
)

// User is a platform account. ID and CreatedAt are generated by the
// storage layer on insert and are immutable afterwards.
type User struct {
	ID             int64     `db:"id"`
	Username       string    `db:"username"`
	Email          string    `db:"email"`
	HashedPassword string    `db:"hashed_password"`
	Skills         []string  `db:"skills"`
	CreatedAt      time.Time `db:"created_at"`
}

// UserDraft is the caller-supplied data for creating a User. The plaintext
// password never reaches the storage layer; the service hashes it first.
type UserDraft struct {
	Username string
	Email    string
	Password string
	Skills   []string
}

const (
	usernameMinLen = 3
	usernameMaxLen = 50
	passwordMinLen = 8
)

// Validate checks the draft against construction-level rules:
// username 3–50 characters, syntactically valid email, password at least
// 8 characters. Violations are reported as common.ErrValidation.
func (d *UserDraft) Validate() error {
	if n := len(d.Username); n < usernameMinLen || n > usernameMaxLen {
		return fmt.Errorf("%w: username must be %d-%d characters", common.ErrValidation, usernameMinLen, usernameMaxLen)
	}
	addr, err := mail.ParseAddress(d.Email)
	if err != nil || addr.Address != d.Email {
		return fmt.Errorf("%w: invalid email address", common.ErrValidation)
	}
	if len(d.Password) < passwordMinLen {
		return fmt.Errorf("%w: password must be at least %d characters", common.ErrValidation, passwordMinLen)
	}
	return nil
}
