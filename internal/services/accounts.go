package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/avdoshkin/helpnet/internal/common"
	"github.com/avdoshkin/helpnet/internal/models"
	"github.com/avdoshkin/helpnet/internal/security"
)

// CreateUser validates the draft, hashes the password, and persists the
// new account within the caller's session. On success the session is
// committed and the returned user carries the generated id and timestamp.
//
// A uniqueness violation on username or email rolls the session back and
// returns common.ErrDuplicateIdentity; no partial insert survives. Any
// other storage failure also rolls back and propagates wrapped.
func (s *Service) CreateUser(ctx context.Context, sess Session, draft models.UserDraft) (*models.User, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	hashed, err := security.HashPassword(draft.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:       draft.Username,
		Email:          draft.Email,
		HashedPassword: hashed,
		Skills:         draft.Skills,
	}

	created, err := s.repos.Users(sess).Create(ctx, user)
	if err != nil {
		_ = sess.Rollback()
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	if err := sess.Commit(); err != nil {
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	s.logger.Info(ctx, "user created",
		"user_id", created.ID, "username", created.Username, "session_id", sess.ID())
	return created, nil
}

// GetUserByUsername looks up a user by exact username. Absence is not an
// error: the result is (nil, nil).
func (s *Service) GetUserByUsername(ctx context.Context, sess Session, username string) (*models.User, error) {
	user, err := s.repos.Users(sess).GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

// GetUserByEmail looks up a user by exact email. Absence is (nil, nil).
func (s *Service) GetUserByEmail(ctx context.Context, sess Session, email string) (*models.User, error) {
	user, err := s.repos.Users(sess).GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

// VerifyUserPassword checks the plaintext against the user's stored hash.
// A malformed stored hash is logged and surfaced as common.ErrMalformedHash.
func (s *Service) VerifyUserPassword(ctx context.Context, user *models.User, password string) (bool, error) {
	ok, err := security.VerifyPassword(password, user.HashedPassword)
	if err != nil {
		s.logger.Error(ctx, "stored password hash is malformed", "user_id", user.ID)
		return false, err
	}
	return ok, nil
}
