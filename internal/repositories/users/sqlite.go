package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/avdoshkin/helpnet/internal/common"
	"github.com/avdoshkin/helpnet/internal/dbx"
	"github.com/avdoshkin/helpnet/internal/models"
	"github.com/avdoshkin/helpnet/internal/storage"
)

// SQLiteRepository implements Repository over a DBTX for the SQLite
// backend used in local development.
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// Create inserts the user and fills in the generated id and created_at.
func (r *SQLiteRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	query :=
		`INSERT INTO users (username, email, hashed_password, skills)
		 VALUES (?, ?, ?, ?)
		 RETURNING id, created_at
		 `

	skills, err := marshalSkills(user.Skills)
	if err != nil {
		return nil, err
	}

	err = r.db.QueryRowContext(ctx, query,
		user.Username, user.Email, user.HashedPassword, string(skills)).
		Scan(&user.ID, &user.CreatedAt)

	if err != nil {
		return nil, storage.MapError(err)
	}

	if user.Skills == nil {
		user.Skills = []string{}
	}
	return user, nil
}

// GetByUsername returns the user with the exact username, or ErrNotFound.
func (r *SQLiteRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	query :=
		`SELECT id, username, email, hashed_password, skills, created_at FROM users
		 WHERE username = ?
		 `
	return r.getOne(ctx, query, username)
}

// GetByEmail returns the user with the exact email, or ErrNotFound.
func (r *SQLiteRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query :=
		`SELECT id, username, email, hashed_password, skills, created_at FROM users
		 WHERE email = ?
		 `
	return r.getOne(ctx, query, email)
}

func (r *SQLiteRepository) getOne(ctx context.Context, query string, arg any) (*models.User, error) {
	user := &models.User{}
	var skills []byte

	err := r.db.QueryRowContext(ctx, query, arg).
		Scan(&user.ID, &user.Username, &user.Email, &user.HashedPassword, &skills, &user.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	if err := unmarshalSkills(skills, user); err != nil {
		return nil, err
	}
	return user, nil
}
