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

// PostgresRepository implements Repository over a DBTX (either *sql.DB,
// *sql.Tx, or a storage.Session).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository returns a PostgresRepository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts the user and fills in the generated id and created_at.
// Unique violations on username or email surface as ErrDuplicateIdentity.
func (r *PostgresRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	query :=
		`INSERT INTO users (username, email, hashed_password, skills)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at
		 `

	skills, err := marshalSkills(user.Skills)
	if err != nil {
		return nil, err
	}

	err = r.db.QueryRowContext(ctx, query,
		user.Username, user.Email, user.HashedPassword, skills).
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
func (r *PostgresRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	query :=
		`SELECT id, username, email, hashed_password, skills, created_at FROM users
		 WHERE username = $1
		 `
	return r.getOne(ctx, query, username)
}

// GetByEmail returns the user with the exact email, or ErrNotFound.
func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query :=
		`SELECT id, username, email, hashed_password, skills, created_at FROM users
		 WHERE email = $1
		 `
	return r.getOne(ctx, query, email)
}

func (r *PostgresRepository) getOne(ctx context.Context, query string, arg any) (*models.User, error) {
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
