package requests

import (
	"context"
	"fmt"

	"github.com/avdoshkin/helpnet/internal/dbx"
	"github.com/avdoshkin/helpnet/internal/models"
	"github.com/avdoshkin/helpnet/internal/storage"
)

// PostgresRepository implements Repository over a DBTX.
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository returns a PostgresRepository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts the request and fills in the generated id, the default
// OPEN status, and created_at. A missing requester surfaces as
// ErrDanglingReference via the foreign-key constraint.
func (r *PostgresRepository) Create(ctx context.Context, req *models.ServiceRequest) (*models.ServiceRequest, error) {
	query :=
		`INSERT INTO service_requests (title, description, requester_id)
		 VALUES ($1, $2, $3)
		 RETURNING id, status, created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		req.Title, req.Description, req.RequesterID).
		Scan(&req.ID, &req.Status, &req.CreatedAt)

	if err != nil {
		return nil, storage.MapError(err)
	}

	return req, nil
}

// List returns up to limit requests after skipping the first skip, in
// ascending id order. Paging past the end yields an empty slice.
func (r *PostgresRepository) List(ctx context.Context, skip, limit int) ([]models.ServiceRequest, error) {
	query :=
		`SELECT id, title, description, requester_id, status, created_at FROM service_requests
		 ORDER BY id ASC
		 LIMIT $1 OFFSET $2
		 `

	rows, err := r.db.QueryContext(ctx, query, limit, skip)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []models.ServiceRequest{}
	for rows.Next() {
		var item models.ServiceRequest
		if err := rows.Scan(&item.ID, &item.Title, &item.Description,
			&item.RequesterID, &item.Status, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}
