package requests

import (
	"context"

	"github.com/avdoshkin/helpnet/internal/models"
)

// Repository persists and lists service requests. Create reports a missing
// requester as common.ErrDanglingReference; List pages in ascending id
// order so results are stable across calls.
type Repository interface {
	Create(ctx context.Context, req *models.ServiceRequest) (*models.ServiceRequest, error)
	List(ctx context.Context, skip, limit int) ([]models.ServiceRequest, error)
}
