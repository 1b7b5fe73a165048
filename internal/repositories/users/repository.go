package users

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/avdoshkin/helpnet/internal/models"
)

// Repository persists and looks up user accounts. Lookups return
// common.ErrNotFound when no record matches; Create reports constraint
// violations as the shared sentinel errors.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// skills are persisted as a JSON array in both backends.

func marshalSkills(skills []string) ([]byte, error) {
	if skills == nil {
		skills = []string{}
	}
	b, err := json.Marshal(skills)
	if err != nil {
		return nil, fmt.Errorf("failed to encode skills: %w", err)
	}
	return b, nil
}

func unmarshalSkills(raw []byte, user *models.User) error {
	if len(raw) == 0 {
		user.Skills = []string{}
		return nil
	}
	if err := json.Unmarshal(raw, &user.Skills); err != nil {
		return fmt.Errorf("failed to decode skills: %w", err)
	}
	if user.Skills == nil {
		user.Skills = []string{}
	}
	return nil
}
