package models

import (
	"fmt"
	"time"

	"github.com/avdoshkin/helpnet/internal/common"
)

// StatusOpen is the lifecycle status assigned to every new service request.
// Further status values are set by callers and persisted as-is.
const StatusOpen = "OPEN"

// ServiceRequest is a help posting owned by the requesting user.
type ServiceRequest struct {
	ID          int64     `db:"id"`
	Title       string    `db:"title"`
	Description string    `db:"description"`
	RequesterID int64     `db:"requester_id"`
	Status      string    `db:"status"`
	CreatedAt   time.Time `db:"created_at"`
}

// ServiceRequestDraft is the caller-supplied data for creating a
// ServiceRequest. Status is not part of the draft; new requests always
// start as StatusOpen.
type ServiceRequestDraft struct {
	Title       string
	Description string
	RequesterID int64
}

const (
	titleMinLen       = 5
	titleMaxLen       = 100
	descriptionMinLen = 10
)

// Validate checks the draft: title 5–100 characters, description at least
// 10 characters, requester id set.
func (d *ServiceRequestDraft) Validate() error {
	if n := len(d.Title); n < titleMinLen || n > titleMaxLen {
		return fmt.Errorf("%w: title must be %d-%d characters", common.ErrValidation, titleMinLen, titleMaxLen)
	}
	if len(d.Description) < descriptionMinLen {
		return fmt.Errorf("%w: description must be at least %d characters", common.ErrValidation, descriptionMinLen)
	}
	if d.RequesterID <= 0 {
		return fmt.Errorf("%w: requester id is required", common.ErrValidation)
	}
	return nil
}
