package services

import (
	"context"
	"fmt"

	"github.com/avdoshkin/helpnet/internal/common"
	"github.com/avdoshkin/helpnet/internal/models"
)

// CreateServiceRequest validates the draft and persists a new request
// within the caller's session, committing on success. New requests always
// start with status OPEN.
//
// A requester id that references no existing user rolls the session back
// and returns common.ErrDanglingReference, detected via the storage
// engine's foreign-key constraint.
func (s *Service) CreateServiceRequest(ctx context.Context, sess Session, draft models.ServiceRequestDraft) (*models.ServiceRequest, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	req := &models.ServiceRequest{
		Title:       draft.Title,
		Description: draft.Description,
		RequesterID: draft.RequesterID,
		Status:      models.StatusOpen,
	}

	created, err := s.repos.Requests(sess).Create(ctx, req)
	if err != nil {
		_ = sess.Rollback()
		return nil, fmt.Errorf("error creating service request: %w", err)
	}

	if err := sess.Commit(); err != nil {
		return nil, fmt.Errorf("error creating service request: %w", err)
	}

	s.logger.Info(ctx, "service request created",
		"request_id", created.ID, "requester_id", created.RequesterID, "session_id", sess.ID())
	return created, nil
}

// GetServiceRequests returns up to limit requests after skipping the first
// skip, ordered by ascending id. Paging past the end yields an empty
// slice, never an error.
func (s *Service) GetServiceRequests(ctx context.Context, sess Session, skip, limit int) ([]models.ServiceRequest, error) {
	if skip < 0 {
		return nil, fmt.Errorf("%w: skip must not be negative", common.ErrValidation)
	}
	if limit <= 0 {
		return nil, fmt.Errorf("%w: limit must be positive", common.ErrValidation)
	}
	return s.repos.Requests(sess).List(ctx, skip, limit)
}
