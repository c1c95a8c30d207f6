package service

import (
	"context"

	"github.com/deorigen/backend/internal/model"
)

// StatusCheckService defines the business logic for status-check pings.
type StatusCheckService interface {
	// Create persists a new status check. check.ID and check.Timestamp are
	// populated by the implementation.
	Create(ctx context.Context, check *model.StatusCheck) error

	// List returns stored status checks.
	List(ctx context.Context) ([]*model.StatusCheck, error)
}
