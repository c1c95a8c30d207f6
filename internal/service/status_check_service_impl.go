package service

import (
	"context"
	"time"

	"github.com/deorigen/backend/internal/model"
	"github.com/deorigen/backend/internal/repository"
	"github.com/google/uuid"
)

// statusCheckServiceImpl is the production implementation of StatusCheckService.
type statusCheckServiceImpl struct {
	repo repository.StatusCheckRepository
}

// NewStatusCheckService creates a StatusCheckService backed by the given repository.
func NewStatusCheckService(repo repository.StatusCheckRepository) StatusCheckService {
	return &statusCheckServiceImpl{repo: repo}
}

// Create generates the identity and timestamp server-side and persists the
// check. Client-supplied values for either never reach this point.
func (s *statusCheckServiceImpl) Create(ctx context.Context, check *model.StatusCheck) error {
	check.ID = uuid.NewString()
	check.Timestamp = time.Now().UTC()
	return s.repo.Save(ctx, check)
}

// List returns stored status checks.
func (s *statusCheckServiceImpl) List(ctx context.Context) ([]*model.StatusCheck, error) {
	return s.repo.List(ctx)
}
