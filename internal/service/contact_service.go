package service

import (
	"context"

	"github.com/deorigen/backend/internal/model"
)

// ContactService defines the business logic for contact form submissions.
type ContactService interface {
	// Submit persists a new contact message and then attempts the email
	// notification. msg.ID and msg.CreatedAt are populated by the
	// implementation. A notification failure never fails the submission.
	Submit(ctx context.Context, msg *model.ContactMessage) error

	// List returns stored contact messages.
	List(ctx context.Context) ([]*model.ContactMessage, error)
}
