package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/deorigen/backend/internal/model"
	"github.com/deorigen/backend/internal/repository"
	"github.com/deorigen/backend/pkg/mailer"
	"github.com/google/uuid"
)

// contactServiceImpl is the production implementation of ContactService.
type contactServiceImpl struct {
	repo repository.ContactRepository
	mail mailer.Mailer
}

// NewContactService creates a ContactService backed by the given repository
// and mailer.
func NewContactService(repo repository.ContactRepository, mail mailer.Mailer) ContactService {
	return &contactServiceImpl{repo: repo, mail: mail}
}

// Submit generates the message identity, persists it, then sends the
// notification email. Persistence is the contract with the caller: it must
// succeed before any notification is attempted, and a notification failure
// is logged and swallowed — it never rolls back or fails the submission.
func (s *contactServiceImpl) Submit(ctx context.Context, msg *model.ContactMessage) error {
	msg.ID = uuid.NewString()
	msg.CreatedAt = time.Now().UTC()

	if err := s.repo.Save(ctx, msg); err != nil {
		return err
	}

	if err := s.mail.SendContactNotification(ctx, mailer.ContactNotification{
		Name:            msg.Name,
		Company:         msg.Company,
		Email:           msg.Email,
		Phone:           msg.Phone,
		ServiceInterest: msg.ServiceInterest,
		Message:         msg.Message,
	}); err != nil {
		slog.Error("failed to send contact notification",
			"contact_id", msg.ID, "error", err)
	} else {
		slog.Info("contact notification sent",
			"contact_id", msg.ID, "submitter", msg.Email)
	}

	return nil
}

// List returns stored contact messages.
func (s *contactServiceImpl) List(ctx context.Context) ([]*model.ContactMessage, error) {
	return s.repo.List(ctx)
}
