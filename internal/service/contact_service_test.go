package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/deorigen/backend/internal/model"
	"github.com/deorigen/backend/pkg/mailer"
)

// ---------------------------------------------------------------------------
// Mocks
// ---------------------------------------------------------------------------

type mockContactRepository struct {
	saveFunc func(ctx context.Context, msg *model.ContactMessage) error
	listFunc func(ctx context.Context) ([]*model.ContactMessage, error)
}

func (m *mockContactRepository) Save(ctx context.Context, msg *model.ContactMessage) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, msg)
	}
	return nil
}

func (m *mockContactRepository) List(ctx context.Context) ([]*model.ContactMessage, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

type mockMailer struct {
	sendFunc func(ctx context.Context, n mailer.ContactNotification) error
}

func (m *mockMailer) SendContactNotification(ctx context.Context, n mailer.ContactNotification) error {
	if m.sendFunc != nil {
		return m.sendFunc(ctx, n)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Submit tests
// ---------------------------------------------------------------------------

func TestContactService_Submit_GeneratesIdentity(t *testing.T) {
	before := time.Now().UTC()
	var saved *model.ContactMessage
	repo := &mockContactRepository{
		saveFunc: func(ctx context.Context, msg *model.ContactMessage) error {
			saved = msg
			return nil
		},
	}
	svc := NewContactService(repo, &mockMailer{})

	msg := &model.ContactMessage{Name: "Ana", Email: "ana@example.com", Message: "Hola"}
	if err := svc.Submit(context.Background(), msg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if saved == nil {
		t.Fatal("expected Save to be called")
	}
	if saved.ID == "" {
		t.Error("expected server-generated id")
	}
	after := time.Now().UTC()
	if saved.CreatedAt.Before(before) || saved.CreatedAt.After(after) {
		t.Errorf("CreatedAt %v not in expected range [%v, %v]", saved.CreatedAt, before, after)
	}
	if saved.CreatedAt.Location() != time.UTC {
		t.Errorf("expected UTC CreatedAt, got %v", saved.CreatedAt.Location())
	}
}

// TestContactService_Submit_PersistsBeforeNotifying verifies ordering: the
// store write commits before the notification is attempted.
func TestContactService_Submit_PersistsBeforeNotifying(t *testing.T) {
	var calls []string
	repo := &mockContactRepository{
		saveFunc: func(ctx context.Context, msg *model.ContactMessage) error {
			calls = append(calls, "save")
			return nil
		},
	}
	mail := &mockMailer{
		sendFunc: func(ctx context.Context, n mailer.ContactNotification) error {
			calls = append(calls, "notify")
			return nil
		},
	}
	svc := NewContactService(repo, mail)

	msg := &model.ContactMessage{Name: "Ana", Email: "ana@example.com", Message: "Hola"}
	if err := svc.Submit(context.Background(), msg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(calls) != 2 || calls[0] != "save" || calls[1] != "notify" {
		t.Errorf("expected [save notify], got %v", calls)
	}
}

// TestContactService_Submit_MailerFailureSwallowed verifies that a
// notification failure never fails the submission.
func TestContactService_Submit_MailerFailureSwallowed(t *testing.T) {
	saved := false
	repo := &mockContactRepository{
		saveFunc: func(ctx context.Context, msg *model.ContactMessage) error {
			saved = true
			return nil
		},
	}
	mail := &mockMailer{
		sendFunc: func(ctx context.Context, n mailer.ContactNotification) error {
			return errors.New("provider rejected the request")
		},
	}
	svc := NewContactService(repo, mail)

	msg := &model.ContactMessage{Name: "Ana", Email: "ana@example.com", Message: "Hola"}
	if err := svc.Submit(context.Background(), msg); err != nil {
		t.Errorf("expected nil error despite mailer failure, got %v", err)
	}
	if !saved {
		t.Error("expected record to be persisted")
	}
}

// TestContactService_Submit_NotConfiguredSwallowed verifies a missing API key
// behaves like any other notification failure.
func TestContactService_Submit_NotConfiguredSwallowed(t *testing.T) {
	mail := &mockMailer{
		sendFunc: func(ctx context.Context, n mailer.ContactNotification) error {
			return mailer.ErrNotConfigured
		},
	}
	svc := NewContactService(&mockContactRepository{}, mail)

	msg := &model.ContactMessage{Name: "Ana", Email: "ana@example.com", Message: "Hola"}
	if err := svc.Submit(context.Background(), msg); err != nil {
		t.Errorf("expected nil error when mailer is unconfigured, got %v", err)
	}
}

// TestContactService_Submit_RepositoryError verifies a store failure aborts
// the submission and suppresses the notification.
func TestContactService_Submit_RepositoryError(t *testing.T) {
	notified := false
	repo := &mockContactRepository{
		saveFunc: func(ctx context.Context, msg *model.ContactMessage) error {
			return errors.New("db write failed")
		},
	}
	mail := &mockMailer{
		sendFunc: func(ctx context.Context, n mailer.ContactNotification) error {
			notified = true
			return nil
		},
	}
	svc := NewContactService(repo, mail)

	msg := &model.ContactMessage{Name: "Ana", Email: "ana@example.com", Message: "Hola"}
	if err := svc.Submit(context.Background(), msg); err == nil {
		t.Error("expected error from repository, got nil")
	}
	if notified {
		t.Error("expected no notification after a failed write")
	}
}

// TestContactService_Submit_NotificationFields verifies the submitted fields
// are forwarded to the mailer unchanged.
func TestContactService_Submit_NotificationFields(t *testing.T) {
	var captured mailer.ContactNotification
	mail := &mockMailer{
		sendFunc: func(ctx context.Context, n mailer.ContactNotification) error {
			captured = n
			return nil
		},
	}
	svc := NewContactService(&mockContactRepository{}, mail)

	msg := &model.ContactMessage{
		Name:            "Carlos Ruiz",
		Company:         "Gourmet SAC",
		Email:           "carlos@gourmet.pe",
		Phone:           "+51 999 888 777",
		ServiceInterest: "Cacao fino",
		Message:         "Cotización por favor",
	}
	if err := svc.Submit(context.Background(), msg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := mailer.ContactNotification{
		Name:            "Carlos Ruiz",
		Company:         "Gourmet SAC",
		Email:           "carlos@gourmet.pe",
		Phone:           "+51 999 888 777",
		ServiceInterest: "Cacao fino",
		Message:         "Cotización por favor",
	}
	if captured != want {
		t.Errorf("expected notification %+v, got %+v", want, captured)
	}
}

// ---------------------------------------------------------------------------
// List tests
// ---------------------------------------------------------------------------

func TestContactService_List_ReturnsMessages(t *testing.T) {
	now := time.Now().UTC()
	want := []*model.ContactMessage{
		{ID: "m1", Name: "Ana", Email: "ana@example.com", Message: "Hola", CreatedAt: now},
	}
	repo := &mockContactRepository{
		listFunc: func(ctx context.Context) ([]*model.ContactMessage, error) {
			return want, nil
		},
	}
	svc := NewContactService(repo, &mockMailer{})

	got, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].ID != "m1" {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestContactService_List_RepositoryError(t *testing.T) {
	repo := &mockContactRepository{
		listFunc: func(ctx context.Context) ([]*model.ContactMessage, error) {
			return nil, errors.New("db read failed")
		},
	}
	svc := NewContactService(repo, &mockMailer{})

	if _, err := svc.List(context.Background()); err == nil {
		t.Error("expected error from repository, got nil")
	}
}
