// Package mailer sends transactional email through the Resend API.
// Notification failures are the caller's problem to absorb: this package
// reports them, it never retries.
package mailer

import (
	"context"
	"errors"
	"fmt"

	"github.com/resend/resend-go/v2"
)

// DefaultRecipient receives contact notifications unless CONTACT_EMAIL
// overrides it.
const DefaultRecipient = "rzunigabermejo@gmail.com"

// senderIdentity is the fixed From header for all outbound mail.
const senderIdentity = "De Origen Natural <onboarding@resend.dev>"

// ContactNotification carries the submitted contact-form fields to be
// rendered into the notification email. Company, Phone and ServiceInterest
// may be empty.
type ContactNotification struct {
	Name            string
	Company         string
	Email           string
	Phone           string
	ServiceInterest string
	Message         string
}

// Mailer is the outbound notification interface.
type Mailer interface {
	// SendContactNotification emails a contact-form submission to the
	// configured recipient.
	SendContactNotification(ctx context.Context, n ContactNotification) error
}

// ErrNotConfigured is returned when no API key was provided.
var ErrNotConfigured = errors.New("mailer: not configured")

// ResendClient sends mail through the Resend API.
type ResendClient struct {
	apiKey    string
	recipient string
	client    *resend.Client
}

// NewResendClient creates a ResendClient. An empty apiKey produces a client
// whose sends fail with ErrNotConfigured; an empty recipient falls back to
// DefaultRecipient.
func NewResendClient(apiKey, recipient string) *ResendClient {
	if recipient == "" {
		recipient = DefaultRecipient
	}
	return &ResendClient{
		apiKey:    apiKey,
		recipient: recipient,
		client:    resend.NewClient(apiKey),
	}
}

// Ensure ResendClient implements Mailer at compile time.
var _ Mailer = (*ResendClient)(nil)

// SendContactNotification renders the submission as an HTML document and
// sends it from the fixed sender identity to the configured recipient.
func (c *ResendClient) SendContactNotification(ctx context.Context, n ContactNotification) error {
	if c.apiKey == "" {
		return ErrNotConfigured
	}

	html, err := renderContactNotification(n)
	if err != nil {
		return fmt.Errorf("render notification: %w", err)
	}

	_, err = c.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    senderIdentity,
		To:      []string{c.recipient},
		Subject: contactSubject(n),
		Html:    html,
	})
	if err != nil {
		return fmt.Errorf("send notification: %w", err)
	}
	return nil
}

// contactSubject builds the notification subject from the submitter's name
// and stated interest, falling back to a generic phrase.
func contactSubject(n ContactNotification) string {
	interest := n.ServiceInterest
	if interest == "" {
		interest = "Consulta general"
	}
	return fmt.Sprintf("Nuevo contacto: %s - %s", n.Name, interest)
}
