package model

import "time"

// ContactMessage represents a message submitted via the contact form.
// ID and CreatedAt are generated server-side.
type ContactMessage struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Company         string    `json:"company,omitempty"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone,omitempty"`
	ServiceInterest string    `json:"service_interest,omitempty"`
	Message         string    `json:"message"`
	CreatedAt       time.Time `json:"created_at"`
}
