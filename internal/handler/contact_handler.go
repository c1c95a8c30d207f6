package handler

import (
	"encoding/json"
	"net/http"

	"github.com/deorigen/backend/internal/model"
	"github.com/deorigen/backend/internal/service"
)

// ContactHandler handles contact form submission and listing.
type ContactHandler struct {
	contactService service.ContactService
}

// NewContactHandler creates a ContactHandler with the given service.
func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// submitContactRequest is the expected JSON body for POST /api/contact.
// id and created_at are never read from the request.
type submitContactRequest struct {
	Name            string `json:"name"`
	Company         string `json:"company"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	ServiceInterest string `json:"service_interest"`
	Message         string `json:"message"`
}

// Submit handles POST /api/contact.
// name, email and message are required; email must be syntactically valid;
// company, phone and service_interest are optional. Every violation is
// reported, together, before anything is persisted.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitContactRequest
	if errs := decodeBody(r, &req); errs != nil {
		writeFieldErrors(w, errs)
		return
	}

	var errs []FieldError
	if req.Name == "" {
		errs = append(errs, FieldError{Field: "name", Message: "is required"})
	}
	if req.Email == "" {
		errs = append(errs, FieldError{Field: "email", Message: "is required"})
	} else if !validEmail(req.Email) {
		errs = append(errs, FieldError{Field: "email", Message: "must be a valid email address"})
	}
	if req.Message == "" {
		errs = append(errs, FieldError{Field: "message", Message: "is required"})
	}
	if len(errs) > 0 {
		writeFieldErrors(w, errs)
		return
	}

	msg := &model.ContactMessage{
		Name:            req.Name,
		Company:         req.Company,
		Email:           req.Email,
		Phone:           req.Phone,
		ServiceInterest: req.ServiceInterest,
		Message:         req.Message,
	}

	if err := h.contactService.Submit(r.Context(), msg); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "submit_failed"})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(msg)
}

// List handles GET /api/contact.
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	messages, err := h.contactService.List(r.Context())
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "list_failed"})
		return
	}

	// Return [] not null for empty lists
	if messages == nil {
		messages = []*model.ContactMessage{}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(messages)
}
