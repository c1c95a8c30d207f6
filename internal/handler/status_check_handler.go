package handler

import (
	"encoding/json"
	"net/http"

	"github.com/deorigen/backend/internal/model"
	"github.com/deorigen/backend/internal/service"
)

// StatusCheckHandler handles status-check pings and listing.
type StatusCheckHandler struct {
	statusService service.StatusCheckService
}

// NewStatusCheckHandler creates a StatusCheckHandler with the given service.
func NewStatusCheckHandler(statusService service.StatusCheckService) *StatusCheckHandler {
	return &StatusCheckHandler{statusService: statusService}
}

// createStatusCheckRequest is the expected JSON body for POST /api/status.
type createStatusCheckRequest struct {
	ClientName string `json:"client_name"`
}

// Create handles POST /api/status. client_name is required.
func (h *StatusCheckHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createStatusCheckRequest
	if errs := decodeBody(r, &req); errs != nil {
		writeFieldErrors(w, errs)
		return
	}

	if req.ClientName == "" {
		writeFieldErrors(w, []FieldError{{Field: "client_name", Message: "is required"}})
		return
	}

	check := &model.StatusCheck{ClientName: req.ClientName}
	if err := h.statusService.Create(r.Context(), check); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "create_failed"})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(check)
}

// List handles GET /api/status.
func (h *StatusCheckHandler) List(w http.ResponseWriter, r *http.Request) {
	checks, err := h.statusService.List(r.Context())
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "list_failed"})
		return
	}

	// Return [] not null for empty lists
	if checks == nil {
		checks = []*model.StatusCheck{}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(checks)
}
