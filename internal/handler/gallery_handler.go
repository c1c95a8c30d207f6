package handler

import (
	"encoding/json"
	"net/http"

	"github.com/deorigen/backend/internal/service"
)

// GalleryHandler serves the image gallery.
type GalleryHandler struct {
	galleryService service.GalleryService
}

// NewGalleryHandler creates a GalleryHandler with the given service.
func NewGalleryHandler(galleryService service.GalleryService) *GalleryHandler {
	return &GalleryHandler{galleryService: galleryService}
}

// List handles GET /api/gallery. The service substitutes the built-in
// fallback set when the store is empty, so the response always has content.
func (h *GalleryHandler) List(w http.ResponseWriter, r *http.Request) {
	images, err := h.galleryService.List(r.Context())
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "list_failed"})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(images)
}
