package service

import (
	"context"

	"github.com/deorigen/backend/internal/model"
)

// GalleryService defines the business logic for the image gallery.
type GalleryService interface {
	// List returns stored gallery images sorted by display order, or the
	// built-in fallback set when the store holds none.
	List(ctx context.Context) ([]*model.GalleryImage, error)
}
