package service

import (
	"context"

	"github.com/deorigen/backend/internal/model"
	"github.com/deorigen/backend/internal/repository"
)

// galleryServiceImpl is the production implementation of GalleryService.
type galleryServiceImpl struct {
	repo repository.GalleryRepository
}

// NewGalleryService creates a GalleryService backed by the given repository.
func NewGalleryService(repo repository.GalleryRepository) GalleryService {
	return &galleryServiceImpl{repo: repo}
}

// List returns stored gallery images; an empty store yields the fixed
// fallback set. The fallback is computed in-process and never written back.
// A store failure is a failure — the fallback covers only the empty case.
func (s *galleryServiceImpl) List(ctx context.Context) ([]*model.GalleryImage, error) {
	images, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(images) == 0 {
		return model.DefaultGallery(), nil
	}
	return images, nil
}
