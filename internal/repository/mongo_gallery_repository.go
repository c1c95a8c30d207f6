package repository

import (
	"context"
	"fmt"

	"github.com/deorigen/backend/internal/model"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// galleryListLimit caps GET /api/gallery results.
const galleryListLimit = 100

// GalleryRepository defines the persistence interface for gallery images.
// Writes happen only through out-of-band seeding (cmd/seed); the API itself
// never creates images.
type GalleryRepository interface {
	Save(ctx context.Context, img *model.GalleryImage) error
	List(ctx context.Context) ([]*model.GalleryImage, error)
	Clear(ctx context.Context) error
}

// MongoGalleryRepository is the document-store implementation of
// GalleryRepository, backed by the gallery_images collection.
type MongoGalleryRepository struct {
	coll *mongo.Collection
}

// NewMongoGalleryRepository creates a MongoGalleryRepository backed by the
// given client.
func NewMongoGalleryRepository(client *Client) *MongoGalleryRepository {
	return &MongoGalleryRepository{coll: client.collection("gallery_images")}
}

// Ensure MongoGalleryRepository implements GalleryRepository at compile time.
var _ GalleryRepository = (*MongoGalleryRepository)(nil)

type galleryImageDoc struct {
	ID            string        `bson:"id"`
	TitleES       string        `bson:"title_es"`
	TitleEN       string        `bson:"title_en"`
	DescriptionES string        `bson:"description_es,omitempty"`
	DescriptionEN string        `bson:"description_en,omitempty"`
	ImageURL      string        `bson:"image_url"`
	Category      string        `bson:"category"`
	Order         int           `bson:"order"`
	CreatedAt     bson.RawValue `bson:"created_at"`
}

// Save inserts a gallery image document.
func (r *MongoGalleryRepository) Save(ctx context.Context, img *model.GalleryImage) error {
	_, err := r.coll.InsertOne(ctx, bson.D{
		{Key: "id", Value: img.ID},
		{Key: "title_es", Value: img.TitleES},
		{Key: "title_en", Value: img.TitleEN},
		{Key: "description_es", Value: img.DescriptionES},
		{Key: "description_en", Value: img.DescriptionEN},
		{Key: "image_url", Value: img.ImageURL},
		{Key: "category", Value: img.Category},
		{Key: "order", Value: img.Order},
		{Key: "created_at", Value: encodeTimestamp(img.CreatedAt)},
	})
	return err
}

// List returns up to 100 gallery images sorted by order ascending, created_at
// normalized. Order values are not required to be unique.
func (r *MongoGalleryRepository) List(ctx context.Context) ([]*model.GalleryImage, error) {
	cursor, err := r.coll.Find(ctx, bson.D{}, options.Find().
		SetProjection(bson.D{{Key: "_id", Value: 0}}).
		SetSort(bson.D{{Key: "order", Value: 1}}).
		SetLimit(galleryListLimit))
	if err != nil {
		return nil, err
	}

	var docs []galleryImageDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	images := make([]*model.GalleryImage, 0, len(docs))
	for _, d := range docs {
		createdAt, err := decodeTimestamp(d.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("gallery image %s: %w", d.ID, err)
		}
		images = append(images, &model.GalleryImage{
			ID:            d.ID,
			TitleES:       d.TitleES,
			TitleEN:       d.TitleEN,
			DescriptionES: d.DescriptionES,
			DescriptionEN: d.DescriptionEN,
			ImageURL:      d.ImageURL,
			Category:      d.Category,
			Order:         d.Order,
			CreatedAt:     createdAt,
		})
	}
	return images, nil
}

// Clear removes every gallery image. Used by cmd/seed reset.
func (r *MongoGalleryRepository) Clear(ctx context.Context) error {
	_, err := r.coll.DeleteMany(ctx, bson.D{})
	return err
}
