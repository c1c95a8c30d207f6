package repository

import (
	"context"
	"fmt"

	"github.com/deorigen/backend/internal/model"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// contactListLimit caps GET /api/contact results.
const contactListLimit = 1000

// ContactRepository defines the persistence interface for contact messages.
type ContactRepository interface {
	Save(ctx context.Context, msg *model.ContactMessage) error
	List(ctx context.Context) ([]*model.ContactMessage, error)
}

// MongoContactRepository is the document-store implementation of
// ContactRepository, backed by the contact_messages collection.
type MongoContactRepository struct {
	coll *mongo.Collection
}

// NewMongoContactRepository creates a MongoContactRepository backed by the
// given client.
func NewMongoContactRepository(client *Client) *MongoContactRepository {
	return &MongoContactRepository{coll: client.collection("contact_messages")}
}

// Ensure MongoContactRepository implements ContactRepository at compile time.
var _ ContactRepository = (*MongoContactRepository)(nil)

type contactMessageDoc struct {
	ID              string        `bson:"id"`
	Name            string        `bson:"name"`
	Company         string        `bson:"company,omitempty"`
	Email           string        `bson:"email"`
	Phone           string        `bson:"phone,omitempty"`
	ServiceInterest string        `bson:"service_interest,omitempty"`
	Message         string        `bson:"message"`
	CreatedAt       bson.RawValue `bson:"created_at"`
}

// Save inserts a new contact message document.
func (r *MongoContactRepository) Save(ctx context.Context, msg *model.ContactMessage) error {
	_, err := r.coll.InsertOne(ctx, bson.D{
		{Key: "id", Value: msg.ID},
		{Key: "name", Value: msg.Name},
		{Key: "company", Value: msg.Company},
		{Key: "email", Value: msg.Email},
		{Key: "phone", Value: msg.Phone},
		{Key: "service_interest", Value: msg.ServiceInterest},
		{Key: "message", Value: msg.Message},
		{Key: "created_at", Value: encodeTimestamp(msg.CreatedAt)},
	})
	return err
}

// List returns up to 1000 contact messages in store default order, created_at
// normalized.
func (r *MongoContactRepository) List(ctx context.Context) ([]*model.ContactMessage, error) {
	cursor, err := r.coll.Find(ctx, bson.D{}, options.Find().
		SetProjection(bson.D{{Key: "_id", Value: 0}}).
		SetLimit(contactListLimit))
	if err != nil {
		return nil, err
	}

	var docs []contactMessageDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	messages := make([]*model.ContactMessage, 0, len(docs))
	for _, d := range docs {
		createdAt, err := decodeTimestamp(d.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("contact message %s: %w", d.ID, err)
		}
		messages = append(messages, &model.ContactMessage{
			ID:              d.ID,
			Name:            d.Name,
			Company:         d.Company,
			Email:           d.Email,
			Phone:           d.Phone,
			ServiceInterest: d.ServiceInterest,
			Message:         d.Message,
			CreatedAt:       createdAt,
		})
	}
	return messages, nil
}
