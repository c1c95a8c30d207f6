package repository

import (
	"context"
	"fmt"

	"github.com/deorigen/backend/internal/model"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// statusCheckListLimit caps GET /api/status results.
const statusCheckListLimit = 1000

// StatusCheckRepository defines the persistence interface for status checks.
type StatusCheckRepository interface {
	Save(ctx context.Context, check *model.StatusCheck) error
	List(ctx context.Context) ([]*model.StatusCheck, error)
}

// MongoStatusCheckRepository is the document-store implementation of
// StatusCheckRepository, backed by the status_checks collection.
type MongoStatusCheckRepository struct {
	coll *mongo.Collection
}

// NewMongoStatusCheckRepository creates a MongoStatusCheckRepository backed by
// the given client.
func NewMongoStatusCheckRepository(client *Client) *MongoStatusCheckRepository {
	return &MongoStatusCheckRepository{coll: client.collection("status_checks")}
}

// Ensure MongoStatusCheckRepository implements StatusCheckRepository at compile time.
var _ StatusCheckRepository = (*MongoStatusCheckRepository)(nil)

// statusCheckDoc is the stored shape. Timestamp is raw so reads tolerate both
// the canonical string form and native datetimes.
type statusCheckDoc struct {
	ID         string        `bson:"id"`
	ClientName string        `bson:"client_name"`
	Timestamp  bson.RawValue `bson:"timestamp"`
}

// Save inserts a new status check document. The document carries its own id
// field; the store's _id is never exposed.
func (r *MongoStatusCheckRepository) Save(ctx context.Context, check *model.StatusCheck) error {
	_, err := r.coll.InsertOne(ctx, bson.D{
		{Key: "id", Value: check.ID},
		{Key: "client_name", Value: check.ClientName},
		{Key: "timestamp", Value: encodeTimestamp(check.Timestamp)},
	})
	return err
}

// List returns up to 1000 status checks in store default order, timestamps
// normalized.
func (r *MongoStatusCheckRepository) List(ctx context.Context) ([]*model.StatusCheck, error) {
	cursor, err := r.coll.Find(ctx, bson.D{}, options.Find().
		SetProjection(bson.D{{Key: "_id", Value: 0}}).
		SetLimit(statusCheckListLimit))
	if err != nil {
		return nil, err
	}

	var docs []statusCheckDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	checks := make([]*model.StatusCheck, 0, len(docs))
	for _, d := range docs {
		ts, err := decodeTimestamp(d.Timestamp)
		if err != nil {
			return nil, fmt.Errorf("status check %s: %w", d.ID, err)
		}
		checks = append(checks, &model.StatusCheck{
			ID:         d.ID,
			ClientName: d.ClientName,
			Timestamp:  ts,
		})
	}
	return checks, nil
}
