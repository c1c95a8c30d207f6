package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// Client is the process-lifetime handle to the document store. It is created
// once at startup, shared by all repositories, safe for concurrent use, and
// disconnected on shutdown.
type Client struct {
	mc *mongo.Client
	db *mongo.Database
}

// NewClient connects to the document store and verifies the connection with
// a ping before returning.
func NewClient(ctx context.Context, uri, dbName string) (*Client, error) {
	mc, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := mc.Ping(ctx, nil); err != nil {
		_ = mc.Disconnect(context.Background())
		return nil, err
	}
	return &Client{mc: mc, db: mc.Database(dbName)}, nil
}

// Ping reports whether the store is reachable.
func (c *Client) Ping(ctx context.Context) error {
	return c.mc.Ping(ctx, nil)
}

// Disconnect closes the underlying connections. Hooked to process shutdown.
func (c *Client) Disconnect(ctx context.Context) error {
	return c.mc.Disconnect(ctx)
}

func (c *Client) collection(name string) *mongo.Collection {
	return c.db.Collection(name)
}
