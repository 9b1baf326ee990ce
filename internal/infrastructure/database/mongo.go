package database

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"library-backend/internal/config"
)

// Collection names used by the repositories.
const (
	CollectionAuthors = "authors"
	CollectionBooks   = "books"
	CollectionUsers   = "users"
)

// MongoDB wraps the driver client plus the application database handle.
// One instance is shared by every repository (connection pooling lives
// inside the driver).
type MongoDB struct {
	client   *mongo.Client
	database *mongo.Database
	cfg      config.MongoConfig
}

// NewMongoDB creates an unconnected wrapper; call Connect before use.
func NewMongoDB(cfg config.MongoConfig) *MongoDB {
	return &MongoDB{cfg: cfg}
}

// Connect establishes the client and verifies the server is reachable.
func (m *MongoDB) Connect(ctx context.Context) error {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(m.cfg.URI))
	if err != nil {
		return fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("mongo ping: %w", err)
	}

	m.client = client
	m.database = client.Database(m.cfg.Database)
	return nil
}

// EnsureIndexes creates the unique indexes the write paths depend on.
// The author-name index is what makes the find-or-create upsert in the
// author repository safe under concurrent addBook calls; the username
// index backs user uniqueness.
func (m *MongoDB) EnsureIndexes(ctx context.Context) error {
	_, err := m.database.Collection(CollectionAuthors).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create author name index: %w", err)
	}

	_, err = m.database.Collection(CollectionUsers).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create username index: %w", err)
	}

	// Non-unique index backing the per-author book count and the author
	// filter of the book listing.
	_, err = m.database.Collection(CollectionBooks).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "author", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("create book author index: %w", err)
	}

	return nil
}

// Collection returns a handle scoped to the application database.
func (m *MongoDB) Collection(name string) *mongo.Collection {
	return m.database.Collection(name)
}

// HealthCheck pings the primary.
func (m *MongoDB) HealthCheck(ctx context.Context) error {
	if m.client == nil {
		return fmt.Errorf("mongo client not connected")
	}
	return m.client.Ping(ctx, readpref.Primary())
}

// Close disconnects the client.
func (m *MongoDB) Close(ctx context.Context) error {
	if m.client == nil {
		return nil
	}
	return m.client.Disconnect(ctx)
}
