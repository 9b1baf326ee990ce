package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"library-backend/internal/domains/author"
	"library-backend/internal/infrastructure/database"
)

// mongoRepository is the concrete author.Repository backed by the
// authors collection.
type mongoRepository struct {
	coll *mongo.Collection
}

// NewMongoRepository builds the repository from the shared database
// handle. Returns the interface, not the struct, so callers only see
// the contract.
func NewMongoRepository(db *database.MongoDB) author.Repository {
	return &mongoRepository{
		coll: db.Collection(database.CollectionAuthors),
	}
}

func (r *mongoRepository) FindAll(ctx context.Context) ([]author.Author, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find authors: %w", err)
	}
	defer cursor.Close(ctx)

	var authors []author.Author
	if err := cursor.All(ctx, &authors); err != nil {
		return nil, fmt.Errorf("decode authors: %w", err)
	}
	return authors, nil
}

func (r *mongoRepository) FindByName(ctx context.Context, name string) (*author.Author, error) {
	var a author.Author
	err := r.coll.FindOne(ctx, bson.M{"name": name}).Decode(&a)
	if errors.Is(err, mongo.ErrNoDocuments) {
		// Absence is a result here, not a failure
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find author by name: %w", err)
	}
	return &a, nil
}

func (r *mongoRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]author.Author, error) {
	result := make(map[primitive.ObjectID]author.Author, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	cursor, err := r.coll.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("find authors by ids: %w", err)
	}
	defer cursor.Close(ctx)

	var authors []author.Author
	if err := cursor.All(ctx, &authors); err != nil {
		return nil, fmt.Errorf("decode authors: %w", err)
	}

	for _, a := range authors {
		result[a.ID] = a
	}
	return result, nil
}

// FindOrCreateByName is a single server-side find-and-update with upsert.
// The name filter plus $setOnInsert makes the insert conditional and
// atomic, and the unique index on name guarantees that two racing
// upserts converge on one document instead of creating duplicates.
func (r *mongoRepository) FindOrCreateByName(ctx context.Context, name string) (*author.Author, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var a author.Author
	err := r.coll.FindOneAndUpdate(ctx,
		bson.M{"name": name},
		bson.M{"$setOnInsert": bson.M{"born": nil}},
		opts,
	).Decode(&a)

	// Under a racing upsert one of the two can still lose the insert and
	// hit the unique index; the author exists at that point, so re-read.
	if mongo.IsDuplicateKeyError(err) {
		return r.FindByName(ctx, name)
	}
	if err != nil {
		return nil, fmt.Errorf("find or create author %q: %w", name, err)
	}
	return &a, nil
}

func (r *mongoRepository) UpdateBornByName(ctx context.Context, name string, born int) (*author.Author, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var a author.Author
	err := r.coll.FindOneAndUpdate(ctx,
		bson.M{"name": name},
		bson.M{"$set": bson.M{"born": born}},
		opts,
	).Decode(&a)

	if errors.Is(err, mongo.ErrNoDocuments) {
		// Nothing to edit
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update author %q: %w", name, err)
	}
	return &a, nil
}

func (r *mongoRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count authors: %w", err)
	}
	return count, nil
}
