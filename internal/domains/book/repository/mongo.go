package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"library-backend/internal/domains/book"
	"library-backend/internal/infrastructure/database"
)

// mongoRepository is the concrete book.Repository backed by the books
// collection.
type mongoRepository struct {
	coll *mongo.Collection
}

func NewMongoRepository(db *database.MongoDB) book.Repository {
	return &mongoRepository{
		coll: db.Collection(database.CollectionBooks),
	}
}

// filterFor translates the composed query into a Mongo filter document.
// Matching a scalar against the genres array is native Mongo semantics:
// {genres: "x"} matches documents whose array contains "x".
func filterFor(q book.Query) bson.M {
	filter := bson.M{}
	if q.AuthorID != nil {
		filter["author"] = *q.AuthorID
	}
	if q.Genre != "" {
		filter["genres"] = q.Genre
	}
	return filter
}

func (r *mongoRepository) Find(ctx context.Context, q book.Query) ([]book.Book, error) {
	cursor, err := r.coll.Find(ctx, filterFor(q))
	if err != nil {
		return nil, fmt.Errorf("find books: %w", err)
	}
	defer cursor.Close(ctx)

	var books []book.Book
	if err := cursor.All(ctx, &books); err != nil {
		return nil, fmt.Errorf("decode books: %w", err)
	}
	return books, nil
}

func (r *mongoRepository) Create(ctx context.Context, b *book.Book) error {
	if b.ID.IsZero() {
		b.ID = primitive.NewObjectID()
	}

	if _, err := r.coll.InsertOne(ctx, b); err != nil {
		return fmt.Errorf("insert book: %w", err)
	}
	return nil
}

func (r *mongoRepository) FindCreated(ctx context.Context, title string, published int, authorID primitive.ObjectID) (*book.Book, error) {
	var b book.Book
	err := r.coll.FindOne(ctx, bson.M{
		"title":     title,
		"published": published,
		"author":    authorID,
	}).Decode(&b)

	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find created book: %w", err)
	}
	return &b, nil
}

func (r *mongoRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count books: %w", err)
	}
	return count, nil
}

func (r *mongoRepository) CountByAuthor(ctx context.Context, authorID primitive.ObjectID) (int64, error) {
	count, err := r.coll.CountDocuments(ctx, bson.M{"author": authorID})
	if err != nil {
		return 0, fmt.Errorf("count books by author: %w", err)
	}
	return count, nil
}
