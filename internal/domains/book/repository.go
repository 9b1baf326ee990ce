package book

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"library-backend/internal/domains/author"
)

// Repository defines the data access contract for books.
type Repository interface {
	// Find returns the books matching every predicate of the query.
	// An empty query matches all books.
	Find(ctx context.Context, q Query) ([]Book, error)

	// Create inserts a new book. The caller supplies the author
	// reference; the repository does not check it resolves.
	Create(ctx context.Context, b *Book) error

	// FindCreated re-reads a just-written book by the content it was
	// written with. Returns (nil, nil) when the store cannot observe it.
	FindCreated(ctx context.Context, title string, published int, authorID primitive.ObjectID) (*Book, error)

	// Count returns the total number of books.
	Count(ctx context.Context) (int64, error)

	// CountByAuthor returns how many books reference the given author.
	CountByAuthor(ctx context.Context, authorID primitive.ObjectID) (int64, error)
}

// AuthorDirectory is the slice of the author repository the book domain
// consumes: name resolution for the listing filter, batch fetch for the
// eager join, and the atomic find-or-create backing addBook.
type AuthorDirectory interface {
	FindByName(ctx context.Context, name string) (*author.Author, error)
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]author.Author, error)
	FindOrCreateByName(ctx context.Context, name string) (*author.Author, error)
}
