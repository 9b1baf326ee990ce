package author

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Repository defines the data access contract for authors.
// Absence is not an error on the read side: lookups by name return
// (nil, nil) when no author exists, because both the book listing filter
// and editAuthor treat a missing author as a well-defined outcome.
type Repository interface {
	// FindAll returns every author.
	FindAll(ctx context.Context) ([]Author, error)

	// FindByName resolves the natural key to an author.
	// Returns (nil, nil) when no author with that name exists.
	FindByName(ctx context.Context, name string) (*Author, error)

	// FindByIDs fetches the given authors in one round trip, keyed by ID.
	// IDs with no matching document are simply absent from the map.
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]Author, error)

	// FindOrCreateByName returns the author with the given name, creating
	// it with an unset birth year if absent.
	//
	// This MUST be atomic: concurrent calls with the same unknown name
	// must all observe the same single author record. The check-then-act
	// version of this (find, then create on miss) is exactly the race
	// that produces duplicate author rows under concurrent addBook calls.
	FindOrCreateByName(ctx context.Context, name string) (*Author, error)

	// UpdateBornByName sets the birth year of the author with the given
	// name and returns the updated record.
	// Returns (nil, nil) when no author with that name exists.
	UpdateBornByName(ctx context.Context, name string, born int) (*Author, error)

	// Count returns the total number of authors.
	Count(ctx context.Context) (int64, error)
}

// BookCounter is the one slice of the book repository the author domain
// needs: the cardinality of books referencing an author. Declared here so
// the author service does not depend on the book package.
type BookCounter interface {
	CountByAuthor(ctx context.Context, authorID primitive.ObjectID) (int64, error)
}
