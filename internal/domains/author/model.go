package author

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Author is the domain entity, persisted 1:1 in the authors collection.
// Name is the natural key (unique index, see database.EnsureIndexes).
type Author struct {
	ID   primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name string             `bson:"name" json:"name"`

	// Born is nil until editAuthor sets it. A pointer keeps "never set"
	// distinguishable from an explicit year 0.
	Born *int `bson:"born" json:"born"`
}

// AuthorResponse is the Author plus the derived per-author book count,
// recomputed from the books collection on every read.
type AuthorResponse struct {
	ID        primitive.ObjectID `json:"id"`
	Name      string             `json:"name"`
	Born      *int               `json:"born"`
	BookCount int64              `json:"book_count"`
}

// ToResponse converts Author to AuthorResponse
func (a Author) ToResponse(bookCount int64) AuthorResponse {
	return AuthorResponse{
		ID:        a.ID,
		Name:      a.Name,
		Born:      a.Born,
		BookCount: bookCount,
	}
}
