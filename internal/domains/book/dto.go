package book

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"library-backend/internal/domains/author"
)

// BookFilter - query parameters of GET /books.
// Both filters are optional; an absent filter imposes no constraint.
type BookFilter struct {
	Author string `form:"author"`
	Genre  string `form:"genre"`
}

// AddBookRequest - POST /books
type AddBookRequest struct {
	Title     string   `json:"title"`
	Published int      `json:"published"`
	Author    string   `json:"author"`
	Genres    []string `json:"genres"`
}

func (r AddBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
		),
		validation.Field(&r.Published,
			validation.Required.Error("published is required"),
		),
		validation.Field(&r.Author,
			validation.Required.Error("author is required"),
			validation.Length(author.MinNameLength, 0).Error("author name is too short"),
		),
		validation.Field(&r.Genres,
			validation.Required.Error("genres is required"),
			validation.Each(validation.Required.Error("genres must not contain empty entries")),
		),
	)
}

// Query is the predicate set the repository evaluates against the books
// collection. The service composes it from a BookFilter after resolving
// the author name to an identity.
type Query struct {
	// AuthorID restricts to books referencing this author when non-nil
	AuthorID *primitive.ObjectID
	// Genre restricts to books whose genre list contains this tag
	Genre string
}
