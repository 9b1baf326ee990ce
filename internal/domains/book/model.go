package book

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"library-backend/internal/domains/author"
)

// Book is the domain entity, persisted 1:1 in the books collection.
// The author field references an Author by _id (one-to-many by
// reference, not embedding). Books are created once and never edited or
// deleted here.
type Book struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title     string             `bson:"title" json:"title"`
	Published int                `bson:"published" json:"published"`
	AuthorID  primitive.ObjectID `bson:"author" json:"-"`
	Genres    []string           `bson:"genres" json:"genres"`
}

// BookResponse is a Book with its author reference resolved, so the
// listing needs no second round trip per item.
type BookResponse struct {
	ID        primitive.ObjectID `json:"id"`
	Title     string             `json:"title"`
	Published int                `json:"published"`
	Author    author.Author      `json:"author"`
	Genres    []string           `json:"genres"`
}

// ToResponse joins the owning author onto the book.
func (b Book) ToResponse(a author.Author) BookResponse {
	return BookResponse{
		ID:        b.ID,
		Title:     b.Title,
		Published: b.Published,
		Author:    a,
		Genres:    b.Genres,
	}
}
