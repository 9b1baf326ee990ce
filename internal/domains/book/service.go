package book

import (
	"context"
)

// Service defines business logic operations for the book domain.
type Service interface {
	// AllBooks returns the books satisfying all supplied filters, each
	// with its author resolved.
	// Filter semantics:
	// - neither set: all books
	// - genre only: books whose genre list contains it
	// - author only: books of that author; an unknown name matches zero
	//   books (empty listing, never an error)
	// - both: intersection of the two predicates
	AllBooks(ctx context.Context, filter BookFilter) ([]BookResponse, error)

	// AddBook persists a new book, creating its author first if the name
	// is unknown. Validation runs before any store access. Returns the
	// created book with its author populated, or ErrBookNotPersisted if
	// the post-write re-read cannot see it.
	// Deliberately not idempotent: identical calls create distinct books.
	AddBook(ctx context.Context, req AddBookRequest) (*BookResponse, error)

	// Count returns the total number of books.
	Count(ctx context.Context) (int64, error)
}
