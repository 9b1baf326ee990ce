package author

import (
	"context"
)

// Service defines business logic operations for the author domain.
type Service interface {
	// AllAuthors returns every author, each decorated with its derived
	// book count. The count is recomputed from the books collection on
	// every call; nothing is cached between requests.
	AllAuthors(ctx context.Context) ([]AuthorResponse, error)

	// EditAuthor sets the birth year of the author named in the request.
	// Returns (nil, nil) when no such author exists - a null result, not
	// an error. Validation runs before any store access.
	EditAuthor(ctx context.Context, req EditAuthorRequest) (*Author, error)

	// BookCountFor computes the derived book count for one author.
	// A nil author is an input error (ErrNilAuthor), never a silent zero.
	BookCountFor(ctx context.Context, a *Author) (int64, error)

	// Count returns the total number of authors.
	Count(ctx context.Context) (int64, error)
}
