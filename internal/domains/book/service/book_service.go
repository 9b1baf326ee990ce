package service

import (
	"context"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"library-backend/internal/domains/book"
	"library-backend/pkg/logger"
)

// bookService implements book.Service
type bookService struct {
	repo    book.Repository      // Book data access (injected)
	authors book.AuthorDirectory // Author lookups for filters and joins (injected)
}

// NewBookService creates a new book service instance
func NewBookService(repo book.Repository, authors book.AuthorDirectory) book.Service {
	return &bookService{
		repo:    repo,
		authors: authors,
	}
}

// AllBooks composes the filter predicates, runs the query and eagerly
// joins the owning author onto every result.
func (s *bookService) AllBooks(ctx context.Context, filter book.BookFilter) ([]book.BookResponse, error) {
	var q book.Query

	// The author filter joins through the authors collection: resolve
	// the natural key to an identity first. No author with that name
	// means the predicate can match nothing, which is a well-defined
	// empty listing, not an error.
	if filter.Author != "" {
		a, err := s.authors.FindByName(ctx, filter.Author)
		if err != nil {
			return nil, fmt.Errorf("resolve author filter: %w", err)
		}
		if a == nil {
			return []book.BookResponse{}, nil
		}
		q.AuthorID = &a.ID
	}

	q.Genre = filter.Genre

	books, err := s.repo.Find(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("get all books: %w", err)
	}

	return s.withAuthors(ctx, books)
}

// withAuthors resolves the author reference of every book in one batch
// fetch instead of a lookup per item.
func (s *bookService) withAuthors(ctx context.Context, books []book.Book) ([]book.BookResponse, error) {
	seen := make(map[primitive.ObjectID]bool, len(books))
	ids := make([]primitive.ObjectID, 0, len(books))
	for _, b := range books {
		if !seen[b.AuthorID] {
			seen[b.AuthorID] = true
			ids = append(ids, b.AuthorID)
		}
	}

	owners, err := s.authors.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("resolve book authors: %w", err)
	}

	responses := make([]book.BookResponse, 0, len(books))
	for _, b := range books {
		a, ok := owners[b.AuthorID]
		if !ok {
			// Every stored book must reference an existing author
			return nil, fmt.Errorf("%w: book %q", book.ErrAuthorMissing, b.Title)
		}
		responses = append(responses, b.ToResponse(a))
	}
	return responses, nil
}

// AddBook persists a new book, upserting its author on the way.
func (s *bookService) AddBook(ctx context.Context, req book.AddBookRequest) (*book.BookResponse, error) {
	// STEP 1: VALIDATE INPUT (before any store access)
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// STEP 2: RESOLVE OR CREATE THE AUTHOR
	// A single atomic find-or-create keyed on the unique name. Two
	// concurrent calls racing on the same unknown name must converge on
	// one author record; the repository guarantees that.
	name := strings.TrimSpace(req.Author)
	owner, err := s.authors.FindOrCreateByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("resolve book author: %w", err)
	}

	// STEP 3: PERSIST THE BOOK
	newBook := &book.Book{
		ID:        primitive.NewObjectID(),
		Title:     req.Title,
		Published: req.Published,
		AuthorID:  owner.ID,
		Genres:    req.Genres,
	}
	if err := s.repo.Create(ctx, newBook); err != nil {
		return nil, fmt.Errorf("create book: %w", err)
	}

	// STEP 4: RE-FETCH THE PERSISTED BOOK WITH ITS AUTHOR
	// If the store cannot observe the write it just acknowledged, the
	// call has to fail loudly; returning the in-memory struct would
	// paper over a broken store.
	persisted, err := s.repo.FindCreated(ctx, req.Title, req.Published, owner.ID)
	if err != nil {
		return nil, fmt.Errorf("read back created book: %w", err)
	}
	if persisted == nil {
		logger.Error("created book not readable", book.ErrBookNotPersisted)
		return nil, book.ErrBookNotPersisted
	}

	resp := persisted.ToResponse(*owner)
	return &resp, nil
}

func (s *bookService) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}
