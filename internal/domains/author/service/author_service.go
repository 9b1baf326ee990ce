package service

import (
	"context"
	"fmt"
	"strings"

	"library-backend/internal/domains/author"
)

// authorService implements author.Service
type authorService struct {
	repo  author.Repository  // Author data access (injected)
	books author.BookCounter // Derived book counts (injected)
}

// NewAuthorService creates a new author service instance.
// The book counter is the narrow view of the book repository this
// service needs; injecting the interface keeps the domains decoupled.
func NewAuthorService(repo author.Repository, books author.BookCounter) author.Service {
	return &authorService{
		repo:  repo,
		books: books,
	}
}

// AllAuthors returns every author with its recomputed book count.
// One count query per author: the count is intentionally not stored, so
// it can never go stale, at the cost of this secondary lookup.
func (s *authorService) AllAuthors(ctx context.Context) ([]author.AuthorResponse, error) {
	authors, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get all authors: %w", err)
	}

	responses := make([]author.AuthorResponse, 0, len(authors))
	for i := range authors {
		count, err := s.BookCountFor(ctx, &authors[i])
		if err != nil {
			return nil, err
		}
		responses = append(responses, authors[i].ToResponse(count))
	}
	return responses, nil
}

// EditAuthor sets the birth year of an existing author.
func (s *authorService) EditAuthor(ctx context.Context, req author.EditAuthorRequest) (*author.Author, error) {
	// STEP 1: VALIDATE INPUT (before any store access)
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// STEP 2: FIND AND UPDATE BY NATURAL KEY
	// A missing author comes back as (nil, nil): "nothing to do" is a
	// valid outcome of this mutation, not a failure.
	name := strings.TrimSpace(req.Name)
	updated, err := s.repo.UpdateBornByName(ctx, name, *req.SetBornTo)
	if err != nil {
		return nil, fmt.Errorf("edit author: %w", err)
	}
	return updated, nil
}

// BookCountFor computes the derived book count for one author.
func (s *authorService) BookCountFor(ctx context.Context, a *author.Author) (int64, error) {
	if a == nil {
		return 0, author.ErrNilAuthor
	}

	count, err := s.books.CountByAuthor(ctx, a.ID)
	if err != nil {
		return 0, fmt.Errorf("count books for author %q: %w", a.Name, err)
	}
	return count, nil
}

func (s *authorService) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}
