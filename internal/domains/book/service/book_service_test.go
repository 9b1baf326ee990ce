package service

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"library-backend/internal/domains/book"
	bookRepo "library-backend/internal/domains/book/repository"

	authorRepo "library-backend/internal/domains/author/repository"
)

func newTestService(t *testing.T) (book.Service, *bookRepo.MemoryRepository, *authorRepo.MemoryRepository) {
	t.Helper()
	books := bookRepo.NewMemoryRepository()
	authors := authorRepo.NewMemoryRepository()
	return NewBookService(books, authors), books, authors
}

func mustAdd(t *testing.T, svc book.Service, title string, published int, author string, genres ...string) *book.BookResponse {
	t.Helper()
	created, err := svc.AddBook(context.Background(), book.AddBookRequest{
		Title:     title,
		Published: published,
		Author:    author,
		Genres:    genres,
	})
	require.NoError(t, err)
	require.NotNil(t, created)
	return created
}

func TestAddBookCreatesAuthorAndBook(t *testing.T) {
	svc, books, authors := newTestService(t)
	ctx := context.Background()

	created := mustAdd(t, svc, "Clean Code", 2008, "Robert Martin", "refactoring")

	assert.Equal(t, "Clean Code", created.Title)
	assert.Equal(t, 2008, created.Published)
	assert.Equal(t, "Robert Martin", created.Author.Name)
	assert.Nil(t, created.Author.Born, "implicitly created author has no birth year")
	assert.False(t, created.ID.IsZero())

	authorCount, err := authors.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), authorCount)

	bookCount, err := books.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), bookCount)
}

func TestAddBookReusesExistingAuthor(t *testing.T) {
	svc, _, authors := newTestService(t)
	ctx := context.Background()

	first := mustAdd(t, svc, "Clean Code", 2008, "Robert Martin", "refactoring")
	second := mustAdd(t, svc, "Clean Architecture", 2017, "Robert Martin", "architecture")

	assert.Equal(t, first.Author.ID, second.Author.ID)

	count, err := authors.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestAddBookIsNotIdempotent(t *testing.T) {
	svc, books, _ := newTestService(t)
	ctx := context.Background()

	mustAdd(t, svc, "Clean Code", 2008, "Robert Martin", "refactoring")
	mustAdd(t, svc, "Clean Code", 2008, "Robert Martin", "refactoring")

	all, err := books.Find(ctx, book.Query{})
	require.NoError(t, err)
	require.Len(t, all, 2, "identical calls must create distinct books")
	assert.NotEqual(t, all[0].ID, all[1].ID)
	assert.Equal(t, all[0].Title, all[1].Title)
}

func TestAddBookValidationRunsBeforeStoreAccess(t *testing.T) {
	tests := []struct {
		name string
		req  book.AddBookRequest
	}{
		{"missing title", book.AddBookRequest{Published: 2008, Author: "Robert Martin", Genres: []string{"x"}}},
		{"missing published", book.AddBookRequest{Title: "Clean Code", Author: "Robert Martin", Genres: []string{"x"}}},
		{"missing author", book.AddBookRequest{Title: "Clean Code", Published: 2008, Genres: []string{"x"}}},
		{"missing genres", book.AddBookRequest{Title: "Clean Code", Published: 2008, Author: "Robert Martin"}},
		{"author name too short", book.AddBookRequest{Title: "Clean Code", Published: 2008, Author: "Bob", Genres: []string{"x"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, books, authors := newTestService(t)
			ctx := context.Background()

			created, err := svc.AddBook(ctx, tt.req)
			require.Error(t, err)
			assert.Nil(t, created)

			// Nothing may have been written
			bookCount, _ := books.Count(ctx)
			authorCount, _ := authors.Count(ctx)
			assert.Zero(t, bookCount)
			assert.Zero(t, authorCount)
		})
	}
}

func TestAllBooksFilterCombinations(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	mustAdd(t, svc, "Clean Code", 2008, "Robert Martin", "refactoring")
	mustAdd(t, svc, "Clean Architecture", 2017, "Robert Martin", "architecture", "design")
	mustAdd(t, svc, "Refactoring", 1999, "Martin Fowler", "refactoring", "design")

	titles := func(books []book.BookResponse) []string {
		out := make([]string, 0, len(books))
		for _, b := range books {
			out = append(out, b.Title)
		}
		return out
	}

	t.Run("no filters returns all", func(t *testing.T) {
		got, err := svc.AllBooks(ctx, book.BookFilter{})
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"Clean Code", "Clean Architecture", "Refactoring"}, titles(got))
	})

	t.Run("genre only", func(t *testing.T) {
		got, err := svc.AllBooks(ctx, book.BookFilter{Genre: "refactoring"})
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"Clean Code", "Refactoring"}, titles(got))
	})

	t.Run("author only", func(t *testing.T) {
		got, err := svc.AllBooks(ctx, book.BookFilter{Author: "Robert Martin"})
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"Clean Code", "Clean Architecture"}, titles(got))
	})

	t.Run("author and genre intersect", func(t *testing.T) {
		got, err := svc.AllBooks(ctx, book.BookFilter{Author: "Martin Fowler", Genre: "design"})
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"Refactoring"}, titles(got))
	})

	t.Run("every result carries its author", func(t *testing.T) {
		got, err := svc.AllBooks(ctx, book.BookFilter{})
		require.NoError(t, err)
		for _, b := range got {
			assert.NotEmpty(t, b.Author.Name)
			assert.False(t, b.Author.ID.IsZero())
		}
	})
}

func TestAllBooksUnknownAuthorReturnsEmptyList(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	mustAdd(t, svc, "Clean Code", 2008, "Robert Martin", "refactoring")

	got, err := svc.AllBooks(ctx, book.BookFilter{Author: "Nobody At All"})
	require.NoError(t, err, "a missing author matches zero books, it is not a failure")
	assert.Empty(t, got)
	assert.NotNil(t, got)
}

func TestAddBookExample(t *testing.T) {
	// addBook on an empty store, then the genre listing finds exactly
	// that book with its author populated
	svc, _, authors := newTestService(t)
	ctx := context.Background()

	mustAdd(t, svc, "Clean Code", 2008, "Robert Martin", "refactoring")

	a, err := authors.FindByName(ctx, "Robert Martin")
	require.NoError(t, err)
	require.NotNil(t, a)
	assert.Nil(t, a.Born)

	got, err := svc.AllBooks(ctx, book.BookFilter{Genre: "refactoring"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Clean Code", got[0].Title)
	assert.Equal(t, a.ID, got[0].Author.ID)
}

func TestConcurrentAddBookSameNewAuthor(t *testing.T) {
	svc, books, authors := newTestService(t)
	ctx := context.Background()

	const n = 64

	var wg sync.WaitGroup
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.AddBook(ctx, book.AddBookRequest{
				Title:     fmt.Sprintf("Book %d", i),
				Published: 2000 + i,
				Author:    "Brand New Author",
				Genres:    []string{"testing"},
			})
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		require.NoError(t, err, "call %d", i)
	}

	// Exactly one author, n books, all referencing that one author
	authorCount, err := authors.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), authorCount, "racing upserts must converge on one author")

	a, err := authors.FindByName(ctx, "Brand New Author")
	require.NoError(t, err)
	require.NotNil(t, a)

	byAuthor, err := books.CountByAuthor(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(n), byAuthor)
}

// vanishingRepo acknowledges the insert but can never observe it again,
// simulating a store that loses the read-your-writes guarantee.
type vanishingRepo struct {
	book.Repository
}

func (r *vanishingRepo) FindCreated(ctx context.Context, title string, published int, authorID primitive.ObjectID) (*book.Book, error) {
	return nil, nil
}

func TestAddBookSurfacesConsistencyFailure(t *testing.T) {
	books := bookRepo.NewMemoryRepository()
	authors := authorRepo.NewMemoryRepository()
	svc := NewBookService(&vanishingRepo{Repository: books}, authors)

	created, err := svc.AddBook(context.Background(), book.AddBookRequest{
		Title:     "Ghost Book",
		Published: 2020,
		Author:    "Some Author",
		Genres:    []string{"horror"},
	})

	require.ErrorIs(t, err, book.ErrBookNotPersisted)
	assert.Nil(t, created)
}
