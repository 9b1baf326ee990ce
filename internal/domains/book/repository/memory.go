package repository

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"library-backend/internal/domains/book"
)

// MemoryRepository is an in-process book.Repository used by tests.
type MemoryRepository struct {
	mu    sync.Mutex
	books []book.Book
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func matches(b book.Book, q book.Query) bool {
	if q.AuthorID != nil && b.AuthorID != *q.AuthorID {
		return false
	}
	if q.Genre != "" {
		found := false
		for _, g := range b.Genres {
			if g == q.Genre {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func (r *MemoryRepository) Find(ctx context.Context, q book.Query) ([]book.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]book.Book, 0)
	for _, b := range r.books {
		if matches(b, q) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *MemoryRepository) Create(ctx context.Context, b *book.Book) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if b.ID.IsZero() {
		b.ID = primitive.NewObjectID()
	}
	r.books = append(r.books, *b)
	return nil
}

func (r *MemoryRepository) FindCreated(ctx context.Context, title string, published int, authorID primitive.ObjectID) (*book.Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, b := range r.books {
		if b.Title == title && b.Published == published && b.AuthorID == authorID {
			copied := b
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *MemoryRepository) Count(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.books)), nil
}

func (r *MemoryRepository) CountByAuthor(ctx context.Context, authorID primitive.ObjectID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var count int64
	for _, b := range r.books {
		if b.AuthorID == authorID {
			count++
		}
	}
	return count, nil
}
