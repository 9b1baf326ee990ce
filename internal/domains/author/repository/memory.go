package repository

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"library-backend/internal/domains/author"
)

// MemoryRepository is an in-process author.Repository used by tests.
// One mutex serializes every operation, so FindOrCreateByName gets the
// same atomicity the Mongo implementation gets from its upsert.
type MemoryRepository struct {
	mu      sync.Mutex
	authors map[primitive.ObjectID]author.Author
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		authors: make(map[primitive.ObjectID]author.Author),
	}
}

func (r *MemoryRepository) FindAll(ctx context.Context) ([]author.Author, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]author.Author, 0, len(r.authors))
	for _, a := range r.authors {
		out = append(out, a)
	}
	return out, nil
}

func (r *MemoryRepository) FindByName(ctx context.Context, name string) (*author.Author, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.findByNameLocked(name), nil
}

func (r *MemoryRepository) findByNameLocked(name string) *author.Author {
	for _, a := range r.authors {
		if a.Name == name {
			copied := a
			return &copied
		}
	}
	return nil
}

func (r *MemoryRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]author.Author, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make(map[primitive.ObjectID]author.Author, len(ids))
	for _, id := range ids {
		if a, ok := r.authors[id]; ok {
			result[id] = a
		}
	}
	return result, nil
}

func (r *MemoryRepository) FindOrCreateByName(ctx context.Context, name string) (*author.Author, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing := r.findByNameLocked(name); existing != nil {
		return existing, nil
	}

	created := author.Author{
		ID:   primitive.NewObjectID(),
		Name: name,
		Born: nil,
	}
	r.authors[created.ID] = created
	return &created, nil
}

func (r *MemoryRepository) UpdateBornByName(ctx context.Context, name string, born int) (*author.Author, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing := r.findByNameLocked(name)
	if existing == nil {
		return nil, nil
	}

	existing.Born = &born
	r.authors[existing.ID] = *existing
	return existing, nil
}

func (r *MemoryRepository) Count(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.authors)), nil
}
