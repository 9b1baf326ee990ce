package repository

import (
	"context"
	"fmt"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"library-backend/internal/domains/user"
)

// MemoryRepository is an in-process user.Repository used by tests.
type MemoryRepository struct {
	mu    sync.Mutex
	users map[primitive.ObjectID]user.User
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		users: make(map[primitive.ObjectID]user.User),
	}
}

func (r *MemoryRepository) Create(ctx context.Context, u *user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Username == u.Username {
			// Same shape the Mongo duplicate-key path produces
			return fmt.Errorf("%w: duplicate key error on username %q", user.ErrUsernameTaken, u.Username)
		}
	}

	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	r.users[u.ID] = *u
	return nil
}

func (r *MemoryRepository) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Username == username {
			copied := u
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *MemoryRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if u, ok := r.users[id]; ok {
		copied := u
		return &copied, nil
	}
	return nil, nil
}
