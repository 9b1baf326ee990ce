package user

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Repository defines the data access contract for users.
type Repository interface {
	// Create inserts a new user.
	// Returns ErrUsernameTaken (with the store message attached) when
	// the unique username index rejects the write.
	Create(ctx context.Context, u *User) error

	// FindByUsername resolves a username to a user.
	// Returns (nil, nil) when no such user exists; the login path folds
	// that into its uniform failure itself.
	FindByUsername(ctx context.Context, username string) (*User, error)

	// FindByID resolves a token's user identity back to a user.
	// Returns (nil, nil) when the identity no longer resolves.
	FindByID(ctx context.Context, id primitive.ObjectID) (*User, error)
}
