package user

import (
	"context"
)

// Service defines business logic operations for the user domain.
type Service interface {
	// Register creates a user with a fresh identity and a hashed
	// credential. Duplicate usernames fail with ErrUsernameTaken.
	Register(ctx context.Context, req CreateUserRequest) (*User, error)

	// Login authenticates a username/credential pair and issues a
	// signed token. Every failure mode is ErrInvalidCredentials.
	Login(ctx context.Context, req LoginRequest) (*TokenResponse, error)
}
