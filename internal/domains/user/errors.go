package user

import "errors"

var (
	// ErrUsernameTaken wraps the store's duplicate-key failure on the
	// unique username index.
	ErrUsernameTaken = errors.New("username already exists")

	// ErrInvalidCredentials is the single message for every login
	// failure. Whether the username exists must not be derivable from
	// the response.
	ErrInvalidCredentials = errors.New("wrong credentials")
)
