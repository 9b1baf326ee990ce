package author

import "errors"

var (
	// ErrNilAuthor is returned when a derived field is requested for a
	// missing owner. The book count of "no author" is not zero, it is a
	// caller mistake.
	ErrNilAuthor = errors.New("no author found")
)
