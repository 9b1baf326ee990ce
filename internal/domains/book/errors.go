package book

import "errors"

var (
	// ErrBookNotPersisted means the create was acknowledged but the
	// joined re-read could not observe the new book. That is a store
	// consistency failure the caller must see, never a silent nil.
	ErrBookNotPersisted = errors.New("book was not found after being persisted")

	// ErrAuthorMissing means a persisted book references an author the
	// store no longer resolves, which the data model forbids.
	ErrAuthorMissing = errors.New("book references an unknown author")
)
