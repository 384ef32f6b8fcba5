package note

import "errors"

// Domain-specific errors for the note package.
var (
	ErrNoReference = errors.New("book has no note reference")
	ErrFetchFailed = errors.New("failed to load note content")
)
