package book

import "errors"

// Domain-specific errors for the catalog package.
var (
	ErrCatalogUnavailable = errors.New("catalog could not be loaded")
	ErrBookNotFound       = errors.New("book not found")
)
