package repository

import (
	"context"

	"funbook/internal/model"
)

// FeedRepository is the interface for catalog feed access.
type FeedRepository interface {
	// FetchCatalog GETs the feed and returns the full book list. Any non-200
	// status or unparseable body is an error; there is no partial success.
	FetchCatalog(ctx context.Context) ([]model.Book, error)
}
