package repository

import "context"

// ContentRepository is the interface for raw note content access.
type ContentRepository interface {
	// FetchRaw rewrites the stored reference into its raw-content form and
	// GETs it. Any non-200 status is an error.
	FetchRaw(ctx context.Context, ref string) (string, error)
}
