package book

import (
	"context"

	"funbook/internal/model"
)

// UseCase defines the business logic interface for the catalog domain.
type UseCase interface {
	// Refresh re-issues the catalog feed fetch and replaces the held list
	// wholesale on success. On failure the previous state is kept.
	Refresh(ctx context.Context) error

	// List returns the filtered, ordered catalog view.
	List(ctx context.Context, input ListInput) (ListOutput, error)

	// Categories returns the distinct sorted top-level categories.
	Categories(ctx context.Context) ([]string, error)

	// Scores returns the distinct scores present in the catalog, ascending.
	Scores(ctx context.Context) ([]float64, error)

	// Get resolves a book by its exact display name.
	Get(ctx context.Context, name string) (model.Book, error)
}
