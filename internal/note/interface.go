package note

import "context"

// UseCase defines the business logic interface for the note domain.
type UseCase interface {
	// Load fetches the note behind a stored reference URL, strips front
	// matter and renders the remaining Markdown.
	Load(ctx context.Context, ref string) (Note, error)
}
