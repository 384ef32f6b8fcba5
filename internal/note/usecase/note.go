package usecase

import (
	"context"
	"fmt"

	"funbook/internal/note"
	"funbook/pkg/markdown"
)

// Load fetches, sanitizes and renders the note behind ref. The outline is
// derived from the same stripped text handed to the renderer, so outline ids
// line up with the rendered heading ids.
func (uc *implUseCase) Load(ctx context.Context, ref string) (note.Note, error) {
	if ref == "" {
		return note.Note{}, note.ErrNoReference
	}

	raw, err := uc.repo.FetchRaw(ctx, ref)
	if err != nil {
		uc.l.Errorf(ctx, "Load: note fetch failed for %s: %v", ref, err)
		return note.Note{}, fmt.Errorf("%w: %v", note.ErrFetchFailed, err)
	}

	body, meta := markdown.StripFrontMatter(raw)

	html, err := uc.renderer.Render([]byte(body))
	if err != nil {
		uc.l.Errorf(ctx, "Load: render failed for %s: %v", ref, err)
		return note.Note{}, fmt.Errorf("%w: %v", note.ErrFetchFailed, err)
	}

	return note.Note{
		HTML:    html,
		Outline: markdown.ExtractOutline(body),
		Meta:    meta,
	}, nil
}
