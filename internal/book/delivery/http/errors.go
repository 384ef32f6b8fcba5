package http

import (
	"errors"
	"net/http"

	"funbook/internal/book"
	"funbook/internal/note"
	pkgErrors "funbook/pkg/errors"
)

var (
	errInvalidSort     = errors.New("sort must be newest or oldest")
	errInvalidMinScore = errors.New("min_score must not be negative")
)

// mapError translates domain/use-case errors into HTTP errors. The three
// user-visible failure kinds stay distinct: catalog unavailable (retryable
// full-page error), book not found (stale or invalid route key), and note
// fetch failure (inline error in the detail view only).
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, book.ErrCatalogUnavailable):
		return pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "catalog could not be loaded, retry later")
	case errors.Is(err, book.ErrBookNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "book not found")
	case errors.Is(err, note.ErrNoReference):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "book has no note")
	case errors.Is(err, note.ErrFetchFailed):
		return pkgErrors.NewHTTPError(http.StatusBadGateway, "note content could not be loaded, retry later")
	default:
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
}
