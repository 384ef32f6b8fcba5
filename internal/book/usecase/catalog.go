package usecase

import (
	"context"
	"fmt"
	"sort"

	"funbook/internal/book"
	"funbook/internal/model"
)

// Refresh re-runs the catalog feed fetch. Concurrent refreshes are not
// coalesced: both complete independently and the last swap wins.
func (uc *implUseCase) Refresh(ctx context.Context) error {
	books, err := uc.repo.FetchCatalog(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "Refresh: catalog fetch failed: %v", err)
		return fmt.Errorf("%w: %v", book.ErrCatalogUnavailable, err)
	}

	uc.mu.Lock()
	uc.books = books
	uc.loaded = true
	uc.mu.Unlock()

	uc.l.Infof(ctx, "Refresh: catalog loaded with %d books", len(books))
	return nil
}

// List returns the filtered, ordered catalog view.
func (uc *implUseCase) List(ctx context.Context, input book.ListInput) (book.ListOutput, error) {
	books, loaded := uc.snapshot()
	if !loaded {
		return book.ListOutput{}, book.ErrCatalogUnavailable
	}

	filtered := Filter(books, input)
	return book.ListOutput{
		Books:       filtered,
		Total:       len(filtered),
		CatalogSize: len(books),
	}, nil
}

// Categories returns the distinct sorted top-level categories.
func (uc *implUseCase) Categories(ctx context.Context) ([]string, error) {
	books, loaded := uc.snapshot()
	if !loaded {
		return nil, book.ErrCatalogUnavailable
	}

	seen := make(map[string]struct{})
	var categories []string
	for _, b := range books {
		if _, ok := seen[b.CateLevel1]; ok || b.CateLevel1 == "" {
			continue
		}
		seen[b.CateLevel1] = struct{}{}
		categories = append(categories, b.CateLevel1)
	}
	sort.Strings(categories)
	return categories, nil
}

// Scores returns the distinct scores present in the catalog, ascending.
// Unscored records and zero scores are skipped; zero is the "no filter"
// sentinel, not a real score button.
func (uc *implUseCase) Scores(ctx context.Context) ([]float64, error) {
	books, loaded := uc.snapshot()
	if !loaded {
		return nil, book.ErrCatalogUnavailable
	}

	seen := make(map[float64]struct{})
	var scores []float64
	for _, b := range books {
		if b.Score == nil || *b.Score == 0 {
			continue
		}
		if _, ok := seen[*b.Score]; ok {
			continue
		}
		seen[*b.Score] = struct{}{}
		scores = append(scores, *b.Score)
	}
	sort.Float64s(scores)
	return scores, nil
}

// Get resolves a book by exact display-name equality. A never-loaded catalog
// is a miss, not a fetch error: the caller renders "not found", never the
// network error state.
func (uc *implUseCase) Get(ctx context.Context, name string) (model.Book, error) {
	books, _ := uc.snapshot()
	for _, b := range books {
		if b.BookName == name {
			return b, nil
		}
	}
	return model.Book{}, book.ErrBookNotFound
}

func (uc *implUseCase) snapshot() ([]model.Book, bool) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.books, uc.loaded
}
