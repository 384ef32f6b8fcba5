package usecase

import (
	"sort"
	"strings"

	"funbook/internal/book"
	"funbook/internal/model"
)

// Filter derives the ordered subset of books matching the input. It is a
// pure function: same inputs, same ordered result, and the input slice is
// never mutated.
func Filter(books []model.Book, input book.ListInput) []model.Book {
	search := strings.ToLower(input.Search)

	filtered := make([]model.Book, 0, len(books))
	for _, b := range books {
		if !matchesSearch(b, search) {
			continue
		}
		if input.Category != "" && b.CateLevel1 != input.Category {
			continue
		}
		if b.Score != nil && *b.Score < input.MinScore {
			continue
		}
		filtered = append(filtered, b)
	}

	// Stable: two records both missing mtime keep their input order.
	sort.SliceStable(filtered, func(i, j int) bool {
		ti, iOK := filtered[i].ModifiedAt()
		tj, jOK := filtered[j].ModifiedAt()
		if !iOK && !jOK {
			return false
		}
		if !iOK {
			return false
		}
		if !jOK {
			return true
		}
		if input.Sort == book.SortOldest {
			return ti.Before(tj)
		}
		return ti.After(tj)
	})

	return filtered
}

func matchesSearch(b model.Book, search string) bool {
	if search == "" {
		return true
	}
	return strings.Contains(strings.ToLower(b.BookName), search) ||
		strings.Contains(strings.ToLower(b.CateLevel1), search) ||
		strings.Contains(strings.ToLower(b.CateLeaf), search)
}
