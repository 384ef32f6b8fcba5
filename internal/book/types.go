package book

import "funbook/internal/model"

// SortOrder selects catalog ordering by modification time.
type SortOrder string

const (
	SortNewest SortOrder = "newest"
	SortOldest SortOrder = "oldest"
)

// ListInput is the input for the filtered catalog listing.
type ListInput struct {
	Search   string    // Case-insensitive substring over name and both categories
	Category string    // Exact cate_level1 match; empty means no filter
	MinScore float64   // Records without a score always pass
	Sort     SortOrder // newest (default) or oldest
}

// ListOutput is the filtered, ordered catalog view.
type ListOutput struct {
	Books       []model.Book
	Total       int // Filtered count
	CatalogSize int // Unfiltered catalog size
}
