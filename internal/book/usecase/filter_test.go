package usecase_test

import (
	"reflect"
	"testing"

	"funbook/internal/book"
	"funbook/internal/book/usecase"
	"funbook/internal/model"
)

func scoreOf(v float64) *float64 { return &v }

func names(books []model.Book) []string {
	out := make([]string, 0, len(books))
	for _, b := range books {
		out = append(out, b.BookName)
	}
	return out
}

func TestFilter(t *testing.T) {
	catalog := []model.Book{
		{BookName: "Dune", CateLevel1: "Fiction", CateLeaf: "SciFi", Score: scoreOf(9), Mtime: "2023-01-01"},
		{BookName: "SICP", CateLevel1: "Tech", CateLeaf: "CS", Score: scoreOf(10), Mtime: "2024-01-01"},
		{BookName: "Unrated", CateLevel1: "Tech", CateLeaf: "Go"},
	}

	t.Run("result is a subset and idempotent", func(t *testing.T) {
		input := book.ListInput{Search: "tech"}
		once := usecase.Filter(catalog, input)
		twice := usecase.Filter(once, input)

		if len(once) > len(catalog) {
			t.Fatalf("filter grew the catalog: %d > %d", len(once), len(catalog))
		}
		if !reflect.DeepEqual(names(once), names(twice)) {
			t.Errorf("filter is not idempotent: %v vs %v", names(once), names(twice))
		}
	})

	t.Run("search matches name or either category", func(t *testing.T) {
		byName := usecase.Filter(catalog, book.ListInput{Search: "dune"})
		if len(byName) != 1 || byName[0].BookName != "Dune" {
			t.Errorf("search by name failed: %v", names(byName))
		}

		byLeaf := usecase.Filter(catalog, book.ListInput{Search: "scifi"})
		if len(byLeaf) != 1 || byLeaf[0].BookName != "Dune" {
			t.Errorf("search by leaf category failed: %v", names(byLeaf))
		}

		byLevel1 := usecase.Filter(catalog, book.ListInput{Search: "TECH"})
		if len(byLevel1) != 2 {
			t.Errorf("case-insensitive search by category failed: %v", names(byLevel1))
		}
	})

	t.Run("category is an exact match", func(t *testing.T) {
		out := usecase.Filter(catalog, book.ListInput{Category: "Tech"})
		if len(out) != 2 {
			t.Errorf("expected 2 Tech books, got %v", names(out))
		}

		none := usecase.Filter(catalog, book.ListInput{Category: "tech"})
		if len(none) != 0 {
			t.Errorf("category match must be exact, got %v", names(none))
		}
	})

	t.Run("score threshold is inclusive", func(t *testing.T) {
		at := usecase.Filter(catalog, book.ListInput{MinScore: 9})
		if len(at) != 3 {
			t.Errorf("minScore == score must include the record, got %v", names(at))
		}

		above := usecase.Filter(catalog, book.ListInput{MinScore: 10})
		for _, b := range above {
			if b.BookName == "Dune" {
				t.Errorf("minScore above the record's score must exclude it")
			}
		}
	})

	t.Run("records without a score always pass", func(t *testing.T) {
		out := usecase.Filter(catalog, book.ListInput{MinScore: 100})
		if len(out) != 1 || out[0].BookName != "Unrated" {
			t.Errorf("scoreless record must pass any threshold, got %v", names(out))
		}
	})

	t.Run("does not mutate the input", func(t *testing.T) {
		before := names(catalog)
		usecase.Filter(catalog, book.ListInput{Sort: book.SortOldest})
		if !reflect.DeepEqual(before, names(catalog)) {
			t.Errorf("input slice was reordered: %v", names(catalog))
		}
	})
}

func TestFilterSorting(t *testing.T) {
	catalog := []model.Book{
		{BookName: "old", Mtime: "2023-01-01"},
		{BookName: "new", Mtime: "2024-01-01"},
		{BookName: "undated"},
	}

	t.Run("newest", func(t *testing.T) {
		out := usecase.Filter(catalog, book.ListInput{Sort: book.SortNewest})
		want := []string{"new", "old", "undated"}
		if !reflect.DeepEqual(names(out), want) {
			t.Errorf("expected %v, got %v", want, names(out))
		}
	})

	t.Run("oldest", func(t *testing.T) {
		out := usecase.Filter(catalog, book.ListInput{Sort: book.SortOldest})
		want := []string{"old", "new", "undated"}
		if !reflect.DeepEqual(names(out), want) {
			t.Errorf("expected %v, got %v", want, names(out))
		}
	})

	t.Run("two undated records keep input order", func(t *testing.T) {
		withTwo := append([]model.Book{{BookName: "undated-first"}}, catalog...)
		out := usecase.Filter(withTwo, book.ListInput{Sort: book.SortNewest})
		want := []string{"new", "old", "undated-first", "undated"}
		if !reflect.DeepEqual(names(out), want) {
			t.Errorf("expected %v, got %v", want, names(out))
		}
	})
}
