package http

import (
	"net/url"

	"funbook/internal/book"
	"funbook/internal/model"
	"funbook/internal/note"
	"funbook/pkg/markdown"
	"funbook/pkg/response"
)

// --- Request DTOs ---

type listReq struct {
	Search   string  `form:"q"`
	Category string  `form:"category"`
	MinScore float64 `form:"min_score"`
	Sort     string  `form:"sort"`
}

func (r listReq) validate() error {
	if r.Sort != "" && r.Sort != string(book.SortNewest) && r.Sort != string(book.SortOldest) {
		return errInvalidSort
	}
	if r.MinScore < 0 {
		return errInvalidMinScore
	}
	return nil
}

func (r listReq) toInput() book.ListInput {
	sort := book.SortOrder(r.Sort)
	if sort == "" {
		sort = book.SortNewest
	}
	return book.ListInput{
		Search:   r.Search,
		Category: r.Category,
		MinScore: r.MinScore,
		Sort:     sort,
	}
}

// --- Response DTOs ---

// bookItem is one grid card. RouteKey is the percent-encoded display name
// used to navigate to the detail view.
type bookItem struct {
	BookName   string   `json:"bookName"`
	RouteKey   string   `json:"routeKey"`
	BookCover  string   `json:"bookCover"`
	CateLevel1 string   `json:"cate_level1"`
	CateLeaf   string   `json:"cate_leaf"`
	DoubanURL  string   `json:"doubanUrl,omitempty"`
	Score      *float64 `json:"score,omitempty"`
	Mtime      string   `json:"mtime,omitempty"`
	// ModifiedAt is the parsed mtime as a day-resolution date; absent when
	// the record carries no usable timestamp.
	ModifiedAt *response.Date `json:"modifiedAt,omitempty"`
	Tags       []string       `json:"tags,omitempty"`
}

type listResp struct {
	Books []bookItem `json:"books"`
	Total int        `json:"total"`
	// Empty distinguishes "no results for this filter" from a catalog that
	// is still loading; the grid renders its placeholder from this flag.
	Empty       bool `json:"empty"`
	CatalogSize int  `json:"catalogSize"`
}

// categoriesResp carries both filter-bar option lists; the score buttons are
// derived from the same catalog snapshot as the category tabs.
type categoriesResp struct {
	Categories []string  `json:"categories"`
	Count      int       `json:"count"`
	Scores     []float64 `json:"scores"`
}

type detailResp struct {
	Book    bookItem `json:"book"`
	HasNote bool     `json:"hasNote"`
}

type noteResp struct {
	Book    bookItem           `json:"book"`
	HTML    string             `json:"html"`
	Outline []markdown.Heading `json:"outline"`
	Meta    map[string]any     `json:"meta,omitempty"`
}

func newBookItem(b model.Book) bookItem {
	item := bookItem{
		BookName:   b.BookName,
		RouteKey:   url.PathEscape(b.BookName),
		BookCover:  b.BookCover,
		CateLevel1: b.CateLevel1,
		CateLeaf:   b.CateLeaf,
		DoubanURL:  b.DoubanURL,
		Score:      b.Score,
		Mtime:      b.Mtime,
		Tags:       b.Tags,
	}
	if t, ok := b.ModifiedAt(); ok {
		d := response.Date(t)
		item.ModifiedAt = &d
	}
	return item
}

func (h *handler) newListResp(out book.ListOutput) listResp {
	items := make([]bookItem, 0, len(out.Books))
	for _, b := range out.Books {
		items = append(items, newBookItem(b))
	}
	return listResp{
		Books:       items,
		Total:       out.Total,
		Empty:       out.Total == 0,
		CatalogSize: out.CatalogSize,
	}
}

func (h *handler) newDetailResp(b model.Book) detailResp {
	return detailResp{
		Book:    newBookItem(b),
		HasNote: b.GithubURL != "",
	}
}

func (h *handler) newNoteResp(b model.Book, n note.Note) noteResp {
	return noteResp{
		Book:    newBookItem(b),
		HTML:    n.HTML,
		Outline: n.Outline,
		Meta:    n.Meta,
	}
}
