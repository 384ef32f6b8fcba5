package http

import (
	"net/url"

	"github.com/gin-gonic/gin"

	"funbook/pkg/response"
)

// List godoc
// @Summary     List books
// @Description Returns the filtered, ordered catalog as grid cards.
// @Tags        Books
// @Accept      json
// @Produce     json
// @Param       q         query string  false "Search term (name or categories)"
// @Param       category  query string  false "Exact top-level category"
// @Param       min_score query number  false "Minimum score (scoreless books always pass)"
// @Param       sort      query string  false "newest (default) or oldest"
// @Success     200 {object} listResp
// @Failure     503 {object} response.Resp "Catalog unavailable"
// @Router      /api/v1/books [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// Categories godoc
// @Summary     List filter options
// @Description Returns the distinct sorted categories and scores of the catalog, for the filter bars.
// @Tags        Books
// @Produce     json
// @Success     200 {object} categoriesResp
// @Failure     503 {object} response.Resp "Catalog unavailable"
// @Router      /api/v1/books/categories [GET]
func (h *handler) Categories(c *gin.Context) {
	ctx := c.Request.Context()

	categories, err := h.uc.Categories(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Categories: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	scores, err := h.uc.Scores(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Scores: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, categoriesResp{
		Categories: categories,
		Count:      len(categories),
		Scores:     scores,
	})
}

// Detail godoc
// @Summary     Get book detail
// @Description Resolves a book by its percent-encoded display name.
// @Tags        Books
// @Produce     json
// @Param       name path string true "Percent-encoded book name"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Book not found"
// @Router      /api/v1/books/{name} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	name, err := decodeName(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	b, err := h.uc.Get(ctx, name)
	if err != nil {
		h.l.Warnf(ctx, "uc.Get(%q): %v", name, err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDetailResp(b))
}

// Note godoc
// @Summary     Get rendered note
// @Description Fetches and renders the Markdown note of a book, front matter stripped, with its outline.
// @Tags        Books
// @Produce     json
// @Param       name path string true "Percent-encoded book name"
// @Success     200 {object} noteResp
// @Failure     404 {object} response.Resp "Book not found"
// @Failure     502 {object} response.Resp "Note content fetch failed"
// @Router      /api/v1/books/{name}/note [GET]
func (h *handler) Note(c *gin.Context) {
	ctx := c.Request.Context()

	name, err := decodeName(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	b, err := h.uc.Get(ctx, name)
	if err != nil {
		h.l.Warnf(ctx, "uc.Get(%q): %v", name, err)
		response.Error(c, h.mapError(err))
		return
	}

	n, err := h.noteUC.Load(ctx, b.GithubURL)
	if err != nil {
		h.l.Errorf(ctx, "noteUC.Load(%q): %v", b.GithubURL, err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newNoteResp(b, n))
}

// Refresh godoc
// @Summary     Refresh the catalog
// @Description Re-issues the identical catalog feed fetch. User-initiated retry; nothing is retried automatically.
// @Tags        Books
// @Produce     json
// @Success     200 {object} response.Resp
// @Failure     503 {object} response.Resp "Catalog fetch failed"
// @Router      /api/v1/books/refresh [POST]
func (h *handler) Refresh(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Refresh(ctx); err != nil {
		h.l.Errorf(ctx, "uc.Refresh: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// decodeName percent-decodes the route parameter. Encoding a name and
// decoding it here must reproduce the original exactly so the exact-match
// lookup works.
func decodeName(c *gin.Context) (string, error) {
	return url.PathUnescape(c.Param("name"))
}
