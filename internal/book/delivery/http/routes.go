package http

import (
	"github.com/gin-gonic/gin"

	"funbook/internal/middleware"
)

// Refresh triggers an upstream feed fetch, so it gets its own limiter.
const (
	refreshRatePerSecond = 1
	refreshRateBurst     = 3
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. Fixed paths
// are registered before the :name parameter so "categories" and "refresh"
// never resolve as book names.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	books := rg.Group("/books")
	{
		books.GET("", h.List)
		books.GET("/categories", h.Categories)
		books.POST("/refresh", mw.RateLimit(refreshRatePerSecond, refreshRateBurst), h.Refresh)
		books.GET("/:name", h.Detail)
		books.GET("/:name/note", h.Note)
	}
}
