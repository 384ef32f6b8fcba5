package http

import (
	"github.com/gin-gonic/gin"

	"funbook/internal/book"
	"funbook/internal/note"
	"funbook/pkg/log"
)

// Handler is the public interface for the catalog HTTP delivery layer.
type Handler interface {
	List(c *gin.Context)
	Categories(c *gin.Context)
	Detail(c *gin.Context)
	Note(c *gin.Context)
	Refresh(c *gin.Context)
}

type handler struct {
	l      log.Logger
	uc     book.UseCase
	noteUC note.UseCase
}

// New creates a new HTTP handler for the catalog domain.
func New(l log.Logger, uc book.UseCase, noteUC note.UseCase) *handler {
	return &handler{
		l:      l,
		uc:     uc,
		noteUC: noteUC,
	}
}
