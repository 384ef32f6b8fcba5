package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	bookHTTP "funbook/internal/book/delivery/http"
	"funbook/internal/cache"
	"funbook/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Catalog domain
	bookHandler bookHTTP.Handler

	// Response cache
	cache *cache.Controller
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	// Catalog domain
	BookHandler bookHTTP.Handler

	// Response cache
	Cache *cache.Controller
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		bookHandler: cfg.BookHandler,
		cache:       cfg.Cache,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.bookHandler == nil {
		return errors.New("book handler is required")
	}
	return nil
}
