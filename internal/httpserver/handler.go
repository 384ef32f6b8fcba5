package httpserver

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	bookHTTP "funbook/internal/book/delivery/http"
	"funbook/internal/middleware"
	"funbook/internal/model"
	"funbook/pkg/response"
)

func (srv HTTPServer) mapHandlers() error {
	mw := middleware.New(srv.l)

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(mw); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		srv.l.Errorf(c.Request.Context(), "Panic recovered: %v", recovered)
		response.InternalError(c, fmt.Errorf("panic: %v", recovered))
	}))
	srv.gin.Use(mw.RequestLog())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "Serving mode: production")
	} else {
		srv.l.Infof(ctx, "Serving mode: %s", srv.environment)
	}

	if srv.cache != nil {
		srv.gin.Use(srv.cache.Middleware())
		srv.l.Infof(ctx, "Cache middleware mounted, state: %s", srv.cache.State())
	} else {
		srv.l.Infof(ctx, "Cache not configured, serving everything live")
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.NoRoute(func(c *gin.Context) {
		response.NotFound(c, "route not found")
	})

	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes.
func (srv HTTPServer) registerDomainRoutes(mw middleware.Middleware) error {
	ctx := context.Background()

	api := srv.gin.Group("/api/v1")

	// Catalog domain: registers /api/v1/books
	bookHTTP.RegisterRoutes(api, srv.bookHandler, mw)
	srv.l.Infof(ctx, "Catalog routes registered under /api/v1/books")

	return nil
}
