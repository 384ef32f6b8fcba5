package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"funbook/config"
	_ "funbook/docs" // Swagger docs
	bookHTTP "funbook/internal/book/delivery/http"
	feedRepo "funbook/internal/book/repository/feed"
	bookUC "funbook/internal/book/usecase"
	"funbook/internal/cache"
	"funbook/internal/httpserver"
	"funbook/internal/model"
	githubRepo "funbook/internal/note/repository/github"
	noteUC "funbook/internal/note/usecase"
	"funbook/pkg/log"
	"funbook/pkg/markdown"
)

// @title       FunBook API
// @description Book-notes catalog browser: remote catalog feed, filters, rendered Markdown notes.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	environment := model.ParseEnvironment(cfg.Environment.Name)

	logger.Info(ctx, "Starting FunBook...")
	logger.Infof(ctx, "Environment: %s", environment)
	logger.Infof(ctx, "Catalog feed: %s", cfg.Catalog.FeedURL)

	// 3. Catalog domain
	feedClient := feedRepo.NewClient(feedRepo.Config{
		FeedURL:        cfg.Catalog.FeedURL,
		RequestTimeout: cfg.Catalog.RequestTimeout,
		RatePerSecond:  cfg.Catalog.RatePerSecond,
		RateBurst:      cfg.Catalog.RateBurst,
	})
	catalogUC := bookUC.New(logger, feedClient)

	// Initial load. A failure is not fatal: the catalog stays unavailable
	// and clients retry through POST /api/v1/books/refresh.
	if err := catalogUC.Refresh(ctx); err != nil {
		logger.Warnf(ctx, "Initial catalog load failed: %v", err)
	} else {
		logger.Info(ctx, "Catalog loaded")
	}

	// 4. Note domain
	githubClient := githubRepo.NewClient(githubRepo.Config{
		RawHost:        cfg.Notes.RawHost,
		RequestTimeout: cfg.Notes.RequestTimeout,
		RatePerSecond:  cfg.Notes.RatePerSecond,
		RateBurst:      cfg.Notes.RateBurst,
	})
	notesUC := noteUC.New(logger, githubClient, markdown.NewRenderer())

	// 5. Response cache
	cacheCtl := cache.New(logger, cache.Config{
		Generation:  cfg.Cache.Generation,
		Precache:    cfg.Cache.Precache,
		Passthrough: cfg.Cache.Passthrough,
		OriginURL:   cfg.Cache.OriginURL,
		Capacity:    cfg.Cache.Capacity,
		TTL:         cfg.Cache.TTL,
	})
	if err := cacheCtl.Install(ctx); err != nil {
		logger.Warnf(ctx, "Cache install failed: %v", err)
	}
	if err := cacheCtl.Activate(ctx); err != nil {
		logger.Warnf(ctx, "Cache activation failed: %v", err)
	}

	// 6. HTTP Server
	bookHandler := bookHTTP.New(logger, catalogUC, notesUC)

	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: string(environment),
		BookHandler: bookHandler,
		Cache:       cacheCtl,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
