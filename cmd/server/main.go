package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/thassiov/challenge/internal/application/service"
	"github.com/thassiov/challenge/internal/config"
	"github.com/thassiov/challenge/internal/github"
	infraGitHub "github.com/thassiov/challenge/internal/infrastructure/github"
	"github.com/thassiov/challenge/internal/logger"
	"github.com/thassiov/challenge/internal/presentation/handlers"
	"github.com/thassiov/challenge/internal/presentation/router"
)

// @title GitHub Repositories API
// @version 1.0
// @description Lists a GitHub user's repositories together with their branches

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zlog, err := logger.New(cfg.Logging.Level, cfg.IsDevelopment())
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	// Initialize infrastructure layer
	githubClient := github.NewClient(
		github.WithBaseURL(cfg.GitHub.BaseURL),
		github.WithAPIVersion(cfg.GitHub.APIVersion),
		github.WithPageSize(cfg.GitHub.PageSize),
		github.WithTimeout(cfg.GetGitHubTimeout()),
		github.WithIncludeLastPage(cfg.GitHub.IncludeLastPage),
		github.WithMaxPages(cfg.GitHub.MaxPages),
		github.WithLogger(zlog.Named("github")),
	)
	githubService := infraGitHub.NewGitHubService(githubClient)

	// Initialize application layer
	repositoryService := service.NewRepositoryService(githubService, zlog.Named("service"), cfg.GitHub.MaxConcurrency)

	// Initialize presentation layer
	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := router.New(router.Handlers{
		Health:     handlers.NewHealthHandler(),
		Repository: handlers.NewRepositoryHandler(repositoryService, zlog.Named("handler")),
	}, zlog.Named("http"), cfg.IsDevelopment())

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      engine,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		zlog.Info("Server starting", zap.String("address", cfg.GetServerAddress()), zap.String("env", cfg.Env))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zlog.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zlog.Info("Shutting down server...")

	// Give outstanding requests 30 seconds to complete
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		zlog.Fatal("Server forced to shutdown", zap.Error(err))
	}

	zlog.Info("Server exited")
}
