package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-internship-gateway/config"
	v1 "go-internship-gateway/internal/delivery/http/v1"
	"go-internship-gateway/internal/upstream"
	"go-internship-gateway/internal/usecase"
	"go-internship-gateway/pkg/logger"
	"go-internship-gateway/pkg/redis"
	"go-internship-gateway/pkg/validation"
)

// @title           Internship Application Gateway
// @version         1.0
// @description     Serves the internship application form, validates and forwards applications to the application backend, and renders confirmation data.
// @host            localhost:8080
// @BasePath        /v1
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting internship gateway", "port", cfg.Port, "backend", cfg.BackendURL)

	// 3. Setup Redis (rate limit counters; optional)
	if err := redis.Initialize(redis.Config{
		URL:      cfg.UpstashRedisURL,
		Password: cfg.UpstashRedisPassword,
	}); err != nil {
		logger.Log.Warn("Redis unavailable, rate limiting falls back to memory", "error", err)
	}

	// 4. Setup Upstream Backend Client
	backend := upstream.New(cfg.BackendURL, time.Duration(cfg.UpstreamTimeoutSeconds)*time.Second)

	// 5. Setup UseCases
	validate := validation.New()
	applicationUC := usecase.NewApplicationUsecase(backend, validate)
	programUC := usecase.NewProgramUsecase(backend)

	// 6. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ApplicationUC: applicationUC,
		ProgramUC:     programUC,
		Config:        cfg,
	})

	// 7. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
