package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/deepam/hostelmess/internal/bootstrap"
	"github.com/deepam/hostelmess/internal/pkg/logger"
)

// @title Hostel Mess Management API
// @version 1.0
// @description Backend service for hostel mess administration: students, menus, feedback and complaints.

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http

func main() {
	// .env is optional; real deployments set env vars directly
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg("No .env file found, using environment as-is")
	}

	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize configuration")
		os.Exit(1)
	}

	database, err := bootstrap.SetupDatabase(cfg, lgr)
	if err != nil {
		os.Exit(1)
	}
	defer database.Close()

	deps := bootstrap.BuildDependencies(cfg, database, lgr)
	router := bootstrap.SetupRouter(cfg, deps, lgr)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		lgr.Info().Str("port", cfg.Server.Port).Msg("Starting HTTP server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			lgr.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	lgr.Info().Msg("Shutdown signal received")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		lgr.Error().Err(err).Msg("Graceful shutdown failed")
		os.Exit(1)
	}
	lgr.Info().Msg("Server stopped")
}
