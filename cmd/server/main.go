package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vibetracker-backend/internal/api/routes"
	"vibetracker-backend/internal/config"
	"vibetracker-backend/internal/database"
	"vibetracker-backend/internal/logger"
	"vibetracker-backend/internal/tracing"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	_ "vibetracker-backend/docs" // This is needed for swag
)

//	@title			VibeTracker Backend API
//	@version		1.0
//	@description	Backend API for VibeTracker: event sessions, teams, judging rubric, scores with a ranked leaderboard, and announcements.

//	@host		localhost:3000
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	SessionKey
//	@in							header
//	@name						X-Session-Key
//	@description				Session key; browsers send the vt_session cookie instead.

const shutdownTimeout = 10 * time.Second

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal("Failed to load configuration: ", err)
	}

	logger.Configure(cfg.LogLevel, true)

	shutdownTracing, err := tracing.Setup(cfg, os.Stdout)
	if err != nil {
		logrus.Fatal("Failed to initialize tracing: ", err)
	}

	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		logrus.Fatal("Failed to initialize database: ", err)
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := routes.SetupRoutes(db, cfg)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logrus.Infof("Starting server on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatal("Failed to start server: ", err)
		}
	}()

	<-ctx.Done()
	logrus.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Server forced to shut down")
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Failed to flush traces")
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
