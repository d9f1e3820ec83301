package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"alcyxob/scalar-app/internal/api"
	"alcyxob/scalar-app/internal/catalog"
	"alcyxob/scalar-app/internal/config"
	"alcyxob/scalar-app/internal/repository/mongo"
	"alcyxob/scalar-app/internal/service"
	"alcyxob/scalar-app/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	logrus.Info("Starting Scalar App Server...")

	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		logrus.Fatalf("Could not load config: %v", err)
	}
	logrus.Info("Configuration loaded.")

	// --- Catalog ---
	// The catalog and benchmark table are static; validate the data
	// integrity invariants once and refuse to boot on failure.
	cat := catalog.Default()
	if err := cat.Validate(); err != nil {
		logrus.Fatalf("Catalog validation failed: %v", err)
	}
	logrus.Infof("Catalog loaded: %d events, %d cohorts.", len(cat.Events()), len(cat.Cohorts()))

	// --- Database Connection ---
	dbClient, err := mongo.ConnectDB(cfg.Database.URI)
	if err != nil {
		logrus.Fatalf("Could not connect to MongoDB: %v", err)
	}
	defer func() {
		logrus.Info("Disconnecting MongoDB...")
		if err := mongo.DisconnectDB(dbClient); err != nil {
			logrus.Errorf("Failed to disconnect MongoDB: %v", err)
		}
	}()
	appDB := dbClient.Database(cfg.Database.Name)
	logrus.Info("Database connection established.")

	// --- Ensure Indexes ---
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
		defer cancel()
		mongo.EnsureUserIndexes(ctx, appDB.Collection("users"))
		mongo.EnsureSubmissionIndexes(ctx, appDB.Collection("submissions"))
		logrus.Info("Index creation process completed.")
	}()

	// --- Initialize Storage ---
	avatarStorage, err := storage.NewS3Storage(cfg.S3)
	if err != nil {
		logrus.Fatalf("Failed to initialize S3 storage: %v", err)
	}

	// --- Initialize Repositories ---
	userRepo := mongo.NewMongoUserRepository(appDB)
	submissionRepo := mongo.NewMongoSubmissionRepository(appDB, cat)

	// --- Initialize Services ---
	authService := service.NewAuthService(userRepo, cfg.JWT.Secret, cfg.JWT.Expiration)
	submissionService := service.NewSubmissionService(submissionRepo, userRepo, cat)
	scoringService := service.NewScoringService(submissionRepo, userRepo, cat)
	profileService := service.NewProfileService(userRepo, cat, avatarStorage)

	// --- Initialize Gin Engine ---
	router := gin.Default() // Includes Logger and Recovery middleware

	// --- Setup Routes ---
	api.SetupRoutes(router, cfg.JWT.Secret, cat, authService, submissionService, scoringService, profileService)

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	logrus.Infof("Server starting on %s", cfg.Server.Address)

	// --- Graceful Shutdown ---
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatalf("ListenAndServe error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("Shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		logrus.Fatalf("Server forced to shutdown: %v", err)
	}

	logrus.Info("Server exiting.")
}
