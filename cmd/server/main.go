package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/UCCS-SP25-CS4300-CS5300-1/Group-6-spring-2025/internal/ai"
	"github.com/UCCS-SP25-CS4300-CS5300-1/Group-6-spring-2025/internal/api"
	"github.com/UCCS-SP25-CS4300-CS5300-1/Group-6-spring-2025/internal/config"
	"github.com/UCCS-SP25-CS4300-CS5300-1/Group-6-spring-2025/internal/exercisedb"
	"github.com/UCCS-SP25-CS4300-CS5300-1/Group-6-spring-2025/internal/repository/mongo"
	"github.com/UCCS-SP25-CS4300-CS5300-1/Group-6-spring-2025/internal/service"
	"github.com/UCCS-SP25-CS4300-CS5300-1/Group-6-spring-2025/internal/storage"
	"github.com/UCCS-SP25-CS4300-CS5300-1/Group-6-spring-2025/internal/warmup"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// @title Fitness Tracker API
// @version 1.0
// @description API for recurring workout plans, calendar expansion and completion tracking.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	log.Info("Starting Fitness Tracker Server...")

	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}
	log.Info("Configuration loaded.")

	// --- Database Connection ---
	dbClient, err := mongo.ConnectDB(cfg.Database.URI)
	if err != nil {
		log.Fatalf("FATAL: Could not connect to MongoDB: %v", err)
	}
	defer func() {
		log.Info("Disconnecting MongoDB...")
		if err := mongo.DisconnectDB(dbClient); err != nil {
			log.Errorf("Failed to disconnect MongoDB: %v", err)
		}
	}()
	appDB := dbClient.Database(cfg.Database.Name)
	log.Info("Database connection established.")

	// --- Ensure Indexes ---
	go func() { // Run index creation concurrently/in background
		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
		defer cancel()
		mongo.EnsureUserIndexes(ctx, appDB.Collection("users"))
		mongo.EnsureExerciseIndexes(ctx, appDB.Collection("exercises"))
		mongo.EnsurePlanIndexes(ctx, appDB.Collection("plans"))
		mongo.EnsureCompletionIndexes(ctx, appDB.Collection("completions"))
		log.Info("Index creation process completed.")
	}()

	// --- Initialize Storage ---
	fileStorage, err := storage.NewS3Storage(cfg.S3)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize S3 storage: %v", err)
	}

	// --- Initialize Repositories ---
	userRepo := mongo.NewMongoUserRepository(appDB)
	exerciseRepo := mongo.NewMongoExerciseRepository(appDB)
	planRepo := mongo.NewMongoPlanRepository(appDB)
	completionRepo := mongo.NewMongoCompletionRepository(appDB)

	// --- Initialize External Clients ---
	warmUpClient := warmup.NewClient(cfg.WarmUps.URL, cfg.WarmUps.APIKey, cfg.WarmUps.Timeout)
	exerciseLookup := exercisedb.NewClient(cfg.ExerciseDB.Host, cfg.ExerciseDB.APIKey, cfg.ExerciseDB.Timeout)
	generator := ai.NewOpenAIGenerator(cfg.OpenAI.APIKey, cfg.OpenAI.Model)

	// --- Initialize Services ---
	authService := service.NewAuthService(userRepo, cfg.JWT.Secret, cfg.JWT.Expiration)
	exerciseService := service.NewExerciseService(exerciseRepo, exerciseLookup, fileStorage)
	planService := service.NewPlanService(planRepo, exerciseRepo, completionRepo)
	calendarService := service.NewCalendarService(planRepo, completionRepo, exerciseRepo, warmUpClient)
	workoutService := service.NewWorkoutService(userRepo, exerciseRepo, planRepo, generator)

	// --- Initialize Gin Engine ---
	// gin.SetMode(gin.ReleaseMode) // Uncomment for production
	router := gin.Default() // Includes Logger and Recovery middleware

	// --- Setup Routes ---
	api.SetupRoutes(router, cfg.JWT.Secret, authService, planService, calendarService, workoutService, exerciseService)

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	log.Infof("Server starting on %s", cfg.Server.Address)

	// --- Graceful Shutdown ---
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("FATAL: ListenAndServe Error: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatalf("FATAL: Server forced to shutdown: %v", err)
	}

	log.Info("Server exiting.")
}
