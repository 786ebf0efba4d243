package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"workout-tracker/internal/api"
	"workout-tracker/internal/config"
	"workout-tracker/internal/repository/mongo"
	"workout-tracker/internal/service"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func main() {
	log.Println("Starting Workout Tracker Server...")

	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}
	if level, err := log.ParseLevel(cfg.Log.Level); err == nil {
		log.SetLevel(level)
	}
	log.Println("Configuration loaded.")

	// --- Database Connection ---
	dbClient, err := mongo.ConnectDB(cfg.Database.URI)
	if err != nil {
		log.Fatalf("FATAL: Could not connect to MongoDB: %v", err)
	}
	defer func() {
		log.Println("Disconnecting MongoDB...")
		if err := mongo.DisconnectDB(dbClient); err != nil {
			log.Errorf("Failed to disconnect MongoDB: %v", err)
		}
	}()
	appDB := dbClient.Database(cfg.Database.Name)
	log.Println("Database connection established.")

	// --- Ensure Indexes ---
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
		defer cancel()
		mongo.EnsureExerciseIndexes(ctx, appDB.Collection("exercises"))
		mongo.EnsureProgressIndexes(ctx, appDB.Collection("user_workout_progress"))
		log.Println("Index creation process completed.")
	}()

	// --- Initialize Repositories ---
	userRepo := mongo.NewMongoUserRepository(appDB)
	exerciseRepo := mongo.NewMongoExerciseRepository(appDB)
	setRepo := mongo.NewMongoSetRepository(appDB)
	workoutRepo := mongo.NewMongoWorkoutRepository(appDB)
	progressRepo := mongo.NewMongoProgressRepository(appDB)

	// --- Initialize Services ---
	planReader := service.NewPlanReader(workoutRepo, setRepo, exerciseRepo)
	userService := service.NewUserService(userRepo, workoutRepo)
	exerciseService := service.NewExerciseService(exerciseRepo)
	setService := service.NewSetService(setRepo)
	workoutService := service.NewWorkoutService(workoutRepo)
	progressService := service.NewProgressService(userRepo, progressRepo, planReader)

	// --- Initialize Gin Engine ---
	router := gin.New()
	router.Use(api.RequestLogger(), gin.Recovery())

	// --- Setup Routes ---
	api.SetupRoutes(router, userService, exerciseService, setService, workoutService, progressService)

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	log.Printf("Server starting on %s", cfg.Server.Address)

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("FATAL: ListenAndServe Error: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatalf("FATAL: Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting.")
}
