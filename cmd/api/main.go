package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/mindease/mindease-api/internal/config"
	"github.com/mindease/mindease-api/internal/handlers"
	"github.com/mindease/mindease-api/internal/services"
	"github.com/mindease/mindease-api/internal/store/mongodb"
	"github.com/mindease/mindease-api/internal/utils"
)

func main() {
	cfg := config.Load()
	if cfg.MongoURI == "" {
		log.Fatal("MONGO_URI is required")
	}
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}
	utils.SetJWTSecret(cfg.JWTSecret)

	// --- Database connection and indexes ---
	db, err := mongodb.Connect(context.Background(), cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = db.Client().Disconnect(ctx)
	}()
	log.Println("Successfully connected to MongoDB!")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatalf("Failed to create indexes: %v", err)
	}
	cancel()

	// --- Stores, services, handlers ---
	h := handlers.NewHandler(
		mongodb.NewUserStore(db),
		mongodb.NewCounsellorStore(db),
		mongodb.NewAppointmentStore(db),
		mongodb.NewMoodStore(db),
		services.NewConsoleNotifier(),
		cfg.GeminiAPIKey,
	)

	// --- Gin router ---
	gin.SetMode(cfg.GinMode)
	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	handlers.RegisterRoutes(r, h)

	log.Printf("Starting server on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
