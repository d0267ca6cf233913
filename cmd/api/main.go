package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/harivola/medbot-api/internal/config"
	"github.com/harivola/medbot-api/internal/handlers"
	"github.com/harivola/medbot-api/internal/middleware"
	"github.com/harivola/medbot-api/internal/repository"
	"github.com/harivola/medbot-api/internal/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables.")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// --- Database Connection ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		// The bootstrap context is long expired by the time the server
		// stops; disconnect on a fresh one.
		dctx, dcancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer dcancel()
		if err := client.Disconnect(dctx); err != nil {
			log.Printf("Failed to disconnect from MongoDB: %v", err)
		}
	}()
	db := client.Database(cfg.MongoDatabase)
	log.Println("Successfully connected to MongoDB!")

	if err := repository.EnsureIndexes(ctx, db); err != nil {
		log.Fatalf("Failed to create user indexes: %v", err)
	}

	// --- Wiring ---
	tokens := utils.NewJWTManager(cfg.JWTSecret)
	h := handlers.NewHandler(
		repository.NewMongoUserRepository(db),
		repository.NewMongoCapsuleRepository(db),
		repository.NewMongoPatientRepository(db),
		tokens,
	)

	r := handlers.NewRouter(h, middleware.AuthMiddleware(tokens))

	log.Printf("Starting server on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
