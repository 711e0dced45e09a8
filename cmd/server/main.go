package main

import (
	"context" // context package is needed for Redis and Gemini setup

	"mealmate/internal/api"     // Custom package for API handlers
	"mealmate/internal/auth"    // Custom package for authentication
	"mealmate/internal/config"  // Custom package for configuration
	"mealmate/internal/grocery" // Custom package for grocery lists
	"mealmate/internal/ideas"   // Custom package for AI meal ideas
	"mealmate/internal/llm"     // Custom package for the Gemini client
	"mealmate/internal/planner" // Custom package for the weekly plan
	"mealmate/internal/store"   // Custom package for persistence

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
	"gorm.io/driver/mysql"         // MySQL driver for GORM
	"gorm.io/gorm"                 // GORM ORM library
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Connect to the database
	db, err := gorm.Open(mysql.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err)
	}

	// Setup Redis client; list caching is skipped when no address is set
	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr, // Redis server address
			Password: cfg.RedisPass, // Redis password
			DB:       cfg.RedisDB,   // Redis database number
		})
		if _, err := redisClient.Ping(context.Background()).Result(); err != nil {
			logrus.Fatalf("failed to connect to Redis: %v", err)
		}
	}

	// Setup Gemini; idea generation reports unconfigured without a key
	var generator llm.TextGenerator
	if cfg.GeminiAPIKey != "" {
		client, err := llm.NewGeminiClient(context.Background(), cfg.GeminiAPIKey)
		if err != nil {
			logrus.Fatalf("failed to create Gemini client: %v", err)
		}
		defer client.Close()
		generator = client
	} else {
		logrus.Warn("GEMINI_API_KEY not set, AI meal ideas disabled")
	}

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	users := store.NewGormUserStore(db)
	meals := store.NewGormMealStore(db)
	groceries := store.NewGormGroceryStore(db)

	r := api.NewRouter(api.Deps{
		Cfg:     cfg,
		Auth:    auth.NewService(users, cfg.JWTSecret),
		Plan:    planner.NewService(meals),
		Grocery: grocery.NewService(groceries),
		Ideas:   ideas.NewService(generator),
		Redis:   redisClient,
	})

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	logrus.Infof("starting server on port %s", cfg.AppPort)
	if err := r.Run(":" + cfg.AppPort); err != nil {
		logrus.Fatalf("failed to run server: %v", err)
	}
}
