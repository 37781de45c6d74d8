// cmd/api/main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/your-org/safari-backend/internal/config"
	"github.com/your-org/safari-backend/internal/domain/booking"
	"github.com/your-org/safari-backend/internal/domain/cart"
	"github.com/your-org/safari-backend/internal/domain/catalog"
	"github.com/your-org/safari-backend/internal/domain/checkout"
	"github.com/your-org/safari-backend/internal/domain/marketing"
	"github.com/your-org/safari-backend/internal/domain/user"
	"github.com/your-org/safari-backend/internal/infrastructure/database/postgres"
	"github.com/your-org/safari-backend/internal/infrastructure/database/redis"
	httpserver "github.com/your-org/safari-backend/internal/interfaces/http"
	"github.com/your-org/safari-backend/internal/interfaces/http/routes"

	goredis "github.com/redis/go-redis/v9"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting %s v%s in %s mode",
		cfg.App.Name, cfg.App.Version, cfg.App.Environment)

	// Redis client backs the cart session store and the rate limiter
	// when enabled; without it both fall back to in-process behavior
	var redisClient *goredis.Client
	if cfg.Redis.Enabled {
		redisConn, err := redis.NewConnection(cfg)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisConn.Close()
		redisClient = redisConn.GetClient()
	}

	// Cart sessions live in Redis when available, otherwise in memory
	var sessionStore cart.SessionStore
	if redisClient != nil {
		sessionStore = cart.NewRedisStore(redisClient, cfg.Session.TTL)
	} else {
		log.Println("Redis disabled, using in-memory cart session store")
		sessionStore = cart.NewMemoryStore(cfg.Session.TTL)
	}

	// Users persist to postgres when available, otherwise in memory
	var userRepo user.Repository
	if cfg.Database.Enabled {
		dbConn, err := postgres.NewConnection(cfg)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer dbConn.Close()

		migration := postgres.NewMigration(dbConn.GetDB())
		if err := migration.RunAutoMigrations(); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}

		userRepo = user.NewGormRepository(dbConn.GetDB())
	} else {
		log.Println("Database disabled, using in-memory user repository")
		userRepo = user.NewMemoryRepository()
	}

	// Initialize domain services
	catalogService := catalog.NewService()
	cartService := cart.NewService(sessionStore, catalogService)
	checkoutService := checkout.NewService(cartService, nil)
	userService := user.NewService(userRepo, cfg)
	bookingService := booking.NewService(cfg)
	marketingService := marketing.NewService(cfg)

	// Seed the demo account for local development
	if cfg.IsDevelopment() {
		if err := userService.SeedDemoUser("John Doe", "john@example.com", "password123"); err != nil {
			log.Printf("Failed to seed demo user: %v", err)
		}
	}

	services := &routes.Services{
		Catalog:   catalogService,
		Carts:     cartService,
		Checkout:  checkoutService,
		Users:     userService,
		Bookings:  bookingService,
		Marketing: marketingService,
	}

	// Initialize HTTP server
	server := httpserver.NewServer(cfg, services, redisClient)

	// Start server in a goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Give outstanding requests a deadline to complete
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Stop(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
