package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/robfig/cron/v3"

	"tradeledger/configs"
	"tradeledger/internal/database"
	delivery "tradeledger/internal/delivery/http"
	"tradeledger/internal/infra"
	"tradeledger/internal/middleware"
	"tradeledger/internal/repository"
	"tradeledger/internal/service"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	// Load configuration. Fails closed: a missing DATABASE_URL or
	// JWT_SECRET aborts startup before any listener opens.
	cfg, err := configs.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	ctx := context.Background()

	// Initialize database
	db, err := infra.NewDatabase(ctx, cfg.Database.URL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := database.RunMigrations(ctx, db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	holdingRepo := repository.NewHoldingRepository(db)
	positionRepo := repository.NewPositionRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Initialize auth
	jwtManager, err := middleware.NewJWTManager(cfg.Auth.JWTSecret)
	if err != nil {
		log.Fatalf("Failed to initialize token signing: %v", err)
	}
	authService := service.NewAuthService(userRepo, jwtManager, cfg.Auth.BcryptCost)

	// Periodic pool health heartbeat
	cronScheduler := cron.New()
	_, err = cronScheduler.AddFunc("*/5 * * * *", func() {
		pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := db.Ping(pingCtx); err != nil {
			log.Printf("ERROR: Database health check failed: %v", err)
		}
	})
	if err != nil {
		log.Fatalf("Failed to add health check cron job: %v", err)
	}
	cronScheduler.Start()
	defer cronScheduler.Stop()

	// Initialize HTTP router
	e := echo.New()
	e.HideBanner = true

	delivery.SetupRoutes(e, &delivery.RouterConfig{
		AuthHandler:   delivery.NewAuthHandler(authService),
		LedgerHandler: delivery.NewLedgerHandler(holdingRepo, positionRepo, orderRepo),
	})

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Tradeledger API starting on %s", addr)
	log.Printf("Environment: %s", cfg.Server.Env)

	// Run server in goroutine
	go func() {
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("[OK] Server exited gracefully")
}
