package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"shopcart/internal/config"
	"shopcart/internal/database"
	"shopcart/internal/models"
	"shopcart/internal/server"
	"shopcart/internal/services"
	"shopcart/pkg/rabbitmq"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("%v", err)
	}
	log.Println("Server gracefully stopped")
}

func run() error {
	// --- Configuration ---
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// --- Database ---
	db, err := database.Open(cfg.DBDriver, cfg.DatabaseDSN, cfg.DBLogLevel)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer closeDatabase(db)

	// --- Optional RabbitMQ publisher for catalog events ---
	var publisher services.EventPublisher
	if cfg.RabbitMQEnabled {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL})
		if err != nil {
			return fmt.Errorf("failed to initialize RabbitMQ client: %w", err)
		}
		defer func() {
			if err := mqClient.Close(); err != nil {
				log.Printf("Error closing RabbitMQ client: %v", err)
			}
		}()
		publisher = mqClient

		if err := mqClient.ConsumeProductEvents(logProductEvent); err != nil {
			log.Printf("Failed to start RabbitMQ consumer: %v", err)
		}
	} else {
		log.Println("RabbitMQ is disabled. Catalog events will not be published.")
	}

	app := newApp(db, cfg, publisher)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	return serve(app, cfg.AppPort, quit)
}

// serve runs the HTTP server until a signal arrives on quit or the listener fails.
func serve(app *fiber.App, addr string, quit <-chan os.Signal) error {
	log.Printf("Starting server on port %s", addr)
	listenErr := make(chan error, 1)
	go func() {
		listenErr <- app.Listen(addr)
	}()

	select {
	case err := <-listenErr:
		return fmt.Errorf("server failed to start: %w", err)
	case sig := <-quit:
		log.Printf("Received %s, shutting down server...", sig)
	}

	if err := app.Shutdown(); err != nil {
		return fmt.Errorf("error during Fiber shutdown: %w", err)
	}
	return nil
}

func closeDatabase(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting database handle: %v", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database: %v", err)
	}
}

func newApp(db *gorm.DB, cfg config.Config, publisher services.EventPublisher) *fiber.App {
	return server.New(db, server.Options{
		JWTSecret:      cfg.JWTSecret,
		JWTValidity:    cfg.JWTValidity,
		Publisher:      publisher,
		RequestLogging: true,
	})
}

func logProductEvent(event models.ProductEvent) error {
	log.Printf("Received catalog event %s for product %d", event.Type, event.ProductID)
	return nil
}
