package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"hosteldesk/internal/adapters/http/middleware"
	"hosteldesk/internal/adapters/http/routes"
	"hosteldesk/internal/adapters/persistence/models"
	"hosteldesk/internal/adapters/persistence/repositories"
	"hosteldesk/internal/config"
	"hosteldesk/internal/core/services"

	"github.com/gofiber/fiber/v2"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer config.CloseDatabase()

	if err := models.AutoMigrate(db); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	// Bootstrap: make sure exactly one admin account exists
	seeder := config.NewSeeder(repositories.NewUserRepository(db), cfg)
	if err := seeder.Run(context.Background()); err != nil {
		log.Fatalf("failed to seed admin account: %v", err)
	}

	// Scheduled housekeeping (expired refresh tokens, optional log pruning)
	retention := services.NewRetentionService(
		repositories.NewRefreshTokenRepository(db),
		repositories.NewLoginLogRepository(db),
		cfg,
	)
	if err := retention.Start(); err != nil {
		log.Fatalf("failed to start retention service: %v", err)
	}
	defer retention.Stop()

	app := fiber.New(fiber.Config{
		AppName:      "hosteldesk API",
		ErrorHandler: middleware.CustomErrorHandler,
	})

	middleware.Setup(app, cfg)
	routes.Setup(app, db, cfg)

	go gracefulShutdown(app)

	log.Printf("server starting on port %s [mode: %s]", cfg.Port, cfg.AppMode)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}

// gracefulShutdown stops the server when the process is signalled
func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("error during shutdown: %v", err)
	}
}
