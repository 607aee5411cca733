package routes

import (
	"hosteldesk/internal/adapters/http/handlers"
	"hosteldesk/internal/adapters/http/middleware"
	"hosteldesk/internal/adapters/persistence/repositories"
	"hosteldesk/internal/config"
	"hosteldesk/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Repositories
	userRepo := repositories.NewUserRepository(db)
	tokenRepo := repositories.NewRefreshTokenRepository(db)
	logRepo := repositories.NewLoginLogRepository(db)
	complaintRepo := repositories.NewComplaintRepository(db)

	// Services
	authService := services.NewAuthService(userRepo, tokenRepo, logRepo, cfg)
	userService := services.NewUserService(userRepo, tokenRepo)
	complaintService := services.NewComplaintService(complaintRepo)
	auditService := services.NewAuditService(logRepo)

	// Handlers
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(authService, cfg)
	userHandler := handlers.NewUserHandler(userService)
	complaintHandler := handlers.NewComplaintHandler(complaintService)
	auditHandler := handlers.NewAuditHandler(auditService)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// API v1 group
	api := app.Group("/api/v1")
	api.Get("/", healthHandler.APIInfo)

	// Auth routes (public, rate limited)
	auth := api.Group("/auth")
	auth.Post("/register", middleware.AuthRateLimiter(), authHandler.Register)
	auth.Post("/login", middleware.AuthRateLimiter(), authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)
	auth.Post("/logout", authHandler.Logout)
	auth.Get("/me", middleware.AuthMiddleware(cfg), authHandler.Me)

	// Complaint routes (authenticated users)
	complaints := api.Group("/complaints", middleware.AuthMiddleware(cfg))
	complaints.Get("/", complaintHandler.ListMine)
	complaints.Post("/", complaintHandler.Submit)

	// Admin routes
	admin := api.Group("/admin", middleware.AuthMiddleware(cfg), middleware.AdminOnly())
	admin.Get("/complaints", complaintHandler.ListAll)
	admin.Put("/complaints/:id/status", complaintHandler.UpdateStatus)
	admin.Delete("/complaints/:id", complaintHandler.Delete)
	admin.Get("/users", userHandler.ListUsers)
	admin.Get("/users/:id", userHandler.GetUser)
	admin.Delete("/users/:id", userHandler.DeleteUser)
	admin.Get("/logs", auditHandler.ListLogs)
	admin.Delete("/logs/:id", auditHandler.DeleteLog)
	admin.Get("/reports", complaintHandler.Reports)
}
