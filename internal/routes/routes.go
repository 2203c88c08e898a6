package routes

import (
	"os"

	"github.com/gofiber/fiber/v2"

	"github.com/sitewatch/sitewatch-backend/internal/handlers"
	"github.com/sitewatch/sitewatch-backend/internal/middleware"
	"github.com/sitewatch/sitewatch-backend/internal/services"
	"github.com/sitewatch/sitewatch-backend/internal/storage"
)

// SetupRoutes configures all API routes
func SetupRoutes(app *fiber.App, store storage.Store, sessions *services.SessionManager, bot *services.BotService, telegram *services.TelegramService) {
	telegramHandler := handlers.NewTelegramHandler(bot, telegram)
	healthHandler := handlers.NewHealthHandler(store, sessions, "1.0.0")
	adminHandler := handlers.NewAdminHandler(store, sessions)

	// Root endpoint
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Welcome to SiteWatch Bot Backend!",
			"version": "1.0.0",
			"endpoints": fiber.Map{
				"health":        "/health",
				"webhook":       "/webhook/telegram",
				"test_telegram": "/test/telegram",
				"admin":         "/admin",
			},
		})
	})

	app.Get("/health", healthHandler.Check)

	// ========== WEBHOOK ROUTES ==========
	webhooks := app.Group("/webhook")

	if os.Getenv("ENVIRONMENT") == "development" || os.Getenv("DISABLE_WEBHOOK_VALIDATION") == "true" {
		// Development: skip validation for tunneled local testing
		webhooks.Post("/telegram", telegramHandler.HandleWebhook)
		if os.Getenv("ENVIRONMENT") == "development" {
			println("⚠️  Telegram webhook validation DISABLED for development")
		}
	} else {
		webhooks.Post("/telegram", middleware.ValidateTelegramSecret(), telegramHandler.HandleWebhook)
	}

	// ========== TEST ROUTES (Development Only) ==========
	app.Post("/test/telegram", telegramHandler.HandleTestWebhook)

	// ========== ADMIN ROUTES ==========
	admin := app.Group("/admin")
	admin.Get("/sessions", adminHandler.GetSessionStats)
	admin.Get("/requests/:owner", adminHandler.GetOwnerRequests)
}
