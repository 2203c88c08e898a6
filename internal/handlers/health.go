package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sitewatch/sitewatch-backend/internal/services"
	"github.com/sitewatch/sitewatch-backend/internal/storage"
)

// HealthHandler handles health check requests
type HealthHandler struct {
	store    storage.Store
	sessions *services.SessionManager
	Version  string
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(store storage.Store, sessions *services.SessionManager, version string) *HealthHandler {
	return &HealthHandler{
		store:    store,
		sessions: sessions,
		Version:  version,
	}
}

// Check returns the health status of the service
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	status := "healthy"
	statusCode := fiber.StatusOK

	requestCount, err := h.store.CountRequests()
	if err != nil {
		status = "unhealthy"
		statusCode = fiber.StatusServiceUnavailable
	}

	return c.Status(statusCode).JSON(fiber.Map{
		"status":  status,
		"service": "SiteWatch Bot Backend",
		"version": h.Version,
		"requests": fiber.Map{
			"total": requestCount,
		},
		"sessions": h.sessions.Stats(),
	})
}
