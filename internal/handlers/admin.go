package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/sitewatch/sitewatch-backend/internal/models"
	"github.com/sitewatch/sitewatch-backend/internal/services"
	"github.com/sitewatch/sitewatch-backend/internal/storage"
)

// AdminHandler exposes read-only operational endpoints
type AdminHandler struct {
	store    storage.Store
	sessions *services.SessionManager
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(store storage.Store, sessions *services.SessionManager) *AdminHandler {
	return &AdminHandler{
		store:    store,
		sessions: sessions,
	}
}

// GetSessionStats returns active session statistics
func (h *AdminHandler) GetSessionStats(c *fiber.Ctx) error {
	return c.JSON(h.sessions.Stats())
}

// GetOwnerRequests lists all monitoring requests of one owner, both kinds
func (h *AdminHandler) GetOwnerRequests(c *fiber.Ctx) error {
	ownerID, err := strconv.ParseInt(c.Params("owner"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid owner id",
		})
	}

	updates, err := h.store.GetRequestsByKind(ownerID, models.KindUpdate)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	keywords, err := h.store.GetRequestsByKind(ownerID, models.KindKeyword)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"owner_id":        ownerID,
		"update_monitors": updates,
		"keyword_checks":  keywords,
	})
}
