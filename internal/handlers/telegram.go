package handlers

import (
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/gofiber/fiber/v2"

	"github.com/sitewatch/sitewatch-backend/internal/services"
)

// TelegramHandler handles Telegram webhook requests
type TelegramHandler struct {
	bot      *services.BotService
	telegram *services.TelegramService // nil-tolerant, only used to ack callbacks
}

// NewTelegramHandler creates a new Telegram webhook handler
func NewTelegramHandler(bot *services.BotService, telegram *services.TelegramService) *TelegramHandler {
	return &TelegramHandler{
		bot:      bot,
		telegram: telegram,
	}
}

// HandleWebhook processes incoming Telegram updates. Both plain messages
// and inline-button callbacks funnel into the bot service as (chat, text)
// pairs; anything without either is acknowledged and dropped.
func (h *TelegramHandler) HandleWebhook(c *fiber.Ctx) error {
	var update tgbotapi.Update

	if err := c.BodyParser(&update); err != nil {
		log.Printf("Error parsing Telegram update: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid update payload",
		})
	}

	chatID, text := extractMessage(&update)

	if update.CallbackQuery != nil && h.telegram != nil {
		h.telegram.AnswerCallback(update.CallbackQuery.ID)
	}

	if chatID != 0 && text != "" {
		if err := h.bot.ProcessMessage(chatID, text); err != nil {
			log.Printf("Error processing message: %v", err)
		}
	}

	// Telegram retries non-200 responses, so always acknowledge
	return c.SendStatus(fiber.StatusOK)
}

// extractMessage pulls the (chat, text) pair out of an update. Button
// callbacks carry their command string in the callback data.
func extractMessage(update *tgbotapi.Update) (int64, string) {
	if update.CallbackQuery != nil && update.CallbackQuery.Message != nil {
		return update.CallbackQuery.Message.Chat.ID, update.CallbackQuery.Data
	}
	if update.Message != nil && update.Message.Chat != nil {
		return update.Message.Chat.ID, update.Message.Text
	}
	return 0, ""
}

// TestWebhookPayload is a simplified payload for development testing
// without Telegram
type TestWebhookPayload struct {
	ChatID  int64  `json:"chat_id"`
	Message string `json:"message"`
}

// HandleTestWebhook processes test messages (for development)
func (h *TelegramHandler) HandleTestWebhook(c *fiber.Ctx) error {
	var payload TestWebhookPayload

	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid test payload",
		})
	}

	log.Printf("🧪 Test webhook received from %d: %s", payload.ChatID, payload.Message)

	if err := h.bot.ProcessMessage(payload.ChatID, payload.Message); err != nil {
		log.Printf("Error processing test message: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{"success": true})
}
