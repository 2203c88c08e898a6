package middleware

import (
	"crypto/subtle"
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
)

// ValidateTelegramSecret validates that the webhook request carries the
// secret token registered with Telegram's setWebhook call
func ValidateTelegramSecret() fiber.Handler {
	return func(c *fiber.Ctx) error {
		secret := os.Getenv("TELEGRAM_WEBHOOK_SECRET")
		if secret == "" {
			// Don't expose the configuration problem to the caller
			log.Println("ERROR: TELEGRAM_WEBHOOK_SECRET not set")
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Server configuration error",
			})
		}

		header := c.Get("X-Telegram-Bot-Api-Secret-Token")
		if header == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Missing Telegram secret token",
			})
		}

		if subtle.ConstantTimeCompare([]byte(header), []byte(secret)) != 1 {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid secret token",
			})
		}

		return c.Next()
	}
}
