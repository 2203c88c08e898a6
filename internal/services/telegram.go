package services

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// InlineButton is a labeled action attached to a message. Data is the
// opaque callback payload delivered back when the button is pressed; here
// it always carries a literal command string.
type InlineButton struct {
	Label string
	Data  string
}

// Notifier delivers formatted text to a chat. Implementations must treat
// delivery failures as log-and-return: a failed send never throws past the
// caller into session state.
type Notifier interface {
	SendMessage(chatID int64, text string) error
	SendMessageWithButtons(chatID int64, text string, buttons [][]InlineButton) error
}

// TelegramService sends messages via the Telegram Bot API
type TelegramService struct {
	bot *tgbotapi.BotAPI
}

// NewTelegramService creates a new Telegram service instance
func NewTelegramService() (*TelegramService, error) {
	token := os.Getenv("TELEGRAM_BOT_TOKEN")
	if token == "" {
		return nil, fmt.Errorf("missing TELEGRAM_BOT_TOKEN in environment variables")
	}

	// Bounded timeout so a slow Telegram API can never wedge a flow
	client := &http.Client{Timeout: 30 * time.Second}
	bot, err := tgbotapi.NewBotAPIWithClient(token, tgbotapi.APIEndpoint, client)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Telegram: %w", err)
	}

	log.Printf("✅ Telegram bot authorized as @%s", bot.Self.UserName)
	return &TelegramService{bot: bot}, nil
}

// SendMessage sends a plain text message to a chat
func (t *TelegramService) SendMessage(chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	msg.DisableWebPagePreview = true

	if _, err := t.bot.Send(msg); err != nil {
		log.Printf("❌ Failed to send Telegram message to %d: %v", chatID, err)
		return err
	}
	return nil
}

// SendMessageWithButtons sends a message with an inline keyboard attached
func (t *TelegramService) SendMessageWithButtons(chatID int64, text string, buttons [][]InlineButton) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	msg.DisableWebPagePreview = true

	var rows [][]tgbotapi.InlineKeyboardButton
	for _, row := range buttons {
		var keyboardRow []tgbotapi.InlineKeyboardButton
		for _, button := range row {
			keyboardRow = append(keyboardRow, tgbotapi.NewInlineKeyboardButtonData(button.Label, button.Data))
		}
		rows = append(rows, keyboardRow)
	}
	if len(rows) > 0 {
		msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(rows...)
	}

	if _, err := t.bot.Send(msg); err != nil {
		log.Printf("❌ Failed to send Telegram message to %d: %v", chatID, err)
		return err
	}
	return nil
}

// AnswerCallback acknowledges a button press so the client stops showing
// its loading spinner
func (t *TelegramService) AnswerCallback(callbackID string) {
	if _, err := t.bot.Request(tgbotapi.NewCallback(callbackID, "")); err != nil {
		log.Printf("Failed to answer callback query %s: %v", callbackID, err)
	}
}
