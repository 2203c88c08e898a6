package services

import "log"

// LogNotifier logs outbound messages instead of delivering them. Used when
// no bot token is configured, so the service stays runnable in development.
type LogNotifier struct{}

// NewLogNotifier creates a log-only notifier
func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

// SendMessage logs the message that would have been sent
func (l *LogNotifier) SendMessage(chatID int64, text string) error {
	log.Printf("📤 Message to %d (not sent - Telegram not configured): %s", chatID, text)
	return nil
}

// SendMessageWithButtons logs the message and its button payloads
func (l *LogNotifier) SendMessageWithButtons(chatID int64, text string, buttons [][]InlineButton) error {
	log.Printf("📤 Message to %d (not sent - Telegram not configured): %s [buttons: %d rows]", chatID, text, len(buttons))
	return nil
}
