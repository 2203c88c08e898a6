package services

import (
	"errors"

	"github.com/sitewatch/sitewatch-backend/internal/models"
	"github.com/sitewatch/sitewatch-backend/internal/storage"
)

// fakeNotifier records outbound messages for assertions
type fakeNotifier struct {
	messages []sentMessage
}

type sentMessage struct {
	chatID  int64
	text    string
	buttons [][]InlineButton
}

func (f *fakeNotifier) SendMessage(chatID int64, text string) error {
	f.messages = append(f.messages, sentMessage{chatID: chatID, text: text})
	return nil
}

func (f *fakeNotifier) SendMessageWithButtons(chatID int64, text string, buttons [][]InlineButton) error {
	f.messages = append(f.messages, sentMessage{chatID: chatID, text: text, buttons: buttons})
	return nil
}

func (f *fakeNotifier) last() sentMessage {
	if len(f.messages) == 0 {
		return sentMessage{}
	}
	return f.messages[len(f.messages)-1]
}

// failingStore wraps the memory store and fails selected operations
type failingStore struct {
	*storage.MemoryStore
	failCreate bool
	failUpdate bool
}

var errStoreDown = errors.New("store unavailable")

func (f *failingStore) CreateRequest(req *models.MonitoringRequest) (*models.MonitoringRequest, error) {
	if f.failCreate {
		return nil, errStoreDown
	}
	return f.MemoryStore.CreateRequest(req)
}

func (f *failingStore) UpdateRequestFields(id string, ownerID int64, fields map[string]interface{}) error {
	if f.failUpdate {
		return errStoreDown
	}
	return f.MemoryStore.UpdateRequestFields(id, ownerID, fields)
}

func newTestBot() (*BotService, *storage.MemoryStore, *fakeNotifier) {
	store := storage.NewMemoryStore()
	notifier := &fakeNotifier{}
	return NewBotService(store, NewSessionManager(), notifier), store, notifier
}
