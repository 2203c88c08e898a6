package services

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/sitewatch/sitewatch-backend/internal/models"
	"github.com/sitewatch/sitewatch-backend/internal/storage"
)

// BotService interprets incoming chat messages: it routes them, advances
// the per-chat flow state machine, talks to the request store and replies
// through the notifier.
type BotService struct {
	store    storage.Store
	sessions *SessionManager
	notifier Notifier
}

// NewBotService creates a new bot service
func NewBotService(store storage.Store, sessions *SessionManager, notifier Notifier) *BotService {
	return &BotService{
		store:    store,
		sessions: sessions,
		notifier: notifier,
	}
}

// ProcessMessage is the entry point for every inbound message. Text from
// both regular messages and button callbacks lands here.
func (b *BotService) ProcessMessage(chatID int64, text string) error {
	text = strings.TrimSpace(text)
	if chatID == 0 || text == "" {
		// Acknowledge without action
		return nil
	}

	log.Printf("💬 Processing message from chat %d: %q", chatID, text)

	_, hasSession := b.sessions.Get(chatID)
	action := Route(text, hasSession)

	switch action.Type {
	case ActionStart:
		b.send(chatID, msgWelcome+"\n\n"+msgHelp)
	case ActionHelp:
		b.send(chatID, msgHelp)
	case ActionCancel:
		b.handleCancel(chatID)
	case ActionNewUpdateMonitor:
		b.startCreation(chatID, FlowNewUpdateMonitor)
	case ActionNewKeywordCheck:
		b.startCreation(chatID, FlowNewKeywordCheck)
	case ActionListUpdateRequests:
		b.handleListUpdateRequests(chatID)
	case ActionListKeywordRequests:
		b.handleListKeywordRequests(chatID)
	case ActionEditUpdate:
		b.startEdit(chatID, action.RequestID, FlowEditUpdateMonitor)
	case ActionEditKeyword:
		b.startEdit(chatID, action.RequestID, FlowEditKeywordCheck)
	case ActionDeleteUpdate:
		b.handleDelete(chatID, action.RequestID, models.KindUpdate)
	case ActionDeleteKeyword:
		b.handleDelete(chatID, action.RequestID, models.KindKeyword)
	case ActionContinueSession:
		b.continueSession(chatID, text)
	default:
		b.send(chatID, msgUnknown)
	}

	return nil
}

// startCreation begins a creation flow, silently discarding any prior
// in-progress session for the chat
func (b *BotService) startCreation(chatID int64, flow FlowKind) {
	b.sessions.Set(&Session{
		OwnerID:   chatID,
		Flow:      flow,
		Step:      StepAwaitURL,
		StartedAt: time.Now(),
	})
	b.send(chatID, msgAskURL)
}

// continueSession feeds a free-text reply into the chat's active flow
func (b *BotService) continueSession(chatID int64, text string) {
	session, exists := b.sessions.Get(chatID)
	if !exists {
		b.send(chatID, msgUnknown)
		return
	}

	switch session.Flow {
	case FlowNewUpdateMonitor:
		b.advanceUpdateCreation(session, text)
	case FlowNewKeywordCheck:
		b.advanceKeywordCreation(session, text)
	case FlowEditUpdateMonitor, FlowEditKeywordCheck:
		b.advanceEdit(session, text)
	default:
		log.Printf("Dropping session with unknown flow %q for chat %d", session.Flow, chatID)
		b.sessions.Delete(chatID)
		b.send(chatID, msgUnknown)
	}
}

// handleCancel aborts the active flow. A creation flow that already
// inserted its row deletes that row; an edit flow leaves the row as it is.
func (b *BotService) handleCancel(chatID int64) {
	session, exists := b.sessions.Get(chatID)
	if !exists {
		b.send(chatID, msgNoActiveRequest)
		return
	}

	if session.IsCreation() && session.RequestID != "" {
		kind := flowRequestKind(session.Flow)
		if err := b.store.DeleteRequest(session.RequestID, chatID, kind); err != nil && !errors.Is(err, storage.ErrRequestNotFound) {
			log.Printf("Failed to delete request %s on cancel: %v", session.RequestID, err)
			b.sessions.Delete(chatID)
			b.send(chatID, msgPersistenceFailure)
			return
		}
	}

	b.sessions.Delete(chatID)
	b.send(chatID, msgCancelled)
}

// abortOnStoreFailure reports a persistence failure and discards the
// session; the flow must be restarted, there are no retries
func (b *BotService) abortOnStoreFailure(chatID int64, err error) {
	log.Printf("❌ Store failure for chat %d: %v", chatID, err)
	b.sessions.Delete(chatID)
	b.send(chatID, msgPersistenceFailure)
}

// send delivers a message, logging delivery failures without letting them
// alter session state
func (b *BotService) send(chatID int64, text string) {
	if err := b.notifier.SendMessage(chatID, text); err != nil {
		log.Printf("Failed to notify chat %d: %v", chatID, err)
	}
}

// sendWithButtons delivers a message with inline shortcuts attached
func (b *BotService) sendWithButtons(chatID int64, text string, buttons [][]InlineButton) {
	if err := b.notifier.SendMessageWithButtons(chatID, text, buttons); err != nil {
		log.Printf("Failed to notify chat %d: %v", chatID, err)
	}
}
