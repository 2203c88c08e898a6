package services

import (
	"errors"
	"log"

	"github.com/sitewatch/sitewatch-backend/internal/models"
	"github.com/sitewatch/sitewatch-backend/internal/storage"
)

// handleListUpdateRequests sends one block per update monitor, newest
// first, each with its edit/delete shortcuts
func (b *BotService) handleListUpdateRequests(chatID int64) {
	requests, err := b.store.GetRequestsByKind(chatID, models.KindUpdate)
	if err != nil {
		log.Printf("❌ Store failure listing update requests for chat %d: %v", chatID, err)
		b.send(chatID, msgPersistenceFailure)
		return
	}

	if len(requests) == 0 {
		b.send(chatID, msgNoUpdateRequests)
		return
	}

	for _, req := range requests {
		b.sendWithButtons(chatID, formatUpdateRequest(req), requestButtons(req))
	}
}

// handleListKeywordRequests sends one block per keyword check, newest first
func (b *BotService) handleListKeywordRequests(chatID int64) {
	requests, err := b.store.GetRequestsByKind(chatID, models.KindKeyword)
	if err != nil {
		log.Printf("❌ Store failure listing keyword requests for chat %d: %v", chatID, err)
		b.send(chatID, msgPersistenceFailure)
		return
	}

	if len(requests) == 0 {
		b.send(chatID, msgNoKeywordRequests)
		return
	}

	for _, req := range requests {
		b.sendWithButtons(chatID, formatKeywordRequest(req), requestButtons(req))
	}
}

// handleDelete deletes a request only when id, owner and kind all match;
// an id guessed across tenants or of the wrong kind reports not-found
// without touching anything
func (b *BotService) handleDelete(chatID int64, requestID string, kind string) {
	err := b.store.DeleteRequest(requestID, chatID, kind)
	if err != nil {
		if errors.Is(err, storage.ErrRequestNotFound) {
			b.send(chatID, msgNotFound)
			return
		}
		log.Printf("❌ Store failure deleting request %s: %v", requestID, err)
		b.send(chatID, msgPersistenceFailure)
		return
	}

	b.send(chatID, msgDeleted)
}
