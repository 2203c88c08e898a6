package services

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/sitewatch/sitewatch-backend/internal/storage"
)

// Editable field names. These double as the store column names passed to
// UpdateRequestFields.
const (
	fieldURL                      = "url"
	fieldContinueAfterFirstChange = "continue_after_first_change"
	fieldDetailedUpdates          = "detailed_updates"
	fieldKeywords                 = "keywords"
)

// Fields visited in order by each edit flow
var (
	updateEditFields  = []string{fieldURL, fieldContinueAfterFirstChange, fieldDetailedUpdates}
	keywordEditFields = []string{fieldURL, fieldKeywords}
)

// startEdit begins an edit flow for an existing request. The row must
// exist, belong to the chat and match the expected kind; otherwise the
// user gets a not-found notice and no session is created.
func (b *BotService) startEdit(chatID int64, requestID string, flow FlowKind) {
	req, err := b.store.GetRequest(requestID, chatID, flowRequestKind(flow))
	if err != nil {
		if errors.Is(err, storage.ErrRequestNotFound) {
			b.send(chatID, msgNotFound)
			return
		}
		log.Printf("❌ Store failure looking up request %s: %v", requestID, err)
		b.send(chatID, msgPersistenceFailure)
		return
	}

	fields := updateEditFields
	if flow == FlowEditKeywordCheck {
		fields = keywordEditFields
	}

	session := &Session{
		OwnerID:    chatID,
		Flow:       flow,
		RequestID:  req.ID,
		Fields:     fields,
		FieldIndex: 0,
		Snapshot:   req,
		StartedAt:  time.Now(),
	}
	b.sessions.Set(session)
	b.send(chatID, editFieldPrompt(fields[0], req))
}

// advanceEdit handles one reply in an edit flow. /skip keeps the current
// value; otherwise the reply is validated per field type and persisted
// immediately, scoped by id and owner.
func (b *BotService) advanceEdit(session *Session, text string) {
	field := session.Fields[session.FieldIndex]

	if !strings.EqualFold(strings.TrimSpace(text), cmdSkip) {
		value, ok := parseFieldValue(field, text)
		if !ok {
			// Malformed yes/no answer: re-prompt the same field
			b.send(session.OwnerID, msgInvalidYesNo+"\n\n"+editFieldPrompt(field, session.Snapshot))
			return
		}

		err := b.store.UpdateRequestFields(session.RequestID, session.OwnerID, map[string]interface{}{
			field: value,
		})
		if err != nil {
			b.abortOnStoreFailure(session.OwnerID, err)
			return
		}
	}

	session.FieldIndex++
	if session.FieldIndex >= len(session.Fields) {
		b.sessions.Delete(session.OwnerID)
		b.send(session.OwnerID, msgEditComplete)
		return
	}

	b.sessions.Set(session)
	b.send(session.OwnerID, editFieldPrompt(session.Fields[session.FieldIndex], session.Snapshot))
}

// parseFieldValue validates and converts a reply for one field. URL and
// keyword replies are always accepted; booleans must be a literal yes or no.
func parseFieldValue(field, text string) (interface{}, bool) {
	switch field {
	case fieldURL:
		return normalizeURL(strings.TrimSpace(text)), true
	case fieldContinueAfterFirstChange, fieldDetailedUpdates:
		if !isYesNo(text) {
			return nil, false
		}
		return parseYes(text), true
	case fieldKeywords:
		return parseKeywords(text), true
	}
	return nil, false
}
