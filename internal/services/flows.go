package services

import (
	"strings"

	"github.com/sitewatch/sitewatch-backend/internal/models"
)

// flowRequestKind maps a flow to the request kind it operates on
func flowRequestKind(flow FlowKind) string {
	if flow == FlowNewKeywordCheck || flow == FlowEditKeywordCheck {
		return models.KindKeyword
	}
	return models.KindUpdate
}

// normalizeURL prefixes https:// when the input carries no http(s) scheme.
// Already-schemed input is stored unchanged.
func normalizeURL(raw string) string {
	lower := strings.ToLower(raw)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return raw
	}
	return "https://" + raw
}

// parseYes treats exactly "yes" (case-insensitive) as true. Any other
// reply, typos included, is false; creation flows never re-prompt.
func parseYes(text string) bool {
	return strings.EqualFold(strings.TrimSpace(text), "yes")
}

// isYesNo reports whether a reply is a well-formed boolean answer
func isYesNo(text string) bool {
	trimmed := strings.TrimSpace(text)
	return strings.EqualFold(trimmed, "yes") || strings.EqualFold(trimmed, "no")
}

// parseKeywords splits input on commas, trims and lower-cases each token
// and drops empty ones. Order is preserved and duplicates are kept.
func parseKeywords(text string) models.KeywordList {
	var keywords models.KeywordList
	for _, token := range strings.Split(text, ",") {
		token = strings.ToLower(strings.TrimSpace(token))
		if token != "" {
			keywords = append(keywords, token)
		}
	}
	return keywords
}

// insertRequestForURL runs the shared first step of both creation flows:
// normalize the URL and insert the row immediately so an id exists to
// anchor later partial updates and /cancel
func (b *BotService) insertRequestForURL(session *Session, text string) bool {
	req := &models.MonitoringRequest{
		OwnerID: session.OwnerID,
		URL:     normalizeURL(text),
		Kind:    flowRequestKind(session.Flow),
	}

	created, err := b.store.CreateRequest(req)
	if err != nil {
		b.abortOnStoreFailure(session.OwnerID, err)
		return false
	}

	session.RequestID = created.ID
	return true
}

// advanceUpdateCreation handles one reply in the three-step update
// monitor creation flow
func (b *BotService) advanceUpdateCreation(session *Session, text string) {
	switch session.Step {
	case StepAwaitURL:
		if !b.insertRequestForURL(session, text) {
			return
		}
		session.Step = StepAwaitContinueFlag
		b.sessions.Set(session)
		b.send(session.OwnerID, msgAskContinueFlag)

	case StepAwaitContinueFlag:
		err := b.store.UpdateRequestFields(session.RequestID, session.OwnerID, map[string]interface{}{
			fieldContinueAfterFirstChange: parseYes(text),
		})
		if err != nil {
			b.abortOnStoreFailure(session.OwnerID, err)
			return
		}
		session.Step = StepAwaitDetailFlag
		b.sessions.Set(session)
		b.send(session.OwnerID, msgAskDetailFlag)

	case StepAwaitDetailFlag:
		err := b.store.UpdateRequestFields(session.RequestID, session.OwnerID, map[string]interface{}{
			fieldDetailedUpdates: parseYes(text),
		})
		if err != nil {
			b.abortOnStoreFailure(session.OwnerID, err)
			return
		}
		b.sessions.Delete(session.OwnerID)
		b.send(session.OwnerID, msgUpdateMonitorCreated)
	}
}

// advanceKeywordCreation handles one reply in the two-step keyword check
// creation flow
func (b *BotService) advanceKeywordCreation(session *Session, text string) {
	switch session.Step {
	case StepAwaitURL:
		if !b.insertRequestForURL(session, text) {
			return
		}
		session.Step = StepAwaitKeywords
		b.sessions.Set(session)
		b.send(session.OwnerID, msgAskKeywords)

	case StepAwaitKeywords:
		err := b.store.UpdateRequestFields(session.RequestID, session.OwnerID, map[string]interface{}{
			fieldKeywords: parseKeywords(text),
		})
		if err != nil {
			b.abortOnStoreFailure(session.OwnerID, err)
			return
		}
		b.sessions.Delete(session.OwnerID)
		b.send(session.OwnerID, msgKeywordCheckCreated)
	}
}
