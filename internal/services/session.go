package services

import (
	"log"
	"sync"
	"time"

	"github.com/sitewatch/sitewatch-backend/internal/models"
)

// FlowKind identifies which multi-step conversation a session is tracking
type FlowKind string

const (
	FlowNewUpdateMonitor  FlowKind = "new_update_monitor"
	FlowNewKeywordCheck   FlowKind = "new_keyword_check"
	FlowEditUpdateMonitor FlowKind = "edit_update_monitor"
	FlowEditKeywordCheck  FlowKind = "edit_keyword_check"
)

// Creation flow steps
const (
	StepAwaitURL = iota + 1
	StepAwaitContinueFlag
	StepAwaitDetailFlag
)

// StepAwaitKeywords is the second (and last) step of the keyword creation flow
const StepAwaitKeywords = 2

// Session tracks one user's place in an in-progress flow. At most one
// session exists per chat; starting a new flow discards the previous one.
type Session struct {
	OwnerID   int64
	Flow      FlowKind
	StartedAt time.Time

	// Creation flows
	Step int

	// Set once the underlying row exists (after the URL step insert, or
	// at edit start)
	RequestID string

	// Edit flows
	Fields     []string
	FieldIndex int
	Snapshot   *models.MonitoringRequest
}

// IsCreation reports whether the session belongs to a creation flow
func (s *Session) IsCreation() bool {
	return s.Flow == FlowNewUpdateMonitor || s.Flow == FlowNewKeywordCheck
}

// SessionManager holds in-progress flows keyed by chat id. Sessions are
// ephemeral and lost on restart; flows are expected to complete within one
// process lifetime.
type SessionManager struct {
	mu       sync.RWMutex
	sessions map[int64]*Session
}

// NewSessionManager creates a new session manager
func NewSessionManager() *SessionManager {
	return &SessionManager{
		sessions: make(map[int64]*Session),
	}
}

// Get retrieves the active session for a chat, if any
func (sm *SessionManager) Get(ownerID int64) (*Session, bool) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	session, exists := sm.sessions[ownerID]
	return session, exists
}

// Set stores the session for a chat, replacing any previous one
func (sm *SessionManager) Set(session *Session) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if _, exists := sm.sessions[session.OwnerID]; exists {
		log.Printf("Replacing in-progress %s session for chat %d", session.Flow, session.OwnerID)
	}
	sm.sessions[session.OwnerID] = session
}

// Delete removes the session for a chat
func (sm *SessionManager) Delete(ownerID int64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	delete(sm.sessions, ownerID)
}

// SessionStats provides session statistics for health reporting
type SessionStats struct {
	ActiveSessions int            `json:"active_sessions"`
	SessionsByFlow map[string]int `json:"sessions_by_flow"`
}

// Stats returns current session statistics
func (sm *SessionManager) Stats() *SessionStats {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	stats := &SessionStats{
		ActiveSessions: len(sm.sessions),
		SessionsByFlow: make(map[string]int),
	}
	for _, session := range sm.sessions {
		stats.SessionsByFlow[string(session.Flow)]++
	}
	return stats
}
