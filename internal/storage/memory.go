package storage

import (
	"sort"
	"sync"
	"time"

	"github.com/sitewatch/sitewatch-backend/internal/models"
)

// MemoryStore holds all data in memory, used for tests and local
// development without a database
type MemoryStore struct {
	mu       sync.RWMutex
	requests map[string]*models.MonitoringRequest
}

// NewMemoryStore creates a new in-memory storage
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		requests: make(map[string]*models.MonitoringRequest),
	}
}

// CreateRequest inserts a new monitoring request and assigns its id
func (m *MemoryStore) CreateRequest(req *models.MonitoringRequest) (*models.MonitoringRequest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	req.ID = NewRequestID()
	req.CreatedAt = time.Now()
	req.UpdatedAt = req.CreatedAt

	stored := *req
	m.requests[req.ID] = &stored
	return req, nil
}

// GetRequest returns the request matching id, owner and kind
func (m *MemoryStore) GetRequest(id string, ownerID int64, kind string) (*models.MonitoringRequest, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	req, exists := m.requests[id]
	if !exists || req.OwnerID != ownerID || req.Kind != kind {
		return nil, ErrRequestNotFound
	}

	clone := *req
	return &clone, nil
}

// GetRequestsByKind returns all of an owner's requests of one kind, newest first
func (m *MemoryStore) GetRequestsByKind(ownerID int64, kind string) ([]*models.MonitoringRequest, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var results []*models.MonitoringRequest
	for _, req := range m.requests {
		if req.OwnerID == ownerID && req.Kind == kind {
			clone := *req
			results = append(results, &clone)
		}
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].CreatedAt.After(results[j].CreatedAt)
	})
	return results, nil
}

// UpdateRequestFields updates the given columns of the request matching id and owner
func (m *MemoryStore) UpdateRequestFields(id string, ownerID int64, fields map[string]interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	req, exists := m.requests[id]
	if !exists || req.OwnerID != ownerID {
		return ErrRequestNotFound
	}

	for column, value := range fields {
		switch column {
		case "url":
			req.URL = value.(string)
		case "continue_after_first_change":
			req.ContinueAfterFirstChange = value.(bool)
		case "detailed_updates":
			req.DetailedUpdates = value.(bool)
		case "keywords":
			req.Keywords = value.(models.KeywordList)
		}
	}
	req.UpdatedAt = time.Now()

	return nil
}

// DeleteRequest deletes the request matching id, owner and kind
func (m *MemoryStore) DeleteRequest(id string, ownerID int64, kind string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	req, exists := m.requests[id]
	if !exists || req.OwnerID != ownerID || req.Kind != kind {
		return ErrRequestNotFound
	}

	delete(m.requests, id)
	return nil
}

// CountRequests returns the total number of stored requests
func (m *MemoryStore) CountRequests() (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return int64(len(m.requests)), nil
}
