package storage

import (
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/sitewatch/sitewatch-backend/internal/models"
)

// ErrRequestNotFound is returned when no row matches the given id, owner
// and kind. Cross-tenant lookups are indistinguishable from missing rows.
var ErrRequestNotFound = errors.New("monitoring request not found")

var storeInstance Store

// SetStore sets the global store instance (call from main.go)
func SetStore(s Store) {
	storeInstance = s
}

// GetStore returns the global store instance
func GetStore() Store {
	return storeInstance
}

// Store defines the interface for monitoring request persistence.
// Every mutation is scoped by owner id so one tenant can never touch
// another tenant's rows.
type Store interface {
	// CreateRequest inserts a new row and assigns its id
	CreateRequest(req *models.MonitoringRequest) (*models.MonitoringRequest, error)

	// GetRequest returns the row with the given id, owner and kind
	GetRequest(id string, ownerID int64, kind string) (*models.MonitoringRequest, error)

	// GetRequestsByKind returns all of an owner's rows of one kind, newest first
	GetRequestsByKind(ownerID int64, kind string) ([]*models.MonitoringRequest, error)

	// UpdateRequestFields updates the given columns of the row matching id and owner
	UpdateRequestFields(id string, ownerID int64, fields map[string]interface{}) error

	// DeleteRequest deletes the row matching id, owner and kind
	DeleteRequest(id string, ownerID int64, kind string) error

	// CountRequests returns the total number of rows (for health reporting)
	CountRequests() (int64, error)
}

// NewRequestID generates an opaque request identifier. Dashes are stripped
// so the id can be embedded directly in /edit and /delete command strings.
func NewRequestID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
