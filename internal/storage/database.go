package storage

import (
	"errors"

	"gorm.io/gorm"

	"github.com/sitewatch/sitewatch-backend/internal/models"
)

// DatabaseStore implements Store using PostgreSQL via GORM
type DatabaseStore struct {
	db *gorm.DB
}

// NewDatabaseStore creates a new database-backed store
func NewDatabaseStore(db *gorm.DB) *DatabaseStore {
	return &DatabaseStore{db: db}
}

// CreateRequest inserts a new monitoring request and assigns its id
func (d *DatabaseStore) CreateRequest(req *models.MonitoringRequest) (*models.MonitoringRequest, error) {
	req.ID = NewRequestID()

	if err := d.db.Create(req).Error; err != nil {
		return nil, err
	}
	return req, nil
}

// GetRequest returns the request matching id, owner and kind
func (d *DatabaseStore) GetRequest(id string, ownerID int64, kind string) (*models.MonitoringRequest, error) {
	var req models.MonitoringRequest

	err := d.db.Where("id = ? AND owner_id = ? AND kind = ?", id, ownerID, kind).First(&req).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}
	return &req, nil
}

// GetRequestsByKind returns all of an owner's requests of one kind, newest first
func (d *DatabaseStore) GetRequestsByKind(ownerID int64, kind string) ([]*models.MonitoringRequest, error) {
	var requests []*models.MonitoringRequest

	err := d.db.
		Where("owner_id = ? AND kind = ?", ownerID, kind).
		Order("created_at DESC").
		Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

// UpdateRequestFields updates the given columns of the request matching id and owner
func (d *DatabaseStore) UpdateRequestFields(id string, ownerID int64, fields map[string]interface{}) error {
	result := d.db.
		Model(&models.MonitoringRequest{}).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRequestNotFound
	}
	return nil
}

// DeleteRequest deletes the request matching id, owner and kind
func (d *DatabaseStore) DeleteRequest(id string, ownerID int64, kind string) error {
	result := d.db.
		Where("id = ? AND owner_id = ? AND kind = ?", id, ownerID, kind).
		Delete(&models.MonitoringRequest{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRequestNotFound
	}
	return nil
}

// CountRequests returns the total number of stored requests
func (d *DatabaseStore) CountRequests() (int64, error) {
	var count int64
	if err := d.db.Model(&models.MonitoringRequest{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
