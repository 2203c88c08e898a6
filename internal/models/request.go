package models

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// Request kinds. A request watches either for any page change or for
// specific keywords appearing; editing never moves a row between kinds.
const (
	KindUpdate  = "update"
	KindKeyword = "keyword"
)

// KeywordList stores an ordered list of normalized keywords as a single
// comma-joined text column. Keywords are produced by comma-splitting user
// input, so individual tokens can never contain a comma.
type KeywordList []string

// Value implements driver.Valuer for database storage
func (k KeywordList) Value() (driver.Value, error) {
	return strings.Join(k, ","), nil
}

// Scan implements sql.Scanner for database retrieval
func (k *KeywordList) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*k = nil
		return nil
	case string:
		if v == "" {
			*k = nil
			return nil
		}
		*k = strings.Split(v, ",")
		return nil
	case []byte:
		return k.Scan(string(v))
	default:
		return fmt.Errorf("cannot scan %T into KeywordList", value)
	}
}

// MonitoringRequest represents a website-monitoring subscription owned by
// a single Telegram chat
type MonitoringRequest struct {
	ID      string `json:"id" gorm:"primaryKey"`
	OwnerID int64  `json:"owner_id" gorm:"index"`

	URL  string `json:"url"`
	Kind string `json:"kind" gorm:"index"` // "update" or "keyword"

	// Update kind only
	ContinueAfterFirstChange bool `json:"continue_after_first_change"`
	DetailedUpdates          bool `json:"detailed_updates"`

	// Keyword kind only
	Keywords KeywordList `json:"keywords" gorm:"type:text"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
