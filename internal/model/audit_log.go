// internal/model/audit_log.go
package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// AuditLogEntry is an append-only record of one state change. Entries are
// immutable once written: no update or delete path exists anywhere in the
// codebase, and writes always share the transaction of the mutation they
// record.
type AuditLogEntry struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	EntityType string    `json:"entity_type" gorm:"type:text;not null;index:idx_audit_entity"`
	EntityID   uuid.UUID `json:"entity_id" gorm:"type:uuid;not null;index:idx_audit_entity"`
	ActorID    uuid.UUID `json:"actor_id" gorm:"type:uuid;not null"`
	FromStatus string    `json:"from_status" gorm:"type:text"`
	ToStatus   string    `json:"to_status" gorm:"type:text"`
	Diff       JSONMap   `json:"diff,omitempty" gorm:"type:jsonb"`
	Timestamp  time.Time `json:"timestamp" gorm:"not null;default:CURRENT_TIMESTAMP"`
	CreatedAt  time.Time `json:"created_at" gorm:"default:CURRENT_TIMESTAMP"`
}

// TableName specifies the table name for AuditLogEntry
func (AuditLogEntry) TableName() string {
	return "audit_log_entries"
}

// Entity type discriminators for audit entries.
const (
	AuditEntityInvitation = "invitation"
	AuditEntityClaim      = "claim"
	AuditEntityTicket     = "ticket"
)

// JSONMap represents a generic map stored as JSONB in the database
type JSONMap map[string]interface{}

// Value implements the driver.Valuer interface for JSONMap
func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}

// Scan implements the sql.Scanner interface for JSONMap
func (m *JSONMap) Scan(value interface{}) error {
	if value == nil {
		*m = make(JSONMap)
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("type assertion failed: failed to decode JSONB")
	}

	return json.Unmarshal(bytes, m)
}
