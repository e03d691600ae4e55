package schema

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// BroadcastRecord represents the broadcast_records table - an audit
// log of events handed to the delivery provider. Written best-effort
// after a successful submit; the provider remains the source of truth
// for delivery outcomes.
type BroadcastRecord struct {
	// ID is an auto-incrementing sequence number
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// EventID is the unique event identifier (ULID for time-sortable uniqueness)
	EventID string `gorm:"column:event_id;not null;unique;type:varchar(26)"`
	// EventType is the canonical event kind, e.g. "customer.created"
	EventType string `gorm:"column:event_type;not null;type:varchar(50)"`
	// ProjectID is the project the event was scoped to
	ProjectID uuid.UUID `gorm:"column:project_id;not null;type:uuid"`
	// RemoteAppID is the application the event was submitted under
	RemoteAppID string `gorm:"column:remote_app_id;not null;type:varchar(255)"`
	// Payload is the canonical envelope as submitted
	Payload datatypes.JSON `gorm:"column:payload;not null;type:jsonb"`
	// CreatedAt is the timestamp when the event was submitted
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the BroadcastRecord model
func (BroadcastRecord) TableName() string {
	return "broadcast_records"
}
