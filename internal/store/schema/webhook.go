package schema

import (
	"time"

	"github.com/google/uuid"
)

// Webhook represents the webhooks table - one row per registered
// webhook, pointing at the delivery provider endpoint that backs it.
type Webhook struct {
	// ID is the webhook identifier
	ID uuid.UUID `gorm:"column:id;primaryKey;type:uuid;default:gen_random_uuid()"`
	// EndpointID is the endpoint identifier issued by the delivery provider
	EndpointID string `gorm:"column:endpoint_id;not null;type:varchar(255)"`
	// OrganizationID is the owning organization
	OrganizationID uuid.UUID `gorm:"column:organization_id;not null;type:uuid"`
	// CreatedBy is the user that registered the webhook
	CreatedBy uuid.UUID `gorm:"column:created_by;not null;type:uuid"`
	// CreatedAt is the timestamp when the webhook was registered
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp of the last edit, nil until first edited
	UpdatedAt *time.Time `gorm:"column:updated_at;type:timestamptz;autoUpdateTime:false"`
}

// TableName specifies the table name for the Webhook model
func (Webhook) TableName() string {
	return "webhooks"
}
