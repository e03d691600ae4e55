package schema

import (
	"time"

	"github.com/google/uuid"
)

// WebhookProject represents the webhook_projects table - the
// many-to-many link between webhooks and the projects they subscribe
// to.
type WebhookProject struct {
	// WebhookID is the subscribing webhook
	WebhookID uuid.UUID `gorm:"column:webhook_id;primaryKey;type:uuid"`
	// ProjectID is the subscribed project
	ProjectID uuid.UUID `gorm:"column:project_id;primaryKey;type:uuid"`
	// CreatedAt is the timestamp when the subscription was added
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the WebhookProject model
func (WebhookProject) TableName() string {
	return "webhook_projects"
}
