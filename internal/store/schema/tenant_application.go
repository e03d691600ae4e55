package schema

import (
	"time"

	"github.com/google/uuid"
)

// TenantApplication represents the tenant_applications table - the
// directory mapping each organization to its delivery provider
// application. At most one row per organization.
type TenantApplication struct {
	// RemoteAppID is the application identifier issued by the delivery provider
	RemoteAppID string `gorm:"column:remote_app_id;primaryKey;type:varchar(255)"`
	// OrganizationID is the owning organization (one application per organization)
	OrganizationID uuid.UUID `gorm:"column:organization_id;not null;unique;type:uuid"`
	// CreatedAt is the timestamp when this application was provisioned
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the TenantApplication model
func (TenantApplication) TableName() string {
	return "tenant_applications"
}
