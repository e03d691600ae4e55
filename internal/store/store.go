package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/creatorhub/webhook-bridge/internal/store/schema"
)

// WebhookWithApplication joins a webhook row with the delivery
// provider application of its owning organization.
type WebhookWithApplication struct {
	schema.Webhook
	// RemoteAppID is the application identifier issued by the delivery provider
	RemoteAppID string `gorm:"column:remote_app_id"`
}

// Store defines the interface for database operations
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// UpsertTenantApplication records a provisioned application. Replays
	// of the same application are ignored.
	UpsertTenantApplication(ctx context.Context, app schema.TenantApplication) error
	// GetTenantApplicationByOrganization retrieves the application of an
	// organization. Returns (nil, nil) when none exists.
	GetTenantApplicationByOrganization(ctx context.Context, organizationID uuid.UUID) (*schema.TenantApplication, error)
	// GetTenantApplicationForProject resolves the application subscribed
	// to a project through its webhook links. Returns (nil, nil) when no
	// webhook subscribes to the project, and domain.ErrDataIntegrity when
	// the links resolve to more than one application.
	GetTenantApplicationForProject(ctx context.Context, projectID uuid.UUID) (*schema.TenantApplication, error)
	// CreateWebhook inserts a webhook and its project links atomically.
	CreateWebhook(ctx context.Context, webhook schema.Webhook, projectIDs []uuid.UUID) (*schema.Webhook, error)
	// GetWebhookByID retrieves a webhook. Returns (nil, nil) when absent.
	GetWebhookByID(ctx context.Context, id uuid.UUID) (*schema.Webhook, error)
	// GetWebhookProjects lists the project subscriptions of a webhook.
	GetWebhookProjects(ctx context.Context, webhookID uuid.UUID) ([]schema.WebhookProject, error)
	// GetWebhooksWithApplicationsByIDs retrieves webhooks by ID joined
	// with their organization applications. Missing IDs are omitted.
	GetWebhooksWithApplicationsByIDs(ctx context.Context, ids []uuid.UUID) ([]WebhookWithApplication, error)
	// GetWebhooksWithApplicationsByOrganizations retrieves all webhooks
	// of the given organizations joined with their applications.
	GetWebhooksWithApplicationsByOrganizations(ctx context.Context, organizationIDs []uuid.UUID) ([]WebhookWithApplication, error)
	// ReplaceWebhookProjects swaps the project links of a webhook and
	// stamps its updated_at.
	ReplaceWebhookProjects(ctx context.Context, webhookID uuid.UUID, projectIDs []uuid.UUID) error
	// DeleteWebhook removes a webhook and its project links. Returns
	// domain.ErrNotFound when the webhook does not exist.
	DeleteWebhook(ctx context.Context, id uuid.UUID) error
	// RecordBroadcast appends a broadcast audit row. Replays of the same
	// event ID are ignored.
	RecordBroadcast(ctx context.Context, record schema.BroadcastRecord) error
}
