package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/creatorhub/webhook-bridge/internal/domain"
	"github.com/creatorhub/webhook-bridge/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// ConfigureConnectionPool configures the connection pool settings for a GORM database connection.
// It accesses the underlying *sql.DB and sets the pool configuration.
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime =
		NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// NormalizeConnectionPoolSettings applies defaults and clamps pool settings into safe values.
//
// Defaults (when zero):
//   - MaxOpenConns: 20
//   - MaxIdleConns: 5
//   - ConnMaxLifetime: 5 minutes
//   - ConnMaxIdleTime: 10 minutes
func NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) (int, int, time.Duration, time.Duration) {
	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	// MaxIdleConns above MaxOpenConns is meaningless to database/sql
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	return maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime
}

// UpsertTenantApplication records a provisioned application, ignoring replays
func (s *pgStore) UpsertTenantApplication(ctx context.Context, app schema.TenantApplication) error {
	if err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&app).Error; err != nil {
		return fmt.Errorf("failed to upsert tenant application: %w", err)
	}

	return nil
}

// GetTenantApplicationByOrganization retrieves the application of an organization
func (s *pgStore) GetTenantApplicationByOrganization(ctx context.Context, organizationID uuid.UUID) (*schema.TenantApplication, error) {
	var app schema.TenantApplication
	err := s.db.WithContext(ctx).
		Where("organization_id = ?", organizationID).
		First(&app).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get tenant application: %w", err)
	}

	return &app, nil
}

// GetTenantApplicationForProject resolves the application subscribed to a
// project through webhooks and their project links
func (s *pgStore) GetTenantApplicationForProject(ctx context.Context, projectID uuid.UUID) (*schema.TenantApplication, error) {
	var apps []schema.TenantApplication
	err := s.db.WithContext(ctx).
		Table("tenant_applications").
		Select("DISTINCT tenant_applications.*").
		Joins("JOIN webhooks ON webhooks.organization_id = tenant_applications.organization_id").
		Joins("JOIN webhook_projects ON webhook_projects.webhook_id = webhooks.id").
		Where("webhook_projects.project_id = ?", projectID).
		Find(&apps).Error
	if err != nil {
		return nil, fmt.Errorf("failed to resolve application for project: %w", err)
	}

	switch len(apps) {
	case 0:
		return nil, nil
	case 1:
		return &apps[0], nil
	default:
		return nil, fmt.Errorf("%w: project %s resolves to %d applications", domain.ErrDataIntegrity, projectID, len(apps))
	}
}

// CreateWebhook inserts a webhook and its project links atomically
func (s *pgStore) CreateWebhook(ctx context.Context, webhook schema.Webhook, projectIDs []uuid.UUID) (*schema.Webhook, error) {
	if webhook.ID == uuid.Nil {
		webhook.ID = uuid.New()
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&webhook).Error; err != nil {
			return fmt.Errorf("failed to create webhook: %w", err)
		}

		links := webhookProjectLinks(webhook.ID, projectIDs)
		if len(links) == 0 {
			return nil
		}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&links).Error; err != nil {
			return fmt.Errorf("failed to create webhook project links: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &webhook, nil
}

// GetWebhookByID retrieves a webhook by its identifier
func (s *pgStore) GetWebhookByID(ctx context.Context, id uuid.UUID) (*schema.Webhook, error) {
	var webhook schema.Webhook
	err := s.db.WithContext(ctx).
		Where("id = ?", id).
		First(&webhook).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get webhook: %w", err)
	}

	return &webhook, nil
}

// GetWebhookProjects lists the project subscriptions of a webhook
func (s *pgStore) GetWebhookProjects(ctx context.Context, webhookID uuid.UUID) ([]schema.WebhookProject, error) {
	var links []schema.WebhookProject
	err := s.db.WithContext(ctx).
		Where("webhook_id = ?", webhookID).
		Order("created_at ASC").
		Find(&links).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get webhook projects: %w", err)
	}

	return links, nil
}

// GetWebhooksWithApplicationsByIDs retrieves webhooks joined with their
// organization applications, one directory round trip for the whole set
func (s *pgStore) GetWebhooksWithApplicationsByIDs(ctx context.Context, ids []uuid.UUID) ([]WebhookWithApplication, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var rows []WebhookWithApplication
	err := s.db.WithContext(ctx).
		Table("webhooks").
		Select("webhooks.*, tenant_applications.remote_app_id").
		Joins("JOIN tenant_applications ON tenant_applications.organization_id = webhooks.organization_id").
		Where("webhooks.id IN ?", ids).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get webhooks by ids: %w", err)
	}

	return rows, nil
}

// GetWebhooksWithApplicationsByOrganizations retrieves all webhooks of the
// given organizations joined with their applications
func (s *pgStore) GetWebhooksWithApplicationsByOrganizations(ctx context.Context, organizationIDs []uuid.UUID) ([]WebhookWithApplication, error) {
	if len(organizationIDs) == 0 {
		return nil, nil
	}

	var rows []WebhookWithApplication
	err := s.db.WithContext(ctx).
		Table("webhooks").
		Select("webhooks.*, tenant_applications.remote_app_id").
		Joins("JOIN tenant_applications ON tenant_applications.organization_id = webhooks.organization_id").
		Where("webhooks.organization_id IN ?", organizationIDs).
		Order("webhooks.created_at ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get webhooks by organizations: %w", err)
	}

	return rows, nil
}

// ReplaceWebhookProjects swaps the project links of a webhook and stamps
// its updated_at
func (s *pgStore) ReplaceWebhookProjects(ctx context.Context, webhookID uuid.UUID, projectIDs []uuid.UUID) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("webhook_id = ?", webhookID).Delete(&schema.WebhookProject{}).Error; err != nil {
			return fmt.Errorf("failed to delete webhook project links: %w", err)
		}

		links := webhookProjectLinks(webhookID, projectIDs)
		if len(links) > 0 {
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&links).Error; err != nil {
				return fmt.Errorf("failed to create webhook project links: %w", err)
			}
		}

		now := time.Now()
		result := tx.Model(&schema.Webhook{}).
			Where("id = ?", webhookID).
			Update("updated_at", &now)
		if result.Error != nil {
			return fmt.Errorf("failed to stamp webhook updated_at: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return domain.ErrNotFound
		}

		return nil
	})
}

// DeleteWebhook removes a webhook and its project links
func (s *pgStore) DeleteWebhook(ctx context.Context, id uuid.UUID) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("webhook_id = ?", id).Delete(&schema.WebhookProject{}).Error; err != nil {
			return fmt.Errorf("failed to delete webhook project links: %w", err)
		}

		result := tx.Where("id = ?", id).Delete(&schema.Webhook{})
		if result.Error != nil {
			return fmt.Errorf("failed to delete webhook: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return domain.ErrNotFound
		}

		return nil
	})
}

// RecordBroadcast appends a broadcast audit row, ignoring replays of the
// same event ID
func (s *pgStore) RecordBroadcast(ctx context.Context, record schema.BroadcastRecord) error {
	if err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&record).Error; err != nil {
		return fmt.Errorf("failed to record broadcast: %w", err)
	}

	return nil
}

func webhookProjectLinks(webhookID uuid.UUID, projectIDs []uuid.UUID) []schema.WebhookProject {
	seen := make(map[uuid.UUID]struct{}, len(projectIDs))
	links := make([]schema.WebhookProject, 0, len(projectIDs))
	for _, projectID := range projectIDs {
		if _, ok := seen[projectID]; ok {
			continue
		}
		seen[projectID] = struct{}{}
		links = append(links, schema.WebhookProject{
			WebhookID: webhookID,
			ProjectID: projectID,
		})
	}

	return links
}
