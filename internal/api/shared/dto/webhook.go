package dto

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/creatorhub/webhook-bridge/internal/domain"
	"github.com/creatorhub/webhook-bridge/internal/gateway"
	"github.com/creatorhub/webhook-bridge/internal/loader"
)

// CreateWebhookRequest is the payload for registering a new webhook
type CreateWebhookRequest struct {
	URL            string    `json:"url" binding:"required,url"`
	OrganizationID uuid.UUID `json:"organization_id" binding:"required"`
	Description    string    `json:"description"`
	Projects       []string  `json:"projects"`
	FilterTypes    []string  `json:"filter_types"`
}

// Validate checks fields the binding tags cannot express
func (r *CreateWebhookRequest) Validate() error {
	if r.OrganizationID == uuid.Nil {
		return fmt.Errorf("organization_id must not be empty")
	}
	return validateFilterTypes(r.FilterTypes)
}

// EditWebhookRequest is the payload for updating an existing webhook.
// Pointer fields distinguish "leave unchanged" from "set to zero value".
type EditWebhookRequest struct {
	URL         *string  `json:"url,omitempty" binding:"omitempty,url"`
	Description *string  `json:"description,omitempty"`
	Disabled    *bool    `json:"disabled,omitempty"`
	RateLimit   *int32   `json:"rate_limit,omitempty"`
	Projects    []string `json:"projects,omitempty"`
	FilterTypes []string `json:"filter_types,omitempty"`
}

// Validate checks fields the binding tags cannot express
func (r *EditWebhookRequest) Validate() error {
	if r.RateLimit != nil && *r.RateLimit <= 0 {
		return fmt.Errorf("rate_limit must be positive")
	}
	return validateFilterTypes(r.FilterTypes)
}

func validateFilterTypes(filterTypes []string) error {
	for _, ft := range filterTypes {
		if _, err := domain.ParseEventKind(ft); err != nil {
			return fmt.Errorf("unknown filter type %q", ft)
		}
	}
	return nil
}

// WebhookResponse is the API representation of a registered webhook,
// combining the directory row with its remote endpoint state
type WebhookResponse struct {
	ID             uuid.UUID  `json:"id"`
	OrganizationID uuid.UUID  `json:"organization_id"`
	URL            string     `json:"url"`
	Description    string     `json:"description,omitempty"`
	Disabled       bool       `json:"disabled"`
	RateLimit      *int32     `json:"rate_limit,omitempty"`
	Projects       []string   `json:"projects"`
	FilterTypes    []string   `json:"filter_types,omitempty"`
	Secret         string     `json:"secret,omitempty"` // only returned on creation
	CreatedBy      uuid.UUID  `json:"created_by"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      *time.Time `json:"updated_at,omitempty"`
}

// WebhookListResponse wraps a collection of webhooks
type WebhookListResponse struct {
	Webhooks []WebhookResponse `json:"webhooks"`
}

// EventTypeResponse describes a broadcastable event type
type EventTypeResponse struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// EventTypeListResponse wraps the event type catalog
type EventTypeListResponse struct {
	EventTypes []EventTypeResponse `json:"event_types"`
}

// MapWebhookToDTO merges a resolved webhook with its remote endpoint state
func MapWebhookToDTO(resolved loader.ResolvedWebhook) *WebhookResponse {
	return mapWebhookToDTO(resolved.Webhook.ID, resolved.Webhook.OrganizationID,
		resolved.Webhook.CreatedBy, resolved.Webhook.CreatedAt, resolved.Webhook.UpdatedAt,
		resolved.Endpoint)
}

func mapWebhookToDTO(id, orgID, createdBy uuid.UUID, createdAt time.Time, updatedAt *time.Time, endpoint gateway.Endpoint) *WebhookResponse {
	projects := endpoint.Channels
	if projects == nil {
		projects = []string{}
	}
	return &WebhookResponse{
		ID:             id,
		OrganizationID: orgID,
		URL:            endpoint.URL,
		Description:    endpoint.Description,
		Disabled:       endpoint.Disabled,
		RateLimit:      endpoint.RateLimit,
		Projects:       projects,
		FilterTypes:    endpoint.FilterTypes,
		CreatedBy:      createdBy,
		CreatedAt:      createdAt,
		UpdatedAt:      updatedAt,
	}
}
