// Package gateway wraps the remote webhook delivery provider. The
// provider owns applications (one per tenant organization), endpoints
// (one per registered webhook), signing secrets, and fan-out of
// submitted messages; this package only provisions those resources and
// hands messages over.
package gateway

import (
	"context"
	"encoding/json"
	"time"
)

// Application is a tenant container at the delivery provider. All
// endpoints and messages of an organization live under one application.
type Application struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	UID       string    `json:"uid,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Endpoint is a registered webhook destination within an application.
type Endpoint struct {
	ID          string    `json:"id"`
	URL         string    `json:"url"`
	Description string    `json:"description,omitempty"`
	Version     int       `json:"version"`
	Disabled    bool      `json:"disabled"`
	RateLimit   *int32    `json:"rateLimit,omitempty"`
	Channels    []string  `json:"channels,omitempty"`
	FilterTypes []string  `json:"filterTypes,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// EndpointParams carries the mutable attributes of an endpoint.
// Channels scope delivery to project IDs; FilterTypes restrict which
// event kinds the endpoint receives.
type EndpointParams struct {
	URL         string   `json:"url"`
	Description string   `json:"description,omitempty"`
	Version     int      `json:"version"`
	Disabled    bool     `json:"disabled"`
	RateLimit   *int32   `json:"rateLimit,omitempty"`
	Channels    []string `json:"channels,omitempty"`
	FilterTypes []string `json:"filterTypes,omitempty"`
}

// Message is a single event submitted for fan-out. Channels carry the
// project scope; the provider matches them against endpoint channels.
type Message struct {
	EventID   string          `json:"eventId,omitempty"`
	EventType string          `json:"eventType"`
	Channels  []string        `json:"channels,omitempty"`
	Payload   json.RawMessage `json:"payload"`
}

// EventType is a catalog entry describing one broadcastable event
// kind, with a versioned JSON schema for consumer documentation.
type EventType struct {
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Schemas     map[string]any `json:"schemas,omitempty"`
	Archived    bool           `json:"archived"`
}

// Gateway defines the delivery provider operations the bridge needs.
// Implementations map provider responses onto the domain error
// taxonomy: missing resources return domain.ErrNotFound, duplicate
// creates return domain.ErrConflict, and anything else that fails
// after retries returns domain.ErrUpstreamFailure.
//
//go:generate mockgen -source=gateway.go -destination=../mocks/gateway.go -package=mocks -mock_names=Gateway=MockGateway
type Gateway interface {
	// CreateApplication provisions a tenant application. The uid is the
	// caller-chosen stable identifier; creating twice with the same uid
	// returns domain.ErrConflict.
	CreateApplication(ctx context.Context, name string, uid string) (*Application, error)

	// GetApplication fetches an application by provider ID or uid.
	GetApplication(ctx context.Context, appID string) (*Application, error)

	// DeleteApplication removes an application and everything under it.
	DeleteApplication(ctx context.Context, appID string) error

	// CreateEndpoint registers a webhook destination under an application.
	CreateEndpoint(ctx context.Context, appID string, params EndpointParams) (*Endpoint, error)

	// GetEndpoint fetches a single endpoint.
	GetEndpoint(ctx context.Context, appID string, endpointID string) (*Endpoint, error)

	// UpdateEndpoint replaces the mutable attributes of an endpoint.
	UpdateEndpoint(ctx context.Context, appID string, endpointID string, params EndpointParams) (*Endpoint, error)

	// DeleteEndpoint removes an endpoint.
	DeleteEndpoint(ctx context.Context, appID string, endpointID string) error

	// GetEndpointSecret returns the endpoint signing secret.
	GetEndpointSecret(ctx context.Context, appID string, endpointID string) (string, error)

	// SendMessage submits one event for fan-out within an application.
	SendMessage(ctx context.Context, appID string, msg Message) error

	// CreateEventType adds a catalog entry. Re-creating an existing
	// entry returns domain.ErrConflict.
	CreateEventType(ctx context.Context, eventType EventType) error

	// ListEventTypes returns the registered catalog.
	ListEventTypes(ctx context.Context) ([]EventType, error)
}
