package executor

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/creatorhub/webhook-bridge/internal/api/shared/dto"
	apierrors "github.com/creatorhub/webhook-bridge/internal/api/shared/errors"
	"github.com/creatorhub/webhook-bridge/internal/domain"
	"github.com/creatorhub/webhook-bridge/internal/gateway"
	"github.com/creatorhub/webhook-bridge/internal/loader"
	"github.com/creatorhub/webhook-bridge/internal/logger"
	"github.com/creatorhub/webhook-bridge/internal/store"
	"github.com/creatorhub/webhook-bridge/internal/store/schema"
)

// Executor is the interface for the API executor
//
//go:generate mockgen -source=executor.go -destination=../../../mocks/mock_api_executor.go -package=mocks -mock_names=Executor=MockAPIExecutor
type Executor interface {
	// CreateWebhook registers a webhook endpoint at the delivery provider
	// and records it in the directory. The response carries the signing
	// secret; it is not returned again afterwards.
	CreateWebhook(ctx context.Context, actorID uuid.UUID, req *dto.CreateWebhookRequest) (*dto.WebhookResponse, error)

	// EditWebhook updates the remote endpoint and, when the request names
	// projects, replaces the webhook's project subscriptions.
	EditWebhook(ctx context.Context, webhookID uuid.UUID, req *dto.EditWebhookRequest) (*dto.WebhookResponse, error)

	// DeleteWebhook removes the remote endpoint first and then the
	// directory row. When the provider refuses, the row is kept so the
	// deletion can be retried.
	DeleteWebhook(ctx context.Context, webhookID uuid.UUID) error

	// GetWebhook retrieves a single webhook merged with its remote
	// endpoint state. Returns (nil, nil) when absent.
	GetWebhook(ctx context.Context, webhookID uuid.UUID) (*dto.WebhookResponse, error)

	// ListWebhooks retrieves webhooks by ID. Unknown IDs are omitted.
	ListWebhooks(ctx context.Context, ids []uuid.UUID) (*dto.WebhookListResponse, error)

	// ListOrganizationWebhooks retrieves every webhook of an organization.
	ListOrganizationWebhooks(ctx context.Context, organizationID uuid.UUID) (*dto.WebhookListResponse, error)

	// ListEventTypes returns the broadcastable event type catalog.
	ListEventTypes(ctx context.Context) (*dto.EventTypeListResponse, error)
}

// endpointVersion is the payload schema version stamped on every
// endpoint the bridge provisions.
const endpointVersion = 1

type executor struct {
	store   store.Store
	gateway gateway.Gateway
	loaders *loader.Loaders
}

func NewExecutor(st store.Store, gw gateway.Gateway) Executor {
	return &executor{
		store:   st,
		gateway: gw,
		loaders: loader.New(st, gw),
	}
}

func (e *executor) CreateWebhook(ctx context.Context, actorID uuid.UUID, req *dto.CreateWebhookRequest) (*dto.WebhookResponse, error) {
	projectIDs, err := parseProjectIDs(req.Projects)
	if err != nil {
		return nil, apierrors.NewValidationError(err.Error())
	}

	app, err := e.store.GetTenantApplicationByOrganization(ctx, req.OrganizationID)
	if err != nil {
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to look up organization application: %v", err))
	}
	if app == nil {
		return nil, apierrors.NewNotFoundError("Organization has no provisioned application",
			fmt.Sprintf("organization %s", req.OrganizationID))
	}

	endpoint, err := e.gateway.CreateEndpoint(ctx, app.RemoteAppID, gateway.EndpointParams{
		URL:         req.URL,
		Description: req.Description,
		Version:     endpointVersion,
		Channels:    req.Projects,
		FilterTypes: req.FilterTypes,
	})
	if err != nil {
		return nil, apierrors.FromDomain(err)
	}

	secret, err := e.gateway.GetEndpointSecret(ctx, app.RemoteAppID, endpoint.ID)
	if err != nil {
		return nil, apierrors.FromDomain(err)
	}

	created, err := e.store.CreateWebhook(ctx, schema.Webhook{
		EndpointID:     endpoint.ID,
		OrganizationID: req.OrganizationID,
		CreatedBy:      actorID,
	}, projectIDs)
	if err != nil {
		// The endpoint was provisioned but never recorded; remove it so a
		// retried create does not leave orphans at the provider.
		if delErr := e.gateway.DeleteEndpoint(ctx, app.RemoteAppID, endpoint.ID); delErr != nil {
			logger.WarnCtx(ctx, "failed to roll back orphaned endpoint",
				zap.String("endpoint_id", endpoint.ID),
				zap.Error(delErr),
			)
		}
		return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to record webhook: %v", err))
	}

	resp := dto.MapWebhookToDTO(loader.ResolvedWebhook{
		Webhook:     *created,
		RemoteAppID: app.RemoteAppID,
		Endpoint:    *endpoint,
	})
	resp.Secret = secret
	return resp, nil
}

func (e *executor) EditWebhook(ctx context.Context, webhookID uuid.UUID, req *dto.EditWebhookRequest) (*dto.WebhookResponse, error) {
	projectIDs, err := parseProjectIDs(req.Projects)
	if err != nil {
		return nil, apierrors.NewValidationError(err.Error())
	}

	webhook, app, err := e.resolveWebhook(ctx, webhookID)
	if err != nil {
		return nil, err
	}

	current, err := e.gateway.GetEndpoint(ctx, app.RemoteAppID, webhook.EndpointID)
	if err != nil {
		return nil, apierrors.FromDomain(err)
	}

	// Merge the request over the current endpoint state; absent fields
	// stay as they are.
	params := gateway.EndpointParams{
		URL:         current.URL,
		Description: current.Description,
		Version:     current.Version,
		Disabled:    current.Disabled,
		RateLimit:   current.RateLimit,
		Channels:    current.Channels,
		FilterTypes: current.FilterTypes,
	}
	if req.URL != nil {
		params.URL = *req.URL
	}
	if req.Description != nil {
		params.Description = *req.Description
	}
	if req.Disabled != nil {
		params.Disabled = *req.Disabled
	}
	if req.RateLimit != nil {
		params.RateLimit = req.RateLimit
	}
	if req.Projects != nil {
		params.Channels = req.Projects
	}
	if req.FilterTypes != nil {
		params.FilterTypes = req.FilterTypes
	}

	updated, err := e.gateway.UpdateEndpoint(ctx, app.RemoteAppID, webhook.EndpointID, params)
	if err != nil {
		return nil, apierrors.FromDomain(err)
	}

	if req.Projects != nil {
		if err := e.store.ReplaceWebhookProjects(ctx, webhookID, projectIDs); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, apierrors.NewNotFoundError("Webhook not found", webhookID.String())
			}
			return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to replace webhook projects: %v", err))
		}
		// Pick up the stamped updated_at
		if webhook, err = e.store.GetWebhookByID(ctx, webhookID); err != nil || webhook == nil {
			return nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to reload webhook: %v", err))
		}
	}

	return dto.MapWebhookToDTO(loader.ResolvedWebhook{
		Webhook:     *webhook,
		RemoteAppID: app.RemoteAppID,
		Endpoint:    *updated,
	}), nil
}

func (e *executor) DeleteWebhook(ctx context.Context, webhookID uuid.UUID) error {
	webhook, app, err := e.resolveWebhook(ctx, webhookID)
	if err != nil {
		return err
	}

	// Remote endpoint goes first. If the provider refuses, the directory
	// row stays so the deletion can be retried later; an endpoint the
	// provider no longer knows about is treated as already removed.
	if err := e.gateway.DeleteEndpoint(ctx, app.RemoteAppID, webhook.EndpointID); err != nil &&
		!errors.Is(err, domain.ErrNotFound) {
		return apierrors.FromDomain(err)
	}

	if err := e.store.DeleteWebhook(ctx, webhookID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apierrors.NewNotFoundError("Webhook not found", webhookID.String())
		}
		return apierrors.NewDatabaseError(fmt.Sprintf("Failed to delete webhook: %v", err))
	}
	return nil
}

func (e *executor) GetWebhook(ctx context.Context, webhookID uuid.UUID) (*dto.WebhookResponse, error) {
	resolved, ok, err := e.loaders.ByID().Load(ctx, webhookID)
	if err != nil {
		return nil, apierrors.FromDomain(err)
	}
	if !ok {
		return nil, nil
	}
	return dto.MapWebhookToDTO(resolved), nil
}

func (e *executor) ListWebhooks(ctx context.Context, ids []uuid.UUID) (*dto.WebhookListResponse, error) {
	batch := e.loaders.ByID()
	batch.Add(ids...)
	if err := batch.Resolve(ctx); err != nil {
		return nil, apierrors.FromDomain(err)
	}

	webhooks := make([]dto.WebhookResponse, 0, len(ids))
	seen := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if resolved, ok := batch.Get(id); ok {
			webhooks = append(webhooks, *dto.MapWebhookToDTO(resolved))
		}
	}
	return &dto.WebhookListResponse{Webhooks: webhooks}, nil
}

func (e *executor) ListOrganizationWebhooks(ctx context.Context, organizationID uuid.UUID) (*dto.WebhookListResponse, error) {
	resolved, _, err := e.loaders.ByOrganization().Load(ctx, organizationID)
	if err != nil {
		return nil, apierrors.FromDomain(err)
	}

	webhooks := make([]dto.WebhookResponse, 0, len(resolved))
	for _, r := range resolved {
		webhooks = append(webhooks, *dto.MapWebhookToDTO(r))
	}
	return &dto.WebhookListResponse{Webhooks: webhooks}, nil
}

func (e *executor) ListEventTypes(ctx context.Context) (*dto.EventTypeListResponse, error) {
	eventTypes, err := e.gateway.ListEventTypes(ctx)
	if err != nil {
		return nil, apierrors.FromDomain(err)
	}

	entries := make([]dto.EventTypeResponse, 0, len(eventTypes))
	for _, et := range eventTypes {
		if et.Archived {
			continue
		}
		entries = append(entries, dto.EventTypeResponse{
			Name:        et.Name,
			Description: et.Description,
		})
	}
	return &dto.EventTypeListResponse{EventTypes: entries}, nil
}

// resolveWebhook loads a webhook row and its organization application.
// A webhook whose organization lost its application is inconsistent
// directory state, not a user error.
func (e *executor) resolveWebhook(ctx context.Context, webhookID uuid.UUID) (*schema.Webhook, *schema.TenantApplication, error) {
	webhook, err := e.store.GetWebhookByID(ctx, webhookID)
	if err != nil {
		return nil, nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to get webhook: %v", err))
	}
	if webhook == nil {
		return nil, nil, apierrors.NewNotFoundError("Webhook not found", webhookID.String())
	}

	app, err := e.store.GetTenantApplicationByOrganization(ctx, webhook.OrganizationID)
	if err != nil {
		return nil, nil, apierrors.NewDatabaseError(fmt.Sprintf("Failed to look up organization application: %v", err))
	}
	if app == nil {
		return nil, nil, apierrors.NewDataIntegrityError("Webhook organization has no application",
			fmt.Sprintf("organization %s", webhook.OrganizationID))
	}
	return webhook, app, nil
}

func parseProjectIDs(projects []string) ([]uuid.UUID, error) {
	projectIDs := make([]uuid.UUID, 0, len(projects))
	for _, p := range projects {
		id, err := uuid.Parse(p)
		if err != nil {
			return nil, fmt.Errorf("invalid project ID %q", p)
		}
		projectIDs = append(projectIDs, id)
	}
	return projectIDs, nil
}
