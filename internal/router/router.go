// Package router consumes tenant domain events and routes them: an
// organization creation provisions a delivery application for the
// tenant, everything else is broadcast to the channel of the project
// it concerns.
package router

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/creatorhub/webhook-bridge/internal/adapter"
	"github.com/creatorhub/webhook-bridge/internal/domain"
	"github.com/creatorhub/webhook-bridge/internal/gateway"
	"github.com/creatorhub/webhook-bridge/internal/logger"
	"github.com/creatorhub/webhook-bridge/internal/store"
	"github.com/creatorhub/webhook-bridge/internal/store/schema"
)

// ErrMalformedRecord marks stream records that can never be processed:
// undecodable key or value bytes, or identifiers that fail validation.
// Consumers terminate these instead of requesting redelivery.
var ErrMalformedRecord = errors.New("malformed stream record")

// Router dispatches decoded stream records.
type Router struct {
	store   store.Store
	gateway gateway.Gateway
	json    adapter.JSON
}

// New creates a router.
func New(st store.Store, gw gateway.Gateway, jsonAdapter adapter.JSON) *Router {
	return &Router{
		store:   st,
		gateway: gw,
		json:    jsonAdapter,
	}
}

// Dispatch decodes one stream record per its topic and routes it.
// Records carrying variants the bridge does not handle are skipped
// silently; that is the normal case for shared service streams.
func (r *Router) Dispatch(ctx context.Context, env domain.Envelope) error {
	switch env.Topic {
	case domain.TopicOrganizations:
		var key domain.OrganizationEventKey
		var events domain.OrganizationEvents
		if err := r.decodeRecord(env, &key, &events); err != nil {
			return err
		}
		return r.handleOrganizationEvent(ctx, key, events)

	case domain.TopicCustomers:
		var key domain.CustomerEventKey
		var events domain.CustomerEvents
		if err := r.decodeRecord(env, &key, &events); err != nil {
			return err
		}
		return r.handleCustomerEvent(ctx, key, events)

	case domain.TopicTreasuries:
		var key domain.TreasuryEventKey
		var events domain.TreasuryEvents
		if err := r.decodeRecord(env, &key, &events); err != nil {
			return err
		}
		return r.handleTreasuryEvent(ctx, key, events)

	case domain.TopicNfts:
		var key domain.NftEventKey
		var events domain.NftEvents
		if err := r.decodeRecord(env, &key, &events); err != nil {
			return err
		}
		return r.handleNftEvent(ctx, key, events)

	default:
		return fmt.Errorf("%w: %s", domain.ErrUnknownTopic, env.Topic)
	}
}

func (r *Router) decodeRecord(env domain.Envelope, key any, value any) error {
	if err := r.json.Unmarshal(env.Key, key); err != nil {
		return fmt.Errorf("%w: undecodable key on %s: %v", ErrMalformedRecord, env.Topic, err)
	}
	if err := r.json.Unmarshal(env.Value, value); err != nil {
		return fmt.Errorf("%w: undecodable value on %s: %v", ErrMalformedRecord, env.Topic, err)
	}

	return nil
}

func (r *Router) handleOrganizationEvent(ctx context.Context, key domain.OrganizationEventKey, events domain.OrganizationEvents) error {
	if events.OrganizationCreated == nil {
		logger.DebugCtx(ctx, "skipping unhandled organization event", zap.String("organization_id", key.ID))
		return nil
	}

	org := *events.OrganizationCreated
	if org.ID == "" {
		org.ID = key.ID
	}

	return r.provisionTenant(ctx, org)
}

func (r *Router) handleCustomerEvent(ctx context.Context, key domain.CustomerEventKey, events domain.CustomerEvents) error {
	if events.Created == nil {
		logger.DebugCtx(ctx, "skipping unhandled customer event", zap.String("customer_id", key.ID))
		return nil
	}

	return r.broadcast(ctx, events.Created.ProjectID, domain.EventKindCustomerCreated, domain.CustomerCreatedPayload{
		CustomerID: key.ID,
		ProjectID:  events.Created.ProjectID,
	})
}

func (r *Router) handleTreasuryEvent(ctx context.Context, key domain.TreasuryEventKey, events domain.TreasuryEvents) error {
	switch {
	case events.CustomerTreasuryCreated != nil:
		v := events.CustomerTreasuryCreated
		return r.broadcast(ctx, v.ProjectID, domain.EventKindCustomerTreasuryCreated, domain.CustomerTreasuryCreatedPayload{
			TreasuryID: key.ID,
			ProjectID:  v.ProjectID,
			CustomerID: v.CustomerID,
		})

	case events.CustomerWalletCreated != nil:
		v := events.CustomerWalletCreated
		return r.broadcast(ctx, v.ProjectID, domain.EventKindCustomerWalletCreated, domain.CustomerWalletCreatedPayload{
			TreasuryID: key.ID,
			ProjectID:  v.ProjectID,
			CustomerID: v.CustomerID,
		})

	case events.ProjectWalletCreated != nil:
		v := events.ProjectWalletCreated
		return r.broadcast(ctx, v.ProjectID, domain.EventKindProjectWalletCreated, domain.ProjectWalletCreatedPayload{
			TreasuryID: key.ID,
			ProjectID:  v.ProjectID,
		})

	case events.MintTransfered != nil:
		v := events.MintTransfered
		return r.broadcast(ctx, v.ProjectID, domain.EventKindMintTransfered, domain.MintTransferedPayload{
			ProjectID: v.ProjectID,
			MintID:    v.MintID,
			Sender:    v.Sender,
			Recipient: v.Recipient,
		})

	default:
		logger.DebugCtx(ctx, "skipping unhandled treasury event", zap.String("treasury_id", key.ID))
		return nil
	}
}

func (r *Router) handleNftEvent(ctx context.Context, key domain.NftEventKey, events domain.NftEvents) error {
	switch {
	case events.DropCreated != nil:
		status, err := creationStatus(events.DropCreated.Status)
		if err != nil {
			return err
		}
		return r.broadcast(ctx, key.ProjectID, domain.EventKindDropCreated, domain.DropCreatedPayload{
			DropID:         key.ID,
			ProjectID:      key.ProjectID,
			CreationStatus: status,
		})

	case events.DropMinted != nil:
		status, err := creationStatus(events.DropMinted.Status)
		if err != nil {
			return err
		}
		return r.broadcast(ctx, key.ProjectID, domain.EventKindDropMinted, domain.DropMintedPayload{
			MintID:         key.ID,
			DropID:         events.DropMinted.DropID,
			ProjectID:      key.ProjectID,
			CreationStatus: status,
		})

	case events.CollectionCreated != nil:
		status, err := creationStatus(events.CollectionCreated.Status)
		if err != nil {
			return err
		}
		return r.broadcast(ctx, key.ProjectID, domain.EventKindCollectionCreated, domain.CollectionCreatedPayload{
			CollectionID: key.ID,
			ProjectID:    key.ProjectID,
			Status:       status,
		})

	case events.MintedToCollection != nil:
		status, err := creationStatus(events.MintedToCollection.Status)
		if err != nil {
			return err
		}
		return r.broadcast(ctx, key.ProjectID, domain.EventKindMintedToCollection, domain.MintedToCollectionPayload{
			MintID:       key.ID,
			CollectionID: events.MintedToCollection.CollectionID,
			ProjectID:    key.ProjectID,
			Status:       status,
		})

	default:
		logger.DebugCtx(ctx, "skipping unhandled nft event", zap.String("id", key.ID))
		return nil
	}
}

func creationStatus(status string) (string, error) {
	if status == "" {
		return "", fmt.Errorf("%w: %w", ErrMalformedRecord, domain.ErrMissingStatus)
	}

	return status, nil
}

// provisionTenant creates the delivery application for a new
// organization and records it in the tenant directory. Replays are
// idempotent: a conflict at the provider resolves to the existing
// application, and the directory upsert ignores duplicates.
func (r *Router) provisionTenant(ctx context.Context, org domain.Organization) error {
	orgID, err := uuid.Parse(org.ID)
	if err != nil {
		return fmt.Errorf("%w: invalid organization id %q: %v", ErrMalformedRecord, org.ID, err)
	}

	app, err := r.gateway.CreateApplication(ctx, org.Name, org.ID)
	if errors.Is(err, domain.ErrConflict) {
		app, err = r.gateway.GetApplication(ctx, org.ID)
	}
	if err != nil {
		return fmt.Errorf("failed to provision application for organization %s: %w", org.ID, err)
	}

	if err := r.store.UpsertTenantApplication(ctx, schema.TenantApplication{
		RemoteAppID:    app.ID,
		OrganizationID: orgID,
	}); err != nil {
		return err
	}

	logger.InfoCtx(ctx, "provisioned tenant application",
		zap.String("organization_id", org.ID),
		zap.String("remote_app_id", app.ID))

	return nil
}

// broadcast submits one event to the application subscribed to the
// project, scoped to the project channel.
func (r *Router) broadcast(ctx context.Context, projectID string, kind domain.EventKind, payload any) error {
	pid, err := uuid.Parse(projectID)
	if err != nil {
		return fmt.Errorf("%w: invalid project id %q: %v", ErrMalformedRecord, projectID, err)
	}

	app, err := r.store.GetTenantApplicationForProject(ctx, pid)
	if err != nil {
		return fmt.Errorf("failed to resolve application for project %s: %w", projectID, err)
	}
	if app == nil {
		return fmt.Errorf("project %s: %w", projectID, domain.ErrNoSubscribers)
	}

	envelope, err := r.json.Marshal(domain.Event{EventType: kind, Payload: payload})
	if err != nil {
		return fmt.Errorf("failed to encode event envelope: %w", err)
	}

	eventID := ulid.Make().String()
	if err := r.gateway.SendMessage(ctx, app.RemoteAppID, gateway.Message{
		EventID:   eventID,
		EventType: kind.String(),
		Channels:  []string{projectID},
		Payload:   envelope,
	}); err != nil {
		return fmt.Errorf("failed to submit %s for project %s: %w", kind, projectID, err)
	}

	// Best effort: the provider already accepted the event, a failed
	// audit write must not trigger redelivery
	if err := r.store.RecordBroadcast(ctx, schema.BroadcastRecord{
		EventID:     eventID,
		EventType:   kind.String(),
		ProjectID:   pid,
		RemoteAppID: app.RemoteAppID,
		Payload:     datatypes.JSON(envelope),
	}); err != nil {
		logger.WarnCtx(ctx, "failed to record broadcast",
			zap.Error(err),
			zap.String("event_id", eventID))
	}

	logger.InfoCtx(ctx, "broadcast submitted",
		zap.String("event_id", eventID),
		zap.String("event_type", kind.String()),
		zap.String("project_id", projectID),
		zap.String("remote_app_id", app.RemoteAppID))

	return nil
}
