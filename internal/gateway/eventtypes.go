package gateway

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/creatorhub/webhook-bridge/internal/domain"
	"github.com/creatorhub/webhook-bridge/internal/logger"
)

// eventTypeSchema builds a versioned draft-07 schema entry for a
// payload made of required string properties.
func eventTypeSchema(title string, properties ...string) map[string]any {
	props := make(map[string]any, len(properties))
	for _, p := range properties {
		props[p] = map[string]any{"type": "string"}
	}

	return map[string]any{
		"1": map[string]any{
			"$schema":    "http://json-schema.org/draft-07/schema#",
			"title":      title,
			"type":       "object",
			"properties": props,
			"required":   properties,
		},
	}
}

// EventTypeCatalog returns the full catalog of broadcastable event
// types, one per domain.EventKind, with consumer-facing schemas.
func EventTypeCatalog() []EventType {
	return []EventType{
		{
			Name:        domain.EventKindProjectCreated.String(),
			Description: "A project was created",
			Schemas:     eventTypeSchema("ProjectCreated", "project_id", "organization_id"),
		},
		{
			Name:        domain.EventKindCustomerCreated.String(),
			Description: "A customer was created",
			Schemas:     eventTypeSchema("CustomerCreated", "customer_id", "project_id"),
		},
		{
			Name:        domain.EventKindCustomerTreasuryCreated.String(),
			Description: "A customer treasury was created",
			Schemas:     eventTypeSchema("CustomerTreasuryCreated", "treasury_id", "project_id", "customer_id"),
		},
		{
			Name:        domain.EventKindCustomerWalletCreated.String(),
			Description: "A customer treasury wallet was created",
			Schemas:     eventTypeSchema("CustomerWalletCreated", "treasury_id", "project_id", "customer_id"),
		},
		{
			Name:        domain.EventKindProjectWalletCreated.String(),
			Description: "A project treasury wallet was created",
			Schemas:     eventTypeSchema("ProjectWalletCreated", "treasury_id", "project_id"),
		},
		{
			Name:        domain.EventKindDropCreated.String(),
			Description: "A drop was created",
			Schemas:     eventTypeSchema("DropCreated", "drop_id", "project_id", "creation_status"),
		},
		{
			Name:        domain.EventKindDropMinted.String(),
			Description: "An edition was minted from a drop",
			Schemas:     eventTypeSchema("DropMinted", "mint_id", "drop_id", "project_id", "creation_status"),
		},
		{
			Name:        domain.EventKindMintTransfered.String(),
			Description: "A mint was transferred to a new owner",
			Schemas:     eventTypeSchema("MintTransfered", "project_id", "mint_id", "sender", "recipient"),
		},
		{
			Name:        domain.EventKindCollectionCreated.String(),
			Description: "A collection was created",
			Schemas:     eventTypeSchema("CollectionCreated", "collection_id", "project_id", "status"),
		},
		{
			Name:        domain.EventKindMintedToCollection.String(),
			Description: "A mint was added to a collection",
			Schemas:     eventTypeSchema("MintedToCollection", "mint_id", "collection_id", "project_id", "status"),
		},
	}
}

// RegisterEventTypes pushes the catalog to the delivery provider at
// startup. Entries that already exist are left untouched.
func RegisterEventTypes(ctx context.Context, g Gateway) error {
	for _, eventType := range EventTypeCatalog() {
		err := g.CreateEventType(ctx, eventType)
		if errors.Is(err, domain.ErrConflict) {
			logger.DebugCtx(ctx, "event type already registered", zap.String("name", eventType.Name))
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to register event type %s: %w", eventType.Name, err)
		}
		logger.InfoCtx(ctx, "registered event type", zap.String("name", eventType.Name))
	}

	return nil
}
