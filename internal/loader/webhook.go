package loader

import (
	"context"
	"fmt"

	"github.com/alitto/pond/v2"
	"github.com/google/uuid"

	"github.com/creatorhub/webhook-bridge/internal/gateway"
	"github.com/creatorhub/webhook-bridge/internal/store"
	"github.com/creatorhub/webhook-bridge/internal/store/schema"
)

// defaultFetchConcurrency bounds the endpoint fetch burst per batch.
const defaultFetchConcurrency = 8

// ResolvedWebhook pairs a stored webhook row with the live endpoint
// state fetched from the delivery provider.
type ResolvedWebhook struct {
	Webhook     schema.Webhook
	RemoteAppID string
	Endpoint    gateway.Endpoint
}

// Loaders builds per-request batches over the tenant directory and the
// delivery provider.
type Loaders struct {
	store            store.Store
	gateway          gateway.Gateway
	fetchConcurrency int
}

// New creates the loader factory.
func New(st store.Store, gw gateway.Gateway) *Loaders {
	return &Loaders{
		store:            st,
		gateway:          gw,
		fetchConcurrency: defaultFetchConcurrency,
	}
}

// ByID returns a fresh batch resolving webhook IDs. IDs that do not
// exist are simply absent from the results.
func (l *Loaders) ByID() *Batch[uuid.UUID, ResolvedWebhook] {
	return NewBatch(l.loadByIDs)
}

// ByOrganization returns a fresh batch resolving organization IDs to
// their webhooks, ordered by creation time. Organizations without
// webhooks resolve to an empty slice.
func (l *Loaders) ByOrganization() *Batch[uuid.UUID, []ResolvedWebhook] {
	return NewBatch(l.loadByOrganizations)
}

func (l *Loaders) loadByIDs(ctx context.Context, keys []uuid.UUID) (map[uuid.UUID]ResolvedWebhook, error) {
	rows, err := l.store.GetWebhooksWithApplicationsByIDs(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("failed to load webhooks: %w", err)
	}

	resolved, err := l.resolveEndpoints(ctx, rows)
	if err != nil {
		return nil, err
	}

	results := make(map[uuid.UUID]ResolvedWebhook, len(resolved))
	for _, rw := range resolved {
		results[rw.Webhook.ID] = rw
	}

	return results, nil
}

func (l *Loaders) loadByOrganizations(ctx context.Context, keys []uuid.UUID) (map[uuid.UUID][]ResolvedWebhook, error) {
	rows, err := l.store.GetWebhooksWithApplicationsByOrganizations(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("failed to load webhooks: %w", err)
	}

	resolved, err := l.resolveEndpoints(ctx, rows)
	if err != nil {
		return nil, err
	}

	// Requested organizations always get an entry so absence is
	// distinguishable from an unrequested key
	results := make(map[uuid.UUID][]ResolvedWebhook, len(keys))
	for _, key := range keys {
		results[key] = []ResolvedWebhook{}
	}
	for _, rw := range resolved {
		orgID := rw.Webhook.OrganizationID
		results[orgID] = append(results[orgID], rw)
	}

	return results, nil
}

// resolveEndpoints fetches the endpoint of every row in one parallel
// burst. The first fetch failure fails the whole batch.
func (l *Loaders) resolveEndpoints(ctx context.Context, rows []store.WebhookWithApplication) ([]ResolvedWebhook, error) {
	if len(rows) == 0 {
		return nil, nil
	}

	resolved := make([]ResolvedWebhook, len(rows))

	pool := pond.NewPool(l.fetchConcurrency, pond.WithContext(ctx))
	defer pool.StopAndWait()

	group := pool.NewGroup()
	for i, row := range rows {
		group.SubmitErr(func() error {
			endpoint, err := l.gateway.GetEndpoint(ctx, row.RemoteAppID, row.EndpointID)
			if err != nil {
				return fmt.Errorf("failed to fetch endpoint %s: %w", row.EndpointID, err)
			}

			resolved[i] = ResolvedWebhook{
				Webhook:     row.Webhook,
				RemoteAppID: row.RemoteAppID,
				Endpoint:    *endpoint,
			}
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return resolved, nil
}
