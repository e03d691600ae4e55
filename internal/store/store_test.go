package store

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/creatorhub/webhook-bridge/internal/domain"
	"github.com/creatorhub/webhook-bridge/internal/store/schema"
)

// =============================================================================
// Test Data Builders
// =============================================================================

func buildTestApplication(remoteAppID string) schema.TenantApplication {
	return schema.TenantApplication{
		RemoteAppID:    remoteAppID,
		OrganizationID: uuid.New(),
	}
}

func buildTestWebhook(organizationID uuid.UUID, endpointID string) schema.Webhook {
	return schema.Webhook{
		EndpointID:     endpointID,
		OrganizationID: organizationID,
		CreatedBy:      uuid.New(),
	}
}

// seedApplication inserts an application and fails the test on error
func seedApplication(t *testing.T, s Store, app schema.TenantApplication) {
	t.Helper()
	require.NoError(t, s.UpsertTenantApplication(context.Background(), app))
}

// seedWebhook inserts a webhook with project links and returns it
func seedWebhook(t *testing.T, s Store, webhook schema.Webhook, projectIDs ...uuid.UUID) *schema.Webhook {
	t.Helper()
	created, err := s.CreateWebhook(context.Background(), webhook, projectIDs)
	require.NoError(t, err)
	require.NotNil(t, created)
	return created
}

// =============================================================================
// Suite
// =============================================================================

// RunStoreTests runs the full store test suite against the given store
// factory. Each test receives a fresh store.
func RunStoreTests(t *testing.T, initDB func(t *testing.T) Store) {
	t.Run("UpsertTenantApplication", func(t *testing.T) { testUpsertTenantApplication(t, initDB(t)) })
	t.Run("GetTenantApplicationByOrganization", func(t *testing.T) { testGetTenantApplicationByOrganization(t, initDB(t)) })
	t.Run("GetTenantApplicationForProject", func(t *testing.T) { testGetTenantApplicationForProject(t, initDB(t)) })
	t.Run("CreateWebhook", func(t *testing.T) { testCreateWebhook(t, initDB(t)) })
	t.Run("GetWebhooksWithApplicationsByIDs", func(t *testing.T) { testGetWebhooksWithApplicationsByIDs(t, initDB(t)) })
	t.Run("GetWebhooksWithApplicationsByOrganizations", func(t *testing.T) { testGetWebhooksWithApplicationsByOrganizations(t, initDB(t)) })
	t.Run("ReplaceWebhookProjects", func(t *testing.T) { testReplaceWebhookProjects(t, initDB(t)) })
	t.Run("DeleteWebhook", func(t *testing.T) { testDeleteWebhook(t, initDB(t)) })
	t.Run("RecordBroadcast", func(t *testing.T) { testRecordBroadcast(t, initDB(t)) })
}

func testUpsertTenantApplication(t *testing.T, s Store) {
	ctx := context.Background()
	app := buildTestApplication("app_one")

	require.NoError(t, s.UpsertTenantApplication(ctx, app))

	// Replaying the same application must be a no-op
	require.NoError(t, s.UpsertTenantApplication(ctx, app))

	got, err := s.GetTenantApplicationByOrganization(ctx, app.OrganizationID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, app.RemoteAppID, got.RemoteAppID)
	assert.Equal(t, app.OrganizationID, got.OrganizationID)
	assert.False(t, got.CreatedAt.IsZero())

	// A second application for the same organization must not replace
	// the directory entry
	require.NoError(t, s.UpsertTenantApplication(ctx, schema.TenantApplication{
		RemoteAppID:    "app_two",
		OrganizationID: app.OrganizationID,
	}))

	got, err = s.GetTenantApplicationByOrganization(ctx, app.OrganizationID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "app_one", got.RemoteAppID)
}

func testGetTenantApplicationByOrganization(t *testing.T, s Store) {
	ctx := context.Background()

	got, err := s.GetTenantApplicationByOrganization(ctx, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func testGetTenantApplicationForProject(t *testing.T, s Store) {
	ctx := context.Background()

	t.Run("no subscriptions", func(t *testing.T) {
		got, err := s.GetTenantApplicationForProject(ctx, uuid.New())
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("single application", func(t *testing.T) {
		app := buildTestApplication("app_project_single")
		seedApplication(t, s, app)

		projectID := uuid.New()
		seedWebhook(t, s, buildTestWebhook(app.OrganizationID, "ep_1"), projectID)

		got, err := s.GetTenantApplicationForProject(ctx, projectID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, app.RemoteAppID, got.RemoteAppID)
	})

	t.Run("several webhooks of one organization collapse to one application", func(t *testing.T) {
		app := buildTestApplication("app_project_dedup")
		seedApplication(t, s, app)

		projectID := uuid.New()
		seedWebhook(t, s, buildTestWebhook(app.OrganizationID, "ep_2"), projectID)
		seedWebhook(t, s, buildTestWebhook(app.OrganizationID, "ep_3"), projectID)

		got, err := s.GetTenantApplicationForProject(ctx, projectID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, app.RemoteAppID, got.RemoteAppID)
	})

	t.Run("two organizations claiming one project is a data fault", func(t *testing.T) {
		appA := buildTestApplication("app_project_a")
		appB := buildTestApplication("app_project_b")
		seedApplication(t, s, appA)
		seedApplication(t, s, appB)

		projectID := uuid.New()
		seedWebhook(t, s, buildTestWebhook(appA.OrganizationID, "ep_4"), projectID)
		seedWebhook(t, s, buildTestWebhook(appB.OrganizationID, "ep_5"), projectID)

		_, err := s.GetTenantApplicationForProject(ctx, projectID)
		assert.ErrorIs(t, err, domain.ErrDataIntegrity)
	})
}

func testCreateWebhook(t *testing.T, s Store) {
	ctx := context.Background()
	app := buildTestApplication("app_create_webhook")
	seedApplication(t, s, app)

	p1 := uuid.New()
	p2 := uuid.New()

	// Duplicate project IDs in the input collapse to one link
	created := seedWebhook(t, s, buildTestWebhook(app.OrganizationID, "ep_create"), p1, p2, p1)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Nil(t, created.UpdatedAt)

	got, err := s.GetWebhookByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "ep_create", got.EndpointID)
	assert.Equal(t, app.OrganizationID, got.OrganizationID)
	assert.Nil(t, got.UpdatedAt)

	links, err := s.GetWebhookProjects(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, links, 2)
	assert.ElementsMatch(t, []uuid.UUID{p1, p2}, []uuid.UUID{links[0].ProjectID, links[1].ProjectID})

	t.Run("absent webhook returns nil", func(t *testing.T) {
		got, err := s.GetWebhookByID(ctx, uuid.New())
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func testGetWebhooksWithApplicationsByIDs(t *testing.T, s Store) {
	ctx := context.Background()
	app := buildTestApplication("app_by_ids")
	seedApplication(t, s, app)

	w1 := seedWebhook(t, s, buildTestWebhook(app.OrganizationID, "ep_ids_1"), uuid.New())
	w2 := seedWebhook(t, s, buildTestWebhook(app.OrganizationID, "ep_ids_2"))

	t.Run("empty input", func(t *testing.T) {
		rows, err := s.GetWebhooksWithApplicationsByIDs(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, rows)
	})

	t.Run("missing ids are omitted", func(t *testing.T) {
		rows, err := s.GetWebhooksWithApplicationsByIDs(ctx, []uuid.UUID{w1.ID, w2.ID, uuid.New()})
		require.NoError(t, err)
		require.Len(t, rows, 2)

		byID := make(map[uuid.UUID]WebhookWithApplication, len(rows))
		for _, row := range rows {
			byID[row.ID] = row
		}
		require.Contains(t, byID, w1.ID)
		require.Contains(t, byID, w2.ID)
		assert.Equal(t, app.RemoteAppID, byID[w1.ID].RemoteAppID)
		assert.Equal(t, "ep_ids_1", byID[w1.ID].EndpointID)
		assert.Equal(t, app.RemoteAppID, byID[w2.ID].RemoteAppID)
	})
}

func testGetWebhooksWithApplicationsByOrganizations(t *testing.T, s Store) {
	ctx := context.Background()
	appA := buildTestApplication("app_by_orgs_a")
	appB := buildTestApplication("app_by_orgs_b")
	seedApplication(t, s, appA)
	seedApplication(t, s, appB)

	base := time.Now().Add(-1 * time.Hour).Truncate(time.Millisecond)

	older := buildTestWebhook(appA.OrganizationID, "ep_orgs_older")
	older.CreatedAt = base
	newer := buildTestWebhook(appA.OrganizationID, "ep_orgs_newer")
	newer.CreatedAt = base.Add(10 * time.Minute)
	other := buildTestWebhook(appB.OrganizationID, "ep_orgs_other")
	other.CreatedAt = base.Add(5 * time.Minute)

	seedWebhook(t, s, newer)
	seedWebhook(t, s, older)
	seedWebhook(t, s, other)

	t.Run("single organization ordered by creation", func(t *testing.T) {
		rows, err := s.GetWebhooksWithApplicationsByOrganizations(ctx, []uuid.UUID{appA.OrganizationID})
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "ep_orgs_older", rows[0].EndpointID)
		assert.Equal(t, "ep_orgs_newer", rows[1].EndpointID)
		assert.Equal(t, appA.RemoteAppID, rows[0].RemoteAppID)
	})

	t.Run("several organizations in one round trip", func(t *testing.T) {
		rows, err := s.GetWebhooksWithApplicationsByOrganizations(ctx, []uuid.UUID{appA.OrganizationID, appB.OrganizationID})
		require.NoError(t, err)
		assert.Len(t, rows, 3)
	})

	t.Run("organization without webhooks", func(t *testing.T) {
		rows, err := s.GetWebhooksWithApplicationsByOrganizations(ctx, []uuid.UUID{uuid.New()})
		require.NoError(t, err)
		assert.Empty(t, rows)
	})
}

func testReplaceWebhookProjects(t *testing.T, s Store) {
	ctx := context.Background()
	app := buildTestApplication("app_replace")
	seedApplication(t, s, app)

	p1 := uuid.New()
	p2 := uuid.New()
	p3 := uuid.New()

	created := seedWebhook(t, s, buildTestWebhook(app.OrganizationID, "ep_replace"), p1, p2)

	require.NoError(t, s.ReplaceWebhookProjects(ctx, created.ID, []uuid.UUID{p2, p3}))

	links, err := s.GetWebhookProjects(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, links, 2)
	linkedProjects := []uuid.UUID{links[0].ProjectID, links[1].ProjectID}
	assert.ElementsMatch(t, []uuid.UUID{p2, p3}, linkedProjects)
	assert.NotContains(t, linkedProjects, p1)

	got, err := s.GetWebhookByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.NotNil(t, got.UpdatedAt)

	t.Run("missing webhook", func(t *testing.T) {
		err := s.ReplaceWebhookProjects(ctx, uuid.New(), []uuid.UUID{p1})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("clearing all subscriptions", func(t *testing.T) {
		require.NoError(t, s.ReplaceWebhookProjects(ctx, created.ID, nil))

		links, err := s.GetWebhookProjects(ctx, created.ID)
		require.NoError(t, err)
		assert.Empty(t, links)
	})
}

func testDeleteWebhook(t *testing.T, s Store) {
	ctx := context.Background()
	app := buildTestApplication("app_delete")
	seedApplication(t, s, app)

	created := seedWebhook(t, s, buildTestWebhook(app.OrganizationID, "ep_delete"), uuid.New())

	require.NoError(t, s.DeleteWebhook(ctx, created.ID))

	got, err := s.GetWebhookByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	links, err := s.GetWebhookProjects(ctx, created.ID)
	require.NoError(t, err)
	assert.Empty(t, links)

	t.Run("missing webhook", func(t *testing.T) {
		err := s.DeleteWebhook(ctx, uuid.New())
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func testRecordBroadcast(t *testing.T, s Store) {
	ctx := context.Background()

	record := schema.BroadcastRecord{
		EventID:     "01JDKJ5S1R3V9GZ9Y2N8Q4W7XE",
		EventType:   "customer.created",
		ProjectID:   uuid.New(),
		RemoteAppID: "app_audit",
		Payload:     datatypes.JSON([]byte(`{"event_type":"customer.created","payload":{"customer_id":"c1","project_id":"p1"}}`)),
	}

	require.NoError(t, s.RecordBroadcast(ctx, record))

	// Replay of the same event ID is ignored
	require.NoError(t, s.RecordBroadcast(ctx, record))
}
