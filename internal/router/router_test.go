package router_test

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/creatorhub/webhook-bridge/internal/adapter"
	"github.com/creatorhub/webhook-bridge/internal/domain"
	"github.com/creatorhub/webhook-bridge/internal/gateway"
	"github.com/creatorhub/webhook-bridge/internal/logger"
	"github.com/creatorhub/webhook-bridge/internal/mocks"
	"github.com/creatorhub/webhook-bridge/internal/router"
	"github.com/creatorhub/webhook-bridge/internal/store/schema"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: true}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

type routerFixture struct {
	store   *mocks.MockStore
	gateway *mocks.MockGateway
	router  *router.Router
}

func newRouterFixture(t *testing.T) *routerFixture {
	ctrl := gomock.NewController(t)
	st := mocks.NewMockStore(ctrl)
	gw := mocks.NewMockGateway(ctrl)

	return &routerFixture{
		store:   st,
		gateway: gw,
		router:  router.New(st, gw, adapter.NewJSON()),
	}
}

func mustMarshal(t *testing.T, v any) []byte {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return data
}

func organizationCreatedEnvelope(t *testing.T, orgID uuid.UUID, name string) domain.Envelope {
	t.Helper()
	return domain.Envelope{
		Topic: domain.TopicOrganizations,
		Key:   mustMarshal(t, domain.OrganizationEventKey{ID: orgID.String()}),
		Value: mustMarshal(t, domain.OrganizationEvents{
			OrganizationCreated: &domain.Organization{ID: orgID.String(), Name: name},
		}),
	}
}

func customerCreatedEnvelope(t *testing.T, customerID string, projectID uuid.UUID) domain.Envelope {
	t.Helper()
	return domain.Envelope{
		Topic: domain.TopicCustomers,
		Key:   mustMarshal(t, domain.CustomerEventKey{ID: customerID}),
		Value: mustMarshal(t, domain.CustomerEvents{
			Created: &domain.CustomerCreated{ProjectID: projectID.String()},
		}),
	}
}

func TestDispatchOrganizationCreated(t *testing.T) {
	ctx := context.Background()

	t.Run("provisions application and records it", func(t *testing.T) {
		f := newRouterFixture(t)
		orgID := uuid.New()

		f.gateway.EXPECT().
			CreateApplication(gomock.Any(), "Acme", orgID.String()).
			Return(&gateway.Application{ID: "app_1", Name: "Acme"}, nil)
		f.store.EXPECT().
			UpsertTenantApplication(gomock.Any(), schema.TenantApplication{
				RemoteAppID:    "app_1",
				OrganizationID: orgID,
			}).
			Return(nil)

		err := f.router.Dispatch(ctx, organizationCreatedEnvelope(t, orgID, "Acme"))
		require.NoError(t, err)
	})

	t.Run("replay resolves the existing application", func(t *testing.T) {
		f := newRouterFixture(t)
		orgID := uuid.New()

		f.gateway.EXPECT().
			CreateApplication(gomock.Any(), "Acme", orgID.String()).
			Return(nil, domain.ErrConflict)
		f.gateway.EXPECT().
			GetApplication(gomock.Any(), orgID.String()).
			Return(&gateway.Application{ID: "app_1", Name: "Acme"}, nil)
		f.store.EXPECT().
			UpsertTenantApplication(gomock.Any(), schema.TenantApplication{
				RemoteAppID:    "app_1",
				OrganizationID: orgID,
			}).
			Return(nil)

		err := f.router.Dispatch(ctx, organizationCreatedEnvelope(t, orgID, "Acme"))
		require.NoError(t, err)
	})

	t.Run("provider failure propagates", func(t *testing.T) {
		f := newRouterFixture(t)
		orgID := uuid.New()

		f.gateway.EXPECT().
			CreateApplication(gomock.Any(), "Acme", orgID.String()).
			Return(nil, domain.ErrUpstreamFailure)

		err := f.router.Dispatch(ctx, organizationCreatedEnvelope(t, orgID, "Acme"))
		assert.ErrorIs(t, err, domain.ErrUpstreamFailure)
	})

	t.Run("invalid organization id is malformed", func(t *testing.T) {
		f := newRouterFixture(t)

		env := domain.Envelope{
			Topic: domain.TopicOrganizations,
			Key:   mustMarshal(t, domain.OrganizationEventKey{ID: "not-a-uuid"}),
			Value: mustMarshal(t, domain.OrganizationEvents{
				OrganizationCreated: &domain.Organization{ID: "not-a-uuid", Name: "Acme"},
			}),
		}

		err := f.router.Dispatch(ctx, env)
		assert.ErrorIs(t, err, router.ErrMalformedRecord)
	})
}

func TestDispatchBroadcast(t *testing.T) {
	ctx := context.Background()

	t.Run("customer created reaches the project channel", func(t *testing.T) {
		f := newRouterFixture(t)
		projectID := uuid.New()

		f.store.EXPECT().
			GetTenantApplicationForProject(gomock.Any(), projectID).
			Return(&schema.TenantApplication{RemoteAppID: "app_77"}, nil)

		var sent gateway.Message
		f.gateway.EXPECT().
			SendMessage(gomock.Any(), "app_77", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, msg gateway.Message) error {
				sent = msg
				return nil
			})

		var recorded schema.BroadcastRecord
		f.store.EXPECT().
			RecordBroadcast(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, record schema.BroadcastRecord) error {
				recorded = record
				return nil
			})

		err := f.router.Dispatch(ctx, customerCreatedEnvelope(t, "cus_1", projectID))
		require.NoError(t, err)

		assert.Equal(t, "customer.created", sent.EventType)
		assert.Equal(t, []string{projectID.String()}, sent.Channels)
		assert.NotEmpty(t, sent.EventID)

		var envelope struct {
			EventType string                       `json:"event_type"`
			Payload   domain.CustomerCreatedPayload `json:"payload"`
		}
		require.NoError(t, json.Unmarshal(sent.Payload, &envelope))
		assert.Equal(t, "customer.created", envelope.EventType)
		assert.Equal(t, "cus_1", envelope.Payload.CustomerID)
		assert.Equal(t, projectID.String(), envelope.Payload.ProjectID)

		assert.Equal(t, sent.EventID, recorded.EventID)
		assert.Equal(t, projectID, recorded.ProjectID)
		assert.Equal(t, "app_77", recorded.RemoteAppID)
	})

	t.Run("no subscribers", func(t *testing.T) {
		f := newRouterFixture(t)
		projectID := uuid.New()

		f.store.EXPECT().
			GetTenantApplicationForProject(gomock.Any(), projectID).
			Return(nil, nil)

		err := f.router.Dispatch(ctx, customerCreatedEnvelope(t, "cus_1", projectID))
		assert.ErrorIs(t, err, domain.ErrNoSubscribers)
	})

	t.Run("ambiguous directory surfaces the data fault", func(t *testing.T) {
		f := newRouterFixture(t)
		projectID := uuid.New()

		f.store.EXPECT().
			GetTenantApplicationForProject(gomock.Any(), projectID).
			Return(nil, domain.ErrDataIntegrity)

		err := f.router.Dispatch(ctx, customerCreatedEnvelope(t, "cus_1", projectID))
		assert.ErrorIs(t, err, domain.ErrDataIntegrity)
	})

	t.Run("submit failure skips the audit write", func(t *testing.T) {
		f := newRouterFixture(t)
		projectID := uuid.New()

		f.store.EXPECT().
			GetTenantApplicationForProject(gomock.Any(), projectID).
			Return(&schema.TenantApplication{RemoteAppID: "app_77"}, nil)
		f.gateway.EXPECT().
			SendMessage(gomock.Any(), "app_77", gomock.Any()).
			Return(domain.ErrUpstreamFailure)

		err := f.router.Dispatch(ctx, customerCreatedEnvelope(t, "cus_1", projectID))
		assert.ErrorIs(t, err, domain.ErrUpstreamFailure)
	})

	t.Run("audit failure does not fail the dispatch", func(t *testing.T) {
		f := newRouterFixture(t)
		projectID := uuid.New()

		f.store.EXPECT().
			GetTenantApplicationForProject(gomock.Any(), projectID).
			Return(&schema.TenantApplication{RemoteAppID: "app_77"}, nil)
		f.gateway.EXPECT().
			SendMessage(gomock.Any(), "app_77", gomock.Any()).
			Return(nil)
		f.store.EXPECT().
			RecordBroadcast(gomock.Any(), gomock.Any()).
			Return(errors.New("insert failed"))

		err := f.router.Dispatch(ctx, customerCreatedEnvelope(t, "cus_1", projectID))
		assert.NoError(t, err)
	})
}

func TestDispatchTreasuryEvents(t *testing.T) {
	ctx := context.Background()
	projectID := uuid.New()

	tests := []struct {
		name      string
		events    domain.TreasuryEvents
		eventType string
	}{
		{
			name: "customer treasury created",
			events: domain.TreasuryEvents{
				CustomerTreasuryCreated: &domain.CustomerTreasury{ProjectID: projectID.String(), CustomerID: "cus_1"},
			},
			eventType: "customer_treasury.created",
		},
		{
			name: "customer wallet created",
			events: domain.TreasuryEvents{
				CustomerWalletCreated: &domain.CustomerWallet{ProjectID: projectID.String(), CustomerID: "cus_1"},
			},
			eventType: "customer_wallet.created",
		},
		{
			name: "project wallet created",
			events: domain.TreasuryEvents{
				ProjectWalletCreated: &domain.ProjectWallet{ProjectID: projectID.String()},
			},
			eventType: "project_wallet.created",
		},
		{
			name: "mint transfered",
			events: domain.TreasuryEvents{
				MintTransfered: &domain.MintTransfer{
					ProjectID: projectID.String(),
					MintID:    "mint_1",
					Sender:    "wallet_a",
					Recipient: "wallet_b",
				},
			},
			eventType: "mint.transfered",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newRouterFixture(t)

			f.store.EXPECT().
				GetTenantApplicationForProject(gomock.Any(), projectID).
				Return(&schema.TenantApplication{RemoteAppID: "app_1"}, nil)

			var sent gateway.Message
			f.gateway.EXPECT().
				SendMessage(gomock.Any(), "app_1", gomock.Any()).
				DoAndReturn(func(_ context.Context, _ string, msg gateway.Message) error {
					sent = msg
					return nil
				})
			f.store.EXPECT().RecordBroadcast(gomock.Any(), gomock.Any()).Return(nil)

			env := domain.Envelope{
				Topic: domain.TopicTreasuries,
				Key:   mustMarshal(t, domain.TreasuryEventKey{ID: "trs_1"}),
				Value: mustMarshal(t, tt.events),
			}

			require.NoError(t, f.router.Dispatch(ctx, env))
			assert.Equal(t, tt.eventType, sent.EventType)
			assert.Equal(t, []string{projectID.String()}, sent.Channels)
		})
	}
}

func TestDispatchNftEvents(t *testing.T) {
	ctx := context.Background()
	projectID := uuid.New()

	t.Run("drop minted carries drop linkage", func(t *testing.T) {
		f := newRouterFixture(t)

		f.store.EXPECT().
			GetTenantApplicationForProject(gomock.Any(), projectID).
			Return(&schema.TenantApplication{RemoteAppID: "app_1"}, nil)

		var sent gateway.Message
		f.gateway.EXPECT().
			SendMessage(gomock.Any(), "app_1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, msg gateway.Message) error {
				sent = msg
				return nil
			})
		f.store.EXPECT().RecordBroadcast(gomock.Any(), gomock.Any()).Return(nil)

		env := domain.Envelope{
			Topic: domain.TopicNfts,
			Key:   mustMarshal(t, domain.NftEventKey{ID: "mint_1", ProjectID: projectID.String()}),
			Value: mustMarshal(t, domain.NftEvents{
				DropMinted: &domain.DropMint{DropID: "drop_1", Status: "created"},
			}),
		}

		require.NoError(t, f.router.Dispatch(ctx, env))
		assert.Equal(t, "drop.minted", sent.EventType)

		var envelope struct {
			Payload domain.DropMintedPayload `json:"payload"`
		}
		require.NoError(t, json.Unmarshal(sent.Payload, &envelope))
		assert.Equal(t, "mint_1", envelope.Payload.MintID)
		assert.Equal(t, "drop_1", envelope.Payload.DropID)
		assert.Equal(t, "created", envelope.Payload.CreationStatus)
	})

	t.Run("missing creation status is malformed", func(t *testing.T) {
		f := newRouterFixture(t)

		env := domain.Envelope{
			Topic: domain.TopicNfts,
			Key:   mustMarshal(t, domain.NftEventKey{ID: "drop_1", ProjectID: projectID.String()}),
			Value: mustMarshal(t, domain.NftEvents{
				DropCreated: &domain.DropCreation{},
			}),
		}

		err := f.router.Dispatch(ctx, env)
		assert.ErrorIs(t, err, router.ErrMalformedRecord)
		assert.ErrorIs(t, err, domain.ErrMissingStatus)
	})
}

func TestDispatchSkipsAndFailures(t *testing.T) {
	ctx := context.Background()

	t.Run("unhandled variant is a silent skip", func(t *testing.T) {
		f := newRouterFixture(t)

		env := domain.Envelope{
			Topic: domain.TopicCustomers,
			Key:   mustMarshal(t, domain.CustomerEventKey{ID: "cus_1"}),
			Value: []byte(`{"blocked":{"reason":"fraud"}}`),
		}

		assert.NoError(t, f.router.Dispatch(ctx, env))
	})

	t.Run("undecodable value is malformed", func(t *testing.T) {
		f := newRouterFixture(t)

		env := domain.Envelope{
			Topic: domain.TopicCustomers,
			Key:   mustMarshal(t, domain.CustomerEventKey{ID: "cus_1"}),
			Value: []byte(`{not json`),
		}

		err := f.router.Dispatch(ctx, env)
		assert.ErrorIs(t, err, router.ErrMalformedRecord)
	})

	t.Run("unknown topic", func(t *testing.T) {
		f := newRouterFixture(t)

		err := f.router.Dispatch(ctx, domain.Envelope{Topic: "hub-credits"})
		assert.ErrorIs(t, err, domain.ErrUnknownTopic)
	})
}
