package rest

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/creatorhub/webhook-bridge/internal/api/middleware"
	"github.com/creatorhub/webhook-bridge/internal/api/shared/dto"
	"github.com/creatorhub/webhook-bridge/internal/api/shared/executor"
)

// Handler defines the interface for REST API handlers
// This interface allows for easy mocking and testing
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// CreateWebhook registers a new webhook for an organization
	// POST /api/v1/webhooks
	CreateWebhook(c *gin.Context)

	// EditWebhook updates a webhook's endpoint and project subscriptions
	// PATCH /api/v1/webhooks/:id
	EditWebhook(c *gin.Context)

	// DeleteWebhook removes a webhook, remote endpoint first
	// DELETE /api/v1/webhooks/:id
	DeleteWebhook(c *gin.Context)

	// GetWebhook retrieves a single webhook with its endpoint state
	// GET /api/v1/webhooks/:id
	GetWebhook(c *gin.Context)

	// ListWebhooks retrieves webhooks by ID or by organization
	// GET /api/v1/webhooks?id=<id1>,<id2>&organization=<org_id>
	ListWebhooks(c *gin.Context)

	// ListOrganizationWebhooks retrieves every webhook of an organization
	// GET /api/v1/organizations/:id/webhooks
	ListOrganizationWebhooks(c *gin.Context)

	// ListEventTypes returns the broadcastable event type catalog
	// GET /api/v1/event-types
	ListEventTypes(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /healthz
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	debug    bool
	executor executor.Executor
}

// NewHandler creates a new REST API handler using the shared executor
func NewHandler(debug bool, exec executor.Executor) Handler {
	return &handler{
		debug:    debug,
		executor: exec,
	}
}

// CreateWebhook registers a new webhook for an organization
func (h *handler) CreateWebhook(c *gin.Context) {
	actorID, ok := middleware.ActorID(c)
	if !ok {
		respondBadRequest(c, "Missing actor identity")
		return
	}

	var req dto.CreateWebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	webhook, err := h.executor.CreateWebhook(c.Request.Context(), actorID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, webhook)
}

// EditWebhook updates a webhook's endpoint and project subscriptions
func (h *handler) EditWebhook(c *gin.Context) {
	webhookID, ok := parseWebhookID(c)
	if !ok {
		return
	}

	var req dto.EditWebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	webhook, err := h.executor.EditWebhook(c.Request.Context(), webhookID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, webhook)
}

// DeleteWebhook removes a webhook, remote endpoint first
func (h *handler) DeleteWebhook(c *gin.Context) {
	webhookID, ok := parseWebhookID(c)
	if !ok {
		return
	}

	if err := h.executor.DeleteWebhook(c.Request.Context(), webhookID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetWebhook retrieves a single webhook with its endpoint state
func (h *handler) GetWebhook(c *gin.Context) {
	webhookID, ok := parseWebhookID(c)
	if !ok {
		return
	}

	webhook, err := h.executor.GetWebhook(c.Request.Context(), webhookID)
	if err != nil {
		respondError(c, err)
		return
	}
	if webhook == nil {
		respondNotFound(c, "Webhook not found")
		return
	}

	c.JSON(http.StatusOK, webhook)
}

// ListWebhooks retrieves webhooks by ID or by organization
func (h *handler) ListWebhooks(c *gin.Context) {
	rawIDs := c.Query("id")
	rawOrg := c.Query("organization")

	switch {
	case rawIDs != "" && rawOrg != "":
		respondBadRequest(c, "Use either id or organization, not both")
		return

	case rawIDs != "":
		ids, err := parseUUIDList(rawIDs)
		if err != nil {
			respondValidationError(c, err.Error())
			return
		}
		webhooks, err := h.executor.ListWebhooks(c.Request.Context(), ids)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, webhooks)

	case rawOrg != "":
		organizationID, err := uuid.Parse(rawOrg)
		if err != nil {
			respondValidationError(c, "organization must be a UUID")
			return
		}
		webhooks, err := h.executor.ListOrganizationWebhooks(c.Request.Context(), organizationID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, webhooks)

	default:
		respondBadRequest(c, "Either id or organization is required")
	}
}

// ListOrganizationWebhooks retrieves every webhook of an organization
func (h *handler) ListOrganizationWebhooks(c *gin.Context) {
	organizationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondValidationError(c, "organization ID must be a UUID")
		return
	}

	webhooks, err := h.executor.ListOrganizationWebhooks(c.Request.Context(), organizationID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, webhooks)
}

// ListEventTypes returns the broadcastable event type catalog
func (h *handler) ListEventTypes(c *gin.Context) {
	eventTypes, err := h.executor.ListEventTypes(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, eventTypes)
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func parseWebhookID(c *gin.Context) (uuid.UUID, bool) {
	webhookID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondValidationError(c, "webhook ID must be a UUID")
		return uuid.Nil, false
	}
	return webhookID, true
}

func parseUUIDList(raw string) ([]uuid.UUID, error) {
	parts := strings.Split(raw, ",")
	ids := make([]uuid.UUID, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := uuid.Parse(part)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
