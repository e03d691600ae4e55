package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/creatorhub/webhook-bridge/internal/api/middleware"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/healthz", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1", middleware.Auth(authCfg))
	{
		// Webhook management. Mutations must carry an actor identity so
		// the directory records who made the change.
		v1.POST("/webhooks", middleware.Actor(), handler.CreateWebhook)
		v1.PATCH("/webhooks/:id", middleware.Actor(), handler.EditWebhook)
		v1.DELETE("/webhooks/:id", middleware.Actor(), handler.DeleteWebhook)

		// Webhook reads
		v1.GET("/webhooks/:id", handler.GetWebhook)
		v1.GET("/webhooks", handler.ListWebhooks)
		v1.GET("/organizations/:id/webhooks", handler.ListOrganizationWebhooks)

		// Event type catalog
		v1.GET("/event-types", handler.ListEventTypes)
	}
}
