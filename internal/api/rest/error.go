package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apierrors "github.com/creatorhub/webhook-bridge/internal/api/shared/errors"
	"github.com/creatorhub/webhook-bridge/internal/logger"
)

// errorResponse represents a standardized error response
type errorResponse struct {
	Error apierrors.APIError `json:"error"`
}

// respondWithAPIError sends the error with its mapped HTTP status.
// Server-side failures are logged before responding.
func respondWithAPIError(c *gin.Context, apiErr *apierrors.APIError) {
	status := apiErr.HTTPStatus()
	if status >= http.StatusInternalServerError {
		logger.ErrorCtx(c.Request.Context(), apiErr,
			zap.String("path", c.Request.URL.Path),
		)
	}
	c.JSON(status, errorResponse{Error: *apiErr})
}

// respondError maps any error onto the API error taxonomy and responds
func respondError(c *gin.Context, err error) {
	respondWithAPIError(c, apierrors.FromDomain(err))
}

// respondBadRequest sends a 400 Bad Request response
func respondBadRequest(c *gin.Context, message string, details ...string) {
	respondWithAPIError(c, apierrors.NewBadRequestError(message, details...))
}

// respondNotFound sends a 404 Not Found response
func respondNotFound(c *gin.Context, message string, details ...string) {
	respondWithAPIError(c, apierrors.NewNotFoundError(message, details...))
}

// respondValidationError sends a 400 Bad Request with validation error
func respondValidationError(c *gin.Context, details string) {
	respondWithAPIError(c, apierrors.NewValidationError(details))
}
