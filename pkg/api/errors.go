package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/specsmith/specsmith/pkg/agents"
	"github.com/specsmith/specsmith/pkg/export"
	"github.com/specsmith/specsmith/pkg/llm"
	"github.com/specsmith/specsmith/pkg/services"
)

// respondServiceError writes the HTTP response for a service-layer error and
// aborts the handler chain.
func respondServiceError(c *gin.Context, err error) {
	status, message := mapServiceError(err)
	c.AbortWithStatusJSON(status, gin.H{"error": message})
}

// mapServiceError maps service-layer errors to HTTP status codes.
func mapServiceError(err error) (int, string) {
	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		return http.StatusBadRequest, validErr.Error()
	}
	if agents.IsMissingParameter(err) {
		return http.StatusBadRequest, err.Error()
	}

	switch {
	case errors.Is(err, services.ErrInvalidInput),
		errors.Is(err, export.ErrUnsupportedFormat),
		errors.Is(err, agents.ErrUnknownAction):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, services.ErrUnauthorized):
		return http.StatusUnauthorized, "unauthorized"
	case errors.Is(err, services.ErrForbidden):
		return http.StatusForbidden, "forbidden"
	case errors.Is(err, services.ErrNotFound):
		return http.StatusNotFound, "resource not found"
	case errors.Is(err, services.ErrAlreadyExists):
		return http.StatusConflict, "resource already exists"
	case errors.Is(err, services.ErrProjectBlocked):
		return http.StatusConflict, "project is blocked by a pending conflict"
	case errors.Is(err, services.ErrSessionEnded):
		return http.StatusConflict, "session has ended"
	case errors.Is(err, services.ErrConflictResolved):
		return http.StatusConflict, "conflict is already resolved"
	case errors.Is(err, services.ErrConcurrentModification):
		return http.StatusConflict, "concurrent modification, retry the request"
	case errors.Is(err, llm.ErrTimeout), errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "language model call timed out"
	case errors.Is(err, llm.ErrRateLimited), errors.Is(err, llm.ErrUnavailable):
		return http.StatusServiceUnavailable, "language model unavailable"
	case errors.Is(err, llm.ErrInvalidResponse), errors.Is(err, llm.ErrProviderError):
		return http.StatusBadGateway, "language model returned an unusable response"
	}

	// Unexpected error
	slog.Error("Unexpected service error", "error", err)
	return http.StatusInternalServerError, "internal server error"
}
