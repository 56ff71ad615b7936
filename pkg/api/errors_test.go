package api

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/specsmith/specsmith/pkg/agents"
	"github.com/specsmith/specsmith/pkg/export"
	"github.com/specsmith/specsmith/pkg/llm"
	"github.com/specsmith/specsmith/pkg/services"
)

func TestMapServiceError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		expectCode int
		expectMsg  string
	}{
		{
			name:       "validation error maps to 400",
			err:        services.NewValidationError("name", "required"),
			expectCode: http.StatusBadRequest,
			expectMsg:  "required",
		},
		{
			name:       "missing parameter maps to 400",
			err:        &agents.MissingParameterError{Name: "session_id"},
			expectCode: http.StatusBadRequest,
			expectMsg:  "session_id",
		},
		{
			name:       "unsupported export format maps to 400",
			err:        fmt.Errorf("%w: pdf", export.ErrUnsupportedFormat),
			expectCode: http.StatusBadRequest,
			expectMsg:  "unsupported export format",
		},
		{
			name:       "unauthorized maps to 401",
			err:        fmt.Errorf("wrapped: %w", services.ErrUnauthorized),
			expectCode: http.StatusUnauthorized,
			expectMsg:  "unauthorized",
		},
		{
			name:       "forbidden maps to 403",
			err:        services.ErrForbidden,
			expectCode: http.StatusForbidden,
			expectMsg:  "forbidden",
		},
		{
			name:       "not found maps to 404",
			err:        fmt.Errorf("wrapped: %w", services.ErrNotFound),
			expectCode: http.StatusNotFound,
			expectMsg:  "resource not found",
		},
		{
			name:       "ended session maps to 409",
			err:        services.ErrSessionEnded,
			expectCode: http.StatusConflict,
			expectMsg:  "session has ended",
		},
		{
			name:       "blocked project maps to 409",
			err:        services.ErrProjectBlocked,
			expectCode: http.StatusConflict,
			expectMsg:  "pending conflict",
		},
		{
			name:       "resolved conflict maps to 409",
			err:        services.ErrConflictResolved,
			expectCode: http.StatusConflict,
			expectMsg:  "already resolved",
		},
		{
			name:       "gateway timeout maps to 504",
			err:        fmt.Errorf("%w: deadline", llm.ErrTimeout),
			expectCode: http.StatusGatewayTimeout,
			expectMsg:  "timed out",
		},
		{
			name:       "context deadline maps to 504",
			err:        context.DeadlineExceeded,
			expectCode: http.StatusGatewayTimeout,
			expectMsg:  "timed out",
		},
		{
			name:       "gateway unavailable maps to 503",
			err:        fmt.Errorf("%w: 3 tries exhausted", llm.ErrUnavailable),
			expectCode: http.StatusServiceUnavailable,
			expectMsg:  "unavailable",
		},
		{
			name:       "unusable model output maps to 502",
			err:        fmt.Errorf("%w: parse failed", llm.ErrInvalidResponse),
			expectCode: http.StatusBadGateway,
			expectMsg:  "unusable response",
		},
		{
			name:       "unknown error maps to 500",
			err:        fmt.Errorf("something unexpected happened"),
			expectCode: http.StatusInternalServerError,
			expectMsg:  "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, msg := mapServiceError(tt.err)
			assert.Equal(t, tt.expectCode, code)
			assert.Contains(t, msg, tt.expectMsg)
		})
	}
}
