package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/specsmith/specsmith/pkg/database"
	"github.com/specsmith/specsmith/pkg/version"
)

// health handles GET /healthz. Both stores must answer.
func (s *Server) health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	identityHealth, identityErr := database.Health(ctx, s.deps.IdentityDB.DB())
	workHealth, workErr := database.Health(ctx, s.deps.WorkDB.DB())

	body := gin.H{
		"status":         "healthy",
		"version":        version.Full(),
		"identity_store": identityHealth,
		"work_store":     workHealth,
	}
	if identityErr != nil || workErr != nil {
		body["status"] = "unhealthy"
		if identityErr != nil {
			body["identity_error"] = identityErr.Error()
		}
		if workErr != nil {
			body["work_error"] = workErr.Error()
		}
		c.JSON(http.StatusServiceUnavailable, body)
		return
	}

	c.JSON(http.StatusOK, body)
}
