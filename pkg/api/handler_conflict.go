package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/specsmith/specsmith/pkg/agents"
	"github.com/specsmith/specsmith/pkg/models"
)

// getConflict handles GET /api/v1/conflicts/:id.
func (s *Server) getConflict(c *gin.Context) {
	record, err := s.deps.Conflicts.Get(c.Request.Context(), identityFrom(c), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

// resolveConflict handles POST /api/v1/conflicts/:id/resolve. Resolution is
// terminal; a second attempt answers 409.
func (s *Server) resolveConflict(c *gin.Context) {
	var req models.ResolveConflictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	payload := agents.Payload{
		"conflict_id": c.Param("id"),
		"resolution":  string(req.Resolution),
	}
	if req.MergedValue != "" {
		payload["merged_value"] = req.MergedValue
	}
	s.route(c, agents.IDConflict, agents.ActionConflictResolve, payload)
}
