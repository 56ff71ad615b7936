package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/specsmith/specsmith/pkg/agents"
	"github.com/specsmith/specsmith/pkg/models"
	"github.com/specsmith/specsmith/pkg/services"
)

// createProject handles POST /api/v1/projects. It goes through the
// orchestrator so the creation lands in the activity log.
func (s *Server) createProject(c *gin.Context) {
	var req models.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.route(c, agents.IDProjectManager, agents.ActionProjectCreate, agents.Payload{
		"name":        req.Name,
		"description": req.Description,
	})
}

// listProjects handles GET /api/v1/projects.
func (s *Server) listProjects(c *gin.Context) {
	records, err := s.deps.Projects.List(c.Request.Context(), identityFrom(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	views := make([]models.ProjectView, 0, len(records))
	for _, p := range records {
		views = append(views, services.View(p))
	}
	c.JSON(http.StatusOK, gin.H{"projects": views})
}

// getProject handles GET /api/v1/projects/:id.
func (s *Server) getProject(c *gin.Context) {
	p, err := s.deps.Projects.Get(c.Request.Context(), identityFrom(c), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, services.View(p))
}

// updateProject handles PATCH /api/v1/projects/:id. Omitted fields keep
// their values.
func (s *Server) updateProject(c *gin.Context) {
	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.route(c, agents.IDProjectManager, agents.ActionProjectUpdate, agents.Payload{
		"project_id":  c.Param("id"),
		"name":        req.Name,
		"description": req.Description,
	})
}

// archiveProject handles DELETE /api/v1/projects/:id. Archival is a soft
// delete; the retention sweep purges the row later.
func (s *Server) archiveProject(c *gin.Context) {
	s.route(c, agents.IDProjectManager, agents.ActionProjectDelete, agents.Payload{
		"project_id": c.Param("id"),
	})
}

// shareProject handles POST /api/v1/projects/:id/share.
func (s *Server) shareProject(c *gin.Context) {
	var req models.ShareProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	share, err := s.deps.Projects.Share(c.Request.Context(), identityFrom(c), c.Param("id"), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, shareResponse{
		ProjectID: share.ProjectID,
		UserID:    share.UserID,
		Role:      string(share.Role),
	})
}

// projectActivity handles GET /api/v1/projects/:id/activity.
func (s *Server) projectActivity(c *gin.Context) {
	limit, offset := pagination(c, 50)
	feed, err := s.deps.Activity.Feed(c.Request.Context(), identityFrom(c), c.Param("id"), limit, offset)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"activity": feed})
}

// listSpecifications handles GET /api/v1/projects/:id/specifications.
func (s *Server) listSpecifications(c *gin.Context) {
	projectID := c.Param("id")
	if _, err := s.deps.Projects.Get(c.Request.Context(), identityFrom(c), projectID); err != nil {
		respondServiceError(c, err)
		return
	}

	specs, err := s.deps.Specs.ListCurrent(c.Request.Context(), projectID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"specifications": specs})
}

// specificationHistory handles GET /api/v1/projects/:id/specifications/history.
// Requires category and key query parameters; returns the supersede chain
// newest first.
func (s *Server) specificationHistory(c *gin.Context) {
	category := c.Query("category")
	key := c.Query("key")
	if category == "" || key == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "category and key query parameters are required"})
		return
	}

	projectID := c.Param("id")
	if _, err := s.deps.Projects.Get(c.Request.Context(), identityFrom(c), projectID); err != nil {
		respondServiceError(c, err)
		return
	}

	history, err := s.deps.Specs.History(c.Request.Context(), projectID, category, key)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"history": history})
}

// projectMaturity handles GET /api/v1/projects/:id/maturity.
func (s *Server) projectMaturity(c *gin.Context) {
	projectID := c.Param("id")
	if _, err := s.deps.Projects.Get(c.Request.Context(), identityFrom(c), projectID); err != nil {
		respondServiceError(c, err)
		return
	}

	report, err := s.deps.Specs.Maturity(c.Request.Context(), projectID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// projectInsights handles GET /api/v1/projects/:id/insights. Coverage
// analysis comes from the quality agent.
func (s *Server) projectInsights(c *gin.Context) {
	s.route(c, agents.IDQuality, agents.ActionAnalyzeCoverage, agents.Payload{
		"project_id": c.Param("id"),
	})
}

// listConflicts handles GET /api/v1/projects/:id/conflicts. With
// ?pending=true only unresolved conflicts are returned; otherwise the full
// audit trail, pending first.
func (s *Server) listConflicts(c *gin.Context) {
	onlyPending := c.Query("pending") == "true"
	records, err := s.deps.Conflicts.List(c.Request.Context(), identityFrom(c), c.Param("id"), onlyPending)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"conflicts": records})
}

// projectMetrics handles GET /api/v1/projects/:id/metrics.
func (s *Server) projectMetrics(c *gin.Context) {
	projectID := c.Param("id")
	if _, err := s.deps.Projects.Get(c.Request.Context(), identityFrom(c), projectID); err != nil {
		respondServiceError(c, err)
		return
	}

	limit, _ := pagination(c, 50)
	records, err := s.deps.Metrics.Recent(c.Request.Context(), projectID, limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	views := make([]metricResponse, 0, len(records))
	for _, m := range records {
		views = append(views, metricResponse{
			ID:              m.ID,
			Action:          m.Action,
			BiasScore:       m.BiasScore,
			CoverageScore:   m.CoverageScore,
			ComplexityScore: m.ComplexityScore,
			CreatedAt:       m.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, gin.H{"metrics": views})
}

// advancePhase handles POST /api/v1/projects/:id/advance. The quality
// pre-gate may answer with a Blocked body carrying path analysis.
func (s *Server) advancePhase(c *gin.Context) {
	s.route(c, agents.IDProjectManager, agents.ActionAdvancePhase, agents.Payload{
		"project_id": c.Param("id"),
	})
}

// generateCode handles POST /api/v1/projects/:id/generate.
func (s *Server) generateCode(c *gin.Context) {
	s.route(c, agents.IDCodeGenerator, agents.ActionGenerate, agents.Payload{
		"project_id": c.Param("id"),
	})
}

// exportProject handles GET /api/v1/projects/:id/export?format=markdown|json.
func (s *Server) exportProject(c *gin.Context) {
	format := c.DefaultQuery("format", "markdown")
	data, contentType, err := s.deps.Exporter.Export(c.Request.Context(), identityFrom(c), c.Param("id"), format)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.Data(http.StatusOK, contentType, data)
}

// pagination reads limit/offset query parameters with bounds.
func pagination(c *gin.Context, defaultLimit int) (limit, offset int) {
	limit = defaultLimit
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 200 {
			limit = n
		}
	}
	if v := c.Query("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			offset = n
		}
	}
	return limit, offset
}
