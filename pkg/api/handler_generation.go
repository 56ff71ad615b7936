package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/specsmith/specsmith/pkg/models"
	"github.com/specsmith/specsmith/pkg/services"
)

// listGenerations handles GET /api/v1/projects/:id/generations.
func (s *Server) listGenerations(c *gin.Context) {
	runs, err := s.deps.Generated.List(c.Request.Context(), identityFrom(c), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	views := make([]models.GeneratedProjectView, 0, len(runs))
	for _, run := range runs {
		views = append(views, services.RunView(run))
	}
	c.JSON(http.StatusOK, gin.H{"generations": views})
}

// getGeneration handles GET /api/v1/generations/:id.
func (s *Server) getGeneration(c *gin.Context) {
	run, err := s.deps.Generated.Get(c.Request.Context(), identityFrom(c), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, services.RunView(run))
}

// generationFiles handles GET /api/v1/generations/:id/files.
func (s *Server) generationFiles(c *gin.Context) {
	files, err := s.deps.Generated.Files(c.Request.Context(), identityFrom(c), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	views := make([]fileResponse, 0, len(files))
	for _, f := range files {
		views = append(views, fileResponse{Path: f.Path, Content: f.Content, LineCount: f.LineCount})
	}
	c.JSON(http.StatusOK, gin.H{"files": views})
}
