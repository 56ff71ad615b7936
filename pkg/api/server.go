// Package api is the HTTP surface of the workbench. Handlers translate
// requests into service calls or orchestrator routes; quality-gate Blocked
// outcomes are returned as structured 200 bodies, never as errors.
package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/specsmith/specsmith/pkg/agents"
	"github.com/specsmith/specsmith/pkg/database"
	"github.com/specsmith/specsmith/pkg/export"
	"github.com/specsmith/specsmith/pkg/orchestrator"
	"github.com/specsmith/specsmith/pkg/services"
)

const shutdownTimeout = 10 * time.Second

// Deps bundles everything the server needs.
type Deps struct {
	IdentityDB *database.Client
	WorkDB     *database.Client

	Users     *services.UserService
	Projects  *services.ProjectService
	Sessions  *services.SessionService
	Specs     *services.SpecificationService
	Conflicts *services.ConflictService
	Generated *services.GeneratedService
	Activity  *services.ActivityService
	Metrics   *services.QualityMetricService

	Orchestrator *orchestrator.Orchestrator
	Exporter     *export.Exporter

	Logger *slog.Logger
}

// Server is the API server.
type Server struct {
	deps   Deps
	logger *slog.Logger
}

// NewServer creates an API server from its dependencies.
func NewServer(deps Deps) *Server {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{deps: deps, logger: logger}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(s.logger), securityHeaders())

	r.GET("/healthz", s.health)

	v1 := r.Group("/api/v1")
	v1.POST("/auth/register", s.register)
	v1.POST("/auth/login", s.login)
	v1.POST("/auth/refresh", s.refresh)

	authed := v1.Group("", authRequired(s.deps.Users))
	authed.POST("/auth/logout", s.logout)
	authed.POST("/auth/api-keys", s.createAPIKey)

	authed.POST("/projects", s.createProject)
	authed.GET("/projects", s.listProjects)
	authed.GET("/projects/:id", s.getProject)
	authed.PATCH("/projects/:id", s.updateProject)
	authed.DELETE("/projects/:id", s.archiveProject)
	authed.POST("/projects/:id/share", s.shareProject)
	authed.GET("/projects/:id/activity", s.projectActivity)
	authed.GET("/projects/:id/specifications", s.listSpecifications)
	authed.GET("/projects/:id/specifications/history", s.specificationHistory)
	authed.GET("/projects/:id/maturity", s.projectMaturity)
	authed.GET("/projects/:id/insights", s.projectInsights)
	authed.GET("/projects/:id/conflicts", s.listConflicts)
	authed.GET("/projects/:id/metrics", s.projectMetrics)
	authed.POST("/projects/:id/advance", s.advancePhase)
	authed.POST("/projects/:id/generate", s.generateCode)
	authed.GET("/projects/:id/generations", s.listGenerations)
	authed.GET("/projects/:id/export", s.exportProject)

	authed.POST("/sessions", s.startSession)
	authed.GET("/sessions/:id", s.getSession)
	authed.POST("/sessions/:id/end", s.endSession)
	authed.POST("/sessions/:id/mode", s.toggleMode)
	authed.GET("/sessions/:id/history", s.sessionHistory)
	authed.POST("/sessions/:id/question", s.generateQuestion)
	authed.POST("/sessions/:id/questions", s.generateQuestionBatch)
	authed.POST("/sessions/:id/answer", s.submitAnswer)
	authed.POST("/sessions/:id/chat", s.directChat)

	authed.GET("/conflicts/:id", s.getConflict)
	authed.POST("/conflicts/:id/resolve", s.resolveConflict)

	authed.GET("/generations/:id", s.getGeneration)
	authed.GET("/generations/:id/files", s.generationFiles)

	return r
}

// route sends an operation through the orchestrator. Blocked outcomes come
// back inside the response body with a 200 status: being refused by a quality
// gate is a first-class answer, not a failure.
func (s *Server) route(c *gin.Context, agentID, action string, payload agents.Payload) {
	resp, err := s.deps.Orchestrator.Route(c.Request.Context(), identityFrom(c), agentID, action, payload)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Run serves HTTP on addr until ctx is cancelled, then drains connections.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("API server listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}
