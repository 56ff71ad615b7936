package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/specsmith/specsmith/pkg/agents"
	"github.com/specsmith/specsmith/pkg/models"
)

// startSession handles POST /api/v1/sessions.
func (s *Server) startSession(c *gin.Context) {
	var req models.StartSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sess, err := s.deps.Sessions.Start(c.Request.Context(), identityFrom(c), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toSessionResponse(sess))
}

// getSession handles GET /api/v1/sessions/:id.
func (s *Server) getSession(c *gin.Context) {
	sess, err := s.deps.Sessions.Get(c.Request.Context(), identityFrom(c), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, toSessionResponse(sess))
}

// endSession handles POST /api/v1/sessions/:id/end. Ending is terminal.
func (s *Server) endSession(c *gin.Context) {
	sess, err := s.deps.Sessions.End(c.Request.Context(), identityFrom(c), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, toSessionResponse(sess))
}

// toggleMode handles POST /api/v1/sessions/:id/mode.
func (s *Server) toggleMode(c *gin.Context) {
	var req models.ToggleModeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.route(c, agents.IDDirectChat, agents.ActionToggleMode, agents.Payload{
		"session_id": c.Param("id"),
		"mode":       req.Mode,
	})
}

// sessionHistory handles GET /api/v1/sessions/:id/history.
func (s *Server) sessionHistory(c *gin.Context) {
	limit, offset := pagination(c, 50)
	turns, err := s.deps.Sessions.History(c.Request.Context(), identityFrom(c), c.Param("id"), limit, offset)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"turns": turns})
}

// generateQuestion handles POST /api/v1/sessions/:id/question. The optional
// category query parameter targets a specific maturity category; otherwise
// the least-covered one is chosen.
func (s *Server) generateQuestion(c *gin.Context) {
	payload := agents.Payload{"session_id": c.Param("id")}
	if category := c.Query("category"); category != "" {
		payload["category"] = category
	}
	s.route(c, agents.IDSocratic, agents.ActionGenerateQuestion, payload)
}

// generateQuestionBatch handles POST /api/v1/sessions/:id/questions.
func (s *Server) generateQuestionBatch(c *gin.Context) {
	var req struct {
		Count int `json:"count"`
	}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	payload := agents.Payload{"session_id": c.Param("id")}
	if req.Count > 0 {
		payload["count"] = req.Count
	}
	s.route(c, agents.IDSocratic, agents.ActionGenerateQuestionsBatch, payload)
}

// submitAnswer handles POST /api/v1/sessions/:id/answer. The answer text is
// run through specification extraction; the response reports inserted,
// deduplicated, and conflicted candidates.
func (s *Server) submitAnswer(c *gin.Context) {
	var req models.SubmitAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.route(c, agents.IDContext, agents.ActionExtractSpecifications, agents.Payload{
		"session_id": c.Param("id"),
		"text":       req.Text,
	})
}

// directChat handles POST /api/v1/sessions/:id/chat. The reply is
// conversational, or, for a recognized operation intent, the intent plus the
// result of routing it through the orchestrator. Intents with no in-process
// route come back for the client to re-submit as a structured call.
func (s *Server) directChat(c *gin.Context) {
	var req models.DirectChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.route(c, agents.IDDirectChat, agents.ActionProcessChatMessage, agents.Payload{
		"session_id": c.Param("id"),
		"text":       req.Text,
	})
}
