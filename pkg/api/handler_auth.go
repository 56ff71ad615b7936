package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/specsmith/specsmith/pkg/models"
)

// register handles POST /api/v1/auth/register.
func (s *Server) register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := s.deps.Users.Register(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, userResponse{ID: user.ID, Handle: user.Handle})
}

// login handles POST /api/v1/auth/login.
func (s *Server) login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pair, err := s.deps.Users.Login(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, pair)
}

// refresh handles POST /api/v1/auth/refresh. It rotates the refresh token.
func (s *Server) refresh(c *gin.Context) {
	var req struct {
		RefreshToken string `json:"refresh_token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pair, err := s.deps.Users.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, pair)
}

// logout handles POST /api/v1/auth/logout. It revokes the caller's refresh
// tokens; outstanding access tokens lapse on their own.
func (s *Server) logout(c *gin.Context) {
	if err := s.deps.Users.Logout(c.Request.Context(), identityFrom(c)); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// createAPIKey handles POST /api/v1/auth/api-keys.
func (s *Server) createAPIKey(c *gin.Context) {
	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	plaintext, key, err := s.deps.Users.CreateAPIKey(c.Request.Context(), identityFrom(c), req.Name)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, apiKeyResponse{ID: key.ID, Name: key.Name, Key: plaintext})
}
