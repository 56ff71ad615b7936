package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specsmith/specsmith/pkg/models"
	"github.com/specsmith/specsmith/pkg/services"
	testdb "github.com/specsmith/specsmith/test/database"
)

func TestSecurityHeaders(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(securityHeaders())
	r.GET("/test", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/test", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "strict-origin-when-cross-origin", rec.Header().Get("Referrer-Policy"))
	assert.Equal(t, "camera=(), microphone=(), geolocation=()", rec.Header().Get("Permissions-Policy"))
}

func TestAuthRequired(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctx := context.Background()

	users := services.NewUserService(testdb.NewIdentityTestClient(t).Client)
	_, err := users.Register(ctx, models.RegisterRequest{Handle: "casey", Password: "correct horse"})
	require.NoError(t, err)
	pair, err := users.Login(ctx, models.LoginRequest{Handle: "casey", Password: "correct horse"})
	require.NoError(t, err)

	r := gin.New()
	r.Use(authRequired(users))
	r.GET("/whoami", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"handle": identityFrom(c).Handle})
	})

	serve := func(authorization string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		if authorization != "" {
			req.Header.Set("Authorization", authorization)
		}
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		return rec
	}

	t.Run("valid access token resolves the identity", func(t *testing.T) {
		rec := serve("Bearer " + pair.AccessToken)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "casey")
	})

	t.Run("missing header is rejected", func(t *testing.T) {
		rec := serve("")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("wrong scheme is rejected", func(t *testing.T) {
		rec := serve("Basic " + pair.AccessToken)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		rec := serve("Bearer st_not_a_real_token")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("api key authenticates too", func(t *testing.T) {
		identity, err := users.Authenticate(ctx, pair.AccessToken)
		require.NoError(t, err)
		key, _, err := users.CreateAPIKey(ctx, *identity, "ci")
		require.NoError(t, err)

		rec := serve("Bearer " + key)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
