package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/alavista-lab/cotizador-api/pkg/utils"
)

func setupAuthRouter(t *testing.T, jwtManager *utils.JWTManager) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(AuthMiddleware(jwtManager))
	router.GET("/protected", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": c.MustGet("user_id").(uuid.UUID).String(),
			"area":    c.MustGet("user_area").(string),
		})
	})
	return router
}

func TestAuthMiddlewareRejectsMissingHeader(t *testing.T) {
	jwtManager := utils.NewJWTManager("test-secret", time.Hour, 24*time.Hour)
	router := setupAuthRouter(t, jwtManager)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareRejectsMalformedHeader(t *testing.T) {
	jwtManager := utils.NewJWTManager("test-secret", time.Hour, 24*time.Hour)
	router := setupAuthRouter(t, jwtManager)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Token abc")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareRejectsForgedToken(t *testing.T) {
	jwtManager := utils.NewJWTManager("test-secret", time.Hour, 24*time.Hour)
	otherManager := utils.NewJWTManager("other-secret", time.Hour, 24*time.Hour)
	router := setupAuthRouter(t, jwtManager)

	token, err := otherManager.GenerateAccessToken(uuid.New(), "intruso", "cotizador", "Comercial")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewarePassesClaimsToContext(t *testing.T) {
	jwtManager := utils.NewJWTManager("test-secret", time.Hour, 24*time.Hour)
	router := setupAuthRouter(t, jwtManager)

	userID := uuid.New()
	token, err := jwtManager.GenerateAccessToken(userID, "maria", "cotizador", "Comercial")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), userID.String())
	assert.Contains(t, w.Body.String(), "Comercial")
}
