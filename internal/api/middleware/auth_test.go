package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hostelhub/backend/internal/api/middleware"
	"hostelhub/backend/internal/auth"
	"hostelhub/backend/internal/models"
)

func newGate(tokens *auth.TokenService, adminOnly bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	handlers := []gin.HandlerFunc{middleware.RequireAuth(tokens)}
	if adminOnly {
		handlers = append(handlers, middleware.RequireAdmin())
	}
	handlers = append(handlers, func(c *gin.Context) {
		claims := middleware.Identity(c)
		c.JSON(http.StatusOK, gin.H{"email": claims.Email, "role": claims.Role})
	})

	r.GET("/probe", handlers...)
	return r
}

func probe(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// TestRequireAuth_MissingHeader verifies requests without the header
// are rejected before any handler runs.
func TestRequireAuth_MissingHeader(t *testing.T) {
	tokens := auth.NewTokenService("secret", time.Hour)
	r := newGate(tokens, false)

	w := probe(r, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Authorization header missing")
}

// TestRequireAuth_MalformedHeader verifies non-bearer and non-two-part
// headers are rejected.
func TestRequireAuth_MalformedHeader(t *testing.T) {
	tokens := auth.NewTokenService("secret", time.Hour)
	r := newGate(tokens, false)

	for _, header := range []string{
		"Token abc",
		"Bearer",
		"Bearer a b",
		"justonetoken",
	} {
		w := probe(r, header)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "header %q", header)
		assert.Contains(t, w.Body.String(), "Invalid token format")
	}
}

// TestRequireAuth_InvalidToken verifies a garbage or foreign-signed
// token is rejected with the authentication-failed message.
func TestRequireAuth_InvalidToken(t *testing.T) {
	tokens := auth.NewTokenService("secret", time.Hour)
	other := auth.NewTokenService("other-secret", time.Hour)
	r := newGate(tokens, false)

	foreign, err := other.Issue(&models.User{ID: 1, Email: "x@x.com", Role: models.RoleStudent})
	require.NoError(t, err)

	for _, token := range []string{"garbage", foreign} {
		w := probe(r, "Bearer "+token)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid or expired token")
	}
}

// TestRequireAuth_ValidToken verifies the identity lands in the request
// context; the bearer scheme is case-insensitive.
func TestRequireAuth_ValidToken(t *testing.T) {
	tokens := auth.NewTokenService("secret", time.Hour)
	r := newGate(tokens, false)

	signed, err := tokens.Issue(&models.User{ID: 7, Name: "A", Email: "a@x.com", Role: models.RoleStudent})
	require.NoError(t, err)

	for _, scheme := range []string{"Bearer", "bearer", "BEARER"} {
		w := probe(r, scheme+" "+signed)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "a@x.com")
	}
}

// TestRequireAdmin verifies the role gate on top of the identity gate.
func TestRequireAdmin(t *testing.T) {
	tokens := auth.NewTokenService("secret", time.Hour)
	r := newGate(tokens, true)

	studentToken, err := tokens.Issue(&models.User{ID: 1, Email: "s@x.com", Role: models.RoleStudent})
	require.NoError(t, err)
	adminToken, err := tokens.Issue(&models.User{ID: 2, Email: "w@x.com", Role: models.RoleAdmin})
	require.NoError(t, err)

	w := probe(r, "Bearer "+studentToken)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Admins only")

	w = probe(r, "Bearer "+adminToken)
	assert.Equal(t, http.StatusOK, w.Code)

	// Still 401, not 403, when no token at all is presented.
	w = probe(r, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
