// Package middleware holds the gin middleware chain: request IDs plus
// the access control gates every protected route passes through.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"hostelhub/backend/internal/auth"
	"hostelhub/backend/internal/models"
)

// IdentityKey is the gin context key the verified claims are stored
// under.
const IdentityKey = "identity"

// RequireAuth rejects any request without a valid bearer token and
// stores the decoded identity in the request context for downstream
// handlers.
func RequireAuth(tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Authorization header missing"})
			return
		}

		parts := strings.Fields(header)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid token format"})
			return
		}

		claims, err := tokens.Verify(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired token"})
			return
		}

		c.Set(IdentityKey, claims)
		c.Next()
	}
}

// RequireAdmin gates a route to the admin role. It composes on top of
// RequireAuth and must be registered after it.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := Identity(c)
		if claims == nil || claims.Role != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Admins only"})
			return
		}
		c.Next()
	}
}

// Identity returns the verified claims RequireAuth stored on the
// context, or nil when the request never passed the auth gate.
func Identity(c *gin.Context) *auth.Claims {
	v, ok := c.Get(IdentityKey)
	if !ok {
		return nil
	}
	claims, _ := v.(*auth.Claims)
	return claims
}
