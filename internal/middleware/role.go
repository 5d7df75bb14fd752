package middleware

import (
	"net/http"

	"homepro/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// RequireRole ensures the authenticated user carries the given role.
// Role routes answer 403, not 404: route existence is public knowledge,
// unlike individual resources.
func RequireRole(requiredRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			response.AbortError(c, http.StatusUnauthorized, "role not found in token")
			return
		}

		if role.(string) != requiredRole {
			response.AbortError(c, http.StatusForbidden, "insufficient permissions")
			return
		}

		c.Next()
	}
}

func AdminOnly() gin.HandlerFunc {
	return RequireRole("admin")
}
