package middleware

import (
	"net/http"
	"strings"

	"homepro/internal/pkg/jwt"
	"homepro/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// JWTAuth validates the bearer token and stores user_id and role on the
// request context for downstream handlers.
func JWTAuth(jwtService *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" {
			response.AbortError(c, http.StatusUnauthorized, "missing Authorization header")
			return
		}

		if !strings.HasPrefix(h, "Bearer ") {
			response.AbortError(c, http.StatusUnauthorized, "invalid Authorization header")
			return
		}

		tokenStr := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
		if tokenStr == "" {
			response.AbortError(c, http.StatusUnauthorized, "empty token")
			return
		}

		claims, err := jwtService.ValidateToken(tokenStr)
		if err != nil {
			response.AbortError(c, http.StatusUnauthorized, "invalid token")
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("role", claims.Role)

		c.Next()
	}
}
