package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"file-custody-api/internal/infrastructure/jwt"
)

const (
	CtxUserID      = "userID"
	CtxUsername    = "username"
	CtxDisplayName = "displayName"
	CtxIsAdmin     = "isAdmin"
)

func AuthMiddleware(jwtService *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				gin.H{"error": "missing Authorization header"},
			)
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenStr == authHeader {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				gin.H{"error": "invalid token format"},
			)
			return
		}

		claims, err := jwtService.ValidateToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				gin.H{"error": "invalid token"},
			)
			return
		}

		c.Set(CtxUserID, claims.UserID)
		c.Set(CtxUsername, claims.Username)
		c.Set(CtxDisplayName, claims.DisplayName)
		c.Set(CtxIsAdmin, claims.IsAdmin)

		c.Next()
	}
}

// CallerID returns the authenticated caller identity set by AuthMiddleware.
func CallerID(c *gin.Context) (int64, bool) {
	v, ok := c.Get(CtxUserID)
	if !ok {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}

func CallerDisplayName(c *gin.Context) string {
	if v, ok := c.Get(CtxDisplayName); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func CallerIsAdmin(c *gin.Context) bool {
	if v, ok := c.Get(CtxIsAdmin); ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return false
}
