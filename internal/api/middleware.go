package api

import (
	"errors"
	"net/http"
	"strings"

	"leadgate/internal/auth"

	"github.com/gin-gonic/gin"
)

// Context keys set by RequireAuth for downstream handlers.
const (
	ctxAdminUUID  = "admin_uuid"
	ctxAdminEmail = "admin_email"
	ctxAdminRole  = "admin_role"
)

// CORS allows browser clients from any origin and answers preflight
// requests with 204 before they reach a handler.
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// RequireAuth verifies the bearer token and stores the claims in the
// request context. Expired tokens get a distinct message from every
// other verification failure.
func RequireAuth(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Authorization header required"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid authorization format"})
			c.Abort()
			return
		}

		claims, err := tokens.Parse(parts[1])
		if err != nil {
			if errors.Is(err, auth.ErrExpiredToken) {
				c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Token expired"})
			} else {
				c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid token"})
			}
			c.Abort()
			return
		}

		c.Set(ctxAdminUUID, claims.UserUUID)
		c.Set(ctxAdminEmail, claims.Email)
		c.Set(ctxAdminRole, claims.Role)

		c.Next()
	}
}

// RequireRole rejects callers whose role claim is not in the allowed set.
// It must run after RequireAuth.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(ctxAdminRole)
		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}
		c.JSON(http.StatusForbidden, gin.H{"success": false, "error": "Insufficient permissions"})
		c.Abort()
	}
}

// RequireSuperAdmin is the strict variant of RequireRole.
func RequireSuperAdmin() gin.HandlerFunc {
	return RequireRole(auth.RoleSuperAdmin)
}
