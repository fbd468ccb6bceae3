package middleware

import (
	"net/http"
	"strings"

	"artmarket/internal/api/httpx"
	"artmarket/internal/apperr"
	"artmarket/internal/domain/access"

	"github.com/gin-gonic/gin"
)

// Authenticator resolves a bearer token to a principal.
type Authenticator interface {
	Authenticate(token string) (access.Principal, error)
}

func AuthMiddleware(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header missing"})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Bearer token malformed"})
			return
		}

		p, err := auth.Authenticate(strings.TrimSpace(tokenString))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		httpx.SetPrincipal(c, p)
		c.Next()
	}
}

// OptionalAuth attaches a principal when a valid token is present and lets
// anonymous requests through otherwise.
func OptionalAuth(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		if tokenString != "" {
			if p, err := auth.Authenticate(strings.TrimSpace(tokenString)); err == nil {
				httpx.SetPrincipal(c, p)
			}
		}
		c.Next()
	}
}

func RequireRole(role access.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := access.RequireRole(httpx.PrincipalFrom(c), role); err != nil {
			if apperr.Is(err, apperr.KindUnauthenticated) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Role not found in token"})
				return
			}
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied"})
			return
		}
		c.Next()
	}
}
