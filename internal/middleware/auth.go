package middleware

import (
	"net/http"
	"strings"

	"github.com/JoonHyoungLee-Seoul/vanta/internal/models"
	"github.com/JoonHyoungLee-Seoul/vanta/internal/services"

	"github.com/gin-gonic/gin"
)

const currentUserKey = "current_user"

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}

// authenticate resolves the bearer token and stashes the user on the context.
// It aborts the request on failure and reports whether it succeeded.
func authenticate(c *gin.Context, authService *services.AuthService) bool {
	token := bearerToken(c)
	if token == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"ok": false, "message": "authorization required"})
		return false
	}

	user, err := authService.Authenticate(token)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"ok": false, "message": "invalid or expired token"})
		return false
	}

	c.Set(currentUserKey, user)
	return true
}

// JWTAuth rejects requests without a valid bearer token for an existing user.
func JWTAuth(authService *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !authenticate(c, authService) {
			return
		}
		c.Next()
	}
}

// OptionalAuth resolves the caller when a valid token is present and stays
// silent otherwise.
func OptionalAuth(authService *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if user := authService.AuthenticateOptional(bearerToken(c)); user != nil {
			c.Set(currentUserKey, user)
		}
		c.Next()
	}
}

// AdminAuth additionally checks the caller against the configured admin list.
func AdminAuth(authService *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !authenticate(c, authService) {
			return
		}

		user := CurrentUser(c)
		if user == nil || !authService.IsAdmin(user.ID) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"ok": false, "message": "admin privileges required"})
			return
		}
		c.Next()
	}
}

// CurrentUser returns the authenticated user set by JWTAuth/OptionalAuth, or
// nil when the request is anonymous.
func CurrentUser(c *gin.Context) *models.User {
	value, ok := c.Get(currentUserKey)
	if !ok {
		return nil
	}
	user, _ := value.(*models.User)
	return user
}
