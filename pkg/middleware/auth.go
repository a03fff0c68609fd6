package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const UserIDKey = "user_id"

// IdentityResolver maps a request to an authenticated user id.
type IdentityResolver interface {
	CurrentUserID(r *http.Request) (string, bool)
}

// AuthMiddleware rejects anonymous requests. Browser page navigations are sent
// to the login page; every other client gets a 401 JSON body.
func AuthMiddleware(resolver IdentityResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := resolver.CurrentUserID(c.Request)
		if !ok {
			if wantsPage(c) {
				c.Redirect(http.StatusFound, "/login")
				c.Abort()
				return
			}
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Login required"})
			c.Abort()
			return
		}

		c.Set(UserIDKey, userID)
		c.Next()
	}
}

// OptionalAuth records the user id when one is present and never rejects.
func OptionalAuth(resolver IdentityResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID, ok := resolver.CurrentUserID(c.Request); ok {
			c.Set(UserIDKey, userID)
		}
		c.Next()
	}
}

func wantsPage(c *gin.Context) bool {
	if c.GetHeader("X-Requested-With") == "XMLHttpRequest" {
		return false
	}
	accept := c.GetHeader("Accept")
	return strings.Contains(accept, "text/html") && !strings.Contains(accept, "json")
}
