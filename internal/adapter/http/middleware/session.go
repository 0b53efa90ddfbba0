package middleware

import (
	"github.com/gin-gonic/gin"

	"eastask/internal/core/domain"
)

// SessionMiddleware reads the authenticated user and active workspace the
// auth gateway injects as headers. Commands validate the session
// themselves, so an anonymous request still reaches the handler and comes
// back as a missing-session notice instead of a transport error.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("session", domain.Session{
			UserID:      c.GetHeader("X-User-ID"),
			WorkspaceID: c.GetHeader("X-Workspace-ID"),
		})
		c.Next()
	}
}

func GetSession(c *gin.Context) domain.Session {
	if value, exists := c.Get("session"); exists {
		if sess, ok := value.(domain.Session); ok {
			return sess
		}
	}
	return domain.Session{}
}
