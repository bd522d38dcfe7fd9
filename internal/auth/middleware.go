package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	CtxUserID   = "user_id"
	CtxUsername = "username"
	CtxIsAdmin  = "is_admin"
)

// RequireAdmin gates a route group behind a valid admin session.
// The client-side guard is advisory only; this is the real boundary.
func RequireAdmin(sessions *SessionStore, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, err := c.Cookie(cookieName)
		if err != nil || sid == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
			c.Abort()
			return
		}

		sess, err := sessions.Get(c.Request.Context(), sid)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
			c.Abort()
			return
		}

		if !sess.IsAdmin {
			c.JSON(http.StatusForbidden, gin.H{"message": "Admin access required"})
			c.Abort()
			return
		}

		c.Set(CtxUserID, sess.UserID)
		c.Set(CtxUsername, sess.Username)
		c.Set(CtxIsAdmin, true)
		c.Next()
	}
}

// SessionUserID extracts the authenticated user id from the Gin context.
// This is set by RequireAdmin.
func SessionUserID(c *gin.Context) string {
	return strings.TrimSpace(c.GetString(CtxUserID))
}
