package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const sessionCookie = "shop_session"

// Session assigns each browser a session id via cookie and puts it in the
// request context as "session_id".
func Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(sessionCookie)
		if err != nil || id == "" {
			id = uuid.NewString()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(sessionCookie, id, 86400, "/", "", false, true)
		}
		c.Set("session_id", id)
		c.Next()
	}
}

// SessionID pulls the session id set by Session.
func SessionID(c *gin.Context) string {
	return c.GetString("session_id")
}
