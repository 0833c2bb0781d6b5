package middleware

import (
	"net/http"
	"time"

	"social-workflow-web/internal/domain"
	"social-workflow-web/pkg/security"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const SessionCookieName = "sw_session"

// Session gives every visitor an opaque session ID cookie. The UI snapshots
// behind it live in the session store, not in the cookie.
func Session(ttl time.Duration, secureCookie bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(SessionCookieName)
		if _, parseErr := uuid.Parse(id); err != nil || parseErr != nil {
			if err == nil {
				// A cookie was sent but is not one we issued
				security.DefaultLogger().Log(c.Request.Context(), security.SecurityEvent{
					Event:        security.EventSessionReissued,
					SubjectType:  "session",
					SubjectValue: security.HashValue(id),
					IP:           c.ClientIP(),
					RequestID:    c.GetString(string(domain.KeyRequestID)),
				})
			}
			id = uuid.NewString()
		}

		// Refresh on every request so the cookie outlives the store entry
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(SessionCookieName, id, int(ttl.Seconds()), "/", "", secureCookie, true)

		c.Set(string(domain.KeySessionID), id)
		c.Next()
	}
}

// SessionID returns the ID set by Session.
func SessionID(c *gin.Context) string {
	return c.GetString(string(domain.KeySessionID))
}
