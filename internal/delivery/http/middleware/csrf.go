package middleware

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"net/http"
	"time"

	"social-workflow-web/internal/delivery/http/response"
	"social-workflow-web/internal/domain"
	"social-workflow-web/pkg/security"

	"github.com/gin-gonic/gin"
)

const (
	// CSRFTokenCookieName is the name of the cookie that stores the CSRF token
	CSRFTokenCookieName = "csrf_token"
	// CSRFTokenHeaderName is the header JSON clients echo the token in
	CSRFTokenHeaderName = "X-CSRF-Token"
	// CSRFTokenFormField is the hidden field HTML forms echo the token in
	CSRFTokenFormField = "csrf_token"
	// CSRFContextKey exposes the token to templates
	CSRFContextKey = "CSRFToken"
	// CSRFTokenLength is the length of the generated token in bytes (32 bytes = 64 hex chars)
	CSRFTokenLength = 32
	// CSRFTokenExpiry is how long the token is valid
	CSRFTokenExpiry = 24 * time.Hour
)

// generateCSRFToken creates a cryptographically secure random token
func generateCSRFToken() (string, error) {
	bytes := make([]byte, CSRFTokenLength)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}

// CSRFMiddleware implements the Double-Submit Cookie pattern.
// Mutating requests must echo the csrf_token cookie either in the
// X-CSRF-Token header (JSON API) or in the csrf_token form field (pages).
func CSRFMiddleware(secureCookie bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		csrfCookie, err := c.Cookie(CSRFTokenCookieName)

		if err != nil || csrfCookie == "" {
			newToken, err := generateCSRFToken()
			if err != nil {
				response.Error(c, http.StatusInternalServerError, "Failed to generate security token", nil)
				c.Abort()
				return
			}

			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(
				CSRFTokenCookieName,
				newToken,
				int(CSRFTokenExpiry.Seconds()),
				"/",
				"", // Domain (empty = current domain)
				secureCookie,
				false, // HttpOnly = false so JS can read it
			)
			csrfCookie = newToken
		}
		c.Set(CSRFContextKey, csrfCookie)

		method := c.Request.Method
		if method == http.MethodGet || method == http.MethodHead || method == http.MethodOptions {
			c.Next()
			return
		}

		token := c.GetHeader(CSRFTokenHeaderName)
		if token == "" {
			token = c.PostForm(CSRFTokenFormField)
		}

		if token == "" {
			logCSRFViolation(c, "missing")
			response.Error(c, http.StatusForbidden, "Missing CSRF token", nil)
			c.Abort()
			return
		}

		if subtle.ConstantTimeCompare([]byte(token), []byte(csrfCookie)) != 1 {
			logCSRFViolation(c, "mismatch")
			response.Error(c, http.StatusForbidden, "Invalid CSRF token", nil)
			c.Abort()
			return
		}

		c.Next()
	}
}

func logCSRFViolation(c *gin.Context, reason string) {
	security.DefaultLogger().LogCSRFViolation(
		c.Request.Context(),
		c.ClientIP(),
		c.Request.UserAgent(),
		c.GetString(string(domain.KeyRequestID)),
		c.Request.URL.Path,
		reason,
	)
}
