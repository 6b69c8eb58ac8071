package middleware

import (
	"vibetracker-backend/internal/api/response"
	apperrors "vibetracker-backend/internal/errors"
	"vibetracker-backend/internal/logger"
	"vibetracker-backend/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	// SessionHeader lets non-browser clients pass the session key without a cookie
	SessionHeader = "X-Session-Key"
	sessionKey    = "session_key"
)

// Session resolves the active event session from the cookie or the
// X-Session-Key header and rejects requests without a known session.
func Session(sessions service.SessionServiceInterface, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := c.Cookie(cookieName)
		if err != nil || raw == "" {
			raw = c.GetHeader(SessionHeader)
		}
		if raw == "" {
			response.Error(c, apperrors.ErrNoSession)
			return
		}

		session, err := sessions.GetSession(c.Request.Context(), raw)
		if err != nil {
			if apperrors.IsValidation(err) {
				err = apperrors.ErrSessionNotFound
			}
			response.Error(c, err)
			return
		}

		c.Set(sessionKey, session.Key)
		c.Request = c.Request.WithContext(logger.WithSession(c.Request.Context(), session.Key))
		c.Next()
	}
}

// SessionKey returns the key resolved by Session
func SessionKey(c *gin.Context) string {
	return c.GetString(sessionKey)
}
