package handlers

import (
	"net/http"

	"vibetracker-backend/internal/api/response"
	"vibetracker-backend/internal/service"

	"github.com/gin-gonic/gin"
)

const secondsPerDay = 24 * 60 * 60

// SessionHandler handles creating and joining event sessions
type SessionHandler struct {
	sessionService service.SessionServiceInterface
	cookieName     string
	cookieMaxAge   int
}

// NewSessionHandler creates a new session handler. The session cookie lives for maxAgeDays.
func NewSessionHandler(sessionService service.SessionServiceInterface, cookieName string, maxAgeDays int) *SessionHandler {
	return &SessionHandler{
		sessionService: sessionService,
		cookieName:     cookieName,
		cookieMaxAge:   maxAgeDays * secondsPerDay,
	}
}

// CreateSession handles POST /sessions
// @Summary Create an event session
// @Description Allocate a new 5-character session key seeded with default settings and rubric, and set the session cookie
// @Tags sessions
// @Produce json
// @Success 201 {object} service.SessionResponse "Session created"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /sessions [post]
func (h *SessionHandler) CreateSession(c *gin.Context) {
	session, err := h.sessionService.CreateSession(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	h.setCookie(c, session.Key)
	c.JSON(http.StatusCreated, session)
}

// JoinSession handles GET /sessions/:key
// @Summary Join an event session
// @Description Resolve an existing session key and set the session cookie
// @Tags sessions
// @Produce json
// @Param key path string true "Session key (5 hex characters)"
// @Success 200 {object} service.SessionResponse "Session joined"
// @Failure 400 {object} response.ErrorResponse "Malformed session key"
// @Failure 404 {object} response.ErrorResponse "Session not found"
// @Router /sessions/{key} [get]
func (h *SessionHandler) JoinSession(c *gin.Context) {
	session, err := h.sessionService.GetSession(c.Request.Context(), c.Param("key"))
	if err != nil {
		response.Error(c, err)
		return
	}

	h.setCookie(c, session.Key)
	c.JSON(http.StatusOK, session)
}

// The cookie is readable by client scripts so the frontend can display the key.
func (h *SessionHandler) setCookie(c *gin.Context, key string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookieName, key, h.cookieMaxAge, "/", "", false, false)
}
