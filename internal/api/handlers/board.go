package handlers

import (
	"net/http"

	"vibetracker-backend/internal/api/response"
	"vibetracker-backend/internal/service"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

// PublicBoardHandler serves the read-only TV display of a session
type PublicBoardHandler struct {
	sessionService      service.SessionServiceInterface
	settingsService     service.SettingsServiceInterface
	scoreBoardService   service.ScoreBoardServiceInterface
	announcementService service.AnnouncementServiceInterface
}

// NewPublicBoardHandler creates a new public board handler
func NewPublicBoardHandler(
	sessionService service.SessionServiceInterface,
	settingsService service.SettingsServiceInterface,
	scoreBoardService service.ScoreBoardServiceInterface,
	announcementService service.AnnouncementServiceInterface,
) *PublicBoardHandler {
	return &PublicBoardHandler{
		sessionService:      sessionService,
		settingsService:     settingsService,
		scoreBoardService:   scoreBoardService,
		announcementService: announcementService,
	}
}

// PublicBoardResponse is everything a TV display needs in one payload
type PublicBoardResponse struct {
	Settings      *service.SettingsResponse      `json:"settings"`
	Board         *service.BoardResponse         `json:"board"`
	Announcements []service.AnnouncementResponse `json:"announcements"`
}

// GetPublicBoard handles GET /public/boards/:key
// @Summary Get the TV board
// @Description Get settings, the ranked board and published announcements of a session without a session cookie
// @Tags public
// @Produce json
// @Param key path string true "Session key (5 hex characters)"
// @Success 200 {object} PublicBoardResponse "TV board"
// @Failure 400 {object} response.ErrorResponse "Malformed session key"
// @Failure 404 {object} response.ErrorResponse "Session not found"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /public/boards/{key} [get]
func (h *PublicBoardHandler) GetPublicBoard(c *gin.Context) {
	ctx := c.Request.Context()
	session, err := h.sessionService.GetSession(ctx, c.Param("key"))
	if err != nil {
		response.Error(c, err)
		return
	}

	var resp PublicBoardResponse
	published := true
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		resp.Settings, err = h.settingsService.Get(gctx, session.Key)
		return err
	})
	g.Go(func() error {
		var err error
		resp.Board, err = h.scoreBoardService.GetBoard(gctx, session.Key)
		return err
	})
	g.Go(func() error {
		var err error
		resp.Announcements, err = h.announcementService.List(gctx, session.Key, &published)
		return err
	})
	if err := g.Wait(); err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
