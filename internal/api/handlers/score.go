package handlers

import (
	"net/http"

	"vibetracker-backend/internal/api/middleware"
	"vibetracker-backend/internal/api/response"
	"vibetracker-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ScoreHandler handles HTTP requests for scores and the ranked board
type ScoreHandler struct {
	scoreBoardService service.ScoreBoardServiceInterface
}

// NewScoreHandler creates a new score handler
func NewScoreHandler(scoreBoardService service.ScoreBoardServiceInterface) *ScoreHandler {
	return &ScoreHandler{scoreBoardService: scoreBoardService}
}

// GetBoard handles GET /scores
// @Summary Get the ranked board
// @Description Get every team of the active session with its criteria, subtotals, total, status and competition rank
// @Tags scores
// @Produce json
// @Success 200 {object} service.BoardResponse "Ranked board"
// @Failure 401 {object} response.ErrorResponse "No active session"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Security SessionKey
// @Router /scores [get]
func (h *ScoreHandler) GetBoard(c *gin.Context) {
	board, err := h.scoreBoardService.GetBoard(c.Request.Context(), middleware.SessionKey(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, board)
}

// GetTeamScore handles GET /scores/:teamId
// @Summary Get a team's score
// @Description Get one team's criteria and aggregate, without a rank
// @Tags scores
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Success 200 {object} service.TeamScoreResponse "Team score"
// @Failure 400 {object} response.ErrorResponse "Invalid team ID"
// @Failure 404 {object} response.ErrorResponse "Team not found"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Security SessionKey
// @Router /scores/{teamId} [get]
func (h *ScoreHandler) GetTeamScore(c *gin.Context) {
	teamID, ok := uuidParam(c, "teamId", "team")
	if !ok {
		return
	}

	score, err := h.scoreBoardService.GetTeamScore(c.Request.Context(), middleware.SessionKey(c), teamID)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, score)
}

// SaveScore handles PUT /scores/:teamId
// @Summary Save a team's score
// @Description Replace all ten criteria of a team. Each of c1..c10 may be null, empty, an integer 1-10 or a numeric string.
// @Tags scores
// @Accept json
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Param score body object true "Criteria c1..c10"
// @Success 200 {object} service.TeamScoreResponse "Saved score"
// @Failure 400 {object} response.ErrorResponse "Invalid criterion values"
// @Failure 403 {object} response.ErrorResponse "Scoring is locked"
// @Failure 404 {object} response.ErrorResponse "Team not found"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Security SessionKey
// @Router /scores/{teamId} [put]
func (h *ScoreHandler) SaveScore(c *gin.Context) {
	teamID, ok := uuidParam(c, "teamId", "team")
	if !ok {
		return
	}
	req := service.ScoreRequest{}
	if !bindJSON(c, &req) {
		return
	}

	score, err := h.scoreBoardService.SaveScore(c.Request.Context(), middleware.SessionKey(c), teamID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, score)
}
