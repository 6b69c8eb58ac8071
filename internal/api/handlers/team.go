package handlers

import (
	"net/http"

	"vibetracker-backend/internal/api/middleware"
	"vibetracker-backend/internal/api/response"
	"vibetracker-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TeamHandler handles HTTP requests for team operations
type TeamHandler struct {
	teamService service.TeamServiceInterface
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(teamService service.TeamServiceInterface) *TeamHandler {
	return &TeamHandler{
		teamService: teamService,
	}
}

// ListTeams handles GET /teams
// @Summary List teams
// @Description Get all teams of the active session ordered by name
// @Tags teams
// @Produce json
// @Success 200 {array} service.TeamResponse "Teams"
// @Failure 401 {object} response.ErrorResponse "No active session"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Security SessionKey
// @Router /teams [get]
func (h *TeamHandler) ListTeams(c *gin.Context) {
	teams, err := h.teamService.List(c.Request.Context(), middleware.SessionKey(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, teams)
}

// CreateTeam handles POST /teams
// @Summary Create a new team
// @Description Register a team in the active session
// @Tags teams
// @Accept json
// @Produce json
// @Param team body service.TeamRequest true "Team data"
// @Success 201 {object} service.TeamResponse "Successfully created team"
// @Failure 400 {object} response.ErrorResponse "Validation failed or team limit reached"
// @Failure 401 {object} response.ErrorResponse "No active session"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Security SessionKey
// @Router /teams [post]
func (h *TeamHandler) CreateTeam(c *gin.Context) {
	var req service.TeamRequest
	if !bindJSON(c, &req) {
		return
	}

	team, err := h.teamService.Create(c.Request.Context(), middleware.SessionKey(c), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, team)
}

// GetTeam handles GET /teams/:id
// @Summary Get team by ID
// @Description Get a specific team of the active session
// @Tags teams
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Success 200 {object} service.TeamResponse "Successfully retrieved team"
// @Failure 400 {object} response.ErrorResponse "Invalid team ID"
// @Failure 404 {object} response.ErrorResponse "Team not found"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Security SessionKey
// @Router /teams/{id} [get]
func (h *TeamHandler) GetTeam(c *gin.Context) {
	id, ok := uuidParam(c, "id", "team")
	if !ok {
		return
	}

	team, err := h.teamService.GetByID(c.Request.Context(), middleware.SessionKey(c), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, team)
}

// UpdateTeam handles PUT /teams/:id
// @Summary Update a team
// @Description Replace the editable fields of a team. Empty statuses keep their current values.
// @Tags teams
// @Accept json
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Param team body service.TeamRequest true "Team data"
// @Success 200 {object} service.TeamResponse "Successfully updated team"
// @Failure 400 {object} response.ErrorResponse "Invalid ID or validation failed"
// @Failure 404 {object} response.ErrorResponse "Team not found"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Security SessionKey
// @Router /teams/{id} [put]
func (h *TeamHandler) UpdateTeam(c *gin.Context) {
	id, ok := uuidParam(c, "id", "team")
	if !ok {
		return
	}
	var req service.TeamRequest
	if !bindJSON(c, &req) {
		return
	}

	team, err := h.teamService.Update(c.Request.Context(), middleware.SessionKey(c), id, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, team)
}

// UpdateTeamStatus handles PATCH /teams/:id/status
// @Summary Update team status
// @Description Change the project and/or scoring status of a team
// @Tags teams
// @Accept json
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Param status body service.TeamStatusRequest true "Statuses to change"
// @Success 200 {object} service.TeamResponse "Successfully updated team"
// @Failure 400 {object} response.ErrorResponse "Invalid ID or status"
// @Failure 404 {object} response.ErrorResponse "Team not found"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Security SessionKey
// @Router /teams/{id}/status [patch]
func (h *TeamHandler) UpdateTeamStatus(c *gin.Context) {
	id, ok := uuidParam(c, "id", "team")
	if !ok {
		return
	}
	var req service.TeamStatusRequest
	if !bindJSON(c, &req) {
		return
	}

	team, err := h.teamService.UpdateStatus(c.Request.Context(), middleware.SessionKey(c), id, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, team)
}

// DeleteTeam handles DELETE /teams/:id
// @Summary Delete a team
// @Description Delete a team together with its score
// @Tags teams
// @Param id path string true "Team ID (UUID)"
// @Success 204 "Successfully deleted team"
// @Failure 400 {object} response.ErrorResponse "Invalid team ID"
// @Failure 404 {object} response.ErrorResponse "Team not found"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Security SessionKey
// @Router /teams/{id} [delete]
func (h *TeamHandler) DeleteTeam(c *gin.Context) {
	id, ok := uuidParam(c, "id", "team")
	if !ok {
		return
	}

	if err := h.teamService.Delete(c.Request.Context(), middleware.SessionKey(c), id); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
