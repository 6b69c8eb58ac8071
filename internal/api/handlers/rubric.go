package handlers

import (
	"net/http"

	"vibetracker-backend/internal/api/middleware"
	"vibetracker-backend/internal/api/response"
	"vibetracker-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// RubricHandler handles HTTP requests for the judging rubric
type RubricHandler struct {
	rubricService service.RubricServiceInterface
}

// NewRubricHandler creates a new rubric handler
func NewRubricHandler(rubricService service.RubricServiceInterface) *RubricHandler {
	return &RubricHandler{rubricService: rubricService}
}

// GetRubric handles GET /rubric
// @Summary Get the rubric
// @Description Get the ten judging categories of the active session
// @Tags rubric
// @Produce json
// @Success 200 {array} service.RubricCategoryResponse "Rubric categories ordered by index"
// @Failure 401 {object} response.ErrorResponse "No active session"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Security SessionKey
// @Router /rubric [get]
func (h *RubricHandler) GetRubric(c *gin.Context) {
	rubric, err := h.rubricService.List(c.Request.Context(), middleware.SessionKey(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, rubric)
}

// UpdateRubric handles PUT /rubric
// @Summary Update the rubric
// @Description Replace names and guidance of all ten categories. Groups are fixed by index.
// @Tags rubric
// @Accept json
// @Produce json
// @Param rubric body service.UpdateRubricRequest true "All ten categories"
// @Success 200 {array} service.RubricCategoryResponse "Updated rubric"
// @Failure 400 {object} response.ErrorResponse "Validation failed"
// @Failure 401 {object} response.ErrorResponse "No active session"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Security SessionKey
// @Router /rubric [put]
func (h *RubricHandler) UpdateRubric(c *gin.Context) {
	var req service.UpdateRubricRequest
	if !bindJSON(c, &req) {
		return
	}

	rubric, err := h.rubricService.Update(c.Request.Context(), middleware.SessionKey(c), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, rubric)
}
