package handlers

import (
	"net/http"

	"vibetracker-backend/internal/api/middleware"
	"vibetracker-backend/internal/api/response"
	"vibetracker-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// SettingsHandler handles HTTP requests for event settings
type SettingsHandler struct {
	settingsService service.SettingsServiceInterface
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settingsService service.SettingsServiceInterface) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// GetSettings handles GET /settings
// @Summary Get event settings
// @Description Get the settings of the active session, falling back to defaults
// @Tags settings
// @Produce json
// @Success 200 {object} service.SettingsResponse "Event settings"
// @Failure 401 {object} response.ErrorResponse "No active session"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Security SessionKey
// @Router /settings [get]
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	settings, err := h.settingsService.Get(c.Request.Context(), middleware.SessionKey(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

// UpdateSettings handles PUT /settings
// @Summary Update event settings
// @Description Partially update the settings of the active session. An empty countdownTarget clears the countdown.
// @Tags settings
// @Accept json
// @Produce json
// @Param settings body service.UpdateSettingsRequest true "Fields to change"
// @Success 200 {object} service.SettingsResponse "Updated settings"
// @Failure 400 {object} response.ErrorResponse "Validation failed"
// @Failure 401 {object} response.ErrorResponse "No active session"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Security SessionKey
// @Router /settings [put]
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	var req service.UpdateSettingsRequest
	if !bindJSON(c, &req) {
		return
	}

	settings, err := h.settingsService.Update(c.Request.Context(), middleware.SessionKey(c), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}
