package handlers

import (
	"net/http"
	"strconv"

	"vibetracker-backend/internal/api/middleware"
	"vibetracker-backend/internal/api/response"
	"vibetracker-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AnnouncementHandler handles HTTP requests for announcements
type AnnouncementHandler struct {
	announcementService service.AnnouncementServiceInterface
}

// NewAnnouncementHandler creates a new announcement handler
func NewAnnouncementHandler(announcementService service.AnnouncementServiceInterface) *AnnouncementHandler {
	return &AnnouncementHandler{announcementService: announcementService}
}

// ListAnnouncements handles GET /announcements
// @Summary List announcements
// @Description Get announcements pinned first then newest first, optionally filtered by publication state
// @Tags announcements
// @Produce json
// @Param published query bool false "Only published (true) or only drafts (false)"
// @Success 200 {array} service.AnnouncementResponse "Announcements"
// @Failure 400 {object} response.ErrorResponse "Invalid published filter"
// @Failure 401 {object} response.ErrorResponse "No active session"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Security SessionKey
// @Router /announcements [get]
func (h *AnnouncementHandler) ListAnnouncements(c *gin.Context) {
	var published *bool
	if raw := c.Query("published"); raw != "" {
		value, err := strconv.ParseBool(raw)
		if err != nil {
			response.BadRequest(c, "published must be true or false")
			return
		}
		published = &value
	}

	announcements, err := h.announcementService.List(c.Request.Context(), middleware.SessionKey(c), published)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, announcements)
}

// CreateAnnouncement handles POST /announcements
// @Summary Create an announcement
// @Description Create an announcement. At most a fixed number may be pinned per session.
// @Tags announcements
// @Accept json
// @Produce json
// @Param announcement body service.CreateAnnouncementRequest true "Announcement data"
// @Success 201 {object} service.AnnouncementResponse "Created announcement"
// @Failure 400 {object} response.ErrorResponse "Validation failed or pin limit reached"
// @Failure 401 {object} response.ErrorResponse "No active session"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Security SessionKey
// @Router /announcements [post]
func (h *AnnouncementHandler) CreateAnnouncement(c *gin.Context) {
	var req service.CreateAnnouncementRequest
	if !bindJSON(c, &req) {
		return
	}

	announcement, err := h.announcementService.Create(c.Request.Context(), middleware.SessionKey(c), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, announcement)
}

// UpdateAnnouncement handles PUT /announcements/:id
// @Summary Update an announcement
// @Description Partially update an announcement
// @Tags announcements
// @Accept json
// @Produce json
// @Param id path string true "Announcement ID (UUID)"
// @Param announcement body service.UpdateAnnouncementRequest true "Fields to change"
// @Success 200 {object} service.AnnouncementResponse "Updated announcement"
// @Failure 400 {object} response.ErrorResponse "Invalid ID, validation failed or pin limit reached"
// @Failure 404 {object} response.ErrorResponse "Announcement not found"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Security SessionKey
// @Router /announcements/{id} [put]
func (h *AnnouncementHandler) UpdateAnnouncement(c *gin.Context) {
	id, ok := uuidParam(c, "id", "announcement")
	if !ok {
		return
	}
	var req service.UpdateAnnouncementRequest
	if !bindJSON(c, &req) {
		return
	}

	announcement, err := h.announcementService.Update(c.Request.Context(), middleware.SessionKey(c), id, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, announcement)
}

// DeleteAnnouncement handles DELETE /announcements/:id
// @Summary Delete an announcement
// @Tags announcements
// @Param id path string true "Announcement ID (UUID)"
// @Success 204 "Deleted"
// @Failure 400 {object} response.ErrorResponse "Invalid announcement ID"
// @Failure 404 {object} response.ErrorResponse "Announcement not found"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Security SessionKey
// @Router /announcements/{id} [delete]
func (h *AnnouncementHandler) DeleteAnnouncement(c *gin.Context) {
	id, ok := uuidParam(c, "id", "announcement")
	if !ok {
		return
	}

	if err := h.announcementService.Delete(c.Request.Context(), middleware.SessionKey(c), id); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
