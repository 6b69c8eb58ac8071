package handlers

import (
	"vibetracker-backend/internal/api/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// uuidParam parses a UUID path parameter, writing a 400 when it is malformed
func uuidParam(c *gin.Context, name, label string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		response.BadRequest(c, "invalid "+label+" ID")
		return uuid.Nil, false
	}
	return id, true
}

// bindJSON decodes the request body, writing a 400 when it is not valid JSON
func bindJSON(c *gin.Context, target interface{}) bool {
	if err := c.ShouldBindJSON(target); err != nil {
		response.BadRequest(c, "invalid request body")
		return false
	}
	return true
}
