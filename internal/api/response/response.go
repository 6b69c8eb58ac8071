package response

import (
	"errors"
	"net/http"

	apperrors "vibetracker-backend/internal/errors"
	"vibetracker-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// InternalErrorMessage is the only detail clients see for unexpected failures
const InternalErrorMessage = "Internal server error"

// ErrorResponse is the body of every failed API call
type ErrorResponse struct {
	Errors []string `json:"errors" example:"teamName is required"`
}

// StatusFor maps a domain error to its HTTP status
func StatusFor(err error) int {
	switch {
	case apperrors.IsValidation(err):
		return http.StatusBadRequest
	case apperrors.IsNotFound(err):
		return http.StatusNotFound
	case apperrors.IsLocked(err):
		return http.StatusForbidden
	case errors.Is(err, apperrors.ErrNoSession):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// Error writes err as an {"errors": [...]} body. Internal failures are logged
// and replaced with a generic message.
func Error(c *gin.Context, err error) {
	status := StatusFor(err)
	if status == http.StatusInternalServerError {
		logger.WithContext(c.Request.Context()).WithError(err).
			WithField("path", c.Request.URL.Path).
			Error("Request failed")
		c.AbortWithStatusJSON(status, ErrorResponse{Errors: []string{InternalErrorMessage}})
		return
	}
	c.AbortWithStatusJSON(status, ErrorResponse{Errors: apperrors.Messages(err)})
}

// BadRequest writes a 400 with the given messages
func BadRequest(c *gin.Context, messages ...string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{Errors: messages})
}
