package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/olprint/backoffice/internal/assistant"
	"github.com/olprint/backoffice/internal/models"
)

// statusFor maps a domain error to its HTTP status.
func statusFor(err error) int {
	switch {
	case models.IsValidation(err), models.IsInvalidStatus(err):
		return http.StatusBadRequest
	case models.IsNotFound(err):
		return http.StatusNotFound
	case models.IsCategoryInUse(err), errors.Is(err, assistant.ErrRequestPending):
		return http.StatusConflict
	case models.IsConfirmationRequired(err):
		return http.StatusPreconditionRequired
	case errors.Is(err, assistant.ErrMissingCredential):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) fail(c *gin.Context, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "path", c.Request.URL.Path, "error", err)
	}
	c.AbortWithStatusJSON(status, gin.H{"error": err.Error()})
}

func badRequest(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

// confirmed enforces ?confirm=true on destructive routes.
func confirmed(c *gin.Context, action, id string) error {
	if c.Query("confirm") == "true" {
		return nil
	}
	return models.NewConfirmationRequiredError(action, id)
}
