package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"bakehouse-api/internal/models"
)

type errorResponse struct {
	Error     string `json:"error"`
	Details   any    `json:"details,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
}

func newErrorResponse(c *gin.Context, statusCode int, message string) {
	logrus.Error(message)
	c.AbortWithStatusJSON(statusCode, errorResponse{Error: message})
}

// validationFailed carries the whole field-error map; a rejected payload
// is never answered with a partial success.
func validationFailed(c *gin.Context, fields models.FieldErrors) {
	c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse{
		Error:   "Validation failed",
		Details: fields,
	})
}

// serverError includes an RFC3339 timestamp for log correlation.
func serverError(c *gin.Context, message string, err error) {
	logrus.WithError(err).Error(message)
	c.AbortWithStatusJSON(http.StatusInternalServerError, errorResponse{
		Error:     message,
		Details:   err.Error(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// noCache marks order listings as operationally sensitive; intermediaries
// must not serve a stale page.
func noCache(c *gin.Context) {
	c.Header("Cache-Control", "no-store, no-cache, must-revalidate")
	c.Header("Pragma", "no-cache")
}
