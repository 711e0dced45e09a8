package api

import (
	"errors"
	"net/http" // HTTP status codes

	"mealmate/internal/apperr"

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// Fail translates a component error into a status code and JSON body. This is
// the only place error kinds meet HTTP; nothing beyond the error's own
// message and details ever reaches the client.
func Fail(c *gin.Context, err error) {
	var e *apperr.Error
	if !errors.As(err, &e) {
		logrus.WithError(err).Error("Unhandled error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	status := http.StatusInternalServerError
	switch e.Kind {
	case apperr.KindValidation:
		status = http.StatusBadRequest
	case apperr.KindAuth:
		status = http.StatusUnauthorized
	case apperr.KindNotFound:
		status = http.StatusNotFound
	case apperr.KindConflict:
		status = http.StatusConflict
	case apperr.KindConfig:
		status = http.StatusServiceUnavailable
	case apperr.KindUpstreamFormat:
		status = http.StatusInternalServerError
	case apperr.KindInternal:
		logrus.WithError(e.Err).Error(e.Message)
	}

	body := gin.H{"error": e.Message}
	if e.Details != "" {
		body["details"] = e.Details
	}
	if e.Raw != "" {
		body["raw_response"] = e.Raw
	}
	c.JSON(status, body)
}
