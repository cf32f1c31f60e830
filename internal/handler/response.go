package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/remindengine/core/internal/middleware"
	apperrors "github.com/remindengine/core/pkg/errors"
)

// RespondError translates a service error into the uniform
// {error, message, timestamp, request_id} shape from spec.md §6,
// defaulting to a 500 INTERNAL_ERROR when the error isn't an AppError.
func RespondError(c *gin.Context, err error) {
	appErr := apperrors.GetAppError(err)
	if appErr == nil {
		appErr = apperrors.Wrap(err, apperrors.CodeInternalError, "internal server error", http.StatusInternalServerError)
	}

	c.Error(appErr)
	c.JSON(appErr.StatusCode, gin.H{
		"error":      appErr.Code,
		"message":    appErr.Message,
		"timestamp":  time.Now().UTC().Format(time.RFC3339),
		"request_id": middleware.RequestID(c),
	})
}

// RespondValidation is a shortcut for request-binding failures, which never
// wrap a service-layer AppError.
func RespondValidation(c *gin.Context, message string) {
	RespondError(c, apperrors.ValidationError(message))
}
