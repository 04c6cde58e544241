package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/schoollink/schoollink-api/internal/app/models/dto"
	"github.com/schoollink/schoollink-api/internal/pkg/apperrors"
	"github.com/schoollink/schoollink-api/internal/pkg/logger"
)

// HandleAPIError handles common API errors and returns appropriate responses
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrBatchTooLarge):
		c.JSON(400, dto.NewErrorResponse(dto.ErrorCodeBatchTooLarge, "Too many student IDs"))
		return
	case errors.Is(err, apperrors.ErrValidationFailed),
		errors.Is(err, apperrors.ErrBadRequest),
		errors.Is(err, apperrors.ErrQueryTooShort),
		errors.Is(err, apperrors.ErrMissingIdentifier),
		errors.Is(err, apperrors.ErrNoUpdatableFields),
		errors.Is(err, apperrors.ErrEmptyPhoto):
		c.JSON(400, dto.NewErrorResponse(dto.ErrorCodeValidationFailed, errorMessage(err, "Validation failed")))
		return
	case errors.Is(err, apperrors.ErrStudentNotFound):
		c.JSON(404, dto.NewErrorResponse(dto.ErrorCodeResourceNotFound, "Student not found"))
		return
	case errors.Is(err, apperrors.ErrPhotoNotFound):
		c.JSON(404, dto.NewErrorResponse(dto.ErrorCodeResourceNotFound, "Photo not found"))
		return
	case errors.Is(err, apperrors.ErrResourceNotFound):
		c.JSON(404, dto.NewErrorResponse(dto.ErrorCodeResourceNotFound, errorMessage(err, "Resource not found")))
		return
	case errors.Is(err, apperrors.ErrConflict):
		c.JSON(409, dto.NewErrorResponse(dto.ErrorCodeValidationFailed, errorMessage(err, "Conflict")))
		return
	default:
		// Never leak internals; the details go to the log only.
		logger.Error().Err(err).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("Unhandled API error")
		c.JSON(500, dto.NewErrorResponse(dto.ErrorCodeInternalServer, "Internal server error"))
		return
	}
}

// errorMessage prefers the wrapped human-readable message when one was set.
func errorMessage(err error, fallback string) string {
	var customErr *apperrors.CustomError
	if errors.As(err, &customErr) && customErr.Message != "" {
		return customErr.Message
	}
	if err != nil && err.Error() != "" {
		return err.Error()
	}
	return fallback
}
