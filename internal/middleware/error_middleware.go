package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/university/advisorfinder/internal/app/models/dto"
	"github.com/university/advisorfinder/internal/pkg/apperrors"
	"github.com/university/advisorfinder/internal/pkg/logger"
)

// HandleAPIError maps service-layer errors onto HTTP responses. Validation
// errors carry the wrapped detail back to the client; everything else gets
// the sentinel's message so internals stay out of responses.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrValidationFailed), errors.Is(err, apperrors.ErrInvalidEmail):
		c.JSON(400, dto.NewErrorResponse(validationMessage(err)))
	case errors.Is(err, apperrors.ErrPermissionDenied):
		c.JSON(403, dto.NewErrorResponse("Only registered students can view contact information"))
	case errors.Is(err, apperrors.ErrStudentNotFound):
		c.JSON(404, dto.NewErrorResponse("Student not found"))
	case errors.Is(err, apperrors.ErrLecturerNotFound):
		c.JSON(404, dto.NewErrorResponse("Lecturer not found"))
	case errors.Is(err, apperrors.ErrCategoryNotFound):
		c.JSON(404, dto.NewErrorResponse("Research category not found"))
	case errors.Is(err, apperrors.ErrInterestNotFound):
		c.JSON(404, dto.NewErrorResponse("Research interest not found"))
	case errors.Is(err, apperrors.ErrResourceNotFound):
		c.JSON(404, dto.NewErrorResponse("Resource not found"))
	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		c.JSON(409, dto.NewErrorResponse("Email already registered"))
	case errors.Is(err, apperrors.ErrStudentIDAlreadyExists):
		c.JSON(409, dto.NewErrorResponse("Student ID already registered"))
	case errors.Is(err, apperrors.ErrLecturerExists):
		c.JSON(409, dto.NewErrorResponse("Lecturer with this email already exists"))
	case errors.Is(err, apperrors.ErrCategoryExists):
		c.JSON(409, dto.NewErrorResponse("Research category with this name already exists"))
	case errors.Is(err, apperrors.ErrInterestExists):
		c.JSON(409, dto.NewErrorResponse("Research interest already exists in this category"))
	case errors.Is(err, apperrors.ErrConflict):
		c.JSON(409, dto.NewErrorResponse("Resource already exists"))
	default:
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Unhandled API error")
		c.JSON(500, dto.NewErrorResponse("Internal server error"))
	}
}

// validationMessage strips the sentinel prefix added by fmt.Errorf("%w: ...")
// so clients see only the human-readable detail.
func validationMessage(err error) string {
	msg := err.Error()
	prefix := apperrors.ErrValidationFailed.Error() + ": "
	if len(msg) > len(prefix) && msg[:len(prefix)] == prefix {
		return msg[len(prefix):]
	}
	return msg
}
