package middleware

import (
	"errors"

	"github.com/aortega/tutorhub/internal/app/models/dto"
	"github.com/aortega/tutorhub/internal/pkg/apperrors"
	"github.com/gin-gonic/gin"
)

// HandleAPIError maps application errors to HTTP responses
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrValidationFailed):
		c.JSON(400, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error()),
		))
	case errors.Is(err, apperrors.ErrBadRequest):
		c.JSON(400, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Bad request"),
		))
	case errors.Is(err, apperrors.ErrTutorNotFound), errors.Is(err, apperrors.ErrResourceNotFound):
		c.JSON(404, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Resource not found"),
		))
	case errors.Is(err, apperrors.ErrResourceAlreadyExists):
		c.JSON(409, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, "Resource already exists"),
		))
	case errors.Is(err, apperrors.ErrEnrollmentFailed):
		// Opaque by contract: the caller only learns the enrollment
		// as a whole did not happen.
		c.JSON(500, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeEnrollmentFailed, "Enrollment failed"),
		))
	default:
		c.JSON(500, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error"),
		))
	}
}
