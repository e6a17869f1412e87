// Package controllers handles HTTP request handling
package controllers

import (
	"net/http"
	"strconv"

	"github.com/aortega/tutorhub/internal/app/models/dto"
	"github.com/aortega/tutorhub/internal/app/services"
	"github.com/aortega/tutorhub/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// EnrollmentController handles tutor enrollment operations
type EnrollmentController struct {
	enrollmentService services.EnrollmentService
	logger            zerolog.Logger
}

// NewEnrollmentController creates a new EnrollmentController
func NewEnrollmentController(enrollmentService services.EnrollmentService, logger zerolog.Logger) *EnrollmentController {
	return &EnrollmentController{
		enrollmentService: enrollmentService,
		logger:            logger,
	}
}

// EnrollTutor handles tutor registration. On success the response body is
// the bare `{"id_tutor": n}` object the frontend expects; everything else
// is an error envelope.
func (c *EnrollmentController) EnrollTutor(ctx *gin.Context) {
	var req dto.EnrollTutorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid enrollment request payload")
		errorDetail := dto.HandleValidationError(err)
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	c.logger.Info().
		Str("tutorEmail", req.Tutor.Email).
		Bool("hasStudent", req.Student != nil).
		Msg("Tutor enrollment request received")

	resp, err := c.enrollmentService.EnrollTutor(ctx.Request.Context(), &req)
	if err != nil {
		c.logger.Error().Err(err).Str("tutorEmail", req.Tutor.Email).Msg("Failed to enroll tutor")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("tutorID", resp.TutorID).Msg("Tutor enrolled successfully")
	ctx.JSON(http.StatusCreated, resp)
}

// GetTutor retrieves a tutor by ID
func (c *EnrollmentController) GetTutor(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid tutor ID").WithField("id")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	tutor, err := c.enrollmentService.GetTutor(ctx.Request.Context(), id)
	if err != nil {
		c.logger.Warn().Err(err).Int64("tutorID", id).Msg("Failed to get tutor")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: tutor,
	})
}
