package controllers

import (
	"net/http"

	"github.com/aortega/tutorhub/internal/app/models/dto"
	"github.com/aortega/tutorhub/internal/app/services"
	"github.com/aortega/tutorhub/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ReferenceController exposes the read-only city and course reference data
type ReferenceController struct {
	referenceService services.ReferenceService
}

// NewReferenceController creates a new ReferenceController
func NewReferenceController(referenceService services.ReferenceService) *ReferenceController {
	return &ReferenceController{
		referenceService: referenceService,
	}
}

// GetCities lists all cities
func (c *ReferenceController) GetCities(ctx *gin.Context) {
	cities, err := c.referenceService.GetCities(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: cities,
	})
}

// GetCourses lists all courses
func (c *ReferenceController) GetCourses(ctx *gin.Context) {
	courses, err := c.referenceService.GetCourses(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: courses,
	})
}
