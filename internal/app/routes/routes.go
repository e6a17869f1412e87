package routes

import (
	"github.com/aortega/tutorhub/internal/app/controllers"
	"github.com/aortega/tutorhub/internal/app/models/dto"
	"github.com/gin-gonic/gin"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	enrollmentController *controllers.EnrollmentController,
	referenceController *controllers.ReferenceController,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// Tutor routes
	tutores := v1.Group("/tutores")
	{
		tutores.POST("", enrollmentController.EnrollTutor)
		tutores.GET("/:id", enrollmentController.GetTutor)
	}

	// Reference data routes (read-only; rows are created by the seeder)
	v1.GET("/ciudades", referenceController.GetCities)
	v1.GET("/cursos", referenceController.GetCourses)

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})
}
