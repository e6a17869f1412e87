package services

import (
	"context"

	"github.com/aortega/tutorhub/internal/app/models"
	"github.com/aortega/tutorhub/internal/app/models/dto"
)

// EnrollmentService handles tutor enrollment and tutor reads.
type EnrollmentService interface {
	EnrollTutor(ctx context.Context, req *dto.EnrollTutorRequest) (*dto.EnrollTutorResponse, error)
	GetTutor(ctx context.Context, id int64) (*models.Tutor, error)
}

// ReferenceService exposes the read-only city and course reference data.
type ReferenceService interface {
	GetCities(ctx context.Context) ([]*models.City, error)
	GetCourses(ctx context.Context) ([]*models.Course, error)
}
