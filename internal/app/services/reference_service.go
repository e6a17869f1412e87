package services

import (
	"context"
	"fmt"

	"github.com/aortega/tutorhub/internal/app/models"
	"github.com/aortega/tutorhub/internal/app/repositories"
)

type referenceService struct {
	cities  *repositories.CityRepository
	courses *repositories.CourseRepository
}

// NewReferenceService creates a new ReferenceService
func NewReferenceService(cities *repositories.CityRepository, courses *repositories.CourseRepository) ReferenceService {
	return &referenceService{
		cities:  cities,
		courses: courses,
	}
}

// GetCities lists all city reference rows
func (s *referenceService) GetCities(ctx context.Context) ([]*models.City, error) {
	cities, err := s.cities.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list cities: %w", err)
	}
	return cities, nil
}

// GetCourses lists all course reference rows
func (s *referenceService) GetCourses(ctx context.Context) ([]*models.Course, error) {
	courses, err := s.courses.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}
	return courses, nil
}
