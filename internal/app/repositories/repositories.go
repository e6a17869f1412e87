package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	EnrollmentRepository *EnrollmentRepository
	TutorRepository      *TutorRepository
	CityRepository       *CityRepository
	CourseRepository     *CourseRepository
	ActivityRepository   *ActivityRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		EnrollmentRepository: NewEnrollmentRepository(db),
		TutorRepository:      NewTutorRepository(db),
		CityRepository:       NewCityRepository(db),
		CourseRepository:     NewCourseRepository(db),
		ActivityRepository:   NewActivityRepository(db),
	}
}
