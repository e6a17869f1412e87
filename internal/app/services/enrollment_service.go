package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/aortega/tutorhub/internal/app/models"
	"github.com/aortega/tutorhub/internal/app/models/dto"
	"github.com/aortega/tutorhub/internal/pkg/apperrors"
	"github.com/aortega/tutorhub/internal/pkg/email"
	"github.com/aortega/tutorhub/internal/pkg/schedule"
	"github.com/rs/zerolog"
)

// tutorEnroller abstracts the transactional write path so the service can
// be tested without a database.
type tutorEnroller interface {
	EnrollTutor(ctx context.Context, enr *models.TutorEnrollment) (*models.EnrollmentResult, error)
}

// tutorGetter reads tutor rows outside the transaction.
type tutorGetter interface {
	GetTutorByID(ctx context.Context, id int64) (*models.Tutor, error)
}

// activityRecorder appends audit rows. Failures are never fatal.
type activityRecorder interface {
	Append(ctx context.Context, event, detail string) error
}

type enrollmentService struct {
	enroller tutorEnroller
	tutors   tutorGetter
	activity activityRecorder
	mailer   email.Service
	logger   zerolog.Logger
}

// NewEnrollmentService creates a new EnrollmentService
func NewEnrollmentService(
	enroller tutorEnroller,
	tutors tutorGetter,
	activity activityRecorder,
	mailer email.Service,
	logger zerolog.Logger,
) EnrollmentService {
	return &enrollmentService{
		enroller: enroller,
		tutors:   tutors,
		activity: activity,
		mailer:   mailer,
		logger:   logger,
	}
}

// EnrollTutor validates the payload, runs the enrollment transaction and
// fires the post-commit side effects (welcome email, assignment email,
// activity record). Side effects are best-effort: once the transaction has
// committed the caller always gets the tutor identifier.
func (s *enrollmentService) EnrollTutor(ctx context.Context, req *dto.EnrollTutorRequest) (*dto.EnrollTutorResponse, error) {
	if err := s.validateRequest(req); err != nil {
		return nil, err
	}

	enrollment := buildEnrollment(req)

	result, err := s.enroller.EnrollTutor(ctx, enrollment)
	if err != nil {
		// The cause stays in the logs; the contract only exposes an
		// opaque enrollment failure.
		s.logger.Error().Err(err).Str("tutorEmail", req.Tutor.Email).Msg("Enrollment failed")
		return nil, apperrors.NewEnrollmentError("tutor enrollment failed")
	}

	s.logger.Info().
		Int64("tutorID", result.TutorID).
		Bool("studentCreated", result.HasStudent()).
		Bool("cityResolved", result.CityResolved).
		Bool("courseResolved", result.CourseResolved).
		Msg("Tutor enrolled")

	s.notify(ctx, req, result)

	return &dto.EnrollTutorResponse{TutorID: result.TutorID}, nil
}

// GetTutor retrieves a tutor by ID
func (s *enrollmentService) GetTutor(ctx context.Context, id int64) (*models.Tutor, error) {
	if id <= 0 {
		return nil, apperrors.NewValidationError("tutor ID must be positive")
	}
	return s.tutors.GetTutorByID(ctx, id)
}

// validateRequest covers the validation gaps the transaction assumes were
// handled upstream.
func (s *enrollmentService) validateRequest(req *dto.EnrollTutorRequest) error {
	if strings.TrimSpace(req.Tutor.Name) == "" {
		return apperrors.NewValidationError("tutor name cannot be empty")
	}
	if strings.TrimSpace(req.Tutor.Surname) == "" {
		return apperrors.NewValidationError("tutor surname cannot be empty")
	}
	if strings.TrimSpace(req.Tutor.Email) == "" {
		return apperrors.NewValidationError("tutor email cannot be empty")
	}
	return nil
}

// buildEnrollment maps the wire payload onto the transaction input.
// Optional fields stay nil so the repository writes NULL.
func buildEnrollment(req *dto.EnrollTutorRequest) *models.TutorEnrollment {
	enrollment := &models.TutorEnrollment{
		Tutor: models.Tutor{
			Name:           strings.TrimSpace(req.Tutor.Name),
			Surname:        strings.TrimSpace(req.Tutor.Surname),
			Gender:         req.Tutor.Gender,
			Phone:          req.Tutor.Phone,
			Email:          strings.TrimSpace(req.Tutor.Email),
			NIF:            req.Tutor.NIF,
			BillingAddress: req.Tutor.BillingAddress,
		},
		CityName: req.City,
	}

	if req.Student != nil {
		enrollment.Student = &models.StudentEnrollment{
			Name:         req.Student.Name,
			Surname:      req.Student.Surname,
			Address:      req.Student.Address,
			NIF:          req.Student.NIF,
			Phone:        req.Student.Phone,
			Gender:       req.Student.Gender,
			CourseName:   req.Student.Course,
			District:     req.Student.District,
			Neighborhood: req.Student.Neighborhood,
			PostalCode:   req.Student.PostalCode,
			Schedule:     req.Student.Schedule,
		}
	}

	return enrollment
}

// notify sends the post-commit emails and appends the activity record.
func (s *enrollmentService) notify(ctx context.Context, req *dto.EnrollTutorRequest, result *models.EnrollmentResult) {
	if err := s.mailer.SendWelcomeEmail(req.Tutor.Email, req.Tutor.Name); err != nil {
		s.logger.Warn().Err(err).Int64("tutorID", result.TutorID).Msg("Failed to send welcome email")
	}

	if result.HasStudent() && req.Student != nil && req.Student.Schedule != nil {
		scheduleText, err := schedule.Describe(*req.Student.Schedule)
		if err != nil {
			s.logger.Warn().Err(err).Int64("tutorID", result.TutorID).Msg("Could not describe schedule, skipping assignment email")
		} else if scheduleText != "" {
			if err := s.mailer.SendAssignmentNotification(req.Tutor.Email, req.Tutor.Name, req.Student.Name, scheduleText); err != nil {
				s.logger.Warn().Err(err).Int64("tutorID", result.TutorID).Msg("Failed to send assignment notification")
			}
		}
	}

	detail := fmt.Sprintf("tutor=%d studentCreated=%t", result.TutorID, result.HasStudent())
	if err := s.activity.Append(ctx, "alta_tutor", detail); err != nil {
		s.logger.Warn().Err(err).Int64("tutorID", result.TutorID).Msg("Failed to append activity record")
	}
}
