package services

import (
	"context"
	"errors"
	"testing"

	"github.com/aortega/tutorhub/internal/app/models"
	"github.com/aortega/tutorhub/internal/app/models/dto"
	"github.com/aortega/tutorhub/internal/pkg/apperrors"
	"github.com/rs/zerolog"
)

type fakeEnroller struct {
	result *models.EnrollmentResult
	err    error
	calls  int
	got    *models.TutorEnrollment
}

func (f *fakeEnroller) EnrollTutor(ctx context.Context, enr *models.TutorEnrollment) (*models.EnrollmentResult, error) {
	f.calls++
	f.got = enr
	return f.result, f.err
}

type fakeTutorGetter struct {
	tutor *models.Tutor
	err   error
}

func (f *fakeTutorGetter) GetTutorByID(ctx context.Context, id int64) (*models.Tutor, error) {
	return f.tutor, f.err
}

type fakeActivity struct {
	events []string
	err    error
}

func (f *fakeActivity) Append(ctx context.Context, event, detail string) error {
	f.events = append(f.events, event)
	return f.err
}

type fakeMailer struct {
	welcomes     int
	assignments  int
	lastSchedule string
	err          error
}

func (f *fakeMailer) SendWelcomeEmail(toEmail, toName string) error {
	f.welcomes++
	return f.err
}

func (f *fakeMailer) SendAssignmentNotification(toEmail, toName, studentName, scheduleText string) error {
	f.assignments++
	f.lastSchedule = scheduleText
	return f.err
}

func (f *fakeMailer) SendVerificationCode(toEmail, toName, code string) error { return f.err }

func strPtr(s string) *string { return &s }

func validRequest() *dto.EnrollTutorRequest {
	return &dto.EnrollTutorRequest{
		Tutor: dto.TutorPayload{
			Name:    "Laura",
			Surname: "Gómez Ruiz",
			Email:   "laura@example.com",
		},
		Student: &dto.StudentPayload{
			Name:     "Pablo",
			Course:   strPtr("2ESO"),
			Schedule: strPtr("L-16,L-17"),
		},
		City: strPtr("Madrid"),
	}
}

func newTestService(enroller *fakeEnroller, activity *fakeActivity, mailer *fakeMailer) EnrollmentService {
	return NewEnrollmentService(enroller, &fakeTutorGetter{}, activity, mailer, zerolog.Nop())
}

func TestEnrollTutorSuccess(t *testing.T) {
	studentID := int64(9)
	enroller := &fakeEnroller{result: &models.EnrollmentResult{TutorID: 42, StudentID: &studentID}}
	activity := &fakeActivity{}
	mailer := &fakeMailer{}
	svc := newTestService(enroller, activity, mailer)

	resp, err := svc.EnrollTutor(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("EnrollTutor returned error: %v", err)
	}
	if resp.TutorID != 42 {
		t.Errorf("TutorID = %d, want 42", resp.TutorID)
	}
	if mailer.welcomes != 1 {
		t.Errorf("welcome emails = %d, want 1", mailer.welcomes)
	}
	if mailer.assignments != 1 {
		t.Errorf("assignment emails = %d, want 1", mailer.assignments)
	}
	if mailer.lastSchedule != "Lunes de 16:00 a 18:00" {
		t.Errorf("schedule text = %q, want %q", mailer.lastSchedule, "Lunes de 16:00 a 18:00")
	}
	if len(activity.events) != 1 || activity.events[0] != "alta_tutor" {
		t.Errorf("activity events = %v, want [alta_tutor]", activity.events)
	}
}

func TestEnrollTutorValidationGaps(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*dto.EnrollTutorRequest)
	}{
		{"empty name", func(r *dto.EnrollTutorRequest) { r.Tutor.Name = "  " }},
		{"empty surname", func(r *dto.EnrollTutorRequest) { r.Tutor.Surname = "" }},
		{"empty email", func(r *dto.EnrollTutorRequest) { r.Tutor.Email = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enroller := &fakeEnroller{}
			svc := newTestService(enroller, &fakeActivity{}, &fakeMailer{})

			req := validRequest()
			tt.mutate(req)

			_, err := svc.EnrollTutor(context.Background(), req)
			if !errors.Is(err, apperrors.ErrValidationFailed) {
				t.Fatalf("error = %v, want ErrValidationFailed", err)
			}
			if enroller.calls != 0 {
				t.Error("transaction must not run for invalid input")
			}
		})
	}
}

func TestEnrollTutorTagsStoreFailures(t *testing.T) {
	enroller := &fakeEnroller{err: errors.New("duplicate key value violates unique constraint")}
	mailer := &fakeMailer{}
	activity := &fakeActivity{}
	svc := newTestService(enroller, activity, mailer)

	_, err := svc.EnrollTutor(context.Background(), validRequest())
	if !errors.Is(err, apperrors.ErrEnrollmentFailed) {
		t.Fatalf("error = %v, want ErrEnrollmentFailed", err)
	}
	// The store-level cause stays internal.
	if got := err.Error(); got != "tutor enrollment failed" {
		t.Errorf("external message = %q, want opaque %q", got, "tutor enrollment failed")
	}
	if mailer.welcomes != 0 || len(activity.events) != 0 {
		t.Error("no side effects may fire for a rolled back enrollment")
	}
}

func TestEnrollTutorSideEffectsAreBestEffort(t *testing.T) {
	enroller := &fakeEnroller{result: &models.EnrollmentResult{TutorID: 42}}
	svc := newTestService(enroller, &fakeActivity{err: errors.New("log table missing")}, &fakeMailer{err: errors.New("smtp down")})

	resp, err := svc.EnrollTutor(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("EnrollTutor returned error: %v", err)
	}
	if resp.TutorID != 42 {
		t.Errorf("TutorID = %d, want 42", resp.TutorID)
	}
}

func TestEnrollTutorTutorOnlySkipsAssignmentEmail(t *testing.T) {
	enroller := &fakeEnroller{result: &models.EnrollmentResult{TutorID: 5}}
	mailer := &fakeMailer{}
	svc := newTestService(enroller, &fakeActivity{}, mailer)

	req := validRequest()
	req.Student = nil

	if _, err := svc.EnrollTutor(context.Background(), req); err != nil {
		t.Fatalf("EnrollTutor returned error: %v", err)
	}
	if mailer.welcomes != 1 {
		t.Errorf("welcome emails = %d, want 1", mailer.welcomes)
	}
	if mailer.assignments != 0 {
		t.Errorf("assignment emails = %d, want 0", mailer.assignments)
	}
}

func TestEnrollTutorMapsPayloadOntoTransaction(t *testing.T) {
	studentID := int64(9)
	enroller := &fakeEnroller{result: &models.EnrollmentResult{TutorID: 1, StudentID: &studentID}}
	svc := newTestService(enroller, &fakeActivity{}, &fakeMailer{})

	req := validRequest()
	req.Tutor.Name = "  Laura  "
	req.Tutor.Email = " laura@example.com "

	if _, err := svc.EnrollTutor(context.Background(), req); err != nil {
		t.Fatalf("EnrollTutor returned error: %v", err)
	}

	got := enroller.got
	if got.Tutor.Name != "Laura" {
		t.Errorf("tutor name = %q, want trimmed %q", got.Tutor.Name, "Laura")
	}
	if got.Tutor.Email != "laura@example.com" {
		t.Errorf("tutor email = %q, want trimmed", got.Tutor.Email)
	}
	if got.CityName == nil || *got.CityName != "Madrid" {
		t.Errorf("city name = %v, want Madrid", got.CityName)
	}
	if got.Student == nil || got.Student.Name != "Pablo" {
		t.Errorf("student = %+v, want name Pablo", got.Student)
	}
	if got.Student.CourseName == nil || *got.Student.CourseName != "2ESO" {
		t.Errorf("course name = %v, want 2ESO", got.Student.CourseName)
	}
}

func TestGetTutorRejectsNonPositiveID(t *testing.T) {
	svc := newTestService(&fakeEnroller{}, &fakeActivity{}, &fakeMailer{})

	for _, id := range []int64{0, -3} {
		if _, err := svc.GetTutor(context.Background(), id); !errors.Is(err, apperrors.ErrValidationFailed) {
			t.Errorf("GetTutor(%d) error = %v, want ErrValidationFailed", id, err)
		}
	}
}
