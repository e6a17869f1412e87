package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// Enrollment errors
var (
	// ErrEnrollmentFailed tags any store-level fault that aborted the
	// enrollment transaction. The whole transaction was rolled back;
	// callers only learn that the enrollment as a unit did not happen.
	ErrEnrollmentFailed = errors.New("enrollment failed")

	// ErrTutorNotFound is returned when a tutor lookup finds no row.
	ErrTutorNotFound = errors.New("tutor not found")
)

// Reference data errors
var (
	ErrCityAlreadyExists   = errors.New("city with this name already exists")
	ErrCourseAlreadyExists = errors.New("course with this name already exists")
)

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Code    string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

// WithCode adds an error code
func (e *CustomError) WithCode(code string) *CustomError {
	e.Code = code
	return e
}

// NewValidationError creates a validation-gap error with a message
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}

// NewEnrollmentError tags a store failure as an opaque enrollment failure
func NewEnrollmentError(message string) error {
	return &CustomError{
		Err:     ErrEnrollmentFailed,
		Message: message,
	}
}
