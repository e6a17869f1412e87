package models

// TutorEnrollment is the input to the enrollment transaction. Optional
// fields are explicit pointers; a nil pointer is persisted as NULL.
type TutorEnrollment struct {
	Tutor Tutor
	// Student is nil (or carries an empty name) on the tutor-only path.
	Student *StudentEnrollment
	// CityName is resolved against the 'ciudad' reference table. A miss
	// is tolerated and yields a NULL city reference on the location row.
	CityName *string
}

// StudentEnrollment carries the optional student payload of an enrollment.
type StudentEnrollment struct {
	Name         string
	Surname      *string
	Address      *string
	NIF          *string
	Phone        *string
	Gender       *string
	CourseName   *string
	District     *string
	Neighborhood *string
	PostalCode   *string
	// Schedule holds the raw weekly slot string ("L-16,L-17,M-18") used
	// for the assignment notification email. Never persisted.
	Schedule *string
}

// EnrollmentResult reports what a committed enrollment created. The
// Resolved flags distinguish a reference-data miss (tolerated, NULL
// foreign key) from a successful name lookup.
type EnrollmentResult struct {
	TutorID        int64
	LocationID     *int64
	StudentID      *int64
	CityResolved   bool
	CourseResolved bool
}

// HasStudent reports whether the enrollment created location and student rows.
func (r *EnrollmentResult) HasStudent() bool {
	return r.StudentID != nil
}
