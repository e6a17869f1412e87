package models

// Student defines the student model based on the 'alumno' table.
// A student always belongs to exactly one tutor and one location; the
// course reference may be null when the course name had no match in
// reference data.
type Student struct {
	ID         int64   `json:"id" db:"id" example:"1"`
	Name       string  `json:"nombre" db:"nombre" example:"Luis"`
	Surname    *string `json:"apellidos" db:"apellidos"`
	Address    *string `json:"direccion" db:"direccion"`
	NIF        *string `json:"NIF" db:"nif"`
	Phone      *string `json:"telefono" db:"telefono"`
	Gender     *string `json:"genero" db:"genero"`
	TutorID    int64   `json:"id_tutor" db:"id_tutor" example:"1"`
	CourseID   *int64  `json:"id_curso" db:"id_curso"`
	LocationID int64   `json:"id_localizacion" db:"id_localizacion" example:"1"`
}
