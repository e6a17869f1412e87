package dto

// TutorPayload carries the tutor's personal and billing data. Field names
// on the wire follow the frontend's Spanish contract.
type TutorPayload struct {
	Name           string `json:"nombre" binding:"required"`
	Surname        string `json:"apellidos" binding:"required"`
	Gender         string `json:"genero"`
	Phone          string `json:"telefono"`
	Email          string `json:"correo_electronico" binding:"required,email"`
	NIF            string `json:"NIF" binding:"omitempty,nif"`
	BillingAddress string `json:"direccion_facturacion"`
}

// StudentPayload carries the optional student registered alongside the
// tutor. Absent fields are persisted as NULL; an empty name means no
// student is registered at all.
type StudentPayload struct {
	Name         string  `json:"nombre"`
	Surname      *string `json:"apellidos"`
	Address      *string `json:"direccion"`
	NIF          *string `json:"NIF" binding:"omitempty,nif"`
	Phone        *string `json:"telefono"`
	Gender       *string `json:"genero"`
	Course       *string `json:"curso"`
	District     *string `json:"distrito"`
	Neighborhood *string `json:"barrio"`
	PostalCode   *string `json:"codigo_postal"`
	Schedule     *string `json:"horario"`
}

// EnrollTutorRequest is the enrollment request body
type EnrollTutorRequest struct {
	Tutor   TutorPayload    `json:"tutor" binding:"required"`
	Student *StudentPayload `json:"alumno"`
	City    *string         `json:"ciudad"`
}

// EnrollTutorResponse reports the generated tutor identifier. The external
// contract only exposes success with an id or an opaque failure.
type EnrollTutorResponse struct {
	TutorID int64 `json:"id_tutor" example:"42"`
}
