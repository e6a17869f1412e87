package models

// Tutor defines the tutor model based on the 'tutor' table.
// The tutor is the paying guardian who registers one or more students.
type Tutor struct {
	ID             int64  `json:"id" db:"id" example:"1"`
	Name           string `json:"nombre" db:"nombre" example:"Ana"`
	Surname        string `json:"apellidos" db:"apellidos" example:"Ruiz"`
	Gender         string `json:"genero" db:"genero" example:"Mujer"`
	Phone          string `json:"telefono" db:"telefono" example:"600123456"`
	Email          string `json:"correo_electronico" db:"correo_electronico" example:"ana@example.com"`
	NIF            string `json:"NIF" db:"nif" example:"12345678Z"`
	BillingAddress string `json:"direccion_facturacion" db:"direccion_facturacion" example:"C/ Mayor 1, Madrid"`
}
