package models

// City defines the city model based on the 'ciudad' reference table.
// Reference rows are created by the seeder and never mutated through the API.
type City struct {
	ID   int64  `json:"id" db:"id" example:"1"`
	Name string `json:"nombre" db:"nombre" example:"Madrid"`
}

// Course defines the course model based on the 'curso' reference table.
type Course struct {
	ID   int64  `json:"id" db:"id" example:"1"`
	Name string `json:"nombre" db:"nombre" example:"3ESO"`
}
