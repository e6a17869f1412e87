package models

// Location defines the location model based on the 'localizacion' table.
// One location row is created per enrolled student. The city reference may
// be null when the city name had no match in reference data.
type Location struct {
	ID           int64   `json:"id" db:"id" example:"1"`
	District     *string `json:"distrito" db:"distrito"`
	Neighborhood *string `json:"barrio" db:"barrio"`
	PostalCode   *string `json:"codigo_postal" db:"codigo_postal"`
	CityID       *int64  `json:"id_ciudad" db:"id_ciudad"`
}
