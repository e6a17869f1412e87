package helpers

import "database/sql"

// GetNullString converts a string pointer to sql.NullString.
// If the pointer is nil or points to an empty string, returns an empty
// NullString so the column is written as NULL.
func GetNullString(s *string) sql.NullString {
	if s == nil || *s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

// GetContentNullString converts a string value to sql.NullString.
// If the string is empty, returns an empty NullString.
func GetContentNullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

// GetNullInt64 converts an int64 pointer to sql.NullInt64.
// If the pointer is nil, returns an empty NullInt64.
func GetNullInt64(i *int64) sql.NullInt64 {
	if i == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *i, Valid: true}
}
