package validation

import "testing"

func TestValidNIF(t *testing.T) {
	tests := []struct {
		nif  string
		want bool
	}{
		{"12345678Z", true},
		{"00000000T", true},
		{"99999999R", true},
		{"12345678z", true},
		{"12345678A", false},
		{"1234567Z", false},
		{"123456789Z", false},
		{"ABCDEFGHZ", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.nif, func(t *testing.T) {
			if got := ValidNIF(tt.nif); got != tt.want {
				t.Errorf("ValidNIF(%q) = %t, want %t", tt.nif, got, tt.want)
			}
		})
	}
}

func TestValidPostalCode(t *testing.T) {
	tests := []struct {
		code string
		want bool
	}{
		{"28010", true},
		{"08001", true},
		{"2801", false},
		{"280100", false},
		{"2801A", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			if got := ValidPostalCode(tt.code); got != tt.want {
				t.Errorf("ValidPostalCode(%q) = %t, want %t", tt.code, got, tt.want)
			}
		})
	}
}
