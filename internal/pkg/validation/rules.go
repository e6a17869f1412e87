package validation

import (
	"regexp"
	"strings"
)

// Validation rule patterns
var (
	// NIF validation pattern - 8 digits followed by a control letter
	NIFPattern = `^\d{8}[A-Za-z]$`

	// Postal code pattern - 5 digits (Spanish postal codes)
	PostalCodePattern = `^\d{5}$`

	// Name validation min/max length
	NameMinLength = 2
	NameMaxLength = 100
)

// nifControlLetters maps the remainder of the NIF number modulo 23 to its
// control letter, per the official assignment table.
const nifControlLetters = "TRWAGMYFPDXBNJZSQVHLCKE"

// CompiledPatterns caches compiled regex patterns for better performance
var CompiledPatterns = struct {
	NIF        *regexp.Regexp
	PostalCode *regexp.Regexp
}{
	NIF:        regexp.MustCompile(NIFPattern),
	PostalCode: regexp.MustCompile(PostalCodePattern),
}

// ValidNIF reports whether the value is a well-formed Spanish NIF with a
// matching control letter.
func ValidNIF(value string) bool {
	value = strings.ToUpper(strings.TrimSpace(value))
	if !CompiledPatterns.NIF.MatchString(value) {
		return false
	}

	number := 0
	for _, digit := range value[:8] {
		number = number*10 + int(digit-'0')
	}

	return value[8] == nifControlLetters[number%23]
}

// ValidPostalCode reports whether the value looks like a Spanish postal code.
func ValidPostalCode(value string) bool {
	return CompiledPatterns.PostalCode.MatchString(strings.TrimSpace(value))
}
