package middleware

import (
	"github.com/aortega/tutorhub/internal/pkg/validation"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterCustomValidators wires the domain validation rules into gin's
// binding engine. Must run before the router starts serving.
func RegisterCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("nif", func(fl validator.FieldLevel) bool {
			return validation.ValidNIF(fl.Field().String())
		})
	}
}
