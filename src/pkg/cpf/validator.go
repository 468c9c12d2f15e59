package cpf

import "github.com/go-playground/validator/v10"

// RegisterValidation adds the "cpf" tag to v.
func RegisterValidation(v *validator.Validate) error {
	return v.RegisterValidation("cpf", func(fl validator.FieldLevel) bool {
		return Valid(fl.Field().String())
	})
}
