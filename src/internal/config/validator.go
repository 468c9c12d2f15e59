package config

import (
	"payment-gateway/src/pkg/cpf"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

func NewValidator(viper *viper.Viper) *validator.Validate {
	validate := validator.New()
	if err := cpf.RegisterValidation(validate); err != nil {
		panic(err)
	}
	return validate
}
