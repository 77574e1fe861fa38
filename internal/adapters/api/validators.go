package api

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"weatherforecast.app/pkg/validation"
)

func validateTrigger(fl validator.FieldLevel) bool {
	return validation.IsValidTrigger(fl.Field().String())
}

// RegisterValidators installs the custom binding validators used by request types
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("trigger", validateTrigger)
}
