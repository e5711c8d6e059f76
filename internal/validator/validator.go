// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("tenure_unit", validateTenureUnit)
		_ = v.RegisterValidation("recurrence_frequency", validateRecurrenceFrequency)
		_ = v.RegisterValidation("horizon", validateHorizon)
	}
}

func validateTenureUnit(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "months", "years":
		return true
	}
	return false
}

func validateRecurrenceFrequency(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "daily", "weekly", "bi-weekly", "monthly", "quarterly", "half-yearly", "yearly":
		return true
	}
	return false
}

func validateHorizon(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "1Y", "3Y", "5Y", "10Y":
		return true
	}
	return false
}
