package dto

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// phonePattern accepts an optional leading + followed by 10 to 15 digits.
var phonePattern = regexp.MustCompile(`^[+]?[0-9]{10,15}$`)

// ValidatePhoneNumber backs the "phone" binding tag.
func ValidatePhoneNumber(fl validator.FieldLevel) bool {
	return phonePattern.MatchString(fl.Field().String())
}

// RegisterCustomValidators installs the application's custom binding
// tags on the given validator engine.
func RegisterCustomValidators(v *validator.Validate) error {
	return v.RegisterValidation("phone", ValidatePhoneNumber)
}
