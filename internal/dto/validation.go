package dto

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var joinCodePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]{3,31}$`)

// ValidJoinCode reports whether code is a usable exam join code: 4-32 characters,
// letters, digits, '-' or '_', not starting with a separator.
func ValidJoinCode(code string) bool {
	return joinCodePattern.MatchString(code)
}

// RegisterValidations adds the portal's custom binding rules to v.
func RegisterValidations(v *validator.Validate) error {
	return v.RegisterValidation("joincode", func(fl validator.FieldLevel) bool {
		return ValidJoinCode(fl.Field().String())
	})
}
