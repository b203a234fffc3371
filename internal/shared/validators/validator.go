package validators

import (
	"net/mail"

	"github.com/go-playground/validator/v10"
)

// Validate is a type alias for validator.Validate.
type Validate = validator.Validate

// ValidationErrors is a type alias for validator.ValidationErrors.
type ValidationErrors = validator.ValidationErrors

// FieldError is a type alias for validator.FieldError.
type FieldError = validator.FieldError

const TagMailAddress = "mailaddr"

// New creates a new validator instance with the project's custom tags registered.
//
// mailaddr accepts anything net/mail can parse ("ops@example.com", "Print Admin <ops@example.com>") as well
// as a bare local name such as "Administrator", which local SMTP relays accept as a sender.
func New() *Validate {
	validate := validator.New()
	_ = validate.RegisterValidation(TagMailAddress, isMailAddress)
	return validate
}

func isMailAddress(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return false
	}
	if _, err := mail.ParseAddress(value); err == nil {
		return true
	}
	_, err := mail.ParseAddress(value + "@localhost")
	return err == nil
}
