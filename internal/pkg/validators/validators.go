// Package validators holds the custom validation rules shared by the domain entities.
package validators

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
)

// ErrValidation marks input rejected by a validation rule
var ErrValidation = errors.New("validation failed")

var (
	mailHandlePattern     = regexp.MustCompile(`^[a-z][a-z0-9._-]{2,29}$`)
	employeeNumberPattern = regexp.MustCompile(`^[0-9]{6}$`)
	usernamePattern       = regexp.MustCompile(`^[A-Za-z0-9_]{3,32}$`)
)

// MailHandleValidation validates the local part of a mail handle.
func MailHandleValidation(fl validator.FieldLevel) bool {
	return mailHandlePattern.MatchString(fl.Field().String())
}

// EmployeeNumberValidation validates a six digit employee number.
func EmployeeNumberValidation(fl validator.FieldLevel) bool {
	return employeeNumberPattern.MatchString(fl.Field().String())
}

// UsernameValidation validates a client username.
func UsernameValidation(fl validator.FieldLevel) bool {
	return usernamePattern.MatchString(fl.Field().String())
}

// New returns a validator with the custom rules registered as
// mailhandle, employeenumber and username.
func New() (*validator.Validate, error) {
	validate := validator.New()

	rules := map[string]validator.Func{
		"mailhandle":     MailHandleValidation,
		"employeenumber": EmployeeNumberValidation,
		"username":       UsernameValidation,
	}
	for tag, fn := range rules {
		if err := validate.RegisterValidation(tag, fn); err != nil {
			return nil, fmt.Errorf("failed to register custom validator %s: %w", tag, err)
		}
	}

	return validate, nil
}

// Struct validates s with the custom rules and flattens field errors into one message.
func Struct(s interface{}) error {
	validate, err := New()
	if err != nil {
		return err
	}

	err = validate.Struct(s)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("%w: %v", ErrValidation, messages)
		}
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return nil
}
