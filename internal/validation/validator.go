package validation

import (
	"errors"
	"reflect"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate *validator.Validate
	once     sync.Once
)

// GetValidator returns the shared validator with the form's custom tags
// registered.
func GetValidator() *validator.Validate {
	once.Do(initValidator)
	return validate
}

func initValidator() {
	validate = validator.New()

	// Report failures by their field code instead of the Go name.
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		return f.Tag.Get("code")
	})

	_ = validate.RegisterValidation("jpphone", func(fl validator.FieldLevel) bool {
		return IsValidPhone(fl.Field().String())
	})
	_ = validate.RegisterValidation("postal7", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		if len(s) != 7 {
			return false
		}
		for _, r := range s {
			if r < '0' || r > '9' {
				return false
			}
		}
		return true
	})
}

// contact mirrors order.Customer with the rules applied to it.
type contact struct {
	Name       string `code:"customer.name" validate:"required"`
	PostalCode string `code:"customer.postalCode" validate:"required,postal7"`
	Address    string `code:"customer.address" validate:"required"`
	Phone      string `code:"customer.phone" validate:"required,jpphone"`
	Email      string `code:"customer.email" validate:"omitempty,email"`
}

// ParseErrors maps validator failures onto field codes. Anything that is
// not a validation failure is reported as nil.
func ParseErrors(err error) []FieldCode {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil
	}

	codes := make([]FieldCode, 0, len(validationErrors))
	for _, e := range validationErrors {
		codes = append(codes, FieldCode(e.Field()))
	}
	return codes
}
