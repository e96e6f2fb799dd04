// internal/utils/validator.go
package utils

import (
	"errors"
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

const maxSKULength = 64

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("sku", validateSKU)
	// report fields by their JSON names
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// validateSKU accepts non-blank identifiers of at most 64 characters with
// no whitespace.
func validateSKU(fl validator.FieldLevel) bool {
	sku := fl.Field().String()
	if sku == "" || len(sku) > maxSKULength {
		return false
	}
	return strings.IndexFunc(sku, unicode.IsSpace) < 0
}

type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

func GetValidationErrors(err error) []ValidationError {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return nil
	}

	validationErrors := make([]ValidationError, 0, len(fieldErrs))
	for _, e := range fieldErrs {
		validationErrors = append(validationErrors, ValidationError{
			Field:   e.Field(),
			Tag:     e.Tag(),
			Message: getValidationMessage(e),
		})
	}
	return validationErrors
}

func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "sku":
		return "SKU must be 1-64 characters without spaces"
	default:
		return e.Field() + " is invalid"
	}
}
