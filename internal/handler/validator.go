package handler

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

// Global validator instance
var validate *Validator

// InitValidator initializes the global validator
func InitValidator() {
	v := validator.New()

	_ = v.RegisterValidation(tagItemRef, validateItemRef)

	validate = &Validator{validate: v}
}

// GetValidator returns the global validator instance
func GetValidator() *Validator {
	if validate == nil {
		InitValidator()
	}
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// FormatValidationError formats validation errors into a field-to-message map
// keyed by the lower-cased field name, so internal struct names do not leak.
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = ErrMsgInvalidRequestFormat
		return errs
	}

	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			errs[field] = ValidationMsgRequired
		case tagItemRef:
			errs[field] = ValidationMsgItemRef
		case "max":
			errs[field] = fmt.Sprintf(ValidationMsgMax, e.Param())
		case "min":
			errs[field] = fmt.Sprintf(ValidationMsgMin, e.Param())
		default:
			errs[field] = ValidationMsgInvalid
		}
	}

	return errs
}

const tagItemRef = "itemref"

// validateItemRef accepts a non-blank item id or display name without
// control characters.
func validateItemRef(fl validator.FieldLevel) bool {
	ref := fl.Field().String()
	if strings.TrimSpace(ref) == "" {
		return false
	}
	return strings.IndexFunc(ref, unicode.IsControl) < 0
}
