package entity

import (
	"strings"

	domainerrors "wildtrack/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// validate is the shared validator instance used by entity constructors.
// It is safe for concurrent use.
var validate = validator.New(validator.WithRequiredStructEnabled())

// validateStruct runs struct-tag validation and converts failures into the
// domain validation error with readable field details.
func validateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if ok := asValidationErrors(err, &fieldErrs); ok {
		details := make([]string, 0, len(fieldErrs))
		for _, fieldErr := range fieldErrs {
			details = append(details, fieldErr.Field()+": failed '"+fieldErr.Tag()+"' constraint")
		}

		return domainerrors.ErrValidationFailed.WithDetails(strings.Join(details, "; "))
	}

	return domainerrors.ErrValidationFailed.WithDetails(err.Error())
}

// missingField reports an absent required field as a validation error.
func missingField(field string) error {
	return domainerrors.ErrValidationFailed.WithDetails(field + ": required")
}

// invalidEnum reports an out-of-range enum value as a validation error.
func invalidEnum(field, value string) error {
	return domainerrors.ErrValidationFailed.WithDetails(field + `: invalid value "` + value + `"`)
}

func asValidationErrors(err error, target *validator.ValidationErrors) bool {
	fieldErrs, ok := err.(validator.ValidationErrors) //nolint:errorlint // validator returns this type directly
	if !ok {
		return false
	}
	*target = fieldErrs

	return true
}
