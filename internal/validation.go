package internal

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidateStruct runs validator tags over a DTO and translates failures
// into the AppError validation shape consumed by both surfaces.
func ValidateStruct(s interface{}) *AppError {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	invalid, ok := err.(validator.ValidationErrors)
	if !ok {
		return NewInternalError("validation failed", err)
	}

	fieldErrors := make([]ValidationError, 0, len(invalid))
	for _, fe := range invalid {
		fieldErrors = append(fieldErrors, ValidationError{
			Field:   strings.ToLower(fe.Field()),
			Message: validationMessage(fe),
			Code:    strings.ToUpper(fe.Tag()),
		})
	}

	return NewValidationError("validation failed", ErrCodeValidationFailed).
		WithDetails(ValidationErrors{Errors: fieldErrors})
}

func validationMessage(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
