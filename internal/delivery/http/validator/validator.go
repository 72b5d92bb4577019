// Package validator plugs go-playground/validator into echo and reports
// failures as a 400 ErrorResult with one FieldError per rejected field.
package validator

import (
	"fmt"
	"net/http"
	"reflect"
	"strings"

	domainerrors "outcome/internal/domain/errors"
	"outcome/internal/errors"

	"github.com/go-playground/validator/v10"
)

// ValidationFailedMessage is the message of every validation ErrorResult.
const ValidationFailedMessage = "Validation failed"

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *validator.Validate
}

// New creates a validator that names fields after their json tags.
func New() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}

		return name
	})

	return &CustomValidator{validate: v}
}

// Validate validates i and returns a *domainerrors.ErrorResult on failure.
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		// InvalidValidationError: the handler passed something that is not a struct.
		return domainerrors.Wrap(http.StatusInternalServerError, errors.WithStack(err), "")
	}

	return domainerrors.NewErrorResult(http.StatusBadRequest, ValidationFailedMessage, FieldErrors(validationErrs), "")
}

// FieldErrors converts validator output into ErrorResult detail records.
func FieldErrors(errs validator.ValidationErrors) []any {
	details := make([]any, 0, len(errs))
	for _, fe := range errs {
		details = append(details, domainerrors.FieldError{
			Field:  fe.Field(),
			Reason: reason(fe),
		})
	}

	return details
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "max", "lte":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}

		return fmt.Sprintf("must be at most %s", fe.Param())
	case "min", "gte":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}

		return fmt.Sprintf("must be at least %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", fe.Param())
	case "uuid", "uuid4":
		return "must be a valid UUID"
	default:
		return fmt.Sprintf("failed on the '%s' rule", fe.Tag())
	}
}
