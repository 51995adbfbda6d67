// internal/utils/validator.go
package utils

import (
	"errors"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

var (
	codePattern    = regexp.MustCompile(`^[A-Za-z0-9_-]{1,50}$`)
	loginIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_.]{4,50}$`)
)

func init() {
	validate = validator.New()
	validate.RegisterValidation("code", validateCode)
	validate.RegisterValidation("login_id", validateLoginID)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// ValidateVar checks a single value against a tag expression.
func ValidateVar(v interface{}, tag string) error {
	return validate.Var(v, tag)
}

func validateCode(fl validator.FieldLevel) bool {
	return codePattern.MatchString(fl.Field().String())
}

func validateLoginID(fl validator.FieldLevel) bool {
	return loginIDPattern.MatchString(fl.Field().String())
}

// IsValidationError reports whether err wraps validator failures.
func IsValidationError(err error) bool {
	var validationErrs validator.ValidationErrors
	return errors.As(err, &validationErrs)
}

// Validation tags for common fields
type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

func GetValidationErrors(err error) []ValidationError {
	var validationErrors []ValidationError

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		for _, e := range validationErrs {
			validationErrors = append(validationErrors, ValidationError{
				Field:   lowerFirst(e.Field()),
				Tag:     e.Tag(),
				Message: getValidationMessage(e),
			})
		}
	}

	return validationErrors
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "email":
		return "Invalid email format"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "gt":
		return e.Field() + " must be greater than " + e.Param()
	case "oneof":
		return e.Field() + " must be one of: " + e.Param()
	case "code":
		return e.Field() + " must be 1-50 letters, digits, '-' or '_'"
	case "login_id":
		return "Login ID must be 4-50 characters of letters, digits, '.' or '_'"
	default:
		return e.Field() + " is invalid"
	}
}
