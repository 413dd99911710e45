package utils

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	// local@domain.tld where each part is a run without spaces or '@'.
	simpleEmailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	slugPattern        = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report json names so messages match what the client sent.
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

	_ = v.RegisterValidation("simple_email", func(fl validator.FieldLevel) bool {
		return IsSimpleEmail(fl.Field().String())
	})
	_ = v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return slugPattern.MatchString(fl.Field().String())
	})

	return v
}

// IsSimpleEmail reports whether s looks like local@domain.tld.
func IsSimpleEmail(s string) bool {
	return simpleEmailPattern.MatchString(s)
}

// FieldViolation is one failed rule, in struct field order.
type FieldViolation struct {
	Field   string
	Message string
}

// ValidateStruct runs the validate tags on data and returns the violations in
// declaration order. A nil slice means the value is valid.
func ValidateStruct(data any) []FieldViolation {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []FieldViolation{{Field: "", Message: err.Error()}}
	}

	violations := make([]FieldViolation, 0, len(validationErrors))
	for _, fe := range validationErrors {
		violations = append(violations, FieldViolation{
			Field:   fe.Field(),
			Message: getErrorMessage(fe),
		})
	}
	return violations
}

// converts validator errors to human-readable messages
func getErrorMessage(err validator.FieldError) string {
	field := err.Field()

	switch err.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "simple_email", "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "min":
		if isNumeric(err.Kind()) {
			return fmt.Sprintf("%s must be at least %s", field, err.Param())
		}
		return fmt.Sprintf("%s must be at least %s characters", field, err.Param())
	case "max":
		if isNumeric(err.Kind()) {
			return fmt.Sprintf("%s must be at most %s", field, err.Param())
		}
		return fmt.Sprintf("%s must be %s characters or fewer", field, err.Param())
	case "oneof":
		options := strings.ReplaceAll(err.Param(), " ", ", ")
		return fmt.Sprintf("%s must be one of: %s", field, options)
	case "datetime":
		return fmt.Sprintf("%s must be a date in YYYY-MM-DD format", field)
	case "slug":
		return fmt.Sprintf("%s may only contain lowercase letters, digits and hyphens", field)
	case "url":
		return fmt.Sprintf("%s must be a valid URL", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

func isNumeric(kind reflect.Kind) bool {
	switch kind {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// ViolationMap indexes violations by field for the "errors" response member.
func ViolationMap(violations []FieldViolation) map[string]string {
	if len(violations) == 0 {
		return nil
	}
	out := make(map[string]string, len(violations))
	for _, v := range violations {
		if _, exists := out[v.Field]; !exists {
			out[v.Field] = v.Message
		}
	}
	return out
}

// TrimPtr trims the pointed-to string and returns nil for blank input.
func TrimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
