package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

// newValidator reports fields by their koanf key so that messages name the
// YAML key or APP_ variable an operator has to fix.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("koanf"), ",")
		if name == "" || name == "-" {
			return toSnake(f.Name)
		}

		return name
	})

	return v
}

// Validate checks the configuration. The service refuses to start when it fails.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return formatValidationErrors(err)
	}

	return nil
}

func formatValidationErrors(err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	msgs := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		msgs = append(msgs, formatFieldError(e))
	}

	return fmt.Errorf("config validation failed:\n  %s", strings.Join(msgs, "\n  "))
}

func formatFieldError(e validator.FieldError) string {
	field := fieldPath(e.Namespace())

	switch e.Tag() {
	case "required":
		return field + " is required"
	case "required_if":
		other, value, _ := strings.Cut(e.Param(), " ")
		return fmt.Sprintf("%s is required when %s is %s", field, toSnake(other), value)
	case "required_without":
		return fmt.Sprintf("%s is required when %s is empty", field, toSnake(e.Param()))
	case "ltfield":
		return fmt.Sprintf("%s must be shorter than %s", field, toSnake(e.Param()))
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, e.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, e.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, e.Param())
	case "http_url":
		return field + " must be an http(s) URL"
	case "file":
		return field + " must point to an existing file"
	default:
		return fmt.Sprintf("%s failed validation: %s", field, e.Tag())
	}
}

// fieldPath drops the root struct name: "Config.server.port" is "server.port".
func fieldPath(namespace string) string {
	if _, rest, ok := strings.Cut(namespace, "."); ok {
		return rest
	}

	return namespace
}

// toSnake converts a Go field name such as PublicBaseURL to public_base_url.
func toSnake(name string) string {
	runes := []rune(name)

	var b strings.Builder

	for i, r := range runes {
		if unicode.IsUpper(r) && i > 0 {
			prevLower := unicode.IsLower(runes[i-1])
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])

			if prevLower || (unicode.IsUpper(runes[i-1]) && nextLower) {
				b.WriteByte('_')
			}
		}

		b.WriteRune(unicode.ToLower(r))
	}

	return b.String()
}
