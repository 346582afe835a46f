package dto

import (
	"errors"
	"fmt"
	"io"
	"reflect"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

var (
	// ErrValidation wraps struct tag failures.
	ErrValidation = errors.New("validation failed")

	// ErrBinding wraps bodies that could not be decoded.
	ErrBinding = errors.New("binding failed")
)

// validate reports fields under their JSON names.
var validate = func() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	return v
}()

// Validate checks v against its validate tags.
func Validate(v any) error {
	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return nil
}

// BindAndValidate decodes the JSON body into v and validates it. An empty
// body decodes to the zero value, so missing fields surface as validation
// errors rather than binding errors.
func BindAndValidate(c *gin.Context, v any) error {
	if err := c.ShouldBindJSON(v); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %w", ErrBinding, err)
	}

	return Validate(v)
}

// FieldErrors lists the JSON names of the fields that failed validation.
func FieldErrors(err error) []string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return nil
	}

	fields := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		fields = append(fields, fieldErr.Field())
	}

	return fields
}

// failedField reports whether field is among the validation failures in err.
func failedField(err error, field string) bool {
	return slices.Contains(FieldErrors(err), field)
}
