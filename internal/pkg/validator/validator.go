package validator

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Validate checks struct tags and returns field->failed-tag pairs,
// or nil when the value is valid.
func Validate(v interface{}) map[string]string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	errs := make(map[string]string)
	for _, fe := range err.(validator.ValidationErrors) {
		errs[fe.Field()] = fe.Tag()
	}
	return errs
}

// Message flattens a Validate result into a single human-readable line.
func Message(errs map[string]string) string {
	if len(errs) == 0 {
		return ""
	}
	parts := make([]string, 0, len(errs))
	for field, tag := range errs {
		parts = append(parts, fmt.Sprintf("%s: %s", field, tag))
	}
	return "validation failed: " + strings.Join(parts, ", ")
}
