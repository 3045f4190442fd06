package config

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// KeyTag is the struct tag naming the settings key a field was read from.
// Validation errors report fields by this name.
const KeyTag = "key"

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get(KeyTag), ",", 2)[0]
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})
	return v
}

// Validate checks config against its `validate` struct tags.
func Validate(config interface{}) error {
	return validate.Struct(config)
}

// FieldErrors returns the individual field failures held by err, or nil if err is not a validation failure.
func FieldErrors(err error) []validator.FieldError {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil
	}
	return validationErrors
}

// Describe renders the rule a field failed, e.g. "must be gt 0".
func Describe(fieldErr validator.FieldError) string {
	if fieldErr.Param() == "" {
		return "must be " + fieldErr.Tag()
	}
	return "must be " + fieldErr.Tag() + " " + fieldErr.Param()
}

func LogValidationErrors(err error) {
	for _, err := range FieldErrors(err) {
		fieldName := stripPrefix(err.Namespace())
		switch err.Tag() {
		case "required":
			log.Errorf("ConfigError: Field %s is required but was not found", fieldName)
		default:
			log.Errorf("ConfigError: Field %s has invalid value %v: %s", fieldName, err.Value(), Describe(err))
		}
	}
}

func stripPrefix(s string) string {
	if idx := strings.Index(s, "."); idx != -1 {
		return s[idx+1:]
	}
	return s
}
