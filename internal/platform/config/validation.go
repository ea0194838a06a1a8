package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate reports fields by their koanf key so errors read like the YAML
// and APP_ variables an operator edits.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("koanf"), ",")
		if name == "" || name == "-" {
			return strings.ToLower(f.Name)
		}
		return name
	})
	v.RegisterStructValidation(validateRetry, RetryConfig{})
	return v
}

// validateRetry rejects a backoff ceiling below the first interval.
func validateRetry(sl validator.StructLevel) {
	r, ok := sl.Current().Interface().(RetryConfig)
	if !ok || r.MaxInterval == 0 {
		return
	}
	if r.MaxInterval < r.InitialInterval {
		sl.ReportError(r.MaxInterval, "max_interval", "MaxInterval", "gtefield", "initial_interval")
	}
}

// Validate checks c and lists every invalid key. The service refuses to
// start on error.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	lines := make([]string, len(fieldErrs))
	for i, fe := range fieldErrs {
		lines[i] = describe(fe)
	}
	return fmt.Errorf("config validation failed:\n  %s", strings.Join(lines, "\n  "))
}

func describe(fe validator.FieldError) string {
	key := formatFieldPath(fe.Namespace())
	param := fe.Param()

	switch fe.Tag() {
	case "required":
		return key + " is required"
	case "required_if":
		field, value, _ := strings.Cut(param, " ")
		return fmt.Sprintf("%s is required when %s is %s", key, strings.ToLower(field), value)
	case "required_with":
		return fmt.Sprintf("%s is required when %s is set", key, strings.ToLower(param))
	case "min":
		return fmt.Sprintf("%s must be at least %s", key, param)
	case "max":
		return fmt.Sprintf("%s must be at most %s", key, param)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", key, param)
	case "url":
		return key + " must be a valid URL"
	case "gtefield":
		return fmt.Sprintf("%s must not be below %s", key, param)
	}
	return fmt.Sprintf("%s failed validation: %s", key, fe.Tag())
}

// formatFieldPath drops the root type from a validator namespace:
// "Config.gemini.base_url" becomes "gemini.base_url".
func formatFieldPath(namespace string) string {
	if _, rest, ok := strings.Cut(namespace, "."); ok {
		return rest
	}
	return namespace
}
