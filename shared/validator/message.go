package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var messages = map[string]string{
	"required": "{field} is required",
	"gte":      "{field} must be greater than or equal to {param}",
	"lte":      "{field} must be less than or equal to {param}",
	"oneof":    "{field} must be one of {param}",
	"max":      "{field} must be at most {param} characters",
	"min":      "{field} must be at least {param} characters",
	"email":    "{field} must be a valid email address",
	"zoneid":   "{field} must be a known IANA time zone",
	"civil":    "{field} must be a date and time like 2025-01-01T10:00",
}

// message lists one sentence per failed field, in struct order.
func message(err error) string {
	var fieldErrors val.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return err.Error()
	}

	sentences := make([]string, 0, len(fieldErrors))

	for _, fieldErr := range fieldErrors {
		template, ok := messages[fieldErr.Tag()]
		if !ok {
			sentences = append(sentences, fieldErr.Error())

			continue
		}

		sentences = append(sentences, strings.NewReplacer(
			"{field}", fieldErr.Field(),
			"{param}", fieldErr.Param(),
		).Replace(template))
	}

	return strings.Join(sentences, "; ")
}
