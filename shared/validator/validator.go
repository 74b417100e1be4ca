package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"sync/atomic"

	val "github.com/go-playground/validator/v10"

	"tzform/shared/civiltime"
	"tzform/shared/failure"
	"tzform/shared/timezone"
)

var validate = newValidate()

// ZoneChecker is satisfied by *timezone.Resolver.
type ZoneChecker interface {
	Validate(zone string) error
}

type zoneChecker struct{ ZoneChecker }

var zones atomic.Pointer[zoneChecker]

// UseZones makes the zoneid rule consult checker. A nil checker restores the
// process-wide zone database.
func UseZones(checker ZoneChecker) {
	if checker == nil {
		zones.Store(nil)

		return
	}

	zones.Store(&zoneChecker{checker})
}

func knownZone(zone string) bool {
	if checker := zones.Load(); checker != nil {
		return checker.Validate(zone) == nil
	}

	return timezone.Known(zone)
}

var rules = map[string]val.Func{
	"empty": func(field val.FieldLevel) bool {
		return field.Field().IsZero()
	},
	// zoneid accepts IANA names the resolver can load.
	"zoneid": func(field val.FieldLevel) bool {
		zone, ok := field.Field().Interface().(string)

		return ok && knownZone(zone)
	},
	// civil accepts minute-precision wall clock readings.
	"civil": func(field val.FieldLevel) bool {
		text, ok := field.Field().Interface().(string)
		if !ok {
			return false
		}

		_, err := civiltime.Parse(text)

		return err == nil
	},
}

func newValidate() *val.Validate {
	v := val.New(val.WithRequiredStructEnabled())

	// Report fields by their JSON names so messages match the request body.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		if name == "" {
			return field.Name
		}

		return name
	})

	for tag, rule := range rules {
		if err := v.RegisterValidation(tag, rule); err != nil {
			panic(fmt.Sprintf("register %s validation: %v", tag, err))
		}
	}

	return v
}

// Validate decodes one JSON document from r into data and validates it.
// Decode and rule failures both come back as 400 failures.
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)

	if err := decoder.Decode(data); err != nil {
		if errors.Is(err, io.EOF) {
			return failure.BadRequestFromString("request body is required") //nolint:wrapcheck
		}

		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	if err := validate.Struct(data); err != nil {
		return failure.BadRequestFromString(message(err)) //nolint:wrapcheck
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	if err := validate.Var(field, tag); err != nil {
		return failure.BadRequestFromString(message(err)) //nolint:wrapcheck
	}

	return nil
}
