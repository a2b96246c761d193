package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"lumen/shared/constant"
	"lumen/shared/failure"
	"reflect"
	"strings"
	"time"

	val "github.com/go-playground/validator/v10"
)

var validate *val.Validate

// Defaulter is implemented by requests that fill optional fields before validation.
type Defaulter interface {
	SetDefaults()
}

// registerDotDomainValidation rejects addresses whose domain has no dot, e.g. "user@localhost".
func registerDotDomainValidation(field val.FieldLevel) bool {
	value := field.Field().String()
	if value == "" {
		return true
	}

	at := strings.LastIndex(value, "@")
	if at < 1 {
		return false
	}

	domain := value[at+1:]
	dot := strings.Index(domain, ".")

	return dot > 0 && dot < len(domain)-1
}

// registerISODateValidation accepts RFC3339 timestamps and plain YYYY-MM-DD dates.
func registerISODateValidation(field val.FieldLevel) bool {
	_, err := ParseISODate(field.Field().String())

	return err == nil
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}

		return name
	})

	err := validate.RegisterValidation("empty", func(fl val.FieldLevel) bool {
		empty := fl.Field().IsZero()

		return empty
	})
	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("dotdomain", registerDotDomainValidation)
	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("isodate", registerISODateValidation)
	if err != nil {
		panic(err)
	}
}

// ParseISODate parses an RFC3339 timestamp or a YYYY-MM-DD date.
func ParseISODate(value string) (time.Time, error) {
	if t, err := time.Parse(constant.DateFormat, value); err == nil {
		return t, nil
	}

	t, err := time.Parse(constant.DateOnlyFormat, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid ISO-8601 date %q: %w", value, err)
	}

	return t, nil
}

// Validate reads from the given io.Reader into the given struct, and then performs validation
// on the struct using the validator package. If the struct is invalid according to the
// validation rules, an error is returned. Otherwise, nil is returned.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)
	err := decoder.Decode(data)

	if err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

// ValidateStruct applies defaults when data is a Defaulter and reports every rejected field at once.
func ValidateStruct[T any](data *T) error {
	if defaulter, ok := any(data).(Defaulter); ok {
		defaulter.SetDefaults()
	}

	err := validate.Struct(data)

	if err != nil {
		return failure.Validation(fieldErrors(err)) //nolint:wrapcheck
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	err := validate.Var(field, tag)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}
