package validator

import (
	"errors"
	"lumen/shared/failure"
	"reflect"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var (
	messages = map[string]string{
		"required":  "{field} is required",
		"gte":       "{field} must be greater than or equal to {param}",
		"lte":       "{field} must be less than or equal to {param}",
		"oneof":     "{field} must be one of {param}",
		"maxlen":    "{field} must be at most {param} characters",
		"minlen":    "{field} must be at least {param} characters",
		"max":       "{field} must be less than or equal to {param}",
		"min":       "{field} must be greater than or equal to {param}",
		"email":     "{field} must be a valid email address",
		"dotdomain": "{field} must be a valid email address",
		"datetime":  "{field} must match the format {param}",
		"isodate":   "{field} must be an ISO-8601 date",
	}

	reasons = map[string]string{
		"required":  failure.ReasonMissingField,
		"email":     failure.ReasonInvalidEmailFormat,
		"dotdomain": failure.ReasonInvalidEmailFormat,
		"oneof":     failure.ReasonInvalidValue,
		"datetime":  failure.ReasonInvalidFormat,
		"isodate":   failure.ReasonInvalidFormat,
		"gte":       failure.ReasonOutOfRange,
		"lte":       failure.ReasonOutOfRange,
	}
)

// fieldErrors converts validator errors into one FieldError per rejected field.
func fieldErrors(err error) []failure.FieldError {
	var valErrors val.ValidationErrors

	if !errors.As(err, &valErrors) {
		return []failure.FieldError{{Reason: failure.ReasonInvalidValue, Message: err.Error()}}
	}

	res := make([]failure.FieldError, 0, len(valErrors))

	for _, valErr := range valErrors {
		tag := messageTag(valErr)
		field := valErr.Field()

		msg := messages[tag]
		if msg == "" {
			msg = valErr.Error()
		} else {
			msg = strings.ReplaceAll(msg, "{field}", field)
			msg = strings.ReplaceAll(msg, "{param}", valErr.Param())
		}

		res = append(res, failure.FieldError{
			Field:   field,
			Reason:  reason(valErr),
			Message: msg,
		})
	}

	return res
}

func message(err error) string {
	fields := fieldErrors(err)
	if len(fields) == 0 {
		return err.Error()
	}

	return fields[0].Message
}

// max/min on strings are length checks, on numbers they are range checks.
func messageTag(valErr val.FieldError) string {
	if valErr.Kind() == reflect.String {
		switch valErr.Tag() {
		case "max":
			return "maxlen"
		case "min":
			return "minlen"
		}
	}

	return valErr.Tag()
}

func reason(valErr val.FieldError) string {
	switch messageTag(valErr) {
	case "maxlen":
		return failure.ReasonFieldTooLong
	case "minlen":
		return failure.ReasonFieldTooShort
	case "max", "min":
		return failure.ReasonOutOfRange
	}

	if r, ok := reasons[valErr.Tag()]; ok {
		return r
	}

	return failure.ReasonInvalidValue
}
