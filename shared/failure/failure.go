package failure

import (
	"errors"
	"net/http"
	"strings"
)

// Reasons attached to a FieldError.
const (
	ReasonMissingField       = "MissingField"
	ReasonFieldTooLong       = "FieldTooLong"
	ReasonFieldTooShort      = "FieldTooShort"
	ReasonInvalidEmailFormat = "InvalidEmailFormat"
	ReasonInvalidFormat      = "InvalidFormat"
	ReasonInvalidValue       = "InvalidValue"
	ReasonOutOfRange         = "OutOfRange"
)

const (
	messageValidation         = "validation failed"
	messageStorageUnavailable = "storage unavailable"
)

// FieldError describes a single rejected field of a submitted entity.
type FieldError struct {
	Field   string `json:"field"`
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
type Failure struct {
	Code    int          `json:"code"`
	Message string       `json:"message"`
	Fields  []FieldError `json:"fields,omitempty"`
	cause   error
}

var InvalidPageParam = &Failure{Code: http.StatusBadRequest, Message: "invalid page parameter"}
var InvalidLimitParam = &Failure{Code: http.StatusBadRequest, Message: "invalid limit parameter"}
var ForbiddenError = &Failure{Code: http.StatusForbidden, Message: "You don't have the required permissions"}

// Error returns the error message. Validation failures list every rejected field.
func (e *Failure) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}

	msgs := make([]string, len(e.Fields))
	for i, field := range e.Fields {
		msgs[i] = field.Message
	}

	return e.Message + ": " + strings.Join(msgs, "; ")
}

func (e *Failure) Unwrap() error {
	return e.cause
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
	}
}

// Validation returns a bad request Failure carrying every rejected field.
func Validation(fields []FieldError) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: messageValidation,
		Fields:  fields,
	}
}

// EmptyUpdate rejects a partial update that carries no fields.
func EmptyUpdate() error {
	return Validation([]FieldError{{
		Reason:  ReasonMissingField,
		Message: "update request cannot be empty",
	}})
}

// Unauthorized returns a new Failure with code for unauthorized requests.
func Unauthorized(msg string) error {
	return &Failure{
		Code:    http.StatusUnauthorized,
		Message: msg,
	}
}

// InternalError returns a new Failure with code for internal error and message derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
			cause:   err,
		}
	}

	return nil
}

// StorageUnavailable wraps a store failure. The driver error stays reachable through errors.Is/As.
func StorageUnavailable(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusServiceUnavailable,
			Message: messageStorageUnavailable,
			cause:   err,
		}
	}

	return nil
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(entityName string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Message: entityName,
	}
}

// Conflict returns a new Failure with code for conflict situations.
func Conflict(message string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Message: message,
	}
}

func Forbidden(msg string) error {
	return &Failure{
		Code:    http.StatusForbidden,
		Message: msg,
	}
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// GetFields returns the rejected fields of a validation failure, if any.
func GetFields(err error) []FieldError {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Fields
	}

	return nil
}

// IsStorageUnavailable reports whether err originates from an unreachable or failing store.
func IsStorageUnavailable(err error) bool {
	return GetCode(err) == http.StatusServiceUnavailable
}

func IsNotFound(err error) bool {
	var fail *Failure

	return errors.As(err, &fail) && fail.Code == http.StatusNotFound
}
