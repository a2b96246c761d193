package failure_test

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"lumen/shared/failure"
	"net/http"
	"strings"
	"testing"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "test error message",
	}

	if f.Error() != "test error message" {
		t.Errorf("expected error message to be 'test error message', got %s", f.Error())
	}
}

func TestPredefinedFailures(t *testing.T) {
	tests := []struct {
		name    string
		failure *failure.Failure
		code    int
		message string
	}{
		{
			name:    "InvalidPageParam",
			failure: failure.InvalidPageParam,
			code:    http.StatusBadRequest,
			message: "invalid page parameter",
		},
		{
			name:    "InvalidLimitParam",
			failure: failure.InvalidLimitParam,
			code:    http.StatusBadRequest,
			message: "invalid limit parameter",
		},
		{
			name:    "ForbiddenError",
			failure: failure.ForbiddenError,
			code:    http.StatusForbidden,
			message: "You don't have the required permissions",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.failure.Code != tt.code {
				t.Errorf("expected code to be %d, got %d", tt.code, tt.failure.Code)
			}
			if tt.failure.Message != tt.message {
				t.Errorf("expected message to be %s, got %s", tt.message, tt.failure.Message)
			}
		})
	}
}

func TestBadRequest(t *testing.T) {
	if failure.BadRequest(nil) != nil {
		t.Error("expected nil for nil input")
	}

	result := failure.BadRequest(errors.New("bad input"))
	if failure.GetCode(result) != http.StatusBadRequest {
		t.Errorf("expected code %d, got %d", http.StatusBadRequest, failure.GetCode(result))
	}

	if result.Error() != "bad input" {
		t.Errorf("expected message 'bad input', got %s", result.Error())
	}
}

func TestValidation(t *testing.T) {
	fields := []failure.FieldError{
		{Field: "name", Reason: failure.ReasonMissingField, Message: "name is required"},
		{Field: "email", Reason: failure.ReasonInvalidEmailFormat, Message: "email must be a valid email address"},
	}

	err := failure.Validation(fields)

	if failure.GetCode(err) != http.StatusBadRequest {
		t.Errorf("expected code %d, got %d", http.StatusBadRequest, failure.GetCode(err))
	}

	got := failure.GetFields(err)
	if len(got) != 2 {
		t.Fatalf("expected 2 fields, got %d", len(got))
	}

	if got[1].Reason != failure.ReasonInvalidEmailFormat {
		t.Errorf("expected reason %s, got %s", failure.ReasonInvalidEmailFormat, got[1].Reason)
	}

	if !strings.Contains(err.Error(), "name is required") || !strings.Contains(err.Error(), "email must be") {
		t.Errorf("expected message to list every field, got %s", err.Error())
	}
}

func TestStorageUnavailable(t *testing.T) {
	if failure.StorageUnavailable(nil) != nil {
		t.Error("expected nil for nil input")
	}

	err := fmt.Errorf("failed to create booking: %w", failure.StorageUnavailable(driver.ErrBadConn))

	if failure.GetCode(err) != http.StatusServiceUnavailable {
		t.Errorf("expected code %d, got %d", http.StatusServiceUnavailable, failure.GetCode(err))
	}

	if !failure.IsStorageUnavailable(err) {
		t.Error("expected IsStorageUnavailable to be true")
	}

	if !errors.Is(err, driver.ErrBadConn) {
		t.Error("expected driver error to stay reachable")
	}
}

func TestInternalError(t *testing.T) {
	if failure.InternalError(nil) != nil {
		t.Error("expected nil for nil input")
	}

	cause := errors.New("database connection failed")
	result := failure.InternalError(cause)

	if failure.GetCode(result) != http.StatusInternalServerError {
		t.Errorf("expected code %d, got %d", http.StatusInternalServerError, failure.GetCode(result))
	}

	if !errors.Is(result, cause) {
		t.Error("expected cause to be unwrapped")
	}
}

func TestCodes(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "not found", err: failure.NotFound("booking not found"), expected: http.StatusNotFound},
		{name: "conflict", err: failure.Conflict("duplicate reference"), expected: http.StatusConflict},
		{name: "forbidden", err: failure.Forbidden("denied"), expected: http.StatusForbidden},
		{name: "unauthorized", err: failure.Unauthorized("missing key"), expected: http.StatusUnauthorized},
		{name: "wrapped", err: fmt.Errorf("outer: %w", failure.NotFound("x")), expected: http.StatusNotFound},
		{name: "regular error", err: errors.New("regular error"), expected: http.StatusInternalServerError},
		{name: "nil error", err: nil, expected: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := failure.GetCode(tt.err); got != tt.expected {
				t.Errorf("expected code to be %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestEmptyUpdate(t *testing.T) {
	err := failure.EmptyUpdate()

	if code := failure.GetCode(err); code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", code)
	}

	fields := failure.GetFields(err)
	if len(fields) != 1 || fields[0].Reason != failure.ReasonMissingField {
		t.Errorf("unexpected fields %+v", fields)
	}
}

func TestIsNotFound(t *testing.T) {
	if !failure.IsNotFound(fmt.Errorf("lookup: %w", failure.NotFound("user not found"))) {
		t.Error("expected wrapped NotFound to be detected")
	}

	if failure.IsNotFound(errors.New("plain")) {
		t.Error("plain errors are not NotFound")
	}
}
