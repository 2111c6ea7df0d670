package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"casatente/shared/failure"
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
		{
			name:    "ResourceRestrictedError",
			failure: failure.ResourceRestrictedError,
			code:    http.StatusForbidden,
			message: "You don't have permission to access this resource",
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

func TestConstructors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{name: "BadRequestFromString", err: failure.BadRequestFromString("bad input"), code: http.StatusBadRequest},
		{name: "Unauthorized", err: failure.Unauthorized("no token"), code: http.StatusUnauthorized},
		{name: "Forbidden", err: failure.Forbidden("not allowed"), code: http.StatusForbidden},
		{name: "NotFound", err: failure.NotFound("room not found"), code: http.StatusNotFound},
		{name: "Conflict", err: failure.Conflict("already reserved"), code: http.StatusConflict},
		{name: "InternalError", err: failure.InternalError(errors.New("boom")), code: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := failure.GetCode(tt.err); got != tt.code {
				t.Errorf("expected code %d, got %d", tt.code, got)
			}
		})
	}
}

func TestBadRequest(t *testing.T) {
	if err := failure.BadRequest(nil); err != nil {
		t.Errorf("expected nil, got %v", err)
	}

	err := failure.BadRequest(errors.New("validation failed"))
	if err == nil || err.Error() != "validation failed" {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestGetCode_NonFailure(t *testing.T) {
	if got := failure.GetCode(errors.New("plain error")); got != http.StatusInternalServerError {
		t.Errorf("expected %d for plain errors, got %d", http.StatusInternalServerError, got)
	}
}

func TestIsCode(t *testing.T) {
	err := failure.Conflict("room is already reserved on 2026-09-10")

	if !failure.IsCode(err, http.StatusConflict) {
		t.Error("expected IsCode to match the conflict code")
	}

	if failure.IsCode(err, http.StatusNotFound) {
		t.Error("expected IsCode to reject a different code")
	}

	wrapped := fmt.Errorf("creating reservation: %w", err)
	if !failure.IsCode(wrapped, http.StatusConflict) {
		t.Error("expected IsCode to unwrap errors")
	}

	if failure.IsCode(errors.New("plain error"), http.StatusConflict) {
		t.Error("expected IsCode to reject non-failures")
	}
}
