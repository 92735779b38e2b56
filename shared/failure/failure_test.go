package failure_test

import (
	"errors"
	"net/http"
	"testing"

	"agendalab/shared/failure"
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

func TestConstructors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{name: "BadRequestFromString", err: failure.BadRequestFromString("bad"), code: http.StatusBadRequest},
		{name: "Unauthorized", err: failure.Unauthorized("no token"), code: http.StatusUnauthorized},
		{name: "Forbidden", err: failure.Forbidden("not allowed"), code: http.StatusForbidden},
		{name: "NotFound", err: failure.NotFound("booking not found"), code: http.StatusNotFound},
		{name: "Conflict", err: failure.Conflict("slot already booked"), code: http.StatusConflict},
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

func TestGetCode_NonFailure(t *testing.T) {
	if got := failure.GetCode(errors.New("plain error")); got != http.StatusInternalServerError {
		t.Errorf("expected fallback code 500, got %d", got)
	}
}

func TestBadRequest_NilError(t *testing.T) {
	if err := failure.BadRequest(nil); err != nil {
		t.Errorf("expected nil for nil error, got %v", err)
	}
}
