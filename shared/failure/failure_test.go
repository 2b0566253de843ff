package failure_test

import (
	"errors"
	"net/http"
	"testing"

	"lodge/shared/failure"
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
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{
			name:     "BadRequest",
			err:      failure.BadRequest(errors.New("validation failed")),
			wantCode: http.StatusBadRequest,
			wantMsg:  "validation failed",
		},
		{
			name:     "BadRequestFromString",
			err:      failure.BadRequestFromString("bad input"),
			wantCode: http.StatusBadRequest,
			wantMsg:  "bad input",
		},
		{
			name:     "Unauthorized",
			err:      failure.Unauthorized("expired token"),
			wantCode: http.StatusUnauthorized,
			wantMsg:  "expired token",
		},
		{
			name:     "InternalError",
			err:      failure.InternalError(errors.New("boom")),
			wantCode: http.StatusInternalServerError,
			wantMsg:  "boom",
		},
		{
			name:     "WriteError",
			err:      failure.WriteError(errors.New("insert rejected")),
			wantCode: http.StatusBadGateway,
			wantMsg:  "insert rejected",
		},
		{
			name:     "NotFound",
			err:      failure.NotFound("reservation"),
			wantCode: http.StatusNotFound,
			wantMsg:  "reservation",
		},
		{
			name:     "Conflict",
			err:      failure.Conflict("already decided"),
			wantCode: http.StatusConflict,
			wantMsg:  "already decided",
		},
		{
			name:     "Forbidden",
			err:      failure.Forbidden("no access"),
			wantCode: http.StatusForbidden,
			wantMsg:  "no access",
		},
		{
			name:     "Unimplemented",
			err:      failure.Unimplemented("Export"),
			wantCode: http.StatusNotImplemented,
			wantMsg:  "Export",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err == nil {
				t.Fatal("expected non-nil error")
			}
			if got := failure.GetCode(tt.err); got != tt.wantCode {
				t.Errorf("expected code %d, got %d", tt.wantCode, got)
			}
			if tt.err.Error() != tt.wantMsg {
				t.Errorf("expected message %s, got %s", tt.wantMsg, tt.err.Error())
			}
		})
	}
}

func TestNilPassthrough(t *testing.T) {
	if failure.BadRequest(nil) != nil {
		t.Error("BadRequest(nil) should return nil")
	}
	if failure.InternalError(nil) != nil {
		t.Error("InternalError(nil) should return nil")
	}
	if failure.WriteError(nil) != nil {
		t.Error("WriteError(nil) should return nil")
	}
}

func TestGetCode(t *testing.T) {
	if got := failure.GetCode(errors.New("plain error")); got != http.StatusInternalServerError {
		t.Errorf("expected plain errors to map to 500, got %d", got)
	}

	wrapped := failure.NotFound("room")
	if got := failure.GetCode(wrapped); got != http.StatusNotFound {
		t.Errorf("expected 404, got %d", got)
	}
}

func TestIsNotFound(t *testing.T) {
	if !failure.IsNotFound(failure.NotFound("meal")) {
		t.Error("expected IsNotFound to be true for NotFound failures")
	}
	if failure.IsNotFound(failure.Conflict("dup")) {
		t.Error("expected IsNotFound to be false for other failures")
	}
	if failure.IsNotFound(errors.New("plain")) {
		t.Error("expected IsNotFound to be false for plain errors")
	}
}

func TestIsWriteError(t *testing.T) {
	if !failure.IsWriteError(failure.WriteError(errors.New("down"))) {
		t.Error("expected IsWriteError to be true for WriteError failures")
	}
	if failure.IsWriteError(failure.NotFound("x")) {
		t.Error("expected IsWriteError to be false for other failures")
	}
}
