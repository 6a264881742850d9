package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"halachi/shared/failure"
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
	}{
		{name: "UnauthorizedError", failure: failure.UnauthorizedError, code: http.StatusUnauthorized},
		{name: "NoFileError", failure: failure.NoFileError, code: http.StatusBadRequest},
		{name: "OnlyImagesError", failure: failure.OnlyImagesError, code: http.StatusBadRequest},
		{name: "FileTooLargeError", failure: failure.FileTooLargeError, code: http.StatusBadRequest},
		{name: "InvalidRequestError", failure: failure.InvalidRequestError, code: http.StatusBadRequest},
		{name: "SaveError", failure: failure.SaveError, code: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.failure.Code != tt.code {
				t.Errorf("expected code to be %d, got %d", tt.code, tt.failure.Code)
			}
			if tt.failure.Message == "" {
				t.Error("expected a message")
			}
		})
	}

	if failure.UnauthorizedError.Message != "Unauthorized" {
		t.Errorf("unexpected unauthorized message %q", failure.UnauthorizedError.Message)
	}
}

func TestBadRequest(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected error
	}{
		{
			name:     "with error",
			input:    errors.New("validation failed"),
			expected: &failure.Failure{Code: http.StatusBadRequest, Message: "validation failed"},
		},
		{
			name:     "with nil error",
			input:    nil,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := failure.BadRequest(tt.input)

			if tt.expected == nil {
				if result != nil {
					t.Errorf("expected nil, got %v", result)
				}

				return
			}

			f, ok := result.(*failure.Failure)
			if !ok {
				t.Fatalf("expected result to be *failure.Failure, got %T", result)
			}

			expectedF := tt.expected.(*failure.Failure)
			if f.Code != expectedF.Code || f.Message != expectedF.Message {
				t.Errorf("expected %+v, got %+v", expectedF, f)
			}
		})
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{name: "bad request from string", err: failure.BadRequestFromString("bad"), code: http.StatusBadRequest, message: "bad"},
		{name: "unauthorized", err: failure.Unauthorized("nope"), code: http.StatusUnauthorized, message: "nope"},
		{name: "not found", err: failure.NotFound("Тур не найден"), code: http.StatusNotFound, message: "Тур не найден"},
		{name: "conflict", err: failure.Conflict("in use"), code: http.StatusBadRequest, message: "in use"},
		{name: "internal", err: failure.InternalError(errors.New("disk full")), code: http.StatusInternalServerError, message: "disk full"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, ok := tt.err.(*failure.Failure)
			if !ok {
				t.Fatalf("expected *failure.Failure, got %T", tt.err)
			}
			if f.Code != tt.code {
				t.Errorf("expected code %d, got %d", tt.code, f.Code)
			}
			if f.Message != tt.message {
				t.Errorf("expected message %q, got %q", tt.message, f.Message)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected int
	}{
		{
			name:     "failure error",
			input:    &failure.Failure{Code: http.StatusBadRequest, Message: "test"},
			expected: http.StatusBadRequest,
		},
		{
			name:     "wrapped failure error",
			input:    fmt.Errorf("outer: %w", failure.NotFound("test")),
			expected: http.StatusNotFound,
		},
		{
			name:     "regular error",
			input:    errors.New("regular error"),
			expected: http.StatusInternalServerError,
		},
		{
			name:     "nil error",
			input:    nil,
			expected: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := failure.GetCode(tt.input)
			if result != tt.expected {
				t.Errorf("expected code to be %d, got %d", tt.expected, result)
			}
		})
	}
}

func TestMessage(t *testing.T) {
	if got := failure.Message(failure.NotFound("Номер не найден")); got != "Номер не найден" {
		t.Errorf("expected failure message, got %q", got)
	}

	if got := failure.Message(errors.New("open /secret/path: permission denied")); got != failure.SaveError.Message {
		t.Errorf("expected generic message for plain errors, got %q", got)
	}
}
