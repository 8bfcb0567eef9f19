package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"borrowdung/shared/failure"
)

func TestFailure_Error(t *testing.T) {
	f := &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: "Nama ruangan wajib diisi",
	}

	if f.Error() != "Nama ruangan wajib diisi" {
		t.Errorf("expected error message to be 'Nama ruangan wajib diisi', got %s", f.Error())
	}
}

func TestBadRequest(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected *failure.Failure
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

			if f.Code != tt.expected.Code || f.Message != tt.expected.Message {
				t.Errorf("expected %+v, got %+v", tt.expected, f)
			}
		})
	}
}

func TestFromStatus(t *testing.T) {
	tests := []struct {
		name     string
		code     int
		message  string
		expected string
	}{
		{
			name:     "server supplied message",
			code:     http.StatusConflict,
			message:  "Ruangan sudah dibooking pada waktu tersebut",
			expected: "Ruangan sudah dibooking pada waktu tersebut",
		},
		{
			name:     "empty message falls back to status text",
			code:     http.StatusBadGateway,
			message:  "",
			expected: http.StatusText(http.StatusBadGateway),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := failure.FromStatus(tt.code, tt.message)

			if failure.GetCode(err) != tt.code {
				t.Errorf("expected code to be %d, got %d", tt.code, failure.GetCode(err))
			}

			if err.Error() != tt.expected {
				t.Errorf("expected message to be %q, got %q", tt.expected, err.Error())
			}
		})
	}
}

func TestUnauthorized(t *testing.T) {
	result := failure.Unauthorized("token expired")

	if failure.GetCode(result) != http.StatusUnauthorized {
		t.Errorf("expected code to be %d, got %d", http.StatusUnauthorized, failure.GetCode(result))
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
			input:    fmt.Errorf("failed to create room: %w", failure.NotFound("room not found")),
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
	tests := []struct {
		name     string
		input    error
		expected string
	}{
		{
			name:     "wrapped failure keeps server message",
			input:    fmt.Errorf("failed to create booking: %w", failure.FromStatus(http.StatusBadRequest, "Waktu selesai harus setelah waktu mulai")),
			expected: "Waktu selesai harus setelah waktu mulai",
		},
		{
			name:     "plain error uses fallback",
			input:    errors.New("dial tcp: connection refused"),
			expected: "Gagal membuat booking",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := failure.Message(tt.input, "Gagal membuat booking"); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}
