package errors

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeUnknownScreen, "screen %q is not registered", "difficulty")

	if err.Code != ErrCodeUnknownScreen {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeUnknownScreen)
	}

	if err.Message != `screen "difficulty" is not registered` {
		t.Errorf("Message = %v", err.Message)
	}

	expected := `UNKNOWN_SCREEN: screen "difficulty" is not registered`
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeInvalidScreen, cause, "screen failed validation")

	if err.Code != ErrCodeInvalidScreen {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidScreen)
	}

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}

	// Test Unwrap
	unwrapped := errors.Unwrap(err)
	if unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	// Test errors.Is with wrapped error
	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{
			name:     "matching code",
			err:      New(ErrCodeInvalidFormula, "test"),
			code:     ErrCodeInvalidFormula,
			expected: true,
		},
		{
			name:     "non-matching code",
			err:      New(ErrCodeInvalidFormula, "test"),
			code:     ErrCodeUnknownScreen,
			expected: false,
		},
		{
			name:     "wrapped error",
			err:      Wrap(ErrCodeInvalidScreen, New(ErrCodeInvalidFormula, "inner"), "outer"),
			code:     ErrCodeInvalidScreen,
			expected: true,
		},
		{
			name:     "plain error",
			err:      errors.New("plain"),
			code:     ErrCodeInternal,
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			code:     ErrCodeInternal,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Code
	}{
		{
			name: "structured error",
			err:  New(ErrCodeInvalidSurface, "bad size"),
			want: ErrCodeInvalidSurface,
		},
		{
			name: "plain error",
			err:  errors.New("plain"),
			want: "",
		},
		{
			name: "nil error",
			err:  nil,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.want {
				t.Errorf("GetCode() = %q, want %q", got, tt.want)
			}
		})
	}
}
