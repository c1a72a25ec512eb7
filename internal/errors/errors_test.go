package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestSentinelErrors_Wrapping(t *testing.T) {
	for _, sentinel := range []error{ErrInvalidFEN, ErrInvalidConfig, ErrIconTableIncomplete, ErrMalformedGrid} {
		wrapped := fmt.Errorf("context: %w", sentinel)
		if !errors.Is(wrapped, sentinel) {
			t.Errorf("errors.Is(wrapped, %v) = false, want true", sentinel)
		}
	}
}

func TestConfigError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ConfigError
		want string
	}{
		{
			name: "field and value",
			err:  &ConfigError{Err: ErrInvalidConfig, Field: "orientation", Value: "sideways"},
			want: `orientation "sideways": invalid configuration`,
		},
		{
			name: "field only",
			err:  &ConfigError{Err: ErrIconTableIncomplete, Field: "Black King"},
			want: "Black King: icon table incomplete",
		},
		{
			name: "no context",
			err:  &ConfigError{Err: ErrInvalidConfig},
			want: "invalid configuration",
		},
		{
			name: "empty",
			err:  &ConfigError{},
			want: "configuration error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("ConfigError.Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestConfigError_As(t *testing.T) {
	wrapped := fmt.Errorf("startup: %w", &ConfigError{Err: ErrInvalidConfig, Field: "square-size"})

	var cfgErr *ConfigError
	if !errors.As(wrapped, &cfgErr) {
		t.Fatal("errors.As(wrapped, &ConfigError) = false, want true")
	}
	if cfgErr.Field != "square-size" {
		t.Errorf("Field = %q, want %q", cfgErr.Field, "square-size")
	}
	if !errors.Is(wrapped, ErrInvalidConfig) {
		t.Error("errors.Is(wrapped, ErrInvalidConfig) = false, want true")
	}
}

func TestGridError(t *testing.T) {
	err := &GridError{Err: ErrMalformedGrid, Row: 2, Column: 5, Square: "f6", Reason: "duplicate square"}

	msg := err.Error()
	for _, s := range []string{"row 2", "column 5", "f6", "duplicate square", "malformed grid"} {
		if !strings.Contains(msg, s) {
			t.Errorf("GridError.Error() = %q, should contain %q", msg, s)
		}
	}
	if !errors.Is(err, ErrMalformedGrid) {
		t.Error("errors.Is(err, ErrMalformedGrid) = false, want true")
	}
}

func TestWrap(t *testing.T) {
	if Wrap(nil, "context") != nil {
		t.Error("Wrap(nil) should return nil")
	}
	if Wrapf(nil, "context %d", 1) != nil {
		t.Error("Wrapf(nil) should return nil")
	}

	err := Wrapf(ErrInvalidFEN, "query parameter %s", "fen")
	if err.Error() != "query parameter fen: invalid FEN string" {
		t.Errorf("Wrapf() = %q", err.Error())
	}
	if !errors.Is(err, ErrInvalidFEN) {
		t.Error("errors.Is(Wrapf(...), ErrInvalidFEN) = false, want true")
	}
}
