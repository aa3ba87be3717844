package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorString(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{"new", New(ErrCodeInvalidRadius, "radius must be positive, got %d", -2), "INVALID_RADIUS: radius must be positive, got -2"},
		{"wrap", Wrap(ErrCodeFileNotFound, errors.New("no such file"), "open %s", "run.json"), "FILE_NOT_FOUND: open run.json: no such file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWrapUnwraps(t *testing.T) {
	cause := errors.New("disk full")
	err := Wrap(ErrCodeInternal, cause, "write snapshot")

	if errors.Unwrap(err) != cause {
		t.Error("Unwrap should return the cause")
	}
	if !errors.Is(err, cause) {
		t.Error("stdlib errors.Is should see the cause")
	}
}

func TestIsAndGetCode(t *testing.T) {
	ring := New(ErrCodeEmptyRing, "empty")
	tests := []struct {
		name     string
		err      error
		wantCode Code
	}{
		{"direct", ring, ErrCodeEmptyRing},
		{"fmt wrapped", fmt.Errorf("grow: %w", ring), ErrCodeEmptyRing},
		{"outer code wins", Wrap(ErrCodeInvalidConfig, New(ErrCodeInvalidRadius, "inner"), "outer"), ErrCodeInvalidConfig},
		{"plain", errors.New("plain"), ""},
		{"nil", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.wantCode {
				t.Errorf("GetCode() = %q, want %q", got, tt.wantCode)
			}
			if tt.wantCode != "" && !Is(tt.err, tt.wantCode) {
				t.Errorf("Is(%q) = false", tt.wantCode)
			}
			if Is(tt.err, ErrCodeUnsupported) {
				t.Error("Is matched an unrelated code")
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	if got := UserMessage(New(ErrCodeInvalidInput, "n must be positive")); got != "n must be positive" {
		t.Errorf("UserMessage() = %q", got)
	}
	if got := UserMessage(errors.New("plain error")); got != "plain error" {
		t.Errorf("UserMessage() = %q", got)
	}
}

func TestKind(t *testing.T) {
	tests := []struct {
		code Code
		want Kind
	}{
		{ErrCodeInvalidInput, KindInvalid},
		{ErrCodeInvalidPath, KindInvalid},
		{ErrCodeInvalidConfig, KindInvalid},
		{ErrCodeEmptyRing, KindState},
		{ErrCodeRingNotBuilt, KindState},
		{ErrCodeRingBuilt, KindState},
		{ErrCodeFileNotFound, KindNotFound},
		{ErrCodeUnsupported, KindUnsupported},
		{ErrCodeInternal, KindInternal},
		{"SOMETHING_NEW", KindInternal},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			if got := tt.code.Kind(); got != tt.want {
				t.Errorf("Kind() = %d, want %d", got, tt.want)
			}
		})
	}

	if KindOf(fmt.Errorf("walk: %w", New(ErrCodeRingNotBuilt, "no ring"))) != KindState {
		t.Error("KindOf should follow the wrap chain")
	}
	if KindOf(errors.New("plain")) != KindInternal {
		t.Error("plain errors are internal")
	}
}
