package errors

import (
	"math"
	"strings"
	"testing"
)

func TestValidateRadius(t *testing.T) {
	tests := []struct {
		name    string
		r       int
		wantErr bool
	}{
		{"one", 1, false},
		{"typical", 60, false},
		{"max", MaxRadius, false},
		{"zero", 0, true},
		{"negative", -3, true},
		{"too large", MaxRadius + 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRadius(tt.r)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRadius(%d) error = %v, wantErr %v", tt.r, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidRadius) {
				t.Errorf("ValidateRadius(%d) code = %v, want %v", tt.r, GetCode(err), ErrCodeInvalidRadius)
			}
		})
	}
}

func TestValidateThreshold(t *testing.T) {
	tests := []struct {
		name    string
		th      float64
		wantErr bool
	}{
		{"half", 0.5, false},
		{"full", 1, false},
		{"tiny", 0.001, false},
		{"zero", 0, true},
		{"negative", -0.1, true},
		{"above one", 1.5, true},
		{"nan", math.NaN(), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateThreshold(tt.th)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateThreshold(%v) error = %v, wantErr %v", tt.th, err, tt.wantErr)
			}
		})
	}
}

func TestValidateEpsilon(t *testing.T) {
	tests := []struct {
		name    string
		eps     float64
		wantErr bool
	}{
		{"default", 2.2, false},
		{"thin", 0.5, false},
		{"zero", 0, true},
		{"negative", -1, true},
		{"inf", math.Inf(1), true},
		{"nan", math.NaN(), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEpsilon(tt.eps)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateEpsilon(%v) error = %v, wantErr %v", tt.eps, err, tt.wantErr)
			}
		})
	}
}

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"simple", "out.png", false},
		{"nested", "runs/r60/out.svg", false},
		{"absolute", "/tmp/out.json", false},

		{"empty", "", true},
		{"too long", strings.Repeat("a", 501), true},
		{"null byte", "out\x00.png", true},
		{"newline", "out\n.png", true},
		{"leading space", " out.png", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
		})
	}
}
