package errors

import (
	"math"
	"strings"
	"unicode"
)

// MaxRadius bounds the domain radius accepted by the validators. The occupancy
// grid is dense, (2r+1)² cells, so the limit keeps allocations reasonable.
const MaxRadius = 4096

// ValidateRadius validates a domain or launch-ring radius.
//
// The radius must be a positive integer no larger than [MaxRadius].
func ValidateRadius(r int) error {
	if r <= 0 {
		return New(ErrCodeInvalidRadius, "radius must be positive, got %d", r)
	}
	if r > MaxRadius {
		return New(ErrCodeInvalidRadius, "radius too large (max %d), got %d", MaxRadius, r)
	}
	return nil
}

// ValidateThreshold validates a density termination threshold.
// Density is a fraction of the disk area, so the threshold must lie in (0, 1].
func ValidateThreshold(th float64) error {
	if math.IsNaN(th) || th <= 0 || th > 1 {
		return New(ErrCodeInvalidThreshold, "threshold must be in (0, 1], got %v", th)
	}
	return nil
}

// ValidateEpsilon validates the ring thickness tolerance.
func ValidateEpsilon(eps float64) error {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps <= 0 {
		return New(ErrCodeInvalidEpsilon, "epsilon must be a positive finite number, got %v", eps)
	}
	return nil
}

// ValidatePath validates an output or input file path given on the command
// line or in a config file.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	if strings.TrimSpace(path) != path {
		return New(ErrCodeInvalidPath, "path has leading or trailing whitespace")
	}

	return nil
}
