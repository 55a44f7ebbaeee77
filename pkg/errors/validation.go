package errors

import (
	"slices"
	"strings"
	"unicode"
)

// MaxMatrixSize bounds the order of matrices accepted from users. The third
// power costs O(n⁴), so anything beyond this is almost certainly a typo.
const MaxMatrixSize = 200

// ValidateSize checks a requested matrix order.
func ValidateSize(n int) error {
	if n < 1 {
		return New(ErrCodeInvalidInput, "matrix size must be at least 1, got %d", n)
	}
	if n > MaxMatrixSize {
		return New(ErrCodeInvalidInput, "matrix size too large (max %d), got %d", MaxMatrixSize, n)
	}
	return nil
}

// ValidateFormat checks that format is one of allowed (case-sensitive).
func ValidateFormat(format string, allowed ...string) error {
	if slices.Contains(allowed, format) {
		return nil
	}
	return New(ErrCodeInvalidFormat, "invalid format: %s (must be one of %s)", format, strings.Join(allowed, ", "))
}

// ValidatePowers checks that every requested power is between 1 and 3,
// the range the derive command and the API expose.
func ValidatePowers(powers []int) error {
	if len(powers) == 0 {
		return New(ErrCodeInvalidPower, "at least one power is required")
	}
	for _, k := range powers {
		if k < 1 || k > 3 {
			return New(ErrCodeInvalidPower, "power %d out of range (must be 1, 2 or 3)", k)
		}
	}
	return nil
}

// ValidateOutputPath rejects empty paths and paths containing control
// characters or null bytes.
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidInput, "output path cannot be empty")
	}
	for _, r := range path {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "output path contains invalid characters")
		}
	}
	return nil
}
