package matrix

import (
	"fmt"
	"strings"
)

// Matrix is a row-major grid of integer weights.
// A nil or zero-length Matrix is the valid empty (0×0) matrix.
type Matrix [][]int64

// Validate checks that m is square with rows of equal length and returns
// its order n. It returns ErrInvalidShape otherwise.
// Complexity: O(n).
func Validate(m Matrix) (int, error) {
	n := len(m)
	for i, row := range m {
		if len(row) != n {
			return 0, fmt.Errorf("row %d has %d columns, want %d: %w", i, len(row), n, ErrInvalidShape)
		}
	}
	return n, nil
}

// Zeros returns an n×n matrix of zeros.
func Zeros(n int) Matrix {
	m := make(Matrix, n)
	for i := range m {
		m[i] = make([]int64, n)
	}
	return m
}

// Clone returns a deep copy of m.
func Clone(m Matrix) Matrix {
	if m == nil {
		return nil
	}
	out := make(Matrix, len(m))
	for i, row := range m {
		out[i] = append([]int64(nil), row...)
	}
	return out
}

// Equal reports whether a and b have the same shape and entries.
func Equal(a, b Matrix) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if len(a[i]) != len(b[i]) {
			return false
		}
		for j := range a[i] {
			if a[i][j] != b[i][j] {
				return false
			}
		}
	}
	return true
}

// Size returns the number of rows of m.
func (m Matrix) Size() int { return len(m) }

// String renders m one row per line, e.g. "[0 2]\n[2 0]\n".
func (m Matrix) String() string {
	var b strings.Builder
	for _, row := range m {
		b.WriteString("[")
		for j, v := range row {
			if j > 0 {
				b.WriteString(" ")
			}
			fmt.Fprintf(&b, "%d", v)
		}
		b.WriteString("]\n")
	}
	return b.String()
}
