package matrix

import (
	"encoding/json"
	"fmt"
	"math"
)

// Derivation bundles the matrices derived from one weight matrix.
type Derivation struct {
	Weights   Matrix `json:"weights"`
	Adjacency Matrix `json:"adjacency,omitempty"`
	Power2    Matrix `json:"power2,omitempty"`
	Power3    Matrix `json:"power3,omitempty"`
}

// MarshalJSON omits the derived matrices that are nil, so a Derivation
// trimmed to some powers only carries those. A computed 0×0 result is
// still written as [].
func (d Derivation) MarshalJSON() ([]byte, error) {
	type derivationJSON struct {
		Weights   Matrix  `json:"weights"`
		Adjacency *Matrix `json:"adjacency,omitempty"`
		Power2    *Matrix `json:"power2,omitempty"`
		Power3    *Matrix `json:"power3,omitempty"`
	}
	return json.Marshal(derivationJSON{
		Weights:   d.Weights,
		Adjacency: present(d.Adjacency),
		Power2:    present(d.Power2),
		Power3:    present(d.Power3),
	})
}

func present(m Matrix) *Matrix {
	if m == nil {
		return nil
	}
	return &m
}

// Mul returns the ordinary matrix product a·b.
// a must be r×k and b k×c with no ragged rows; otherwise ErrInvalidShape.
// Returns ErrOverflow when an entry leaves the int64 range.
// Complexity: O(r·k·c).
func Mul(a, b Matrix) (Matrix, error) {
	r, k, err := dims(a)
	if err != nil {
		return nil, fmt.Errorf("left operand: %w", err)
	}
	bk, c, err := dims(b)
	if err != nil {
		return nil, fmt.Errorf("right operand: %w", err)
	}
	if k != bk {
		return nil, fmt.Errorf("%dx%d times %dx%d: %w", r, k, bk, c, ErrInvalidShape)
	}

	out := make(Matrix, r)
	for i := 0; i < r; i++ {
		out[i] = make([]int64, c)
		for j := 0; j < c; j++ {
			var sum int64
			for x := 0; x < k; x++ {
				p, ok := mulExact(a[i][x], b[x][j])
				if !ok {
					return nil, fmt.Errorf("entry (%d, %d): %w", i, j, ErrOverflow)
				}
				if sum, ok = addExact(sum, p); !ok {
					return nil, fmt.Errorf("entry (%d, %d): %w", i, j, ErrOverflow)
				}
			}
			out[i][j] = sum
		}
	}
	return out, nil
}

// Power returns the k-th ordinary matrix power of w.
//
//	k == 1: a copy of w
//	k == 2: w·w
//	k == 3: Σ_x Σ_y w[i][x]·w[x][y]·w[y][j], summed directly
//	k  > 3: repeated squaring over Mul
//
// Returns ErrInvalidPower for k < 1, ErrInvalidShape for ragged or
// non-square input and ErrOverflow when an entry leaves the int64 range.
func Power(w Matrix, k int) (Matrix, error) {
	if k < 1 {
		return nil, fmt.Errorf("power %d: %w", k, ErrInvalidPower)
	}
	if _, err := Validate(w); err != nil {
		return nil, err
	}

	switch k {
	case 1:
		return Clone(w), nil
	case 2:
		return Mul(w, w)
	case 3:
		return cube(w)
	}
	return powerBySquaring(w, k)
}

// cube sums every length-3 walk i→x→y→j directly instead of chaining two
// products. Every term and partial sum is checked, so a walk whose product
// overflows fails with ErrOverflow even when later terms would cancel it.
// Complexity: O(n⁴).
func cube(w Matrix) (Matrix, error) {
	n := len(w)
	out := Zeros(n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			var sum int64
			for x := 0; x < n; x++ {
				if w[i][x] == 0 {
					continue
				}
				for y := 0; y < n; y++ {
					p, ok := mulExact(w[i][x], w[x][y])
					if ok {
						p, ok = mulExact(p, w[y][j])
					}
					if ok {
						sum, ok = addExact(sum, p)
					}
					if !ok {
						return nil, fmt.Errorf("entry (%d, %d): %w", i, j, ErrOverflow)
					}
				}
			}
			out[i][j] = sum
		}
	}
	return out, nil
}

// mulExact returns a·b and whether it fits in an int64.
func mulExact(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, false
	}
	p := a * b
	return p, p/b == a
}

// addExact returns a+b and whether it fits in an int64.
func addExact(a, b int64) (int64, bool) {
	s := a + b
	if (a > 0 && b > 0 && s < 0) || (a < 0 && b < 0 && s >= 0) {
		return 0, false
	}
	return s, true
}

func powerBySquaring(w Matrix, k int) (Matrix, error) {
	var (
		result Matrix
		base   = Clone(w)
		err    error
	)
	for k > 0 {
		if k&1 == 1 {
			if result == nil {
				result = Clone(base)
			} else if result, err = Mul(result, base); err != nil {
				return nil, err
			}
		}
		k >>= 1
		if k > 0 {
			if base, err = Mul(base, base); err != nil {
				return nil, err
			}
		}
	}
	return result, nil
}

// Derive computes the adjacency matrix and the second and third powers of
// w. On error, including ErrOverflow, no part of the result is returned.
func Derive(w Matrix) (*Derivation, error) {
	adj, err := ToAdjacency(w)
	if err != nil {
		return nil, err
	}
	p2, err := Power(w, 2)
	if err != nil {
		return nil, err
	}
	p3, err := Power(w, 3)
	if err != nil {
		return nil, err
	}
	return &Derivation{
		Weights:   Clone(w),
		Adjacency: adj,
		Power2:    p2,
		Power3:    p3,
	}, nil
}

// dims returns the row and column counts of a rectangular matrix.
func dims(m Matrix) (rows, cols int, err error) {
	rows = len(m)
	if rows == 0 {
		return 0, 0, nil
	}
	cols = len(m[0])
	for i, row := range m {
		if len(row) != cols {
			return 0, 0, fmt.Errorf("row %d has %d columns, want %d: %w", i, len(row), cols, ErrInvalidShape)
		}
	}
	return rows, cols, nil
}
