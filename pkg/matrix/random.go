package matrix

import (
	"fmt"
	"math/rand/v2"
)

// Default weight bounds for Random, inclusive.
const (
	DefaultMinWeight = 1
	DefaultMaxWeight = 100
)

// RandomOptions configures Random.
type RandomOptions struct {
	// Min and Max bound each off-diagonal weight, inclusive.
	// When both are zero DefaultMinWeight and DefaultMaxWeight apply.
	Min, Max int64

	// Symmetric mirrors the upper triangle into the lower one so the
	// matrix describes an undirected graph. When false every off-diagonal
	// cell is drawn independently.
	Symmetric bool
}

// NewRand returns a deterministic generator for seed, so the same seed
// always yields the same matrix or layout.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0xdeadbeef))
}

// Random returns an n×n weight matrix with a zero diagonal and every other
// entry drawn uniformly from [opts.Min, opts.Max]. A nil rng uses a
// time-seeded source.
func Random(n int, opts RandomOptions, rng *rand.Rand) (Matrix, error) {
	if n < 0 {
		return nil, fmt.Errorf("size %d: %w", n, ErrInvalidShape)
	}
	lo, hi := opts.Min, opts.Max
	if lo == 0 && hi == 0 {
		lo, hi = DefaultMinWeight, DefaultMaxWeight
	}
	if lo < 0 || lo > hi {
		return nil, fmt.Errorf("[%d, %d]: %w", lo, hi, ErrInvalidRange)
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	m := Zeros(n)
	// hi-lo fits in an int64 because lo >= 0; the +1 may not, so draw over
	// the unsigned span.
	span := uint64(hi-lo) + 1
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			switch {
			case i == j:
			case opts.Symmetric && j < i:
				m[i][j] = m[j][i]
			default:
				m[i][j] = lo + int64(rng.Uint64N(span))
			}
		}
	}
	return m, nil
}
