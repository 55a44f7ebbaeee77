package matrix

import "errors"

// Every message is prefixed with "matrix: " so log lines are easy to grep.
// Callers match these with errors.Is; wrap with fmt.Errorf("ctx: %w", ErrX)
// when extra context is needed.
var (
	// ErrInvalidShape is returned when a matrix is ragged (rows of differing
	// length) or not square, or when two operands cannot be multiplied.
	ErrInvalidShape = errors.New("matrix: invalid matrix shape")

	// ErrInvalidPower is returned when a power below 1 is requested.
	ErrInvalidPower = errors.New("matrix: power must be >= 1")

	// ErrInvalidRange is returned by Random when Min > Max or Min < 0.
	ErrInvalidRange = errors.New("matrix: invalid weight range")

	// ErrOverflow is returned when a product, or a partial sum of products,
	// does not fit in an int64.
	ErrOverflow = errors.New("matrix: int64 overflow")
)
