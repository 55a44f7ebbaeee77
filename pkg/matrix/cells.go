package matrix

import (
	"strconv"
	"strings"
)

// ParseCells converts editable table text into a square weight matrix.
//
// Sanitization rules, applied so the core never sees malformed input:
//   - a cell that is not a plain string of decimal digits (after trimming
//     surrounding spaces) becomes 0, as does a value that overflows int64
//   - the grid is squared to max(rows, widest row) by padding with 0
//   - the diagonal is forced to 0 (no self-loops)
//
// ParseCells never fails; an empty table yields an empty matrix.
func ParseCells(cells [][]string) Matrix {
	n := len(cells)
	for _, row := range cells {
		n = max(n, len(row))
	}

	m := Zeros(n)
	for i, row := range cells {
		for j, text := range row {
			if i == j {
				continue
			}
			m[i][j] = parseCell(text)
		}
	}
	return m
}

func parseCell(text string) int64 {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0
	}
	for _, r := range text {
		if r < '0' || r > '9' {
			return 0
		}
	}
	v, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return 0
	}
	return v
}

// Format renders every entry of m as decimal text, one cell per entry.
func Format(m Matrix) [][]string {
	out := make([][]string, len(m))
	for i, row := range m {
		out[i] = make([]string, len(row))
		for j, v := range row {
			out[i][j] = strconv.FormatInt(v, 10)
		}
	}
	return out
}
