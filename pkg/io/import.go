package io

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/matzehuels/kgraph/pkg/matrix"
)

// ErrMalformed is returned when a JSON matrix document cannot be decoded.
var ErrMalformed = errors.New("io: malformed matrix document")

// ReadMatrix decodes a weight matrix from r in any of the package's input
// formats. An input with no rows yields an empty matrix. ReadMatrix does
// not close r.
func ReadMatrix(r io.Reader) (matrix.Matrix, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}

	trimmed := bytes.TrimSpace(data)
	switch {
	case len(trimmed) == 0:
		return matrix.Matrix{}, nil
	case trimmed[0] == '{':
		var doc matrix.Derivation
		if err := json.Unmarshal(trimmed, &doc); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
		}
		if doc.Weights == nil {
			return matrix.Matrix{}, nil
		}
		return doc.Weights, nil
	case trimmed[0] == '[':
		var m matrix.Matrix
		if err := json.Unmarshal(trimmed, &m); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
		}
		return m, nil
	}
	return matrix.ParseCells(readCells(trimmed)), nil
}

// readCells splits text into rows of cells, skipping blank and comment
// lines.
func readCells(data []byte) [][]string {
	var cells [][]string
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		cells = append(cells, strings.FieldsFunc(line, func(r rune) bool {
			return r == ',' || r == ';' || r == ' ' || r == '\t'
		}))
	}
	return cells
}

// ImportMatrix reads a weight matrix from the file at path.
// This is a convenience wrapper around [ReadMatrix] for file-based input.
func ImportMatrix(path string) (matrix.Matrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadMatrix(f)
}
