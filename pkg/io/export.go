package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/matzehuels/kgraph/pkg/matrix"
)

// WriteJSON encodes d as an indented JSON document. Derived matrices that
// are nil are omitted, so a Derivation holding only Weights round-trips
// through [ReadMatrix].
func WriteJSON(w io.Writer, d *matrix.Derivation) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// WriteText writes m as one space-separated row per line.
func WriteText(w io.Writer, m matrix.Matrix) error {
	var b strings.Builder
	for _, row := range m {
		for j, v := range row {
			if j > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(strconv.FormatInt(v, 10))
		}
		b.WriteByte('\n')
	}
	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}

// ExportJSON writes d to a JSON file at path.
func ExportJSON(path string, d *matrix.Derivation) error {
	return writeFile(path, func(w io.Writer) error { return WriteJSON(w, d) })
}

// ExportText writes m to a plain text file at path.
func ExportText(path string, m matrix.Matrix) error {
	return writeFile(path, func(w io.Writer) error { return WriteText(w, m) })
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
