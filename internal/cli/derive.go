package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	kerrors "github.com/matzehuels/kgraph/pkg/errors"
	kio "github.com/matzehuels/kgraph/pkg/io"
	"github.com/matzehuels/kgraph/pkg/matrix"
	"github.com/matzehuels/kgraph/pkg/observability"
)

// Output formats accepted by derive.
const (
	formatTable = "table"
	formatJSON  = "json"
	formatText  = "text"
)

// deriveOpts holds the command-line flags for the derive command.
type deriveOpts struct {
	format    string // output format: table, json or text
	powers    string // comma-separated powers to print: 1 (adjacency), 2, 3
	output    string // output file; stdout when empty
	symmetric bool   // warn when the weight matrix is not symmetric
}

// deriveCommand creates the derive command.
func (c *CLI) deriveCommand() *cobra.Command {
	opts := deriveOpts{format: formatTable, powers: "1,2,3"}

	cmd := &cobra.Command{
		Use:   "derive [file]",
		Short: "Derive the adjacency matrix and its 2nd and 3rd powers",
		Long: `Derive the adjacency matrix and the 2nd and 3rd matrix powers of a weighted
adjacency matrix.

The input may be JSON ({"weights": [[...]]} or a bare array of rows) or plain
text with one row per line. Reads stdin when no file is given or the file is "-".

--power selects what is printed: 1 is the binary adjacency matrix, 2 and 3 are
the ordinary matrix powers W·W and W·W·W.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := kerrors.ValidateFormat(opts.format, formatTable, formatJSON, formatText); err != nil {
				return err
			}
			input := "-"
			if len(args) == 1 {
				input = args[0]
			}
			return c.runDerive(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), input, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: table (default), json, text")
	cmd.Flags().StringVarP(&opts.powers, "power", "p", opts.powers, "outputs to print: 1 (adjacency), 2, 3 (comma-separated)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&opts.symmetric, "check-symmetric", false, "warn when the matrix is not symmetric")

	return cmd
}

// parsePowers parses the --power flag into a list of powers.
func parsePowers(s string) ([]int, error) {
	var powers []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		k, err := strconv.Atoi(part)
		if err != nil {
			return nil, kerrors.New(kerrors.ErrCodeInvalidPower, "invalid power %q", part)
		}
		powers = append(powers, k)
	}
	if err := kerrors.ValidatePowers(powers); err != nil {
		return nil, err
	}
	return powers, nil
}

// readInput reads a matrix from path, or from stdin when path is "-".
func readInput(stdin io.Reader, path string) (matrix.Matrix, error) {
	if path == "-" {
		return kio.ReadMatrix(stdin)
	}
	return kio.ImportMatrix(path)
}

// runDerive reads the matrix, derives every requested output and writes it
// in the requested format.
func (c *CLI) runDerive(ctx context.Context, stdin io.Reader, stdout io.Writer, input string, opts deriveOpts) error {
	logger := loggerFromContext(ctx)

	powers, err := parsePowers(opts.powers)
	if err != nil {
		return err
	}

	w, err := readInput(stdin, input)
	if err != nil {
		return kerrors.Classify(err)
	}
	logger.Debug("read matrix", "input", input, "rows", len(w))

	prog := newProgress(logger)
	d, err := matrix.Derive(w)
	observability.Pipeline().OnDerive(ctx, len(w), time.Since(prog.start), err)
	if err != nil {
		return kerrors.Classify(err)
	}
	prog.done(fmt.Sprintf("Derived %d×%d matrices", len(w), len(w)))

	if opts.symmetric && !isSymmetric(w) {
		logger.Warn("weight matrix is not symmetric; the graph view reads only the upper triangle")
	}

	d = selectPowers(d, powers)

	if opts.output == "" {
		return writeDerivation(stdout, d, opts.format)
	}
	if err := kerrors.ValidateOutputPath(opts.output); err != nil {
		return err
	}
	if err := writeDerivationFile(opts.output, d, opts.format); err != nil {
		return err
	}
	printFile(stdout, opts.output)
	return nil
}

// writeDerivationFile writes d to path, reporting a failed close so a short
// write to disk is not mistaken for success.
func writeDerivationFile(path string, d *matrix.Derivation, format string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := writeDerivation(f, d, format); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

func writeDerivation(w io.Writer, d *matrix.Derivation, format string) error {
	switch format {
	case formatJSON:
		return kio.WriteJSON(w, d)
	case formatText:
		return writeDerivationText(w, d)
	}
	printDerivation(w, d)
	return nil
}

// selectPowers drops the derived matrices that were not requested.
func selectPowers(d *matrix.Derivation, powers []int) *matrix.Derivation {
	out := &matrix.Derivation{Weights: d.Weights}
	for _, k := range powers {
		switch k {
		case 1:
			out.Adjacency = d.Adjacency
		case 2:
			out.Power2 = d.Power2
		case 3:
			out.Power3 = d.Power3
		}
	}
	return out
}

// derivedSections lists the derived matrices of d with their titles, in
// display order, skipping the ones not computed.
func derivedSections(d *matrix.Derivation) []section {
	var out []section
	if d.Adjacency != nil {
		out = append(out, section{"Adjacency", d.Adjacency})
	}
	if d.Power2 != nil {
		out = append(out, section{"k²", d.Power2})
	}
	if d.Power3 != nil {
		out = append(out, section{"k³", d.Power3})
	}
	return out
}

type section struct {
	title string
	m     matrix.Matrix
}

func printDerivation(w io.Writer, d *matrix.Derivation) {
	for i, s := range derivedSections(d) {
		if i > 0 {
			fmt.Fprintln(w)
		}
		printMatrix(w, s.title, s.m)
	}
}

func writeDerivationText(w io.Writer, d *matrix.Derivation) error {
	for i, s := range derivedSections(d) {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "# %s\n", s.title)
		if err := kio.WriteText(w, s.m); err != nil {
			return err
		}
	}
	return nil
}

func isSymmetric(m matrix.Matrix) bool {
	for i := range m {
		for j := i + 1; j < len(m); j++ {
			if m[i][j] != m[j][i] {
				return false
			}
		}
	}
	return true
}
