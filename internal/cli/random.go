package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	kerrors "github.com/matzehuels/kgraph/pkg/errors"
	kio "github.com/matzehuels/kgraph/pkg/io"
	"github.com/matzehuels/kgraph/pkg/matrix"
)

// randomOpts holds the command-line flags for the random command.
type randomOpts struct {
	size      int    // matrix order
	min, max  int64  // inclusive weight bounds
	seed      uint64 // 0 = config seed, then a fresh one
	symmetric bool   // mirror the upper triangle
	format    string // text or json
	output    string // output file; stdout when empty
}

// randomCommand creates the random command.
func (c *CLI) randomCommand() *cobra.Command {
	opts := randomOpts{format: formatText}

	cmd := &cobra.Command{
		Use:   "random",
		Short: "Generate a random weight matrix",
		Long: `Generate a random weighted adjacency matrix with a zero diagonal.

Every off-diagonal weight is drawn uniformly from [--min, --max]. With
--symmetric the lower triangle mirrors the upper one. The same --seed always
produces the same matrix.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c.applyRandomDefaults(cmd, &opts)
			if err := kerrors.ValidateSize(opts.size); err != nil {
				return err
			}
			if err := kerrors.ValidateFormat(opts.format, formatText, formatJSON); err != nil {
				return err
			}
			return c.runRandom(cmd.Context(), cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().IntVarP(&opts.size, "size", "n", 0, "matrix size (default from config, 5)")
	cmd.Flags().Int64Var(&opts.min, "min", 0, "minimum weight (default from config, 1)")
	cmd.Flags().Int64Var(&opts.max, "max", 0, "maximum weight (default from config, 100)")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "random seed (0 = random)")
	cmd.Flags().BoolVar(&opts.symmetric, "symmetric", false, "mirror weights across the diagonal")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: text (default), json")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")

	return cmd
}

// applyRandomDefaults fills flags the user did not set from the config.
func (c *CLI) applyRandomDefaults(cmd *cobra.Command, opts *randomOpts) {
	if !cmd.Flags().Changed("size") {
		opts.size = c.Config.Matrix.Size
	}
	if !cmd.Flags().Changed("min") {
		opts.min = c.Config.Matrix.MinWeight
	}
	if !cmd.Flags().Changed("max") {
		opts.max = c.Config.Matrix.MaxWeight
	}
	if !cmd.Flags().Changed("symmetric") {
		opts.symmetric = c.Config.Matrix.Symmetric
	}
}

// runRandom generates the matrix and writes it.
func (c *CLI) runRandom(ctx context.Context, stdout io.Writer, opts randomOpts) error {
	logger := loggerFromContext(ctx)

	rng, seed := c.newRand(opts.seed)
	m, err := matrix.Random(opts.size, matrix.RandomOptions{
		Min:       opts.min,
		Max:       opts.max,
		Symmetric: opts.symmetric,
	}, rng)
	if err != nil {
		return kerrors.Classify(err)
	}
	logger.Info("Generated random matrix", "size", opts.size, "seed", seed)

	doc := &matrix.Derivation{Weights: m}
	if opts.output == "" {
		if opts.format == formatJSON {
			return kio.WriteJSON(stdout, doc)
		}
		return kio.WriteText(stdout, m)
	}

	if err := kerrors.ValidateOutputPath(opts.output); err != nil {
		return err
	}
	if opts.format == formatJSON {
		err = kio.ExportJSON(opts.output, doc)
	} else {
		err = kio.ExportText(opts.output, m)
	}
	if err != nil {
		return err
	}
	printSuccess(stdout, "Wrote %d×%d matrix", opts.size, opts.size)
	printFile(stdout, opts.output)
	return nil
}
