package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	kerrors "github.com/matzehuels/kgraph/pkg/errors"
	kio "github.com/matzehuels/kgraph/pkg/io"
	"github.com/matzehuels/kgraph/pkg/matrix"
)

// editOpts holds the command-line flags for the edit command.
type editOpts struct {
	size int    // order of a new matrix
	seed uint64 // seed for random fills and layouts
}

// editCommand creates the edit command.
func (c *CLI) editCommand() *cobra.Command {
	var opts editOpts

	cmd := &cobra.Command{
		Use:   "edit [file]",
		Short: "Edit a weight matrix interactively",
		Long: `Open an interactive editor for a weighted adjacency matrix.

Type weights into the grid, fill it with random weights, and switch between
the adjacency matrix, its 2nd and 3rd powers and the graph layout. With a file
argument the matrix is loaded from it (when it exists) and ctrl+s writes it back.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("size") {
				opts.size = c.Config.Matrix.Size
			}
			if err := kerrors.ValidateSize(opts.size); err != nil {
				return err
			}
			var path string
			if len(args) == 1 {
				path = args[0]
			}
			return c.runEdit(cmd.Context(), cmd.OutOrStdout(), path, opts)
		},
	}

	cmd.Flags().IntVarP(&opts.size, "size", "n", 0, "size of a new matrix (default from config, 5)")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "random seed (0 = random)")

	return cmd
}

// loadEditorMatrix reads path, or returns an all-zero matrix of the given
// size when there is no file yet.
func loadEditorMatrix(path string, size int) (matrix.Matrix, error) {
	if path == "" {
		return matrix.Zeros(size), nil
	}
	w, err := kio.ImportMatrix(path)
	if errors.Is(err, fs.ErrNotExist) {
		return matrix.Zeros(size), nil
	}
	if err != nil {
		return nil, err
	}
	if _, err := matrix.Validate(w); err != nil {
		return nil, err
	}
	return w, nil
}

// runEdit runs the editor until the user quits.
func (c *CLI) runEdit(ctx context.Context, stdout io.Writer, path string, opts editOpts) error {
	logger := loggerFromContext(ctx)

	w, err := loadEditorMatrix(path, opts.size)
	if err != nil {
		return kerrors.Classify(err)
	}
	rng, seed := c.newRand(opts.seed)
	logger.Debug("starting editor", "path", path, "size", len(w), "seed", seed)

	m := NewEditorModel(w, path, EditorOptions{
		Random: c.Config.RandomOptions(),
		Scene:  c.Config.SceneOptions(),
		Rand:   rng,
		Save:   kio.ExportText,
	})

	final, err := tea.NewProgram(m, tea.WithContext(ctx)).Run()
	if err != nil {
		return fmt.Errorf("editor: %w", err)
	}

	fm, ok := final.(EditorModel)
	if !ok {
		return nil
	}
	if fm.Err != nil {
		printError(stdout, "%v", fm.Err)
	}
	if fm.Dirty && path != "" {
		printInfo(stdout, "Unsaved changes to %s discarded", path)
	}
	edges, err := matrix.Edges(fm.Weights())
	if err != nil {
		return kerrors.Classify(err)
	}
	printStats(stdout, len(fm.Cells), len(edges), seed)
	return nil
}
