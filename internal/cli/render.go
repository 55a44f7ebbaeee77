package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	kerrors "github.com/matzehuels/kgraph/pkg/errors"
	"github.com/matzehuels/kgraph/pkg/observability"
	"github.com/matzehuels/kgraph/pkg/render/nodelink"
	"github.com/matzehuels/kgraph/pkg/scene"
)

// Render output formats.
const (
	formatSVG = "svg"
	formatPNG = "png"
	formatDOT = "dot"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output   string  // output file; derived from the input name when empty
	format   string  // svg, png, dot or json (the scene itself)
	seed     uint64  // layout seed
	width    float64 // canvas width in pixels
	height   float64 // canvas height in pixels
	detailed bool    // show node coordinates in labels
	selected string  // edge to highlight, "i-j" with 1-based node numbers
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{format: formatSVG}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Draw the weight matrix as a graph",
		Long: `Draw the weight matrix as a graph.

One node is placed per matrix row at a random position on the canvas and one
undirected edge, labelled with its weight, is drawn for every non-zero entry
above the diagonal. --select highlights an edge and its endpoints, e.g.
--select 1-3 for the edge between Node 1 and Node 3.

Formats: svg (default), png, dot (Graphviz source) and json (the scene with
node positions and edge geometry).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := kerrors.ValidateFormat(opts.format, formatSVG, formatPNG, formatDOT, formatJSON); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: input name with format extension)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: svg (default), png, dot, json")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "layout seed (0 = random)")
	cmd.Flags().Float64Var(&opts.width, "width", 0, "canvas width (default from config, 800)")
	cmd.Flags().Float64Var(&opts.height, "height", 0, "canvas height (default from config, 600)")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show node coordinates in labels")
	cmd.Flags().StringVar(&opts.selected, "select", "", "highlight the edge between two nodes, e.g. 1-3")

	return cmd
}

// outputPath derives the output file from the input path and format when
// no explicit output was given.
func outputPath(output, input, format string) string {
	if output != "" {
		return output
	}
	if input == "-" {
		return "graph." + format
	}
	return strings.TrimSuffix(input, filepath.Ext(input)) + "." + format
}

// runRender builds the scene and writes it in the requested format.
func (c *CLI) runRender(ctx context.Context, stdin io.Reader, stdout, stderr io.Writer, input string, opts renderOpts) error {
	logger := loggerFromContext(ctx)

	w, err := readInput(stdin, input)
	if err != nil {
		return kerrors.Classify(err)
	}

	sceneOpts := c.Config.SceneOptions()
	if opts.width > 0 {
		sceneOpts.Width = opts.width
	}
	if opts.height > 0 {
		sceneOpts.Height = opts.height
	}

	rng, seed := c.newRand(opts.seed)
	start := time.Now()
	s, err := scene.Build(w, sceneOpts, rng)
	if err != nil {
		observability.Pipeline().OnLayout(ctx, len(w), 0, time.Since(start), err)
		return kerrors.Classify(err)
	}
	observability.Pipeline().OnLayout(ctx, len(s.Nodes), len(s.Edges), time.Since(start), nil)
	logger.Infof("Laid out graph: %d nodes, %d edges", len(s.Nodes), len(s.Edges))

	if opts.selected != "" {
		k, err := s.SelectRef(opts.selected)
		if err != nil {
			return kerrors.Classify(err)
		}
		e := s.Edges[k]
		logger.Debug("selected edge", "from", e.From+1, "to", e.To+1, "weight", e.Weight)
	}

	sp := startSpinner(ctx, stderr, "Rendering "+opts.format+"...")
	start = time.Now()
	data, err := renderScene(s, opts)
	sp.stop()
	observability.Pipeline().OnRender(ctx, opts.format, len(data), time.Since(start), err)
	if err != nil {
		return err
	}

	path := outputPath(opts.output, input, opts.format)
	if err := kerrors.ValidateOutputPath(path); err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	printSuccess(stdout, "Rendered %s", opts.format)
	printStats(stdout, len(s.Nodes), len(s.Edges), seed)
	printFile(stdout, path)
	return nil
}

// renderScene encodes s in opts.format.
func renderScene(s *scene.Scene, opts renderOpts) ([]byte, error) {
	if opts.format == formatJSON {
		var buf strings.Builder
		if err := writeSceneJSON(&buf, s); err != nil {
			return nil, err
		}
		return []byte(buf.String()), nil
	}

	dot := nodelink.ToDOT(s, nodelink.Options{Detailed: opts.detailed})
	switch opts.format {
	case formatDOT:
		return []byte(dot), nil
	case formatPNG:
		return nodelink.RenderPNG(dot)
	}
	return nodelink.RenderSVG(dot)
}

// writeSceneJSON encodes s as indented JSON.
func writeSceneJSON(w io.Writer, s *scene.Scene) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("encode scene: %w", err)
	}
	return nil
}
