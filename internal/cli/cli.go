// Package cli implements the kgraph command-line interface.
package cli

import (
	"io"
	"math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/kgraph/pkg/buildinfo"
	"github.com/matzehuels/kgraph/pkg/matrix"
	"github.com/matzehuels/kgraph/pkg/observability"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "kgraph"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config Config

	configFile string
}

// New creates a new CLI instance with a default logger and built-in
// configuration.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: DefaultConfig(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "kgraph derives adjacency and power matrices from weighted graphs",
		Long: `kgraph reads a weighted adjacency matrix, draws it as a graph and derives
its binary adjacency matrix and its 2nd and 3rd matrix powers.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			hooks := observability.NewLogHooks(c.Logger)
			observability.SetPipelineHooks(hooks)
			observability.SetHTTPHooks(hooks)
			return c.loadConfig()
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVarP(&c.configFile, "config", "c", "", "config file (default $XDG_CONFIG_HOME/kgraph/config.toml)")

	// Register all subcommands
	root.AddCommand(c.deriveCommand())
	root.AddCommand(c.randomCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.editCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// loadConfig reads the explicit --config file, or the default location
// when one exists.
func (c *CLI) loadConfig() error {
	path, explicit := c.configFile, c.configFile != ""
	if !explicit {
		p, err := configPath()
		if err != nil {
			c.Logger.Debug("no config location", "err", err)
			return nil
		}
		path = p
	}

	cfg, err := LoadConfig(path, explicit)
	if err != nil {
		return err
	}
	c.Config = cfg
	c.Logger.Debug("configuration loaded", "path", path, "seed", cfg.Seed, "size", cfg.Matrix.Size)
	return nil
}

// =============================================================================
// Options Helpers
// =============================================================================

// newRand returns a generator for seed, falling back to the configured
// seed and then to a fresh random seed. The chosen seed is returned so it
// can be reported and reused.
func (c *CLI) newRand(seed uint64) (*rand.Rand, uint64) {
	if seed == 0 {
		seed = c.Config.Seed
	}
	if seed == 0 {
		seed = rand.Uint64()
	}
	return matrix.NewRand(seed), seed
}
