package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/kgraph/internal/api"
)

// shutdownTimeout bounds how long in-flight requests may run after the
// server is asked to stop.
const shutdownTimeout = 5 * time.Second

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr string
	seed uint64
}

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	var opts serveOpts

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve derivations and renderings over HTTP",
		Long: `Start an HTTP server exposing the derivations and graph rendering.

Endpoints:
  GET  /health
  POST /api/v1/derive   {"weights": [[...]]}
  POST /api/v1/scene    {"weights": [[...]]}  ?seed=N&select=i-j
  POST /api/v1/render   {"weights": [[...]]}  ?seed=N&select=i-j&detailed=true

The server stops gracefully on interrupt.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("addr") {
				opts.addr = c.Config.Server.Addr
			}
			if !cmd.Flags().Changed("seed") {
				opts.seed = c.Config.Seed
			}
			ln, err := net.Listen("tcp", opts.addr)
			if err != nil {
				return fmt.Errorf("listen %s: %w", opts.addr, err)
			}
			return c.runServe(cmd.Context(), cmd.OutOrStdout(), ln, opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", "", "listen address (default from config, :8080)")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "default layout seed (0 = random per request)")

	return cmd
}

// runServe serves on ln until ctx is cancelled.
func (c *CLI) runServe(ctx context.Context, stdout io.Writer, ln net.Listener, opts serveOpts) error {
	logger := loggerFromContext(ctx)

	srv := &http.Server{
		Handler: api.New(logger,
			api.WithSceneOptions(c.Config.SceneOptions()),
			api.WithSeed(opts.seed),
			api.WithAllowedOrigins(c.Config.Server.AllowedOrigins...),
		).Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	printInfo(stdout, "Listening on %s", ln.Addr())

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	printSuccess(stdout, "Server stopped")
	return nil
}
