package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/matzehuels/dla/internal/server"
	"github.com/matzehuels/dla/pkg/pipeline"
)

const defaultAddr = "localhost:8080"

// serveCommand creates the serve command, an HTTP driver for one engine.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		flags   simFlags
		caching cacheFlags
		addr    string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve an aggregation engine over HTTP",
		Long: `Serve an aggregation engine over HTTP.

Clients advance the run with POST /walks, poll GET /density and fetch the
current cluster from GET /grid or GET /snapshot.{svg,png,txt,json,dot,pdf}.
POST /reset starts a new run. Rendered snapshots are cached locally, or in
redis with --redis-addr so several servers can share artifacts.`,
		Example: `  dla serve -r 128 --addr :8080
  curl -X POST 'localhost:8080/walks?n=500'
  curl localhost:8080/snapshot.png -o cluster.png`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.options(cmd)
			if err != nil {
				return err
			}
			return c.runServe(cmd.Context(), opts, caching, addr)
		},
	}

	flags.register(cmd, true)
	caching.register(cmd)
	cmd.Flags().StringVar(&addr, "addr", defaultAddr, "listen address")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, opts pipeline.Options, caching cacheFlags, addr string) error {
	runner, err := c.newRunner(ctx, caching)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	srv, err := server.New(opts, runner, c.Logger)
	if err != nil {
		return err
	}

	printInfo("Serving on %s", StyleLink.Render("http://"+addr))
	printNextStep("Grow", fmt.Sprintf("curl -X POST 'http://%s/walks?grow=1'", addr))

	err = srv.ListenAndServe(ctx, addr)
	switch {
	case err == nil, errors.Is(err, http.ErrServerClosed), errors.Is(err, context.Canceled):
		printSuccess("Server stopped")
		return nil
	default:
		return err
	}
}
