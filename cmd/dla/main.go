// Command dla grows diffusion-limited aggregation clusters.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/matzehuels/dla/internal/cli"
	dlaerrors "github.com/matzehuels/dla/pkg/errors"
)

// Exit statuses.
const (
	exitFailure   = 1
	exitUsage     = 2
	exitInterrupt = 130
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRoot().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(report(err))
	}
}

// newRoot builds the command tree and adds the global --verbose flag ahead
// of the logger setup done by the CLI itself.
func newRoot() *cobra.Command {
	c := cli.New(os.Stderr, cli.LogInfo)
	root := c.RootCommand()
	root.SilenceErrors = true

	verbose := root.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")
	next := root.PersistentPreRun
	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if *verbose {
			c.SetLogLevel(cli.LogDebug)
		}
		if next != nil {
			next(cmd, args)
		}
	}
	return root
}

// report prints err and returns the process exit status for it.
func report(err error) int {
	if errors.Is(err, context.Canceled) {
		return exitInterrupt
	}
	fmt.Fprintln(os.Stderr, "Error:", err)
	if dlaerrors.KindOf(err) == dlaerrors.KindInvalid {
		return exitUsage
	}
	return exitFailure
}
