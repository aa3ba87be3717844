package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	dlaio "github.com/matzehuels/dla/pkg/io"
	"github.com/matzehuels/dla/pkg/pipeline"
)

// renderCommand creates the render command, which re-renders a saved run.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		formatsStr string
		output     string
		caching    cacheFlags
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "render [snapshot.json]",
		Short: "Render a saved snapshot",
		Long: `Render a saved snapshot.

The render command takes a snapshot.json file (produced by 'grow -f json' or
'watch --save') and renders it again in other formats or styles. No walks
are made.

Artifacts are cached by snapshot content and render options.`,
		Example: `  dla render dla-r64-s7.json -f png,pdf --scale 8
  dla render run.json -f txt -o -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Formats = parseFormats(formatsStr)
			return c.runRender(cmd.Context(), args[0], opts, caching, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format), base path (multiple), or - for stdout")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), txt, png, json, dot, pdf (comma-separated)")
	cmd.Flags().StringVar(&opts.Style, "style", "", "image style: age (default), plain")
	cmd.Flags().Float64Var(&opts.Scale, "scale", 0, "pixels per lattice site (default 4)")
	caching.register(cmd)
	registerRenderCompletions(cmd)

	return cmd
}

// runRender loads the snapshot and renders it.
func (c *CLI) runRender(ctx context.Context, input string, opts pipeline.Options, caching cacheFlags, output string) error {
	snap, err := dlaio.ImportJSON(input)
	if err != nil {
		return fmt.Errorf("load snapshot %s: %w", input, err)
	}

	opts.Logger = c.Logger
	opts.Radius = snap.Radius
	if err := opts.ValidateForRender(); err != nil {
		return err
	}

	runner, err := c.newRunner(ctx, caching)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %s...", strings.Join(opts.Formats, ", ")))
	spinner.Start()
	prog := newProgress(loggerFromContext(ctx))

	artifacts, cacheHit, err := runner.RenderWithCacheInfo(ctx, snap, opts)
	if err != nil {
		spinner.StopWithError("Render failed")
		return fmt.Errorf("render: %w", err)
	}
	spinner.Stop()
	prog.done("Rendered snapshot", "formats", opts.Formats, "cached", cacheHit)

	if output == "-" {
		return writeStdout(artifacts, opts.Formats)
	}

	printSuccess("Render complete")
	if _, err := writeArtifacts(artifactWriteParams{
		artifacts: artifacts,
		formats:   opts.Formats,
		base:      strings.TrimSuffix(input, filepath.Ext(input)),
		output:    output,
	}); err != nil {
		return err
	}
	printStats(len(snap.Cluster), snap.Stats.Walks, snap.Density, cacheHit)
	return nil
}
