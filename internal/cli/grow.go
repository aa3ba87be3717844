package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/dla/pkg/pipeline"
)

// growCommand creates the grow command, the batch driver of a run.
func (c *CLI) growCommand() *cobra.Command {
	var (
		flags   simFlags
		caching cacheFlags
		output  string
		refresh bool
	)

	cmd := &cobra.Command{
		Use:   "grow",
		Short: "Grow a cluster until it reaches the density threshold",
		Long: `Grow a cluster until it reaches the density threshold.

Walks run in batches; density is checked after each batch and the run stops
once it exceeds --threshold or --max-walks walks have been made. The final
cluster is written in every requested format.

Runs with a fixed --seed are reproducible and cached locally (or in redis
with --redis-addr). Use --refresh to grow again and overwrite the cache.`,
		Example: `  dla grow -r 96 --seed 7 -f svg,png
  dla grow -c dla.toml -o out/cluster
  dla grow -r 32 -t 0.3 -f txt -o -`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.options(cmd)
			if err != nil {
				return err
			}
			opts.Refresh = refresh
			return c.runGrow(cmd.Context(), opts, caching, output)
		},
	}

	flags.register(cmd, true)
	caching.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format), base path (multiple), or - for stdout")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "ignore cached runs and grow again")

	return cmd
}

// runGrow executes the run, then writes its artifacts.
func (c *CLI) runGrow(ctx context.Context, opts pipeline.Options, caching cacheFlags, output string) error {
	opts.Logger = c.Logger
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return err
	}

	runner, err := c.newRunner(ctx, caching)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Growing r=%d to density %.2f...", opts.Radius, opts.Threshold))
	opts.OnBatch = func(p pipeline.Progress) {
		spinner.Update(fmt.Sprintf("Growing r=%d · %d sites · density %.3f/%.2f",
			opts.Radius, p.Sites, p.Density, opts.Threshold))
	}
	spinner.Start()

	prog := newProgress(loggerFromContext(ctx))
	result, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Run failed")
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return err
	}
	spinner.Stop()
	prog.done("Grew cluster", "sites", len(result.Snapshot.Cluster), "stop", result.Stop)

	if output == "-" {
		return writeStdout(result.Artifacts, opts.Formats)
	}

	if result.Stop == pipeline.StopMaxWalks {
		printWarning("Stopped after %d walks below threshold %.2f", result.Snapshot.Stats.Walks, opts.Threshold)
	} else {
		printSuccess("Run complete")
	}
	params := artifactWriteParams{
		artifacts: result.Artifacts,
		formats:   opts.Formats,
		base:      fmt.Sprintf("dla-r%d-s%d", opts.Radius, result.Seed),
		output:    output,
	}
	if _, err := writeArtifacts(params); err != nil {
		return err
	}
	printStats(len(result.Snapshot.Cluster), result.Snapshot.Stats.Walks, result.Snapshot.Density, result.CacheInfo.GrowHit)
	printWalkStats(result.Snapshot.Stats)
	printDetail("seed %d · run %s", result.Seed, result.ID)

	if path, ok := artifactPaths(params)["json"]; ok {
		printNewline()
		printNextStep("Re-render", appName+" render "+path+" -f png")
	}
	return nil
}

// writeStdout writes a single artifact to standard output.
func writeStdout(artifacts map[string][]byte, formats []string) error {
	if len(formats) != 1 {
		return fmt.Errorf("-o - needs exactly one format, got %d", len(formats))
	}
	_, err := stdout.Write(artifacts[formats[0]])
	return err
}
