package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/dla/pkg/buildinfo"
	"github.com/matzehuels/dla/pkg/cache"
	"github.com/matzehuels/dla/pkg/config"
	"github.com/matzehuels/dla/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "dla"

	// redisPrefix namespaces keys when several tools share one redis.
	redisPrefix = appName + ":"
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
}

// New creates a new CLI instance. DLA_LOG_LEVEL, when set, replaces level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, envLevel(level))}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "dla grows diffusion-limited aggregation clusters",
		Long: `dla grows diffusion-limited aggregation clusters on a square lattice.

Random walkers start on a ring around the seed and wander until they touch
the cluster, where they stick. Runs stop once the cluster covers the
requested fraction of the disk.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.growCommand())
	root.AddCommand(c.watchCommand())
	root.AddCommand(c.ringCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// cacheFlags selects the cache backend of a command.
type cacheFlags struct {
	noCache   bool
	redisAddr string
	redisDB   int
}

func (f *cacheFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.noCache, "no-cache", false, "disable caching")
	cmd.Flags().StringVar(&f.redisAddr, "redis-addr", "", "use a redis cache at host:port instead of the local cache directory")
	cmd.Flags().IntVar(&f.redisDB, "redis-db", 0, "redis database number")
}

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(ctx context.Context, f cacheFlags) (*pipeline.Runner, error) {
	cc, err := c.newCache(ctx, f)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(cc, nil, c.Logger), nil
}

func (c *CLI) newCache(ctx context.Context, f cacheFlags) (cache.Cache, error) {
	if f.noCache {
		return cache.NewNullCache(), nil
	}
	if f.redisAddr != "" {
		rc, err := cache.NewRedisCache(ctx, cache.RedisConfig{
			Addr:     f.redisAddr,
			Password: os.Getenv("DLA_REDIS_PASSWORD"),
			DB:       f.redisDB,
			Prefix:   redisPrefix,
		})
		if err != nil {
			return nil, err
		}
		c.Logger.Debug("using redis cache", "addr", f.redisAddr, "db", f.redisDB)
		return rc, nil
	}
	dir, err := cacheDir()
	if err != nil {
		c.Logger.Warn("no cache directory, caching disabled", "err", err)
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/dla/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// =============================================================================
// Options Helpers
// =============================================================================

// simFlags binds the simulation, driver and render flags shared by grow,
// watch and serve. Values reach pipeline.Options only when the flag was set
// explicitly, so config file values and pipeline defaults survive.
type simFlags struct {
	config  string
	formats string
	opts    pipeline.Options
}

func (f *simFlags) register(cmd *cobra.Command, withRender bool) {
	fl := cmd.Flags()
	fl.StringVarP(&f.config, "config", "c", "", "TOML settings file")
	fl.IntVarP(&f.opts.Radius, "radius", "r", pipeline.DefaultRadius, "disk radius in lattice units")
	fl.Float64Var(&f.opts.Epsilon, "epsilon", pipeline.DefaultEpsilon, "half-width of the start ring")
	fl.IntVar(&f.opts.MaxSteps, "max-steps", 0, "per-walk step bound (0: radius-dependent default)")
	fl.Uint64Var(&f.opts.Seed, "seed", 0, "random seed (0: random, uncached)")
	fl.Float64VarP(&f.opts.Threshold, "threshold", "t", pipeline.DefaultThreshold, "stop once density exceeds this fraction")
	fl.IntVar(&f.opts.Batch, "batch", pipeline.DefaultBatch, "walks between density checks")
	fl.IntVar(&f.opts.MaxWalks, "max-walks", 0, "stop after this many walks (0: no limit)")
	if withRender {
		fl.StringVarP(&f.formats, "format", "f", "", "output format(s): svg (default), txt, png, json, dot, pdf (comma-separated)")
		fl.StringVar(&f.opts.Style, "style", "", "image style: age (default), plain")
		fl.Float64Var(&f.opts.Scale, "scale", 0, "pixels per lattice site (default 4)")
		registerRenderCompletions(cmd)
	}
}

// options merges the config file and explicitly set flags.
func (f *simFlags) options(cmd *cobra.Command) (pipeline.Options, error) {
	var opts pipeline.Options
	if f.config != "" {
		cfg, err := config.Load(f.config)
		if err != nil {
			return opts, err
		}
		cfg.Apply(&opts)
	}

	fl := cmd.Flags()
	changed := func(name string) bool {
		return fl.Lookup(name) != nil && fl.Changed(name)
	}
	if changed("radius") {
		opts.Radius = f.opts.Radius
	}
	if changed("epsilon") {
		opts.Epsilon = f.opts.Epsilon
	}
	if changed("max-steps") {
		opts.MaxSteps = f.opts.MaxSteps
	}
	if changed("seed") {
		opts.Seed = f.opts.Seed
	}
	if changed("threshold") {
		opts.Threshold = f.opts.Threshold
	}
	if changed("batch") {
		opts.Batch = f.opts.Batch
	}
	if changed("max-walks") {
		opts.MaxWalks = f.opts.MaxWalks
	}
	if changed("format") {
		opts.Formats = parseFormats(f.formats)
	}
	if changed("style") {
		opts.Style = f.opts.Style
	}
	if changed("scale") {
		opts.Scale = f.opts.Scale
	}
	return opts, nil
}

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if strings.TrimSpace(s) == "" {
		return append([]string(nil), pipeline.DefaultFormats...)
	}
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.ToLower(strings.TrimSpace(f)); f != "" {
			out = append(out, f)
		}
	}
	return out
}
