package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/dla/pkg/aggregate"
	"github.com/matzehuels/dla/pkg/cache"
	dlaio "github.com/matzehuels/dla/pkg/io"
	"github.com/matzehuels/dla/pkg/observability"
	"github.com/matzehuels/dla/pkg/render"
)

// Runner executes runs with caching. It holds no per-run state, so one
// Runner may serve concurrent runs with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner returns a runner. A nil cache disables caching, a nil keyer
// selects DefaultKeyer and a nil logger selects log.Default().
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Keyer: keyer, Logger: logger}
}

// Execute grows a cluster and renders it in every requested format.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{}

	growStart := time.Now()
	run, hit, err := r.GrowWithCacheInfo(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("grow: %w", err)
	}
	result.Run = *run
	result.Stats.GrowTime = time.Since(growStart)
	result.CacheInfo.GrowHit = hit

	r.Logger.Info("grew cluster",
		"run", run.ID,
		"sites", len(run.Snapshot.Cluster),
		"walks", run.Snapshot.Stats.Walks,
		"density", fmt.Sprintf("%.4f", run.Snapshot.Density),
		"stop", run.Stop,
		"duration", result.Stats.GrowTime)

	renderStart := time.Now()
	artifacts, hash, renderHit, err := r.render(ctx, run.Snapshot, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.SnapshotHash = hash
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// GrowWithCacheInfo runs the grow stage and reports whether the snapshot
// came from the cache. Random-seed runs never touch the cache; Refresh skips
// the lookup but still stores the new snapshot.
func (r *Runner) GrowWithCacheInfo(ctx context.Context, opts Options) (*Run, bool, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForGrow(); err != nil {
		return nil, false, err
	}

	cacheable := opts.Cacheable()
	opts.Seed = ResolveSeed(opts.Seed)
	runID := uuid.NewString()
	key := r.Keyer.RunKey(opts.RunKeyOpts())

	if cacheable && !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			if snap, err := dlaio.UnmarshalJSON(data); err == nil {
				observability.Cache().OnCacheHit(ctx, "run")
				return &Run{ID: runID, Seed: opts.Seed, Snapshot: snap, Stop: stopReason(snap, opts)}, true, nil
			}
		} else if err != nil {
			r.Logger.Warn("cache lookup failed", "err", err)
		}
		observability.Cache().OnCacheMiss(ctx, "run")
	}

	e, err := NewEngine(opts)
	if err != nil {
		return nil, false, err
	}
	r.Logger.Debug("start ring built", "run", runID, "seed", opts.Seed, "ring", len(e.Ring()), "max_steps", e.MaxSteps())

	stop, err := Grow(ctx, e, opts, runID)
	if err != nil {
		return nil, false, err
	}
	snap := e.Snapshot()

	if cacheable {
		if data, err := dlaio.MarshalJSON(snap); err == nil {
			if err := r.Cache.Set(ctx, key, data, cache.TTLRun); err == nil {
				observability.Cache().OnCacheSet(ctx, "run", len(data))
			} else {
				r.Logger.Warn("cache write failed", "err", err)
			}
		}
	}

	return &Run{ID: runID, Seed: opts.Seed, Snapshot: snap, Stop: stop}, false, nil
}

// Grow is GrowWithCacheInfo without the cache flag.
func (r *Runner) Grow(ctx context.Context, opts Options) (*Run, error) {
	run, _, err := r.GrowWithCacheInfo(ctx, opts)
	return run, err
}

// RenderWithCacheInfo renders snap in every format of opts and reports
// whether all artifacts came from the cache.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, snap aggregate.Snapshot, opts Options) (map[string][]byte, bool, error) {
	artifacts, _, hit, err := r.render(ctx, snap, opts)
	return artifacts, hit, err
}

// Render is RenderWithCacheInfo without the cache flag.
func (r *Runner) Render(ctx context.Context, snap aggregate.Snapshot, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, snap, opts)
	return artifacts, err
}

func (r *Runner) render(ctx context.Context, snap aggregate.Snapshot, opts Options) (map[string][]byte, string, bool, error) {
	opts.Radius = snap.Radius
	if err := opts.ValidateForRender(); err != nil {
		return nil, "", false, err
	}

	data, err := dlaio.MarshalJSON(snap)
	if err != nil {
		return nil, "", false, fmt.Errorf("serialize snapshot for cache key: %w", err)
	}
	hash := cache.Hash(data)

	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		key := r.Keyer.ArtifactKey(hash, opts.ArtifactKeyOpts(format))
		data, hit, err := r.Cache.Get(ctx, key)
		if err != nil || !hit {
			break
		}
		artifacts[format] = data
	}
	if len(artifacts) == len(opts.Formats) {
		observability.Cache().OnCacheHit(ctx, "artifact")
		return artifacts, hash, true, nil
	}
	observability.Cache().OnCacheMiss(ctx, "artifact")

	rendered, err := render.RenderAll(snap, opts.Formats, opts.RenderOptions())
	if err != nil {
		return nil, "", false, err
	}
	for format, data := range rendered {
		key := r.Keyer.ArtifactKey(hash, opts.ArtifactKeyOpts(format))
		if err := r.Cache.Set(ctx, key, data, cache.TTLArtifact); err == nil {
			observability.Cache().OnCacheSet(ctx, "artifact", len(data))
		}
	}
	return rendered, hash, false, nil
}

// Close releases the cache.
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

// stopReason reconstructs why a cached run ended.
func stopReason(snap aggregate.Snapshot, opts Options) StopReason {
	if snap.Density > opts.Threshold {
		return StopThreshold
	}
	return StopMaxWalks
}
