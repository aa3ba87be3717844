package pipeline

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/matzehuels/dla/pkg/aggregate"
	"github.com/matzehuels/dla/pkg/observability"
)

// ResolveSeed returns seed, or a fresh random non-zero seed when seed is 0.
func ResolveSeed(seed uint64) uint64 {
	for seed == 0 {
		seed = rand.Uint64()
	}
	return seed
}

// NewEngine builds an engine for opts and its start ring of radius
// opts.Radius. opts.Seed must already be resolved.
func NewEngine(opts Options) (*aggregate.Engine, error) {
	if err := opts.ValidateForGrow(); err != nil {
		return nil, err
	}
	e, err := aggregate.New(opts.Radius,
		aggregate.WithSeed(opts.Seed),
		aggregate.WithEpsilon(opts.Epsilon),
		aggregate.WithMaxSteps(opts.MaxSteps),
	)
	if err != nil {
		return nil, err
	}
	if err := e.BuildRing(opts.Radius); err != nil {
		return nil, err
	}
	return e, nil
}

// Step performs up to n walks on e, stopping early if ctx is cancelled.
// The context is checked between walks; a walk in progress always finishes.
// It returns the number of walks performed.
func Step(ctx context.Context, e *aggregate.Engine, n int, runID string) (int, error) {
	hooks := observability.Simulation()
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return i, err
		}
		res, err := e.Walk()
		if err != nil {
			return i, err
		}
		hooks.OnWalk(ctx, runID, res.Outcome.String(), res.Steps, res.Added)
	}
	return n, nil
}

// Grow runs walks on e in batches of opts.Batch, polling density after each
// batch. It stops once density exceeds opts.Threshold or opts.MaxWalks walks
// have been made (when positive). Cancellation is reported as ctx.Err().
func Grow(ctx context.Context, e *aggregate.Engine, opts Options, runID string) (StopReason, error) {
	opts.SetGrowDefaults()
	start := time.Now()
	observability.Simulation().OnRunStart(ctx, runID, e.Radius())

	stop, err := grow(ctx, e, opts, runID)

	observability.Simulation().OnRunComplete(ctx, runID, e.Stats().Walks, e.Density(), time.Since(start), err)
	return stop, err
}

func grow(ctx context.Context, e *aggregate.Engine, opts Options, runID string) (StopReason, error) {
	for {
		if e.Reached(opts.Threshold) {
			return StopThreshold, nil
		}
		n := opts.Batch
		if opts.MaxWalks > 0 {
			left := opts.MaxWalks - e.Stats().Walks
			if left <= 0 {
				return StopMaxWalks, nil
			}
			n = min(n, left)
		}

		if _, err := Step(ctx, e, n, runID); err != nil {
			return "", err
		}

		p := Progress{
			RunID:   runID,
			Walks:   e.Stats().Walks,
			Sites:   e.ClusterLen(),
			Density: e.Density(),
			Stats:   e.Stats(),
		}
		opts.Logger.Debug("batch done", "walks", p.Walks, "sites", p.Sites, "density", p.Density)
		if opts.OnBatch != nil {
			opts.OnBatch(p)
		}
	}
}
