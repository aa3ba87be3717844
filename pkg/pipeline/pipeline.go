// Package pipeline drives an aggregation run from options to artifacts.
//
// It owns the pieces every entry point shares: option defaults and
// validation, the grow loop that polls density between batches of walks,
// and a cache-aware [Runner] used by the CLI, the terminal viewer and the
// HTTP server.
//
// # Stages
//
//  1. Grow: build the engine and its start ring, then run walks in batches
//     until density exceeds the threshold, the walk budget is spent, or the
//     context is cancelled.
//  2. Render: turn the final snapshot into artifacts (txt, svg, png, json,
//     dot, pdf).
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Radius:    64,
//	    Seed:      7,
//	    Threshold: 0.3,
//	    Formats:   []string{"png"},
//	})
//	png := result.Artifacts["png"]
//
// A run with a fixed seed is reproducible, so its final snapshot is cached
// under a key derived from every simulation option. Seed 0 picks a random
// seed and bypasses the snapshot cache.
package pipeline

import (
	"io"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/dla/pkg/aggregate"
	"github.com/matzehuels/dla/pkg/cache"
	"github.com/matzehuels/dla/pkg/errors"
	"github.com/matzehuels/dla/pkg/render"
)

// Defaults shared by the CLI, the config file and the HTTP server.
const (
	DefaultRadius    = 64
	DefaultEpsilon   = aggregate.DefaultEpsilon
	DefaultThreshold = 0.5
	DefaultBatch     = 100

	// MaxBatch bounds a single batch so cancellation and progress stay responsive.
	MaxBatch = 100_000
)

// DefaultFormats is used when no format is requested.
var DefaultFormats = []string{render.FormatSVG}

// Options configures a run. It is JSON-serializable for HTTP requests.
type Options struct {
	// Simulation
	Radius   int     `json:"radius,omitempty"`
	Epsilon  float64 `json:"epsilon,omitempty"`
	MaxSteps int     `json:"max_steps,omitempty"`
	Seed     uint64  `json:"seed,omitempty"`

	// Driver
	Threshold float64 `json:"threshold,omitempty"`
	Batch     int     `json:"batch,omitempty"`
	MaxWalks  int     `json:"max_walks,omitempty"`
	Refresh   bool    `json:"refresh,omitempty"`

	// Render
	Formats []string `json:"formats,omitempty"`
	Style   string   `json:"style,omitempty"`
	Scale   float64  `json:"scale,omitempty"`

	Logger  *log.Logger    `json:"-"`
	OnBatch func(Progress) `json:"-"`

	validated bool
}

// StopReason says why the grow loop ended.
type StopReason string

const (
	StopThreshold StopReason = "threshold"
	StopMaxWalks  StopReason = "max-walks"
)

// Progress is reported to Options.OnBatch after every batch.
type Progress struct {
	RunID   string
	Walks   int
	Sites   int
	Density float64
	Stats   aggregate.Stats
}

// Run is the outcome of the grow stage.
type Run struct {
	ID       string
	Seed     uint64
	Snapshot aggregate.Snapshot
	Stop     StopReason
}

// Result holds every output of Execute.
type Result struct {
	Run
	SnapshotHash string
	Artifacts    map[string][]byte
	Stats        Stats
	CacheInfo    CacheInfo
}

// Stats records timing for each stage.
type Stats struct {
	GrowTime   time.Duration
	RenderTime time.Duration
}

// CacheInfo records which stages were served from the cache.
type CacheInfo struct {
	GrowHit   bool
	RenderHit bool
}

// ValidateAndSetDefaults prepares opts for a full grow and render run.
// Calling it again is a no-op.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForGrow(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// SetGrowDefaults fills unset simulation and driver options.
func (o *Options) SetGrowDefaults() {
	if o.Radius == 0 {
		o.Radius = DefaultRadius
	}
	if o.Epsilon == 0 {
		o.Epsilon = DefaultEpsilon
	}
	if o.MaxSteps == 0 {
		o.MaxSteps = aggregate.DefaultMaxSteps(o.Radius)
	}
	if o.Threshold == 0 {
		o.Threshold = DefaultThreshold
	}
	if o.Batch == 0 {
		o.Batch = DefaultBatch
	}
	o.setLogger()
}

// ValidateForGrow applies grow defaults and checks the simulation options.
func (o *Options) ValidateForGrow() error {
	o.SetGrowDefaults()
	if err := errors.ValidateRadius(o.Radius); err != nil {
		return err
	}
	if err := errors.ValidateEpsilon(o.Epsilon); err != nil {
		return err
	}
	if err := errors.ValidateThreshold(o.Threshold); err != nil {
		return err
	}
	if o.MaxSteps < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "max_steps must be positive, got %d", o.MaxSteps)
	}
	if o.Batch < 0 || o.Batch > MaxBatch {
		return errors.New(errors.ErrCodeInvalidInput, "batch must be in [1, %d], got %d", MaxBatch, o.Batch)
	}
	if o.MaxWalks < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "max_walks must not be negative, got %d", o.MaxWalks)
	}
	return nil
}

// SetRenderDefaults fills unset render options.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = append([]string(nil), DefaultFormats...)
	}
	if o.Style == "" {
		o.Style = render.DefaultStyle
	}
	if o.Scale == 0 {
		o.Scale = render.DefaultScale
	}
	o.setLogger()
}

// ValidateForRender applies render defaults and checks formats, style and
// scale. When Radius is set and png is requested, the canvas size is checked
// too, so an oversized raster fails before any walk runs.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	if err := render.ValidateFormats(o.Formats); err != nil {
		return err
	}
	ro := o.RenderOptions()
	if err := ro.Validate(); err != nil {
		return err
	}
	if o.Radius > 0 && slices.Contains(o.Formats, render.FormatPNG) {
		return render.ValidateCanvas(2*o.Radius+1, o.Scale)
	}
	return nil
}

// RenderOptions returns the sink options.
func (o *Options) RenderOptions() render.Options {
	return render.Options{Style: o.Style, Scale: o.Scale}
}

// Cacheable reports whether the run is reproducible and may use the snapshot cache.
func (o *Options) Cacheable() bool { return o.Seed != 0 }

// RunKeyOpts returns the cache key inputs of the grow stage.
func (o *Options) RunKeyOpts() cache.RunKeyOpts {
	return cache.RunKeyOpts{
		Radius:    o.Radius,
		Epsilon:   o.Epsilon,
		MaxSteps:  o.MaxSteps,
		Seed:      o.Seed,
		Threshold: o.Threshold,
		Batch:     o.Batch,
		MaxWalks:  o.MaxWalks,
	}
}

// ArtifactKeyOpts returns the cache key inputs of one rendered format.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{Format: format, Style: o.Style, Scale: o.Scale}
}

func (o *Options) setLogger() {
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}
