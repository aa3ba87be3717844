package pipeline

import (
	"testing"

	"github.com/matzehuels/dla/pkg/aggregate"
	"github.com/matzehuels/dla/pkg/errors"
	"github.com/matzehuels/dla/pkg/render"
)

func TestOptionsDefaults(t *testing.T) {
	opts := Options{}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}

	if opts.Radius != DefaultRadius {
		t.Errorf("Radius = %d, want %d", opts.Radius, DefaultRadius)
	}
	if opts.Epsilon != DefaultEpsilon {
		t.Errorf("Epsilon = %v, want %v", opts.Epsilon, DefaultEpsilon)
	}
	if opts.MaxSteps != aggregate.DefaultMaxSteps(DefaultRadius) {
		t.Errorf("MaxSteps = %d, want %d", opts.MaxSteps, aggregate.DefaultMaxSteps(DefaultRadius))
	}
	if opts.Threshold != DefaultThreshold {
		t.Errorf("Threshold = %v, want %v", opts.Threshold, DefaultThreshold)
	}
	if opts.Batch != DefaultBatch {
		t.Errorf("Batch = %d, want %d", opts.Batch, DefaultBatch)
	}
	if len(opts.Formats) != 1 || opts.Formats[0] != render.FormatSVG {
		t.Errorf("Formats = %v, want [svg]", opts.Formats)
	}
	if opts.Style != render.DefaultStyle || opts.Scale != render.DefaultScale {
		t.Errorf("Style/Scale = %q/%v", opts.Style, opts.Scale)
	}
	if opts.Logger == nil {
		t.Error("Logger should default to a discard logger")
	}
	if opts.Seed != 0 {
		t.Error("Seed must stay 0 until the runner resolves it")
	}
}

func TestOptionsValidation(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		code errors.Code
	}{
		{"negative radius", Options{Radius: -1}, errors.ErrCodeInvalidRadius},
		{"huge radius", Options{Radius: errors.MaxRadius + 1}, errors.ErrCodeInvalidRadius},
		{"negative epsilon", Options{Epsilon: -2}, errors.ErrCodeInvalidEpsilon},
		{"threshold above one", Options{Threshold: 1.5}, errors.ErrCodeInvalidThreshold},
		{"negative threshold", Options{Threshold: -0.1}, errors.ErrCodeInvalidThreshold},
		{"negative max steps", Options{MaxSteps: -1}, errors.ErrCodeInvalidInput},
		{"negative batch", Options{Batch: -5}, errors.ErrCodeInvalidInput},
		{"huge batch", Options{Batch: MaxBatch + 1}, errors.ErrCodeInvalidInput},
		{"negative max walks", Options{MaxWalks: -1}, errors.ErrCodeInvalidInput},
		{"bad format", Options{Formats: []string{"gif"}}, errors.ErrCodeInvalidFormat},
		{"bad style", Options{Style: "neon"}, errors.ErrCodeInvalidInput},
		{"bad scale", Options{Scale: 0.25}, errors.ErrCodeInvalidInput},
		{"png canvas too large", Options{Radius: errors.MaxRadius, Formats: []string{"png"}}, errors.ErrCodeInvalidInput},
		{"png canvas too large at scale", Options{Radius: 1024, Scale: render.MaxScale, Formats: []string{"svg", "png"}}, errors.ErrCodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := tt.opts
			err := opts.ValidateAndSetDefaults()
			if !errors.Is(err, tt.code) {
				t.Errorf("error = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestCanvasLimitOnlyAppliesToPNG(t *testing.T) {
	opts := Options{Radius: errors.MaxRadius, Formats: []string{"svg", "txt", "json"}}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Errorf("vector formats at max radius should validate: %v", err)
	}
}

func TestOptionsValidateAndSetDefaultsIdempotent(t *testing.T) {
	opts := Options{Radius: 12, Formats: []string{"png", "txt"}}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatal(err)
	}
	before := opts.RunKeyOpts()
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatal(err)
	}
	if opts.RunKeyOpts() != before {
		t.Error("second call changed options")
	}
}

func TestCacheable(t *testing.T) {
	if (&Options{}).Cacheable() {
		t.Error("seed 0 must not be cacheable")
	}
	if !(&Options{Seed: 1}).Cacheable() {
		t.Error("fixed seed should be cacheable")
	}
}

func TestArtifactKeyOpts(t *testing.T) {
	opts := Options{Style: render.StylePlain, Scale: 8}
	got := opts.ArtifactKeyOpts("png")
	if got.Format != "png" || got.Style != render.StylePlain || got.Scale != 8 {
		t.Errorf("ArtifactKeyOpts = %+v", got)
	}
}
