// Package config loads dla settings from a TOML file.
//
//	[simulation]
//	radius    = 96
//	epsilon   = 2.2
//	max_steps = 0      # 0 selects the radius-dependent default
//	seed      = 7      # 0 picks a random seed
//
//	[driver]
//	threshold = 0.4
//	batch     = 200
//	max_walks = 0      # 0 means no limit
//
//	[render]
//	formats = ["svg", "png"]
//	style   = "age"
//	scale   = 4
//
// Every key is optional. Unknown keys are rejected so typos surface instead
// of silently falling back to defaults. Command-line flags override file
// values; see [Config.Apply].
package config

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/dla/pkg/errors"
	"github.com/matzehuels/dla/pkg/pipeline"
)

// Config mirrors the file layout.
type Config struct {
	Simulation Simulation `toml:"simulation"`
	Driver     Driver     `toml:"driver"`
	Render     Render     `toml:"render"`
}

// Simulation holds engine settings.
type Simulation struct {
	Radius   int     `toml:"radius"`
	Epsilon  float64 `toml:"epsilon"`
	MaxSteps int     `toml:"max_steps"`
	Seed     uint64  `toml:"seed"`
}

// Driver holds grow loop settings.
type Driver struct {
	Threshold float64 `toml:"threshold"`
	Batch     int     `toml:"batch"`
	MaxWalks  int     `toml:"max_walks"`
}

// Render holds artifact settings.
type Render struct {
	Formats []string `toml:"formats"`
	Style   string   `toml:"style"`
	Scale   float64  `toml:"scale"`
}

// Load reads and validates the file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "config %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "read config %s", path)
	}
	cfg, err := Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes and validates TOML text.
func Parse(text string) (*Config, error) {
	var cfg Config
	md, err := toml.Decode(text, &cfg)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		slices.Sort(keys)
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown keys: %s", strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the file values by running them through pipeline
// validation, so the file accepts exactly what the flags accept.
func (c *Config) Validate() error {
	var opts pipeline.Options
	c.Apply(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "invalid settings")
	}
	return nil
}

// Apply copies every set value into opts, leaving the others untouched.
// Callers apply the file first and explicit flags afterwards.
func (c *Config) Apply(opts *pipeline.Options) {
	s, d, r := c.Simulation, c.Driver, c.Render
	setIf(&opts.Radius, s.Radius)
	setIf(&opts.Epsilon, s.Epsilon)
	setIf(&opts.MaxSteps, s.MaxSteps)
	setIf(&opts.Seed, s.Seed)
	setIf(&opts.Threshold, d.Threshold)
	setIf(&opts.Batch, d.Batch)
	setIf(&opts.MaxWalks, d.MaxWalks)
	setIf(&opts.Style, r.Style)
	setIf(&opts.Scale, r.Scale)
	if len(r.Formats) > 0 {
		opts.Formats = append([]string(nil), r.Formats...)
	}
}

func setIf[T comparable](dst *T, v T) {
	var zero T
	if v != zero {
		*dst = v
	}
}
