package aggregate

import (
	"math"
	"math/rand/v2"

	"github.com/matzehuels/dla/pkg/errors"
	"github.com/matzehuels/dla/pkg/lattice"
)

const (
	// DefaultEpsilon is the start ring tolerance: a site joins the ring when
	// its distance to the seed is within DefaultEpsilon of the ring radius.
	// Smaller values leave gaps in the ring, larger ones make a thick band.
	DefaultEpsilon = 2.2

	// stepsPerCell scales the default per-walk step bound with the grid area.
	stepsPerCell = 250

	// minMaxSteps is the floor of the default per-walk step bound.
	minMaxSteps = 10_000
)

// DefaultMaxSteps returns the per-walk step bound used when [WithMaxSteps]
// is not given: 250 steps per grid cell, at least 10,000.
func DefaultMaxSteps(r int) int {
	side := 2*r + 1
	return max(minMaxSteps, stepsPerCell*side*side)
}

// Option configures an Engine.
type Option func(*options)

type options struct {
	rng      *rand.Rand
	epsilon  float64
	maxSteps int
}

// WithSeed makes the engine reproducible: two engines built with the same
// radius, options and seed grow identical clusters.
func WithSeed(seed uint64) Option {
	return func(o *options) { o.rng = rand.New(rand.NewPCG(seed, seed^0xdeadbeef)) }
}

// WithRand sets the random source used for launching and stepping.
func WithRand(r *rand.Rand) Option {
	return func(o *options) { o.rng = r }
}

// WithEpsilon sets the start ring tolerance (default [DefaultEpsilon]).
func WithEpsilon(eps float64) Option {
	return func(o *options) { o.epsilon = eps }
}

// WithMaxSteps bounds the number of steps of a single walk. A walker that
// has not reached the perimeter after n steps is abandoned.
// Zero selects [DefaultMaxSteps].
func WithMaxSteps(n int) Option {
	return func(o *options) { o.maxSteps = n }
}

// Engine owns the membership state of one growing aggregate.
//
// The zero value is not usable - use New. Engine is not safe for concurrent
// use without external synchronization.
type Engine struct {
	radius int
	seed   lattice.Point
	bounds lattice.Disk

	cluster   *lattice.Set
	perimeter *lattice.Set

	// in-flight walk
	path          []lattice.Point
	onPath        map[lattice.Point]struct{}
	pathPerimeter *lattice.Set

	ring []lattice.Point
	grid *Grid

	rng      *rand.Rand
	epsilon  float64
	maxSteps int
	stats    Stats
}

// New creates an engine for a domain of radius r. The seed sits at (r, r),
// the cluster holds only the seed, the perimeter holds the seed's four axis
// neighbors, and the occupancy grid is (2r+1)×(2r+1) with only the seed cell
// set.
//
// New returns an INVALID_RADIUS error for r outside (0, MaxRadius] and an
// INVALID_EPSILON or INVALID_INPUT error for bad options.
func New(r int, opts ...Option) (*Engine, error) {
	if err := errors.ValidateRadius(r); err != nil {
		return nil, err
	}

	o := options{epsilon: DefaultEpsilon}
	for _, opt := range opts {
		opt(&o)
	}
	if err := errors.ValidateEpsilon(o.epsilon); err != nil {
		return nil, err
	}
	if o.maxSteps < 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "max steps must not be negative, got %d", o.maxSteps)
	}
	if o.maxSteps == 0 {
		o.maxSteps = DefaultMaxSteps(r)
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	seed := lattice.Point{X: r, Y: r}
	e := &Engine{
		radius:        r,
		seed:          seed,
		bounds:        lattice.Disk{Center: seed, Radius: float64(r + 1)},
		cluster:       lattice.NewSet(seed),
		perimeter:     lattice.NewSet(),
		onPath:        make(map[lattice.Point]struct{}),
		pathPerimeter: lattice.NewSet(),
		grid:          NewGrid(2*r + 1),
		rng:           o.rng,
		epsilon:       o.epsilon,
		maxSteps:      o.maxSteps,
	}
	for _, n := range seed.Neighbors() {
		e.perimeter.Add(n)
	}
	e.grid.mark(seed)
	return e, nil
}

// Radius returns the domain radius r.
func (e *Engine) Radius() int { return e.radius }

// Seed returns the fixed center site.
func (e *Engine) Seed() lattice.Point { return e.seed }

// Epsilon returns the start ring tolerance.
func (e *Engine) Epsilon() float64 { return e.epsilon }

// MaxSteps returns the per-walk step bound.
func (e *Engine) MaxSteps() int { return e.maxSteps }

// InBounds reports whether p lies in the admissible domain, the open disk of
// radius r+1 around the seed.
func (e *Engine) InBounds(p lattice.Point) bool { return e.bounds.Contains(p) }

// Cluster returns a copy of the cluster sites in the order they were added.
// The seed is always first.
func (e *Engine) Cluster() []lattice.Point { return e.cluster.Points() }

// ClusterLen returns the number of cluster sites.
func (e *Engine) ClusterLen() int { return e.cluster.Len() }

// InCluster reports whether p is a cluster site.
func (e *Engine) InCluster(p lattice.Point) bool { return e.cluster.Contains(p) }

// Perimeter returns a copy of the cluster perimeter.
func (e *Engine) Perimeter() []lattice.Point { return e.perimeter.Points() }

// PerimeterLen returns the number of perimeter sites.
func (e *Engine) PerimeterLen() int { return e.perimeter.Len() }

// InPerimeter reports whether p is a perimeter site.
func (e *Engine) InPerimeter(p lattice.Point) bool { return e.perimeter.Contains(p) }

// Grid returns a copy of the occupancy grid. Callers re-read it after every
// walk; later walks never modify a returned grid.
func (e *Engine) Grid() *Grid { return e.grid.Clone() }

// Stats returns the walk counters accumulated so far.
func (e *Engine) Stats() Stats { return e.stats }

// Snapshot captures the engine's cluster, perimeter and ring in a
// serializable form.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Radius:    e.radius,
		Seed:      e.seed,
		Epsilon:   e.epsilon,
		Cluster:   e.cluster.Points(),
		Perimeter: e.perimeter.Points(),
		Ring:      e.Ring(),
		Density:   e.Density(),
		Stats:     e.stats,
	}
}

// area is the reference disk area π r² used by Density.
func (e *Engine) area() float64 {
	r := float64(e.radius)
	return math.Pi * r * r
}
