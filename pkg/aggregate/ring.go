package aggregate

import (
	"math"

	"github.com/matzehuels/dla/pkg/errors"
	"github.com/matzehuels/dla/pkg/lattice"
)

// BuildRing computes the start ring of radius r. For every offset (dx, dy)
// in [-r, r) × [-r, r), the site seed+(dx, dy) joins the ring when
// |distance(site, seed) - r| < epsilon and the site is in bounds.
//
// BuildRing must succeed exactly once before the first walk. It returns
// RING_ALREADY_BUILT on a second call, INVALID_RADIUS for r <= 0, and
// EMPTY_RING when no site qualifies; an empty ring is a fatal configuration
// error since no walk could ever launch.
func (e *Engine) BuildRing(r int) error {
	if e.ring != nil {
		return errors.New(errors.ErrCodeRingBuilt, "start ring already built (%d sites)", len(e.ring))
	}
	if err := errors.ValidateRadius(r); err != nil {
		return err
	}

	ring := RingSites(e.seed, r, e.epsilon, e.bounds)
	if len(ring) == 0 {
		return errors.New(errors.ErrCodeEmptyRing,
			"start ring of radius %d is empty (epsilon %.2f, domain radius %d)", r, e.epsilon, e.radius)
	}
	e.ring = ring
	return nil
}

// RingSites returns the start ring sites around center for ring radius r and
// tolerance eps, restricted to bounds, in row-major scan order of the offsets.
func RingSites(center lattice.Point, r int, eps float64, bounds lattice.Disk) []lattice.Point {
	var ring []lattice.Point
	for dx := -r; dx < r; dx++ {
		for dy := -r; dy < r; dy++ {
			p := center.Add(lattice.Point{X: dx, Y: dy})
			if math.Abs(lattice.Distance(p, center)-float64(r)) >= eps {
				continue
			}
			if !bounds.Contains(p) {
				continue
			}
			ring = append(ring, p)
		}
	}
	return ring
}

// Ring returns a copy of the start ring, or nil before BuildRing succeeds.
func (e *Engine) Ring() []lattice.Point {
	if e.ring == nil {
		return nil
	}
	out := make([]lattice.Point, len(e.ring))
	copy(out, e.ring)
	return out
}

// RingBuilt reports whether BuildRing has succeeded.
func (e *Engine) RingBuilt() bool { return e.ring != nil }
