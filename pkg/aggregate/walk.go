package aggregate

import (
	"github.com/matzehuels/dla/pkg/errors"
	"github.com/matzehuels/dla/pkg/lattice"
)

// Outcome describes how a walk ended.
type Outcome int

const (
	// OutcomeStuck means the walker reached the perimeter and its path was
	// committed to the cluster.
	OutcomeStuck Outcome = iota + 1
	// OutcomeStepLimit means the walker exceeded the per-walk step bound and
	// was abandoned.
	OutcomeStepLimit
	// OutcomeExhausted means the walker stood on a site with no in-bounds
	// neighbor and was abandoned.
	OutcomeExhausted
)

var outcomeNames = map[Outcome]string{
	OutcomeStuck:     "stuck",
	OutcomeStepLimit: "step-limit",
	OutcomeExhausted: "exhausted",
}

// String returns the outcome name used in logs and JSON.
func (o Outcome) String() string {
	if s, ok := outcomeNames[o]; ok {
		return s
	}
	return "unknown"
}

// Abandoned reports whether the walk ended without sticking.
func (o Outcome) Abandoned() bool { return o == OutcomeStepLimit || o == OutcomeExhausted }

// WalkResult reports one completed walk.
type WalkResult struct {
	Outcome Outcome
	Launch  lattice.Point // start ring site
	End     lattice.Point // last site visited
	Steps   int           // unit steps taken
	Added   int           // sites newly committed to the cluster
}

// Walk runs one walker to completion. The walker launches from a uniformly
// random start ring site and steps until it stands on a perimeter site, then
// the walk is merged. A walker that exceeds the step bound or has no
// in-bounds neighbor is abandoned and its path discarded.
//
// Walk returns RING_NOT_BUILT if BuildRing has not succeeded. Otherwise it
// never fails.
func (e *Engine) Walk() (WalkResult, error) {
	if e.ring == nil {
		return WalkResult{}, errors.New(errors.ErrCodeRingNotBuilt, "start ring must be built before walking")
	}

	start := e.ring[e.rng.IntN(len(e.ring))]
	e.visit(start)
	e.GrowPerimeter(start)

	res := WalkResult{Launch: start}
	cur := start
	for !e.perimeter.Contains(cur) {
		if res.Steps >= e.maxSteps {
			res.Outcome = OutcomeStepLimit
			break
		}
		next, ok := e.Step(cur)
		if !ok {
			res.Outcome = OutcomeExhausted
			break
		}
		e.visit(next)
		cur = next
		res.Steps++
	}
	if res.Outcome == 0 {
		res.Outcome = OutcomeStuck
	}
	res.End = cur
	res.Added = e.Merge(cur)

	e.stats.record(res)
	return res, nil
}

// Step picks one of the in-bounds axis neighbors of pt uniformly at random,
// grows the path perimeter around it and returns it. It returns false when pt
// has no in-bounds neighbor; the caller treats that as leaving the domain.
func (e *Engine) Step(pt lattice.Point) (lattice.Point, bool) {
	var buf [4]lattice.Point
	cand := e.bounds.AppendInNeighbors(buf[:0], pt)
	if len(cand) == 0 {
		return pt, false
	}
	next := cand[e.rng.IntN(len(cand))]
	e.GrowPerimeter(next)
	return next, true
}

// GrowPerimeter adds each axis neighbor of pt to the path perimeter if it is
// in bounds, not a cluster site and not already on the walk path.
func (e *Engine) GrowPerimeter(pt lattice.Point) {
	for _, nb := range pt.Neighbors() {
		if !e.bounds.Contains(nb) || e.cluster.Contains(nb) {
			continue
		}
		if _, visited := e.onPath[nb]; visited {
			continue
		}
		e.pathPerimeter.Add(nb)
	}
}

// Merge commits the current walk if pt is a perimeter site: walk path sites
// join the cluster (and leave the perimeter), and path perimeter sites that
// are not cluster sites join the perimeter. Otherwise the walk is discarded.
// The walk path and path perimeter are cleared in both cases, so merging
// again without a new walk changes nothing.
//
// Merge returns the number of sites newly added to the cluster and marks
// exactly those cells in the occupancy grid.
func (e *Engine) Merge(pt lattice.Point) int {
	defer e.resetWalk()

	if !e.perimeter.Contains(pt) {
		return 0
	}

	added := 0
	for _, p := range e.path {
		if !e.cluster.Add(p) {
			continue
		}
		e.perimeter.Remove(p)
		e.grid.mark(p)
		added++
	}
	e.pathPerimeter.Each(func(p lattice.Point) {
		if !e.cluster.Contains(p) {
			e.perimeter.Add(p)
		}
	})
	return added
}

// PathLen returns the number of sites on the current walk path. It is zero
// between walks.
func (e *Engine) PathLen() int { return len(e.path) }

func (e *Engine) visit(p lattice.Point) {
	e.path = append(e.path, p)
	e.onPath[p] = struct{}{}
}

func (e *Engine) resetWalk() {
	e.path = e.path[:0]
	clear(e.onPath)
	e.pathPerimeter.Clear()
}
