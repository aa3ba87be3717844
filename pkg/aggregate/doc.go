// Package aggregate implements a walk-and-stick aggregation engine on a
// bounded square lattice.
//
// # Overview
//
// An [Engine] grows a single cluster from a seed at the center of a disk of
// radius r+1. Each call to [Engine.Walk] launches one walker from the start
// ring (built once with [Engine.BuildRing]), moves it by uniformly random
// axis-aligned unit steps inside the disk, and stops it as soon as it lands
// on the cluster perimeter. The whole path of a successful walker is then
// committed to the cluster, and the neighbors discovered along the way join
// the perimeter. This is a simplified aggregation model, not a physical
// diffusion simulation.
//
//	e, err := aggregate.New(60, aggregate.WithSeed(42))
//	if err != nil {
//	    return err
//	}
//	if err := e.BuildRing(60); err != nil {
//	    return err // empty ring: fatal configuration error
//	}
//	for e.Density() <= 0.5 {
//	    if _, err := e.Walk(); err != nil {
//	        return err
//	    }
//	}
//
// # Membership
//
// Four point sets carry the model state:
//
//   - cluster: permanently occupied sites, insertion ordered, never shrinks
//   - perimeter: unoccupied sites whose landing makes a walker stick
//   - walk path: sites visited by the current walker
//   - path perimeter: candidate neighbors found during the current walk
//
// The cluster and perimeter are always disjoint and every cluster site lies
// inside the disk. All membership tests are O(1) ([lattice.Set]).
//
// # Termination
//
// A walk ends by sticking, by running out of in-bounds neighbors, or by
// exceeding the per-walk step bound ([WithMaxSteps]). The last two abandon
// the walk without touching the cluster. The step bound exists because an
// unbounded walker has no guaranteed progress toward the perimeter; it only
// changes growth statistics for degenerate configurations.
//
// When to stop invoking walks is the caller's decision. [Engine.Density]
// reports the occupied fraction of the disk area, |cluster| / (π r²), and is
// non-decreasing over the life of an engine.
//
// # Occupancy Grid
//
// [Engine.Grid] returns a copy of the dense (2r+1)×(2r+1) occupancy raster.
// Cell (row y, column x) is 1 exactly when (x, y) is a cluster site. The grid
// is derived state: [Snapshot.Grid] rebuilds it from the cluster alone.
//
// An Engine is not safe for concurrent use.
package aggregate
