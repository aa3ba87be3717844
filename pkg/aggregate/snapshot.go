package aggregate

import (
	"github.com/matzehuels/dla/pkg/errors"
	"github.com/matzehuels/dla/pkg/lattice"
)

// Snapshot is a serializable capture of an engine's state between walks.
// The cluster is authoritative; the grid is rebuilt from it on demand.
type Snapshot struct {
	Radius    int             `json:"radius"`
	Seed      lattice.Point   `json:"seed"`
	Epsilon   float64         `json:"epsilon"`
	Cluster   []lattice.Point `json:"cluster"`
	Perimeter []lattice.Point `json:"perimeter,omitempty"`
	Ring      []lattice.Point `json:"ring,omitempty"`
	Density   float64         `json:"density"`
	Stats     Stats           `json:"stats"`
}

// Size returns the side length of the occupancy grid, 2r+1.
func (s Snapshot) Size() int { return 2*s.Radius + 1 }

// Grid rebuilds the occupancy grid by marking every cluster site.
func (s Snapshot) Grid() *Grid {
	g := NewGrid(s.Size())
	for _, p := range s.Cluster {
		g.mark(p)
	}
	return g
}

// Validate checks the structural invariants of a snapshot read from outside:
// a valid radius and a centered seed present in the cluster. Cluster,
// perimeter and ring sites must each be in bounds and duplicate-free, and
// the perimeter must be disjoint from the cluster.
func (s Snapshot) Validate() error {
	if err := errors.ValidateRadius(s.Radius); err != nil {
		return err
	}
	if s.Seed != (lattice.Point{X: s.Radius, Y: s.Radius}) {
		return errors.New(errors.ErrCodeInvalidInput, "seed %v is not at the domain center", s.Seed)
	}

	bounds := lattice.Disk{Center: s.Seed, Radius: float64(s.Radius + 1)}
	cluster, err := siteSet("cluster", s.Cluster, bounds)
	if err != nil {
		return err
	}
	if !cluster.Contains(s.Seed) {
		return errors.New(errors.ErrCodeInvalidInput, "cluster does not contain the seed")
	}
	if _, err := siteSet("perimeter", s.Perimeter, bounds); err != nil {
		return err
	}
	for _, p := range s.Perimeter {
		if cluster.Contains(p) {
			return errors.New(errors.ErrCodeInvalidInput, "perimeter site %v is also a cluster site", p)
		}
	}
	_, err = siteSet("ring", s.Ring, bounds)
	return err
}

// siteSet collects pts into a set, rejecting out-of-bounds and repeated sites.
func siteSet(role string, pts []lattice.Point, bounds lattice.Disk) (*lattice.Set, error) {
	set := lattice.NewSet()
	for _, p := range pts {
		if !bounds.Contains(p) {
			return nil, errors.New(errors.ErrCodeInvalidInput, "%s site %v is out of bounds", role, p)
		}
		if !set.Add(p) {
			return nil, errors.New(errors.ErrCodeInvalidInput, "duplicate %s site %v", role, p)
		}
	}
	return set, nil
}
