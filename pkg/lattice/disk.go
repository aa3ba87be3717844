package lattice

// Disk is an open disk on the lattice. A point belongs to the disk when its
// distance to Center is strictly less than Radius.
type Disk struct {
	Center Point
	Radius float64
}

// Contains reports whether p lies strictly inside the disk.
func (d Disk) Contains(p Point) bool {
	return Distance(p, d.Center) < d.Radius
}

// AppendInNeighbors appends the axis neighbors of p that lie inside the
// disk to dst, in [Point.Neighbors] order, and returns the extended slice.
func (d Disk) AppendInNeighbors(dst []Point, p Point) []Point {
	for _, n := range p.Neighbors() {
		if d.Contains(n) {
			dst = append(dst, n)
		}
	}
	return dst
}
