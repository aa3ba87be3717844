package lattice

// Set is an insertion-ordered set of points with O(1) membership tests.
//
// Removal keeps the relative order of the remaining points. The zero value is
// not usable; create sets with [NewSet].
// Set is not safe for concurrent use.
type Set struct {
	index map[Point]int // point -> position in order
	order []Point
	live  int
}

// NewSet creates a set containing pts, in order, skipping duplicates.
func NewSet(pts ...Point) *Set {
	s := &Set{index: make(map[Point]int, len(pts))}
	for _, p := range pts {
		s.Add(p)
	}
	return s
}

// Add inserts p. It returns false if p was already present.
func (s *Set) Add(p Point) bool {
	if _, ok := s.index[p]; ok {
		return false
	}
	s.index[p] = len(s.order)
	s.order = append(s.order, p)
	s.live++
	return true
}

// Contains reports whether p is a member.
func (s *Set) Contains(p Point) bool {
	_, ok := s.index[p]
	return ok
}

// Remove deletes p. It returns false if p was not present.
func (s *Set) Remove(p Point) bool {
	i, ok := s.index[p]
	if !ok {
		return false
	}
	delete(s.index, p)
	s.order[i] = tombstone
	s.live--
	if s.live < len(s.order)/2 {
		s.compact()
	}
	return true
}

// Len returns the number of members.
func (s *Set) Len() int { return s.live }

// Each calls fn for every member in insertion order.
func (s *Set) Each(fn func(Point)) {
	for i, p := range s.order {
		if s.isLive(i, p) {
			fn(p)
		}
	}
}

// Points returns a copy of the members in insertion order.
func (s *Set) Points() []Point {
	out := make([]Point, 0, s.live)
	s.Each(func(p Point) { out = append(out, p) })
	return out
}

// Clear removes every member.
func (s *Set) Clear() {
	clear(s.index)
	s.order = s.order[:0]
	s.live = 0
}

// tombstone marks a removed slot in order. Live entries are recognised by
// their index entry pointing back at the slot, so a real point equal to the
// tombstone value is still handled correctly.
var tombstone = Point{X: -1 << 31, Y: -1 << 31}

func (s *Set) isLive(i int, p Point) bool {
	j, ok := s.index[p]
	return ok && j == i
}

func (s *Set) compact() {
	kept := s.order[:0]
	for i, p := range s.order {
		if s.isLive(i, p) {
			s.index[p] = len(kept)
			kept = append(kept, p)
		}
	}
	s.order = kept
}
