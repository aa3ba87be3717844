package lattice

import "testing"

func TestSetAddDeduplicates(t *testing.T) {
	s := NewSet(Point{1, 1}, Point{2, 2}, Point{1, 1})

	if s.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", s.Len())
	}
	if s.Add(Point{2, 2}) {
		t.Error("Add of existing point should return false")
	}
	if !s.Add(Point{3, 3}) {
		t.Error("Add of new point should return true")
	}
	if !s.Contains(Point{3, 3}) {
		t.Error("Contains should report added point")
	}
}

func TestSetOrder(t *testing.T) {
	in := []Point{{5, 0}, {1, 0}, {3, 0}, {2, 0}}
	s := NewSet(in...)

	got := s.Points()
	for i := range in {
		if got[i] != in[i] {
			t.Fatalf("Points() = %v, want insertion order %v", got, in)
		}
	}
}

func TestSetRemove(t *testing.T) {
	s := NewSet(Point{0, 0}, Point{1, 0}, Point{2, 0}, Point{3, 0})

	if !s.Remove(Point{1, 0}) {
		t.Error("Remove of member should return true")
	}
	if s.Remove(Point{1, 0}) {
		t.Error("second Remove should return false")
	}
	if s.Contains(Point{1, 0}) {
		t.Error("removed point should not be a member")
	}
	if s.Len() != 3 {
		t.Errorf("Len() = %d, want 3", s.Len())
	}

	want := []Point{{0, 0}, {2, 0}, {3, 0}}
	got := s.Points()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Points() after remove = %v, want %v", got, want)
		}
	}

	// Re-adding appends at the end.
	s.Add(Point{1, 0})
	if last := s.Points()[s.Len()-1]; last != (Point{1, 0}) {
		t.Errorf("re-added point should be last, got %v", last)
	}
}

func TestSetRemoveCompacts(t *testing.T) {
	s := NewSet()
	for i := 0; i < 100; i++ {
		s.Add(Point{i, 0})
	}
	for i := 0; i < 90; i++ {
		s.Remove(Point{i, 0})
	}

	if s.Len() != 10 {
		t.Fatalf("Len() = %d, want 10", s.Len())
	}
	pts := s.Points()
	for i, p := range pts {
		if p != (Point{90 + i, 0}) {
			t.Fatalf("Points()[%d] = %v, want %v", i, p, Point{90 + i, 0})
		}
	}
	for _, p := range pts {
		if !s.Contains(p) {
			t.Errorf("Contains(%v) = false after compaction", p)
		}
	}
}

func TestSetTombstoneValue(t *testing.T) {
	s := NewSet(tombstone, Point{1, 1})
	s.Remove(Point{1, 1})

	if !s.Contains(tombstone) || s.Len() != 1 {
		t.Fatalf("point equal to the tombstone value must survive removals")
	}
	if pts := s.Points(); len(pts) != 1 || pts[0] != tombstone {
		t.Errorf("Points() = %v", pts)
	}
}

func TestSetClear(t *testing.T) {
	s := NewSet(Point{1, 2}, Point{3, 4})
	s.Clear()

	if s.Len() != 0 {
		t.Errorf("Len() after Clear = %d", s.Len())
	}
	if s.Contains(Point{1, 2}) {
		t.Error("Clear should remove all members")
	}
	if len(s.Points()) != 0 {
		t.Error("Points() should be empty after Clear")
	}
}
