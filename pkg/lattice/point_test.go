package lattice

import (
	"math"
	"testing"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		name   string
		p1, p2 Point
		want   float64
	}{
		{"same point", Point{3, 3}, Point{3, 3}, 0},
		{"horizontal", Point{0, 0}, Point{4, 0}, 4},
		{"vertical", Point{2, 7}, Point{2, 1}, 6},
		{"pythagorean", Point{0, 0}, Point{3, 4}, 5},
		{"negative coords", Point{-3, -4}, Point{0, 0}, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Distance(tt.p1, tt.p2)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Distance(%v, %v) = %v, want %v", tt.p1, tt.p2, got, tt.want)
			}
			if back := Distance(tt.p2, tt.p1); back != got {
				t.Errorf("Distance should be symmetric: %v vs %v", got, back)
			}
		})
	}
}

func TestNeighborsAxisOnly(t *testing.T) {
	p := Point{5, 5}
	want := [4]Point{{5, 4}, {5, 6}, {4, 5}, {6, 5}}

	got := p.Neighbors()
	if got != want {
		t.Fatalf("Neighbors() = %v, want %v", got, want)
	}
	for _, n := range got {
		if !p.Adjacent(n) {
			t.Errorf("%v should be adjacent to %v", n, p)
		}
		if d := Distance(p, n); d != 1 {
			t.Errorf("neighbor %v at distance %v, want 1", n, d)
		}
	}
}

func TestAdjacent(t *testing.T) {
	tests := []struct {
		p, q Point
		want bool
	}{
		{Point{0, 0}, Point{0, 1}, true},
		{Point{0, 0}, Point{1, 1}, false}, // diagonal
		{Point{0, 0}, Point{0, 0}, false},
		{Point{0, 0}, Point{2, 0}, false},
	}

	for _, tt := range tests {
		if got := tt.p.Adjacent(tt.q); got != tt.want {
			t.Errorf("%v.Adjacent(%v) = %v, want %v", tt.p, tt.q, got, tt.want)
		}
	}
}

func TestPointString(t *testing.T) {
	if s := (Point{X: 2, Y: -1}).String(); s != "(2,-1)" {
		t.Errorf("String() = %q, want %q", s, "(2,-1)")
	}
}

func TestDiskContains(t *testing.T) {
	d := Disk{Center: Point{3, 3}, Radius: 4}

	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"center", Point{3, 3}, true},
		{"inside", Point{5, 3}, true},
		{"near edge", Point{0, 3}, true},
		{"distance equal to radius excluded", Point{-1, 3}, false},
		{"corner outside", Point{0, 0}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := d.Contains(tt.p); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestDiskAppendInNeighbors(t *testing.T) {
	d := Disk{Center: Point{0, 0}, Radius: 1.5}

	// From (1,0): up (1,-1) d=1.41 in, down (1,1) in, left (0,0) in, right (2,0) out.
	got := d.AppendInNeighbors(nil, Point{1, 0})
	want := []Point{{1, -1}, {1, 1}, {0, 0}}
	if len(got) != len(want) {
		t.Fatalf("AppendInNeighbors = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("AppendInNeighbors[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	// A point far outside has no in-bounds neighbors.
	if n := d.AppendInNeighbors(nil, Point{10, 10}); len(n) != 0 {
		t.Errorf("far point should have no in-bounds neighbors, got %v", n)
	}
}
