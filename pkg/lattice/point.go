package lattice

import (
	"fmt"
	"math"
)

// Point is an integer coordinate on the lattice. The zero value is the origin.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the offset from q to p.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// String formats the point as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// axisOffsets lists the 4-connected unit moves: up, down, left, right.
var axisOffsets = [4]Point{
	{X: 0, Y: -1},
	{X: 0, Y: 1},
	{X: -1, Y: 0},
	{X: 1, Y: 0},
}

// Neighbors returns the four axis-aligned neighbors of p in the fixed order
// up, down, left, right. Diagonals are never included.
func (p Point) Neighbors() [4]Point {
	var out [4]Point
	for i, d := range axisOffsets {
		out[i] = p.Add(d)
	}
	return out
}

// Adjacent reports whether p and q differ by exactly one axis-aligned step.
func (p Point) Adjacent(q Point) bool {
	dx, dy := abs(p.X-q.X), abs(p.Y-q.Y)
	return dx+dy == 1
}

// Distance returns the Euclidean distance between two points.
func Distance(p1, p2 Point) float64 {
	return math.Hypot(float64(p1.X-p2.X), float64(p1.Y-p2.Y))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
