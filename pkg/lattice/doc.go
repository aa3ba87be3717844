// Package lattice provides integer lattice geometry for aggregation models.
//
// # Overview
//
// A [Point] is a value-typed coordinate pair on the discrete square lattice.
// Points are comparable and are used directly as map keys, which is what the
// membership [Set] relies on for O(1) lookups.
//
// Movement on the lattice is 4-connected: [Point.Neighbors] returns the axis
// neighbors (up, down, left, right) in a fixed order so that stepping driven
// by a seeded random source is reproducible.
//
// # Bounded Domains
//
// A [Disk] describes the admissible region of a simulation. [Disk.Contains]
// is a strict test on the Euclidean [Distance] to the center:
//
//	d := lattice.Disk{Center: lattice.Point{X: 10, Y: 10}, Radius: 11}
//	d.Contains(lattice.Point{X: 0, Y: 10}) // true: distance 10 < 11
//	d.Contains(lattice.Point{X: 0, Y: 0})  // false: distance ~14.1
//
// # Sets
//
// [Set] is an insertion-ordered hashed set of points. Insertion order is kept
// so that callers iterating a set (for example to rebuild a raster) see a
// stable, reproducible sequence.
package lattice
