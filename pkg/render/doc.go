// Package render turns an aggregation snapshot into viewable artifacts.
//
// Every sink takes an [aggregate.Snapshot] and works from its cluster in
// commit order, so the "age" style can shade sites from oldest (the seed) to
// newest:
//
//   - txt: ASCII grid, one character per lattice site
//   - svg: one square per cluster site
//   - png: raster grid drawn with fogleman/gg
//   - json: the snapshot file written by [github.com/matzehuels/dla/pkg/io]
//   - dot: the cluster as a 4-adjacency lattice graph laid out by Graphviz
//   - pdf: the SVG converted with rsvg-convert
//
// [Render] dispatches on the format name:
//
//	svg, err := render.Render(snap, render.FormatSVG, render.Options{Style: render.StyleAge, Scale: 4})
//
// PDF export shells out to rsvg-convert from librsvg:
// brew install librsvg (macOS), apt install librsvg2-bin (Linux).
package render
