package render

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/dla/pkg/aggregate"
	"github.com/matzehuels/dla/pkg/lattice"
)

// pointsPerInch converts Scale pixels, read as points, to Graphviz inches.
const pointsPerInch = 72.0

// ToDOT describes the cluster as an undirected lattice graph. Each site is a
// node pinned at its lattice position; edges join 4-adjacent cluster sites.
func ToDOT(s aggregate.Snapshot, opts Options) string {
	opts = opts.withDefaults()
	unit := opts.Scale / pointsPerInch
	members := lattice.NewSet(s.Cluster...)

	var buf bytes.Buffer
	buf.WriteString("graph aggregate {\n")
	fmt.Fprintf(&buf, "  bgcolor=%q;\n", hex(background))
	fmt.Fprintf(&buf, "  node [shape=circle, style=filled, label=\"\", penwidth=0, width=%.3f, fixedsize=true];\n", unit*0.8)
	fmt.Fprintf(&buf, "  edge [color=%q, penwidth=%.2f];\n", hex(plainSite), opts.Scale/4)
	buf.WriteString("\n")

	n := len(s.Cluster)
	for i, p := range s.Cluster {
		fmt.Fprintf(&buf, "  %s [pos=\"%.3f,%.3f!\", fillcolor=%q];\n",
			nodeID(p), float64(p.X)*unit, -float64(p.Y)*unit, hex(siteColor(opts.Style, i, n)))
	}

	buf.WriteString("\n")
	for _, p := range s.Cluster {
		for _, q := range [2]lattice.Point{p.Add(lattice.Point{X: 1}), p.Add(lattice.Point{Y: 1})} {
			if members.Contains(q) {
				fmt.Fprintf(&buf, "  %s -- %s;\n", nodeID(p), nodeID(q))
			}
		}
	}
	buf.WriteString("}\n")
	return buf.String()
}

func nodeID(p lattice.Point) string {
	return fmt.Sprintf("s%d_%d", p.X, p.Y)
}

// DOT lays out [ToDOT] with Graphviz neato and returns the SVG.
func DOT(s aggregate.Snapshot, opts Options) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(ToDOT(s, opts)))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	gv.SetLayout(graphviz.NEATO)
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's root element with one carrying only
// the viewBox and pixel size, dropping its pt units.
func normalizeViewBox(svg []byte) []byte {
	m := viewBoxRe.FindSubmatch(svg)
	if m == nil {
		return svg
	}
	w, _ := strconv.ParseFloat(string(m[3]), 64)
	h, _ := strconv.ParseFloat(string(m[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}
	root := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`, w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(root))
}
