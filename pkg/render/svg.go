package render

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/dla/pkg/aggregate"
)

// SVG renders s as one square per cluster site on a dark disk showing the
// domain bounds.
func SVG(s aggregate.Snapshot, opts Options) []byte {
	opts = opts.withDefaults()
	size := float64(s.Size()) * opts.Scale
	cx := (float64(s.Seed.X) + 0.5) * opts.Scale

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		size, size, size, size)
	fmt.Fprintf(&buf, `  <rect width="100%%" height="100%%" fill="%s"/>`+"\n", hex(background))
	fmt.Fprintf(&buf, `  <circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s"/>`+"\n",
		cx, cx, float64(s.Radius+1)*opts.Scale, hex(domainFill))

	buf.WriteString(`  <g class="cluster" shape-rendering="crispEdges">` + "\n")
	n := len(s.Cluster)
	for i, p := range s.Cluster {
		fmt.Fprintf(&buf, `    <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>`+"\n",
			float64(p.X)*opts.Scale, float64(p.Y)*opts.Scale, opts.Scale, opts.Scale,
			hex(siteColor(opts.Style, i, n)))
	}
	buf.WriteString("  </g>\n")
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}
