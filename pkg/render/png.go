package render

import (
	"bytes"
	"fmt"

	"github.com/fogleman/gg"

	"github.com/matzehuels/dla/pkg/aggregate"
)

// PNG rasterizes s with each lattice site drawn as a Scale×Scale block.
func PNG(s aggregate.Snapshot, opts Options) ([]byte, error) {
	opts = opts.withDefaults()
	if err := ValidateCanvas(s.Size(), opts.Scale); err != nil {
		return nil, err
	}
	px := pixelSize(opts.Scale)
	side := s.Size() * px

	dc := gg.NewContext(side, side)
	dc.SetColor(background)
	dc.Clear()

	center := (float64(s.Seed.X) + 0.5) * float64(px)
	dc.DrawCircle(center, center, float64((s.Radius+1)*px))
	dc.SetColor(domainFill)
	dc.Fill()

	n := len(s.Cluster)
	for i, p := range s.Cluster {
		dc.DrawRectangle(float64(p.X*px), float64(p.Y*px), float64(px), float64(px))
		dc.SetColor(siteColor(opts.Style, i, n))
		dc.Fill()
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}
