package render

import (
	"fmt"
	"image/color"
)

var (
	background = color.RGBA{0x11, 0x14, 0x1b, 0xff}
	domainFill = color.RGBA{0x1b, 0x20, 0x2b, 0xff}
	plainSite  = color.RGBA{0x5f, 0xd7, 0xff, 0xff}
	oldestSite = color.RGBA{0xff, 0xf3, 0xb0, 0xff}
	newestSite = color.RGBA{0x6c, 0x3c, 0xd9, 0xff}
)

// siteColor returns the fill of the i-th committed site out of n.
func siteColor(style string, i, n int) color.RGBA {
	if style != StyleAge || n < 2 {
		return plainSite
	}
	t := float64(i) / float64(n-1)
	return color.RGBA{
		R: lerp(oldestSite.R, newestSite.R, t),
		G: lerp(oldestSite.G, newestSite.G, t),
		B: lerp(oldestSite.B, newestSite.B, t),
		A: 0xff,
	}
}

func lerp(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t + 0.5)
}

func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
