package render

import (
	"bytes"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/dla/pkg/aggregate"
	"github.com/matzehuels/dla/pkg/lattice"
)

// Text characters.
const (
	glyphSeed    = '@'
	glyphCluster = '#'
	glyphEmpty   = '.'
	glyphOutside = ' '
)

// Text renders s as an ASCII grid: '@' for the seed, '#' for other cluster
// sites, '.' for empty in-bounds sites and a blank outside the domain.
// Rows follow the grid's row index, so the output is trailing-space trimmed
// and newline-terminated.
func Text(s aggregate.Snapshot) []byte {
	g := s.Grid()
	bounds := lattice.Disk{Center: s.Seed, Radius: float64(s.Radius + 1)}

	var buf bytes.Buffer
	line := make([]byte, g.Size())
	for row := 0; row < g.Size(); row++ {
		for col := 0; col < g.Size(); col++ {
			p := lattice.Point{X: col, Y: row}
			switch {
			case p == s.Seed:
				line[col] = glyphSeed
			case g.At(row, col) != 0:
				line[col] = glyphCluster
			case bounds.Contains(p):
				line[col] = glyphEmpty
			default:
				line[col] = glyphOutside
			}
		}
		buf.Write(bytes.TrimRight(line, " "))
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

var (
	termSite  = lipgloss.NewStyle().Foreground(lipgloss.Color(hex(plainSite)))
	termSeed  = lipgloss.NewStyle().Foreground(lipgloss.Color(hex(oldestSite))).Bold(true)
	termEmpty = lipgloss.NewStyle().Foreground(lipgloss.Color("236"))
)

// Terminal renders an occupancy grid for a color terminal, at most maxCols
// cells wide. Larger grids are downsampled: a terminal cell is filled when
// any lattice site it covers is occupied. Each cell is two columns wide so
// the aspect ratio stays roughly square.
func Terminal(g *aggregate.Grid, maxCols int) string {
	size := g.Size()
	stride := 1
	if maxCols > 0 && size > maxCols {
		stride = (size + maxCols - 1) / maxCols
	}
	center := size / 2

	var sb strings.Builder
	for row := 0; row < size; row += stride {
		for col := 0; col < size; col += stride {
			switch {
			case covers(row, col, stride, center):
				sb.WriteString(termSeed.Render("██"))
			case anyOccupied(g, row, col, stride):
				sb.WriteString(termSite.Render("██"))
			default:
				sb.WriteString(termEmpty.Render("··"))
			}
		}
		if row+stride < size {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func covers(row, col, stride, center int) bool {
	return center >= row && center < row+stride && center >= col && center < col+stride
}

func anyOccupied(g *aggregate.Grid, row, col, stride int) bool {
	for r := row; r < row+stride; r++ {
		for c := col; c < col+stride; c++ {
			if g.At(r, c) != 0 {
				return true
			}
		}
	}
	return false
}
