package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/dla/pkg/aggregate"
	"github.com/matzehuels/dla/pkg/lattice"
	"github.com/matzehuels/dla/pkg/pipeline"
)

var (
	ringSiteStyle = lipgloss.NewStyle().Foreground(colorCyan)
	ringSeedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorGreen)
)

// maxRingPreview is the largest radius drawn by ring --show.
const maxRingPreview = 40

// ringCommand creates the ring command, which previews the start ring.
func (c *CLI) ringCommand() *cobra.Command {
	var (
		radius  int
		epsilon float64
		show    bool
	)

	cmd := &cobra.Command{
		Use:   "ring",
		Short: "Preview the start ring for a radius and epsilon",
		Long: `Preview the start ring for a radius and epsilon.

Walkers launch from lattice sites whose distance to the seed lies within
epsilon of the radius. A ring with no sites makes a run impossible; this
command reports that before any walk is made.`,
		Example: `  dla ring -r 64
  dla ring -r 8 --epsilon 1 --show`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := aggregate.New(radius, aggregate.WithEpsilon(epsilon))
			if err != nil {
				return err
			}
			if err := e.BuildRing(radius); err != nil {
				return err
			}
			ring := e.Ring()

			printSuccess("Start ring has %d sites", len(ring))
			printKeyValue("radius", fmt.Sprint(radius))
			printKeyValue("epsilon", fmt.Sprint(epsilon))
			printKeyValue("seed", e.Seed().String())
			printKeyValue("max steps", fmt.Sprint(e.MaxSteps()))
			if show {
				if radius > maxRingPreview {
					printWarning("radius %d is too large to draw (max %d)", radius, maxRingPreview)
					return nil
				}
				printNewline()
				line(drawRing(e, ring))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&radius, "radius", "r", pipeline.DefaultRadius, "disk radius in lattice units")
	cmd.Flags().Float64Var(&epsilon, "epsilon", pipeline.DefaultEpsilon, "half-width of the start ring")
	cmd.Flags().BoolVar(&show, "show", false, "draw the ring")

	return cmd
}

// drawRing draws the disk with ring sites and the seed highlighted.
func drawRing(e *aggregate.Engine, ring []lattice.Point) string {
	on := lattice.NewSet(ring...)
	size := 2*e.Radius() + 1

	var b strings.Builder
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			p := lattice.Point{X: x, Y: y}
			switch {
			case p == e.Seed():
				b.WriteString(ringSeedStyle.Render("@ "))
			case on.Contains(p):
				b.WriteString(ringSiteStyle.Render("o "))
			case e.InBounds(p):
				b.WriteString(StyleDim.Render(". "))
			default:
				b.WriteString("  ")
			}
		}
		if y < size-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
