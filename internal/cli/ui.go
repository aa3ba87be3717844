package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/dla/pkg/aggregate"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // seed, primary actions
	colorGreen  = lipgloss.Color("35")  // success, cached
	colorYellow = lipgloss.Color("220") // warnings
	colorRed    = lipgloss.Color("167") // errors
	colorBlue   = lipgloss.Color("75")  // links, commands
	colorWhite  = lipgloss.Color("255") // values
	colorGray   = lipgloss.Color("245") // labels
	colorDim    = lipgloss.Color("240") // muted text
)

// =============================================================================
// Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleLink for URLs.
	StyleLink = lipgloss.NewStyle().Foreground(colorBlue).Underline(true)

	// StyleDim for secondary text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleSuccess for success messages.
	StyleSuccess = lipgloss.NewStyle().Foreground(colorGreen)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)

	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)
	styleLabel       = lipgloss.NewStyle().Foreground(colorGray).Width(12)
	styleCommand     = lipgloss.NewStyle().Foreground(colorBlue)
)

// Status markers.
const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconInfo    = "›"
	iconArrow   = "→"
	sep         = " · "
)

// uiOut receives all status output. Logs go to stderr separately.
var uiOut io.Writer = os.Stdout

func line(s string) { fmt.Fprintln(uiOut, s) }

// =============================================================================
// Status Lines
// =============================================================================

func printSuccess(format string, args ...any) {
	line(StyleSuccess.Render(iconSuccess) + " " + fmt.Sprintf(format, args...))
}

func printError(format string, args ...any) {
	line(styleIconError.Render(iconError) + " " + fmt.Sprintf(format, args...))
}

func printWarning(format string, args ...any) {
	line(StyleWarning.Render(iconWarning + " " + fmt.Sprintf(format, args...)))
}

func printInfo(format string, args ...any) {
	line(styleIconInfo.Render(iconInfo) + " " + fmt.Sprintf(format, args...))
}

// printDetail prints an indented, muted line.
func printDetail(format string, args ...any) {
	line("  " + StyleDim.Render(fmt.Sprintf(format, args...)))
}

// printFile prints a written file.
func printFile(path string) {
	line("  " + StyleDim.Render(iconArrow) + " " + StyleValue.Render(path))
}

// printKeyValue prints a labeled value.
func printKeyValue(key, value string) {
	line(styleLabel.Render(key) + " " + StyleValue.Render(value))
}

// printNextStep prints a suggested next command.
func printNextStep(description, cmd string) {
	line(StyleDim.Render(description+":") + " " + styleCommand.Render(cmd))
}

func printNewline() { line("") }

// =============================================================================
// Run Summaries
// =============================================================================

// printStats prints the size of a run and whether it came from the cache.
func printStats(sites, walks int, density float64, cached bool) {
	parts := []string{
		fmt.Sprintf("%d sites", sites),
		fmt.Sprintf("%d walks", walks),
		fmt.Sprintf("density %.3f", density),
	}
	status := StyleDim.Render("fresh")
	if cached {
		status = StyleSuccess.Render("cached")
	}
	line("  " + StyleDim.Render(strings.Join(parts, sep)) + StyleDim.Render(sep) + status)
}

// printWalkStats prints how walks ended.
func printWalkStats(s aggregate.Stats) {
	printDetail("%d stuck%s%d hit the step bound%s%d exhausted%s%d steps",
		s.Stuck, sep, s.StepLimit, sep, s.Exhausted, sep, s.Steps)
}
