package cli

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/matzehuels/dla/pkg/aggregate"
)

// captureUI redirects status output for the duration of the test.
func captureUI(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	uiOut = &buf
	t.Cleanup(func() { uiOut = os.Stdout })
	return &buf
}

func TestPrintStats(t *testing.T) {
	tests := []struct {
		name   string
		cached bool
		want   []string
	}{
		{"fresh", false, []string{"12 sites", "40 walks", "density 0.250", "fresh"}},
		{"cached", true, []string{"cached"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureUI(t)
			printStats(12, 40, 0.25, tt.cached)
			for _, w := range tt.want {
				if !strings.Contains(buf.String(), w) {
					t.Errorf("printStats output %q missing %q", buf.String(), w)
				}
			}
		})
	}
}

func TestPrintWalkStats(t *testing.T) {
	buf := captureUI(t)
	printWalkStats(aggregate.Stats{Walks: 10, Stuck: 7, StepLimit: 2, Exhausted: 1, Steps: 900})
	for _, w := range []string{"7 stuck", "2 hit the step bound", "1 exhausted", "900 steps"} {
		if !strings.Contains(buf.String(), w) {
			t.Errorf("output %q missing %q", buf.String(), w)
		}
	}
}

func TestStatusLines(t *testing.T) {
	buf := captureUI(t)
	printSuccess("grew %d sites", 3)
	printWarning("below threshold")
	printFile("out/run.svg")
	printKeyValue("radius", "8")

	out := buf.String()
	for _, w := range []string{iconSuccess + " grew 3 sites", iconWarning + " below threshold", iconArrow + " out/run.svg", "radius"} {
		if !strings.Contains(out, w) {
			t.Errorf("output %q missing %q", out, w)
		}
	}
	if n := strings.Count(out, "\n"); n != 4 {
		t.Errorf("got %d lines, want 4", n)
	}
}
