package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/matzehuels/dla/pkg/aggregate"
	dlaio "github.com/matzehuels/dla/pkg/io"
	"github.com/matzehuels/dla/pkg/pipeline"
	"github.com/matzehuels/dla/pkg/render"
)

// Watch styles
var (
	watchStatusStyle = lipgloss.NewStyle().Foreground(colorWhite)
	watchDimStyle    = lipgloss.NewStyle().Foreground(colorDim)
	watchDoneStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorGreen)
)

const (
	defaultTick     = 40 * time.Millisecond
	minWatchCols    = 8
	watchChromeRows = 6 // title, blank, status, stats, help, blank
)

// watchCommand creates the watch command, an animated terminal driver.
func (c *CLI) watchCommand() *cobra.Command {
	var (
		flags simFlags
		tick  time.Duration
		save  string
	)

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Animate a growing cluster in the terminal",
		Long: `Animate a growing cluster in the terminal.

Each frame runs one batch of walks and redraws the occupancy grid. Large
grids are downsampled to fit the terminal. The animation stops at the
density threshold; press r to start over with a new seed.

Keys: space pause · +/- batch size · r restart · q quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.options(cmd)
			if err != nil {
				return err
			}
			return c.runWatch(cmd.Context(), opts, tick, save)
		},
	}

	flags.register(cmd, false)
	cmd.Flags().DurationVar(&tick, "tick", defaultTick, "delay between frames")
	cmd.Flags().StringVar(&save, "save", "", "write the final snapshot JSON to this path on exit")

	return cmd
}

func (c *CLI) runWatch(ctx context.Context, opts pipeline.Options, tick time.Duration, save string) error {
	opts.Logger = c.Logger
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return err
	}

	m, err := newWatchModel(ctx, opts, tick)
	if err != nil {
		return err
	}

	final, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("watch: %w", err)
	}
	wm := final.(watchModel)
	if wm.err != nil {
		return wm.err
	}

	snap := wm.engine.Snapshot()
	printSuccess("Watched run %s", wm.runID)
	printStats(len(snap.Cluster), snap.Stats.Walks, snap.Density, false)
	printDetail("seed %d", wm.seed)
	if save != "" {
		if err := dlaio.ExportJSON(snap, save); err != nil {
			return err
		}
		printFile(save)
	}
	return nil
}

// =============================================================================
// watchModel - bubbletea model driving one engine
// =============================================================================

type watchTickMsg time.Time

type watchModel struct {
	ctx    context.Context
	opts   pipeline.Options
	tick   time.Duration
	engine *aggregate.Engine
	runID  string
	seed   uint64
	batch  int

	paused bool
	done   bool
	err    error

	width, height int
}

func newWatchModel(ctx context.Context, opts pipeline.Options, tick time.Duration) (watchModel, error) {
	if tick <= 0 {
		tick = defaultTick
	}
	m := watchModel{ctx: ctx, opts: opts, tick: tick, batch: opts.Batch, width: 80, height: 24}
	if err := m.restart(opts.Seed); err != nil {
		return m, err
	}
	return m, nil
}

// restart builds a fresh engine. A zero seed picks a random one.
func (m *watchModel) restart(seed uint64) error {
	opts := m.opts
	opts.Seed = pipeline.ResolveSeed(seed)
	e, err := pipeline.NewEngine(opts)
	if err != nil {
		return err
	}
	m.engine, m.seed, m.runID = e, opts.Seed, uuid.NewString()
	m.done, m.paused = false, false
	return nil
}

func (m watchModel) nextTick() tea.Cmd {
	return tea.Tick(m.tick, func(t time.Time) tea.Msg { return watchTickMsg(t) })
}

func (m watchModel) Init() tea.Cmd {
	return m.nextTick()
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ", "p":
			m.paused = !m.paused
		case "+", "=":
			m.batch = min(m.batch*2, pipeline.MaxBatch)
		case "-", "_":
			m.batch = max(m.batch/2, 1)
		case "r":
			if err := m.restart(0); err != nil {
				m.err = err
				return m, tea.Quit
			}
		}
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case watchTickMsg:
		if !m.paused && !m.done {
			m.advance()
			if m.err != nil {
				return m, tea.Quit
			}
		}
		return m, m.nextTick()
	}
	return m, nil
}

// advance runs one batch, clipped to the walk budget, and marks the run
// done once it stops.
func (m *watchModel) advance() {
	n := m.batch
	if m.opts.MaxWalks > 0 {
		n = min(n, m.opts.MaxWalks-m.engine.Stats().Walks)
	}
	if n > 0 {
		if _, err := pipeline.Step(m.ctx, m.engine, n, m.runID); err != nil {
			if m.ctx.Err() == nil {
				m.err = err
			}
			return
		}
	}
	if m.engine.Reached(m.opts.Threshold) ||
		(m.opts.MaxWalks > 0 && m.engine.Stats().Walks >= m.opts.MaxWalks) {
		m.done = true
	}
}

// gridCols is the number of two-column cells that fit the terminal.
func (m watchModel) gridCols() int {
	cols := min(m.width/2, m.height-watchChromeRows)
	return max(cols, minWatchCols)
}

func (m watchModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(fmt.Sprintf("dla · r=%d · seed %d", m.engine.Radius(), m.seed)))
	b.WriteString("\n\n")
	b.WriteString(render.Terminal(m.engine.Grid(), m.gridCols()))
	b.WriteString("\n\n")

	status := fmt.Sprintf("density %.3f / %.2f · %d sites · batch %d",
		m.engine.Density(), m.opts.Threshold, m.engine.ClusterLen(), m.batch)
	switch {
	case m.done:
		b.WriteString(watchDoneStyle.Render("done") + " " + watchStatusStyle.Render(status))
	case m.paused:
		b.WriteString(StyleWarning.Render("paused") + " " + watchStatusStyle.Render(status))
	default:
		b.WriteString(watchStatusStyle.Render(status))
	}
	b.WriteString("\n")

	st := m.engine.Stats()
	b.WriteString(watchDimStyle.Render(fmt.Sprintf("%d walks · %d stuck · %d abandoned", st.Walks, st.Stuck, st.Abandoned())))
	b.WriteString("\n")
	b.WriteString(watchDimStyle.Render("space pause  +/- batch  r restart  q quit"))

	return b.String()
}
