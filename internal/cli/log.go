// Package cli implements the dla command-line interface.
//
// Commands grow clusters, animate them in the terminal, preview launch
// rings, re-render saved snapshots and serve an engine over HTTP. The CLI is
// built with cobra; status lines use lipgloss and logs go through
// charmbracelet/log.
//
// # Commands
//
//   - grow: run walks until the density threshold, then write artifacts
//   - watch: animate a run in the terminal
//   - ring: preview the start ring for a radius and epsilon
//   - render: re-render a saved snapshot.json
//   - serve: expose an engine over HTTP
//   - cache: manage the run and artifact cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging; DLA_LOG_LEVEL
// (debug, info, warn, error) overrides the default level. Loggers are passed
// through context.Context so helpers can log without a CLI handle.
package cli

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// logLevelEnv names the variable that overrides the default log level.
const logLevelEnv = "DLA_LOG_LEVEL"

// newLogger returns a logger writing to w with "15:04:05.00" timestamps.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// envLevel returns the level named by DLA_LOG_LEVEL, or def when the
// variable is unset or invalid.
func envLevel(def log.Level) log.Level {
	v := os.Getenv(logLevelEnv)
	if v == "" {
		return def
	}
	level, err := log.ParseLevel(v)
	if err != nil {
		return def
	}
	return level
}

// progress logs how long an operation took once it is done.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg with the elapsed time, e.g. "Grew 1804 sites took=1.234s".
func (p *progress) done(msg string, keyvals ...any) {
	keyvals = append(keyvals, "took", time.Since(p.start).Round(time.Millisecond))
	p.logger.Info(msg, keyvals...)
}

type ctxKey struct{}

// withLogger returns a copy of ctx carrying l.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// loggerFromContext returns the logger in ctx, or log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(ctxKey{}).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
