// Package observability lets a binary attach metrics or tracing to dla
// without the simulation packages depending on any backend.
//
// Three hook families exist: simulation runs, cache traffic and the HTTP
// driver. Each has a no-op default. main registers real implementations
// once at startup:
//
//	func main() {
//	    observability.SetSimulationHooks(&promSimulation{})
//	    // ...
//	}
//
// Library code emits through the accessor:
//
//	observability.Simulation().OnRunStart(ctx, runID, radius)
package observability

import (
	"context"
	"sync"
	"time"
)

// SimulationHooks receives events from a growth run.
type SimulationHooks interface {
	// OnRunStart fires once the engine and its start ring are ready.
	OnRunStart(ctx context.Context, runID string, radius int)

	// OnWalk fires after every walk with its outcome ("stuck", "step-limit",
	// "exhausted"), its step count and the number of newly committed sites.
	OnWalk(ctx context.Context, runID, outcome string, steps, added int)

	// OnRunComplete fires when the driver stops, whether by threshold,
	// walk budget, cancellation or error.
	OnRunComplete(ctx context.Context, runID string, walks int, density float64, duration time.Duration, err error)
}

// CacheHooks receives events from cache lookups.
type CacheHooks interface {
	OnCacheHit(ctx context.Context, keyType string)
	OnCacheMiss(ctx context.Context, keyType string)
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// HTTPHooks receives events from the HTTP driver.
type HTTPHooks interface {
	OnRequest(ctx context.Context, method, path string)
	OnResponse(ctx context.Context, method, path string, status int, duration time.Duration)
	OnError(ctx context.Context, method, path string, err error)
}

// NoopSimulationHooks discards all simulation events.
type NoopSimulationHooks struct{}

func (NoopSimulationHooks) OnRunStart(context.Context, string, int)          {}
func (NoopSimulationHooks) OnWalk(context.Context, string, string, int, int) {}
func (NoopSimulationHooks) OnRunComplete(context.Context, string, int, float64, time.Duration, error) {
}

// NoopCacheHooks discards all cache events.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// NoopHTTPHooks discards all HTTP events.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string)                      {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, int, time.Duration) {}
func (NoopHTTPHooks) OnError(context.Context, string, string, error)                 {}

var (
	hooksMu         sync.RWMutex
	simulationHooks SimulationHooks = NoopSimulationHooks{}
	cacheHooks      CacheHooks      = NoopCacheHooks{}
	httpHooks       HTTPHooks       = NoopHTTPHooks{}
)

// SetSimulationHooks registers simulation hooks. A nil value is ignored.
func SetSimulationHooks(h SimulationHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		simulationHooks = h
	}
}

// SetCacheHooks registers cache hooks. A nil value is ignored.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// SetHTTPHooks registers HTTP hooks. A nil value is ignored.
func SetHTTPHooks(h HTTPHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		httpHooks = h
	}
}

// Simulation returns the registered simulation hooks.
func Simulation() SimulationHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return simulationHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// HTTP returns the registered HTTP hooks.
func HTTP() HTTPHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return httpHooks
}

// Reset restores every hook family to its no-op default.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	simulationHooks = NoopSimulationHooks{}
	cacheHooks = NoopCacheHooks{}
	httpHooks = NoopHTTPHooks{}
}
