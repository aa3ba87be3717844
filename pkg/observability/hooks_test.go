package observability

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	s := NoopSimulationHooks{}
	s.OnRunStart(ctx, "run-1", 64)
	s.OnWalk(ctx, "run-1", "stuck", 812, 17)
	s.OnRunComplete(ctx, "run-1", 300, 0.12, time.Second, nil)

	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "snapshot")
	c.OnCacheMiss(ctx, "artifact")
	c.OnCacheSet(ctx, "artifact", 2048)

	h := NoopHTTPHooks{}
	h.OnRequest(ctx, "POST", "/walks")
	h.OnResponse(ctx, "POST", "/walks", 200, time.Millisecond)
	h.OnError(ctx, "GET", "/snapshot.png", errors.New("boom"))
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	if _, ok := Simulation().(NoopSimulationHooks); !ok {
		t.Error("Simulation() should default to NoopSimulationHooks")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should default to NoopCacheHooks")
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("HTTP() should default to NoopHTTPHooks")
	}

	sim := &recordingSimulation{}
	SetSimulationHooks(sim)
	if Simulation() != sim {
		t.Error("SetSimulationHooks did not register")
	}

	cache := &testCacheHooks{}
	SetCacheHooks(cache)
	if Cache() != cache {
		t.Error("SetCacheHooks did not register")
	}

	web := &testHTTPHooks{}
	SetHTTPHooks(web)
	if HTTP() != web {
		t.Error("SetHTTPHooks did not register")
	}

	Simulation().OnWalk(context.Background(), "r", "stuck", 3, 2)
	if sim.walks != 1 {
		t.Errorf("registered hooks received %d walks, want 1", sim.walks)
	}

	Reset()
	if _, ok := Simulation().(NoopSimulationHooks); !ok {
		t.Error("Reset() should restore NoopSimulationHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	custom := &recordingSimulation{}
	SetSimulationHooks(custom)
	SetSimulationHooks(nil)
	SetCacheHooks(nil)
	SetHTTPHooks(nil)

	if Simulation() != custom {
		t.Error("SetSimulationHooks(nil) should be ignored")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("SetCacheHooks(nil) should keep the default")
	}
}

type recordingSimulation struct {
	NoopSimulationHooks
	walks int
}

func (r *recordingSimulation) OnWalk(context.Context, string, string, int, int) { r.walks++ }

type testCacheHooks struct{ NoopCacheHooks }
type testHTTPHooks struct{ NoopHTTPHooks }
