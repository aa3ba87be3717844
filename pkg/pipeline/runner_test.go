package pipeline

import (
	"bytes"
	"context"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/dla/pkg/aggregate"
	"github.com/matzehuels/dla/pkg/cache"
	"github.com/matzehuels/dla/pkg/errors"
	"github.com/matzehuels/dla/pkg/lattice"
	"github.com/matzehuels/dla/pkg/render"
)

func newTestRunner(t *testing.T) *Runner {
	t.Helper()
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	r := NewRunner(c, nil, log.New(&bytes.Buffer{}))
	t.Cleanup(func() { r.Close() })
	return r
}

func TestNewRunnerDefaults(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	if r.Cache == nil || r.Keyer == nil || r.Logger == nil {
		t.Errorf("NewRunner left nil fields: %+v", r)
	}
}

func TestRunnerCachesSeededRuns(t *testing.T) {
	r := newTestRunner(t)
	ctx := context.Background()
	opts := Options{Radius: 8, Seed: 21, Threshold: 0.15}

	first, hit, err := r.GrowWithCacheInfo(ctx, opts)
	if err != nil {
		t.Fatal(err)
	}
	if hit {
		t.Fatal("first run cannot be a cache hit")
	}

	second, hit, err := r.GrowWithCacheInfo(ctx, opts)
	if err != nil {
		t.Fatal(err)
	}
	if !hit {
		t.Fatal("second run with the same seed should hit the cache")
	}
	if second.ID == first.ID {
		t.Error("every run gets its own id")
	}
	if second.Stop != StopThreshold || second.Seed != 21 {
		t.Errorf("cached run stop %q seed %d", second.Stop, second.Seed)
	}
	if len(second.Snapshot.Cluster) != len(first.Snapshot.Cluster) {
		t.Fatalf("cached cluster has %d sites, want %d", len(second.Snapshot.Cluster), len(first.Snapshot.Cluster))
	}
	for i, p := range first.Snapshot.Cluster {
		if second.Snapshot.Cluster[i] != p {
			t.Fatalf("cluster[%d] differs", i)
		}
	}

	opts.Refresh = true
	if _, hit, _ := r.GrowWithCacheInfo(ctx, opts); hit {
		t.Error("Refresh must skip the lookup")
	}
}

func TestRunnerSeededRunsReproducible(t *testing.T) {
	ctx := context.Background()
	opts := Options{Radius: 8, Seed: 4, Threshold: 0.15}

	a, err := NewRunner(nil, nil, nil).Grow(ctx, opts)
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewRunner(nil, nil, nil).Grow(ctx, opts)
	if err != nil {
		t.Fatal(err)
	}
	if a.Snapshot.Stats != b.Snapshot.Stats || len(a.Snapshot.Cluster) != len(b.Snapshot.Cluster) {
		t.Error("same seed should reproduce the same run")
	}
}

func TestRunnerRandomSeedBypassesCache(t *testing.T) {
	r := newTestRunner(t)
	ctx := context.Background()
	opts := Options{Radius: 6, Threshold: 0.15}

	first, _, err := r.GrowWithCacheInfo(ctx, opts)
	if err != nil {
		t.Fatal(err)
	}
	if first.Seed == 0 {
		t.Error("the resolved seed should be reported")
	}
	if _, hit, _ := r.GrowWithCacheInfo(ctx, opts); hit {
		t.Error("random-seed runs must not hit the cache")
	}
}

func TestRunnerRenderCache(t *testing.T) {
	r := newTestRunner(t)
	ctx := context.Background()
	run, err := r.Grow(ctx, Options{Radius: 6, Seed: 2, Threshold: 0.15})
	if err != nil {
		t.Fatal(err)
	}

	opts := Options{Formats: []string{render.FormatTXT, render.FormatSVG}}
	first, hit, err := r.RenderWithCacheInfo(ctx, run.Snapshot, opts)
	if err != nil {
		t.Fatal(err)
	}
	if hit {
		t.Error("first render cannot be cached")
	}
	second, hit, err := r.RenderWithCacheInfo(ctx, run.Snapshot, opts)
	if err != nil {
		t.Fatal(err)
	}
	if !hit {
		t.Error("second render should come from the cache")
	}
	if !bytes.Equal(first[render.FormatSVG], second[render.FormatSVG]) {
		t.Error("cached svg differs from rendered svg")
	}

	opts.Scale = 8
	if _, hit, _ := r.RenderWithCacheInfo(ctx, run.Snapshot, opts); hit {
		t.Error("a different scale must miss")
	}
}

func TestRunnerRenderChecksSnapshotCanvas(t *testing.T) {
	r := newTestRunner(t)
	seed := lattice.Point{X: 2048, Y: 2048}
	snap := aggregate.Snapshot{Radius: 2048, Seed: seed, Cluster: []lattice.Point{seed}}

	// The snapshot's radius applies, not the one in the options.
	opts := Options{Radius: 8, Formats: []string{render.FormatPNG}}
	_, err := r.Render(context.Background(), snap, opts)
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("error = %v, want INVALID_INPUT", err)
	}
}

func TestExecute(t *testing.T) {
	r := newTestRunner(t)
	res, err := r.Execute(context.Background(), Options{
		Radius:    8,
		Seed:      9,
		Threshold: 0.2,
		Formats:   []string{render.FormatTXT, render.FormatJSON},
	})
	if err != nil {
		t.Fatal(err)
	}

	if res.ID == "" || res.SnapshotHash == "" {
		t.Error("missing run id or snapshot hash")
	}
	if res.Stop != StopThreshold || res.Snapshot.Density <= 0.2 {
		t.Errorf("stop %q density %v", res.Stop, res.Snapshot.Density)
	}
	if len(res.Artifacts) != 2 {
		t.Errorf("artifacts = %d, want 2", len(res.Artifacts))
	}
	if res.CacheInfo.GrowHit || res.CacheInfo.RenderHit {
		t.Error("fresh cache cannot hit")
	}
}

func TestExecuteInvalidOptions(t *testing.T) {
	if _, err := NewRunner(nil, nil, nil).Execute(context.Background(), Options{Radius: -1}); err == nil {
		t.Error("invalid radius should fail")
	}
}
