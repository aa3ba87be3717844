// Package pkg holds the libraries behind the dla command.
//
// # Overview
//
// dla grows diffusion-limited aggregation clusters: random walkers launch
// from a ring around a seed site, wander the square lattice, and stick when
// they reach the cluster's perimeter. The pkg directory is organized in
// three layers:
//
//  1. Core: [lattice] geometry and [aggregate], the walk-and-stick engine.
//  2. Driving: [pipeline] grows runs in batches and polls density, backed by
//     [cache] (file, redis) and configured by [config].
//  3. Output: [render] (txt, svg, png, dot, pdf) and [io] (snapshot JSON).
//
// Cross-cutting: [errors] (structured error codes), [observability] (hooks),
// [buildinfo] (version).
//
// # Data Flow
//
//	pipeline.Options
//	      ↓
//	aggregate.New + BuildRing   (start ring of radius r)
//	      ↓
//	Walk, Walk, ...             (batches, density polled in between)
//	      ↓
//	aggregate.Snapshot
//	      ↓
//	render / io                 (artifacts, snapshot.json)
//
// # Quick Start
//
//	e, _ := aggregate.New(64, aggregate.WithSeed(7))
//	_ = e.BuildRing(64)
//	for !e.Reached(0.3) {
//	    if _, err := e.Walk(); err != nil {
//	        return err
//	    }
//	}
//	png, _ := render.Render(e.Snapshot(), render.FormatPNG, render.Options{})
//
// Or with caching and artifacts in one call:
//
//	runner := pipeline.NewRunner(cache.NewNullCache(), nil, nil)
//	result, _ := runner.Execute(ctx, pipeline.Options{Radius: 64, Seed: 7})
//
// # Testing
//
//	go test ./pkg/...           # All tests
//	go test ./pkg/aggregate     # Engine only
//	go test -run Example ./...  # Examples only
//
// [lattice]: https://pkg.go.dev/github.com/matzehuels/dla/pkg/lattice
// [aggregate]: https://pkg.go.dev/github.com/matzehuels/dla/pkg/aggregate
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/dla/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/dla/pkg/cache
// [config]: https://pkg.go.dev/github.com/matzehuels/dla/pkg/config
// [render]: https://pkg.go.dev/github.com/matzehuels/dla/pkg/render
// [io]: https://pkg.go.dev/github.com/matzehuels/dla/pkg/io
// [errors]: https://pkg.go.dev/github.com/matzehuels/dla/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/dla/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/dla/pkg/buildinfo
package pkg
