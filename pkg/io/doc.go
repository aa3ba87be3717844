// Package io reads and writes aggregation snapshots as JSON files.
//
// A snapshot file wraps [aggregate.Snapshot] with a format version:
//
//	{
//	  "version": 1,
//	  "radius": 3,
//	  "seed": {"x": 3, "y": 3},
//	  "epsilon": 2.2,
//	  "cluster": [{"x": 3, "y": 3}, {"x": 3, "y": 2}],
//	  "density": 0.0707,
//	  "stats": {"walks": 1, "stuck": 1, ...}
//	}
//
// The cluster is authoritative. The occupancy grid is never stored; callers
// rebuild it with [aggregate.Snapshot.Grid]. [ReadJSON] validates the
// structural invariants of the decoded snapshot, so a file that loads
// successfully can be rendered or resumed without further checks.
//
// Use [ExportJSON] and [ImportJSON] for file paths, [WriteJSON] and
// [ReadJSON] for arbitrary streams.
package io
