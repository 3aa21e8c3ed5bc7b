// Package paths turns an exploration result into concrete answers:
// every shortest move sequence, their count, and the PathGraph of
// cells participating in at least one shortest path.
//
// What
//
//   - Enumerate: eager, memoized reconstruction of every shortest
//     start→target path, duplicate-free, ordered lexicographically by
//     cells (first point of divergence).
//   - Seq: the same paths in the same order as a lazy iter.Seq, a
//     restartable sequence that never materializes more than the
//     consumer draws. Break out early to cap the work.
//   - Count: the number of shortest paths via a per-cell accumulation
//     over the DAG, without building a single path.
//   - NewGraph: the PathGraph, the predecessor relation restricted to
//     ancestors of the target, nodes and edges in a fixed sorted order
//     that downstream serialization reproduces byte for byte.
//
// Why
//
//   - The predecessor relation is a DAG, not a tree: a cell can sit on
//     many shortest routes. Memoizing per-cell partial path sets keeps
//     reconstruction linear in output size instead of exponential in
//     the path count.
//   - The number of shortest paths grows combinatorially with board
//     size; that is a property of the problem, not a defect. The lazy
//     sequence exists so samplers and counters never pay for full
//     materialization.
//
// Errors
//
//   - ErrResultNil        if the exploration result pointer is nil.
//   - ErrStartMismatch    if start is not the result's origin cell.
//   - ErrTargetNotReached if the target has no distance entry, kept
//     distinct from an empty path set by design.
//
// Usage
//
//	all, err := paths.Enumerate(res, start, target)   // everything
//	n, err := paths.Count(res, start, target)         // just the count
//
//	seq, err := paths.Seq(res, start, target)         // first three only
//	for p := range seq {
//	    fmt.Println(p)
//	    if sampled++; sampled == 3 { break }
//	}
//
//	g, err := paths.NewGraph(res, start, target)      // for dot.Marshal
package paths
