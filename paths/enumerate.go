// Package paths reconstructs every shortest move sequence from an
// exploration result, eagerly or as a lazy restartable sequence, and
// builds the PathGraph of cells participating in any shortest path.
package paths

import (
	"fmt"
	"iter"
	"sort"

	"github.com/katalvlaran/knightpath/board"
	"github.com/katalvlaran/knightpath/explore"
)

// validate runs the shared pre-checks for every operation in this
// package and returns the ancestor set of target: each cell lying on
// at least one shortest start→target path.
func validate(res *explore.Result, start, target board.Cell) (map[board.Cell]bool, error) {
	if res == nil {
		return nil, ErrResultNil
	}
	if d, ok := res.Dist[start]; !ok || d != 0 {
		return nil, fmt.Errorf("%w: %s", ErrStartMismatch, start)
	}
	if _, ok := res.Dist[target]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrTargetNotReached, target)
	}

	// Backward reachability over the predecessor relation. Every
	// predecessor of an ancestor is one move closer to start and on a
	// shortest path itself, so the walk stays inside the DAG.
	anc := map[board.Cell]bool{target: true}
	stack := []board.Cell{target}
	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, p := range res.Preds[c] {
			if !anc[p] {
				anc[p] = true
				stack = append(stack, p)
			}
		}
	}

	return anc, nil
}

// successors builds the forward adjacency of the PathGraph from the
// predecessor relation, each successor list sorted row-major.
func successors(res *explore.Result, anc map[board.Cell]bool) map[board.Cell][]board.Cell {
	succ := make(map[board.Cell][]board.Cell, len(anc))
	for c := range anc {
		for _, p := range res.Preds[c] {
			succ[p] = append(succ[p], c)
		}
	}
	for _, s := range succ {
		sort.Slice(s, func(i, j int) bool { return s[i].Less(s[j]) })
	}

	return succ
}

// Enumerate returns every shortest path from start to target, ordered
// lexicographically by cells (first point of divergence) and free of
// duplicates.
//
// Partial path sets are memoized per cell, so shared DAG ancestors are
// expanded once no matter how many successors reuse them; without the
// memo the walk would repeat work exponentially in the path count.
//
// The result can be combinatorially large on big boards; callers that
// only need a sample or a count should prefer Seq or Count.
//
// Complexity: O(Σ path lengths) to materialize + O(P log P) to order.
func Enumerate(res *explore.Result, start, target board.Cell) ([]Path, error) {
	anc, err := validate(res, start, target)
	if err != nil {
		return nil, err
	}

	memo := make(map[board.Cell][]Path, len(anc))
	out := prefixes(res, start, target, memo)

	// The backward walk groups paths by late cells first; one final
	// sort establishes the promised lexicographic order.
	sort.Slice(out, func(i, j int) bool { return out[i].less(out[j]) })

	return out, nil
}

// prefixes returns every shortest path from start to c, memoized per
// cell. Base case: the single one-cell path at the start itself.
func prefixes(res *explore.Result, start, c board.Cell, memo map[board.Cell][]Path) []Path {
	if got, ok := memo[c]; ok {
		return got
	}
	if c == start {
		p := []Path{{start}}
		memo[c] = p

		return p
	}
	var out []Path
	for _, pred := range res.Preds[c] {
		for _, prefix := range prefixes(res, start, pred, memo) {
			p := make(Path, len(prefix), len(prefix)+1)
			copy(p, prefix)
			out = append(out, append(p, c))
		}
	}
	memo[c] = out

	return out
}

// Seq returns a lazy, restartable sequence over the same paths as
// Enumerate, in the same lexicographic order. Nothing is materialized
// ahead of the consumer: breaking out of the range abandons the walk,
// and re-ranging the returned Seq restarts it from the first path.
//
// Each yielded Path is a fresh copy the consumer may keep or mutate.
func Seq(res *explore.Result, start, target board.Cell) (iter.Seq[Path], error) {
	anc, err := validate(res, start, target)
	if err != nil {
		return nil, err
	}
	succ := successors(res, anc)

	return func(yield func(Path) bool) {
		// Forward depth-first walk; successor lists are sorted, so
		// complete paths surface in lexicographic order by themselves.
		prefix := make(Path, 0, res.TargetDist+1)
		var walk func(c board.Cell) bool
		walk = func(c board.Cell) bool {
			prefix = append(prefix, c)
			defer func() { prefix = prefix[:len(prefix)-1] }()
			if c == target {
				out := make(Path, len(prefix))
				copy(out, prefix)

				return yield(out)
			}
			for _, next := range succ[c] {
				if !walk(next) {
					return false
				}
			}

			return true
		}
		walk(start)
	}, nil
}

// Count returns the number of distinct shortest paths from start to
// target without materializing any of them: a per-cell path-count
// accumulation over the ancestor DAG in distance order.
//
// Complexity: O(N log N + E) for N ancestors and E predecessor links.
func Count(res *explore.Result, start, target board.Cell) (int, error) {
	anc, err := validate(res, start, target)
	if err != nil {
		return 0, err
	}

	order := make([]board.Cell, 0, len(anc))
	for c := range anc {
		order = append(order, c)
	}
	sort.Slice(order, func(i, j int) bool {
		if res.Dist[order[i]] != res.Dist[order[j]] {
			return res.Dist[order[i]] < res.Dist[order[j]]
		}

		return order[i].Less(order[j])
	})

	counts := make(map[board.Cell]int, len(anc))
	counts[start] = 1
	for _, c := range order {
		for _, p := range res.Preds[c] {
			counts[c] += counts[p]
		}
	}

	return counts[target], nil
}
