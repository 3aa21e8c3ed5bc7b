// Package explore provides the all-shortest-paths breadth-first explorer
// for a knight on a rectangular board, returning minimal distances and
// the complete predecessor relation.
//
// What
//
//   - Expand cells in strict distance layers from a start cell: every
//     cell at distance d before any at distance d+1.
//   - Returns a Result containing:
//   - Dist: cell → distance (moves) from start, only for cells found
//     at or before the target's distance
//   - Preds: cell → every predecessor on some shortest path to it,
//     sorted row-major
//   - TargetDist: the minimal move count start → target
//   - Supports functional hooks: OnLayer (per distance layer) and
//     OnVisit (per expanded cell; may abort with an error).
//   - Honors context cancellation between cell expansions.
//
// Why
//
//   - A single-parent BFS tree loses the "all shortest paths"
//     requirement: the predecessor relation is a DAG. Recording every
//     same-layer rediscovery as an extra predecessor preserves each
//     route of minimal length.
//   - Stopping once the target's layer opens bounds the work to cells
//     no farther than the target.
//
// Determinism
//
//	Each layer is sorted row-major before expansion and board.Neighbors
//	yields sorted destinations, so discovery order, predecessor slice
//	order, and the whole Result are reproducible run to run.
//
// Complexity (W, L = board dimensions)
//
//   - Time:   O(W×L) cell visits, ≤ 8 neighbor checks each
//   - Memory: O(W×L) for Dist, Preds, and the frontier
//
// Edge cases
//
//   - start == target: TargetDist 0, no predecessors, no error.
//   - Frontier exhausted first (3×3 center, parity-dead targets):
//     ErrUnreachable, an explicit outcome, never an empty Result.
//
// Usage
//
//	res, err := explore.Explore(b, start, target)
//	if err != nil {
//	    // ErrBoardNil, wrapped board.ErrCellOutOfBounds (start or
//	    // target named), ErrUnreachable, ctx error, or a hook error
//	}
//	fmt.Println("minimal moves:", res.TargetDist)
//
// Errors
//
//   - ErrBoardNil               if the board pointer is nil.
//   - board.ErrCellOutOfBounds  (wrapped) if start or target is off-board.
//   - ErrUnreachable            if the frontier empties before the target.
//   - Context and wrapped OnVisit errors.
package explore
