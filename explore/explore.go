// Package explore performs layered breadth-first search over a knight's
// move graph, computing minimal distances and, per cell, the full set of
// predecessors that lie on some shortest path: the structure from which
// every shortest move sequence can be reconstructed.
package explore

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/knightpath/board"
)

// walker encapsulates mutable exploration state.
type walker struct {
	board  *board.Board
	opts   Options
	target board.Cell
	res    *Result
}

// Explore runs a layered breadth-first search on b from start toward
// target, applying any number of functional Options.
// Returns ErrBoardNil for a nil board, board.ErrCellOutOfBounds if
// start or target lies off the board (checked independently, before
// the search begins), ErrUnreachable if the frontier empties before
// target is discovered, or any user-supplied hook or context error.
//
// Cells are processed in strict distance layers: every cell at
// distance d is expanded before any cell at distance d+1, so a cell's
// distance and predecessor set are final once its layer closes. A
// neighbor rediscovered within the same layer gains an additional
// predecessor without changing its distance; that is what makes the
// result capture all shortest paths rather than one.
//
// Complexity: O(W×L) cell visits, ≤ 8 neighbor checks each.
// Memory: O(W×L) for the distance and predecessor maps.
func Explore(b *board.Board, start, target board.Cell, opts ...Option) (*Result, error) {
	if b == nil {
		return nil, ErrBoardNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// Validate both endpoints up front; a bounds failure must never
	// surface mid-search.
	if err := b.Check(start); err != nil {
		return nil, fmt.Errorf("explore: start: %w", err)
	}
	if err := b.Check(target); err != nil {
		return nil, fmt.Errorf("explore: target: %w", err)
	}

	n := b.Width * b.Length
	w := &walker{
		board:  b,
		opts:   o,
		target: target,
		res: &Result{
			Dist:  make(map[board.Cell]int, n),
			Preds: make(map[board.Cell][]board.Cell, n),
		},
	}

	return w.run(start)
}

// run seeds the frontier with start at distance 0 and processes one
// full layer per iteration until the target's layer opens or the
// frontier is exhausted.
func (w *walker) run(start board.Cell) (*Result, error) {
	w.res.Dist[start] = 0
	layer := []board.Cell{start}

	for depth := 0; len(layer) > 0; depth++ {
		w.opts.OnLayer(depth, len(layer))

		// The target's predecessors all live in layer depth-1, which is
		// fully expanded by now; stop before expanding the target's own
		// layer.
		if d, ok := w.res.Dist[w.target]; ok && d == depth {
			w.res.TargetDist = depth
			return w.res, nil
		}

		next, err := w.expand(layer, depth)
		if err != nil {
			return nil, err
		}
		layer = next
	}

	return nil, fmt.Errorf("%w: target %s", ErrUnreachable, w.target)
}

// expand visits every cell of the current layer and builds the next
// one. First discovery of a neighbor assigns its distance and first
// predecessor; a rediscovery from elsewhere in the same layer appends
// an extra predecessor. Cells finalized in earlier layers are skipped.
func (w *walker) expand(layer []board.Cell, depth int) ([]board.Cell, error) {
	next := make([]board.Cell, 0, len(layer)*len(board.KnightMoves))
	for _, c := range layer {
		// cancellation check (once per expanded cell)
		select {
		case <-w.opts.Ctx.Done():
			return nil, w.opts.Ctx.Err()
		default:
		}

		if err := w.opts.OnVisit(c, depth); err != nil {
			return nil, fmt.Errorf("explore: OnVisit error at %s: %w", c, err)
		}

		nbrs, err := w.board.Neighbors(c)
		if err != nil {
			return nil, fmt.Errorf("explore: neighbors of %s: %w", c, err)
		}
		for _, nbr := range nbrs {
			d, seen := w.res.Dist[nbr]
			switch {
			case !seen:
				w.res.Dist[nbr] = depth + 1
				w.res.Preds[nbr] = []board.Cell{c}
				next = append(next, nbr)
			case d == depth+1:
				// Same-layer rediscovery: one more shortest route in.
				w.res.Preds[nbr] = append(w.res.Preds[nbr], c)
			}
		}
	}
	// Layers are expanded in row-major order, which keeps every
	// appended predecessor slice sorted as a side effect.
	sort.Slice(next, func(i, j int) bool { return next[i].Less(next[j]) })

	return next, nil
}
