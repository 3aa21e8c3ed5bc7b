// Package explore defines tunable options, sentinel errors, and the
// result type for the all-shortest-paths breadth-first explorer.
package explore

import (
	"context"
	"errors"

	"github.com/katalvlaran/knightpath/board"
)

// Sentinel errors for Explore execution.
var (
	// ErrBoardNil is returned if a nil board pointer is passed.
	ErrBoardNil = errors.New("explore: board is nil")

	// ErrUnreachable is returned when the BFS frontier empties before the
	// target is discovered. It is a reportable outcome, not a crash: an
	// isolated start cell or a parity-unreachable target on a small board
	// ends here.
	ErrUnreachable = errors.New("explore: target not reachable from start")
)

// Option configures Explore behavior via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks to customize the exploration.
type Options struct {
	// Ctx allows cancellation and deadlines. The core needs no timeout
	// semantics of its own; honoring a caller's context is free.
	Ctx context.Context

	// OnLayer is called once per BFS layer, before the layer is
	// expanded. Receives the layer's distance from start and its size.
	OnLayer func(depth, size int)

	// OnVisit is called when a cell is expanded. If it returns an
	// error, exploration aborts and propagates that error.
	OnVisit func(c board.Cell, depth int) error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - no-op hooks (OnLayer, OnVisit)
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnLayer: func(int, int) {},
		OnVisit: func(board.Cell, int) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnLayer registers a callback to run as each distance layer opens.
func WithOnLayer(fn func(depth, size int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnLayer = fn
		}
	}
}

// WithOnVisit registers a callback to run as each cell is expanded;
// returning an error from this callback stops the exploration.
func WithOnVisit(fn func(c board.Cell, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// Result holds the outcome of an exploration:
//   - Dist: map from cell to its distance (in moves) from the start,
//     populated only for cells discovered at or before the target's
//     distance. Absent cells are conceptually at infinite distance.
//   - Preds: map from cell to every neighbor one move closer to the
//     start that lies on some shortest path to it. Each slice is sorted
//     row-major and duplicate-free, and is never mutated once the
//     cell's layer has been fully expanded.
//   - TargetDist: the minimal number of moves from start to target.
type Result struct {
	Dist       map[board.Cell]int
	Preds      map[board.Cell][]board.Cell
	TargetDist int
}
