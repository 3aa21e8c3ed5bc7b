// Package paths defines the path and path-graph types plus sentinel
// errors for shortest-path enumeration over an exploration result.
package paths

import (
	"errors"
	"strings"

	"github.com/katalvlaran/knightpath/board"
)

// Sentinel errors for enumeration and graph construction.
var (
	// ErrResultNil is returned if a nil exploration result is passed.
	ErrResultNil = errors.New("paths: exploration result is nil")

	// ErrTargetNotReached is returned when the target has no distance
	// entry in the result. It keeps "no paths found" distinct from
	// "never searched": an empty path set is never returned silently.
	ErrTargetNotReached = errors.New("paths: target absent from exploration result")

	// ErrStartMismatch is returned when the given start is not the
	// origin cell of the exploration result (distance 0).
	ErrStartMismatch = errors.New("paths: start is not the exploration origin")
)

// Path is one shortest move sequence: first cell = start, last = target,
// every consecutive pair one legal knight move apart, TargetDist+1 cells
// in total.
type Path []board.Cell

// String renders the path as "r,c -> r,c -> ...".
func (p Path) String() string {
	parts := make([]string, len(p))
	for i, c := range p {
		parts[i] = c.String()
	}

	return strings.Join(parts, " -> ")
}

// less orders paths lexicographically by cells, i.e. by the first point
// of divergence. All paths compared here share length and endpoints.
func (p Path) less(q Path) bool {
	for i := range p {
		if i >= len(q) {
			return false
		}
		if p[i] != q[i] {
			return p[i].Less(q[i])
		}
	}

	return len(p) < len(q)
}

// Edge is one predecessor→successor step of the PathGraph, directed
// from lower to higher distance.
type Edge struct {
	From, To board.Cell
}

// Graph is the PathGraph: the predecessor relation restricted to cells
// that participate in at least one shortest start→target path.
//   - Nodes: sorted ascending by (distance, row, col).
//   - Edges: sorted ascending by (source distance, source row,
//     source col, target row, target col).
//   - Dist: distance from start for every node.
type Graph struct {
	Nodes []board.Cell
	Edges []Edge
	Dist  map[board.Cell]int
}
