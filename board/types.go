// Package board defines core types and sentinel errors for the
// board subpackage of github.com/katalvlaran/knightpath.
package board

import (
	"errors"
	"fmt"
)

// Sentinel errors for board construction and cell validation.
var (
	// ErrNonPositiveDimension indicates a board width or length ≤ 0.
	ErrNonPositiveDimension = errors.New("board: width and length must be positive")
	// ErrCellOutOfBounds indicates a cell outside the board boundaries.
	ErrCellOutOfBounds = errors.New("board: cell out of bounds")
)

// Cell is a single square on the board, addressed by (Row, Col).
// It is a comparable value type: equality and map keying work by
// coordinate pair.
type Cell struct {
	Row, Col int
}

// String renders the cell as "row,col", the form used for DOT node IDs.
func (c Cell) String() string {
	return fmt.Sprintf("%d,%d", c.Row, c.Col)
}

// Less reports whether c precedes other in row-major order.
// Every ordering guarantee in knightpath reduces to this comparison.
func (c Cell) Less(other Cell) bool {
	if c.Row != other.Row {
		return c.Row < other.Row
	}

	return c.Col < other.Col
}

// Move is one knight offset: the destination is (Row+DRow, Col+DCol).
type Move struct {
	DRow, DCol int
}

// KnightMoves lists the eight legal knight offsets {(±1,±2),(±2,±1)},
// in row-major order. The table is fixed and board-independent;
// traversals iterate it in declaration order so neighbor enumeration
// is reproducible.
var KnightMoves = [8]Move{
	{-2, -1}, {-2, 1},
	{-1, -2}, {-1, 2},
	{1, -2}, {1, 2},
	{2, -1}, {2, 1},
}

// Board is a rectangular chessboard of Width rows by Length columns.
// It is immutable once built.
type Board struct {
	Width, Length int
}
