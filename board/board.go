// Package board provides the rectangular chessboard used by knightpath:
// bounds-checked construction, cell validation, and enumeration of legal
// knight moves from a cell.
package board

import "fmt"

// New constructs a Board with the given dimensions.
// Returns ErrNonPositiveDimension if width ≤ 0 or length ≤ 0.
// Complexity: O(1).
func New(width, length int) (*Board, error) {
	if width <= 0 || length <= 0 {
		return nil, fmt.Errorf("%w: got %d×%d", ErrNonPositiveDimension, width, length)
	}

	return &Board{Width: width, Length: length}, nil
}

// Contains reports whether c lies within the board boundaries.
// Complexity: O(1).
func (b *Board) Contains(c Cell) bool {
	return c.Row >= 0 && c.Row < b.Width && c.Col >= 0 && c.Col < b.Length
}

// Check validates c against the board boundaries.
// Returns ErrCellOutOfBounds (wrapped with the offending cell) if c is
// outside the board. Callers validate endpoints with Check before any
// search begins; a failure must never surface mid-traversal.
// Complexity: O(1).
func (b *Board) Check(c Cell) error {
	if !b.Contains(c) {
		return fmt.Errorf("%w: (%s) on %d×%d board", ErrCellOutOfBounds, c, b.Width, b.Length)
	}

	return nil
}

// Neighbors returns every cell reachable from c by one legal knight
// move that stays on the board, in row-major order.
// Returns ErrCellOutOfBounds if c itself is off the board.
// Complexity: O(1), at most eight candidates per call.
func (b *Board) Neighbors(c Cell) ([]Cell, error) {
	if err := b.Check(c); err != nil {
		return nil, err
	}
	out := make([]Cell, 0, len(KnightMoves))
	// KnightMoves is declared in row-major order, so appending in table
	// order keeps the result sorted without an extra pass.
	for _, m := range KnightMoves {
		n := Cell{Row: c.Row + m.DRow, Col: c.Col + m.DCol}
		if b.Contains(n) {
			out = append(out, n)
		}
	}

	return out, nil
}
