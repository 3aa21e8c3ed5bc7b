// Package board models the rectangular chessboard a knight moves on:
// cells, the fixed knight move table, and bounds validation.
//
// What
//
//   - Cell: a comparable (Row, Col) pair with row-major ordering (Less)
//     and a "row,col" String form reused as the DOT node identifier.
//   - Move / KnightMoves: the eight fixed knight offsets
//     {(±1,±2),(±2,±1)}, declared in row-major order.
//   - Board: Width×Length rectangle, immutable once built.
//   - Neighbors(c): the legal knight destinations from c that stay on
//     the board, returned sorted in row-major order.
//
// Why
//
//   - The explorer and enumerator treat the board as a pure adjacency
//     oracle; all dimension and bounds policy lives here, so invalid
//     coordinates are rejected before a search starts rather than
//     discovered mid-traversal.
//   - Sorted neighbor order is the root of every determinism guarantee
//     downstream (visit order, path order, DOT byte-stability).
//
// Determinism
//
//	KnightMoves is iterated in declaration order and the table is sorted
//	row-major, so Neighbors always yields the same slice for the same
//	cell and board.
//
// Complexity
//
//   - Contains / Check: O(1)
//   - Neighbors: O(1) (at most eight candidates)
//
// Errors
//
//   - ErrNonPositiveDimension  if New is given width ≤ 0 or length ≤ 0.
//   - ErrCellOutOfBounds       if a cell lies outside the board.
//
// Usage
//
//	b, err := board.New(8, 8)
//	if err != nil { ... }
//	nbrs, err := b.Neighbors(board.Cell{Row: 0, Col: 0})
//	// nbrs == [(1,2) (2,1)]
package board
