// Package dot serializes a PathGraph into Graphviz DOT text that any
// standard DOT consumer can render, with byte-identical output for
// identical input.
//
// What
//
//   - Marshal(g): a digraph with one node statement per cell of the
//     PathGraph (ID and label "row,col") and one edge statement per
//     predecessor→successor relation, directed from lower to higher
//     distance.
//   - WithBoard(b): swap the node section for the full board rendered
//     as a neato-positioned checkerboard of filled squares, matching
//     the classic chessboard look.
//   - WithPathColors(ps): swap the plain edge section for one colored
//     edge chain per shortest path; colors walk the HSV hue wheel at
//     fixed saturation and value, so they too are reproducible.
//   - WithName(s): the digraph identifier (default "knightpath").
//
// Determinism
//
//	Emission follows the PathGraph's sorted node and edge order, board
//	cells are written row-major, and path colors depend only on the
//	path index. No map is iterated while writing. Marshal is a pure
//	function: same input, same bytes.
//
// Errors
//
//   - ErrGraphNil    if the graph pointer is nil.
//   - ErrEmptyGraph  if the graph holds no nodes.
//
// Usage
//
//	g, _ := paths.NewGraph(res, start, target)
//	text, err := dot.Marshal(g)
//
//	// Full rendering, original style:
//	all, _ := paths.Enumerate(res, start, target)
//	text, err = dot.Marshal(g, dot.WithBoard(b), dot.WithPathColors(all))
package dot
