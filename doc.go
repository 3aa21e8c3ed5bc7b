// Package knightpath computes, for a knight on a rectangular chessboard,
// every minimum-length move sequence between two cells, and exports the
// underlying all-shortest-paths structure as a Graphviz DOT digraph.
//
// 🚀 What is knightpath?
//
//	A small, deterministic library built from four focused packages:
//		• board/   : Cell, the eight knight Moves, bounds-checked Board
//		• explore/ : layered BFS producing distances and full predecessor sets
//		• paths/   : exhaustive shortest-path enumeration (eager or lazy) and
//		             the PathGraph of cells participating in any shortest path
//		• dot/     : byte-stable DOT serialization, optional checkerboard
//		             background and per-path edge coloring
//
// ✨ Why choose knightpath?
//
//   - All shortest paths, not just one: the predecessor relation is a DAG,
//     and every route through it is reconstructed
//   - Deterministic end to end: sorted neighbors, lexicographic path
//     order, byte-identical DOT for identical input
//   - Lazy when you need it: paths stream from an iter.Seq, so counting
//     or sampling never pays for full materialization
//   - Pure Go core: no cgo, no globals; every operation is a function of
//     its inputs
//
// Quick ASCII example (8×8 board, start a, target t, distance 2):
//
//	. . . . .        a = (1,1)
//	. a . . .        x = (2,3), y = (3,1), two of the midpoints
//	. . . x .        t = (4,3)
//	. y . . .
//	. . . t .
//
// Typical pipeline:
//
//	b, _ := board.New(8, 8)
//	res, _ := explore.Explore(b, start, target)
//	all, _ := paths.Enumerate(res, start, target)
//	g, _ := paths.NewGraph(res, start, target)
//	text, _ := dot.Marshal(g)
//
// The cmd/knightpath CLI wires the same pipeline behind four positional
// integers and writes the DOT file for you.
package knightpath
