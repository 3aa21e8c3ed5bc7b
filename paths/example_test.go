// File: paths/example_test.go
package paths_test

import (
	"fmt"

	"github.com/katalvlaran/knightpath/board"
	"github.com/katalvlaran/knightpath/explore"
	"github.com/katalvlaran/knightpath/paths"
)

// ExampleEnumerate demonstrates reconstructing every shortest path for
// a three-move query on a standard board.
// Scenario:
//
//   - 8×8 board, start (1,1), target (4,3): minimal distance 3
//   - Eight distinct shortest paths, returned in lexicographic order
//
// Complexity: O(Σ path lengths).
func ExampleEnumerate() {
	b, _ := board.New(8, 8)
	start := board.Cell{Row: 1, Col: 1}
	target := board.Cell{Row: 4, Col: 3}

	res, _ := explore.Explore(b, start, target)
	all, _ := paths.Enumerate(res, start, target)

	fmt.Println("paths:", len(all))
	fmt.Println("first:", all[0])
	fmt.Println("last: ", all[len(all)-1])

	// Output:
	// paths: 8
	// first: 1,1 -> 0,3 -> 2,2 -> 4,3
	// last:  1,1 -> 3,2 -> 5,1 -> 4,3
}

// ExampleSeq demonstrates sampling from the lazy sequence: only the
// drawn paths are ever materialized, and breaking out abandons the
// rest of the walk.
func ExampleSeq() {
	b, _ := board.New(8, 8)
	start := board.Cell{Row: 0, Col: 0}
	target := board.Cell{Row: 7, Col: 7}

	res, _ := explore.Explore(b, start, target)
	n, _ := paths.Count(res, start, target)
	fmt.Println("total:", n)

	seq, _ := paths.Seq(res, start, target)
	sampled := 0
	for p := range seq {
		fmt.Println(p)
		if sampled++; sampled == 2 {
			break
		}
	}

	// Output:
	// total: 108
	// 0,0 -> 1,2 -> 0,4 -> 1,6 -> 3,5 -> 5,6 -> 7,7
	// 0,0 -> 1,2 -> 0,4 -> 1,6 -> 3,7 -> 5,6 -> 7,7
}
