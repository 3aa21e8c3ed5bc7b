package explore_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/knightpath/board"
	"github.com/katalvlaran/knightpath/explore"
)

// TestExplore_Errors verifies that invalid inputs are rejected before
// any search work happens.
func TestExplore_Errors(t *testing.T) {
	b, _ := board.New(8, 8)
	in := board.Cell{Row: 0, Col: 0}
	out := board.Cell{Row: 9, Col: 0}

	// nil board
	if _, err := explore.Explore(nil, in, in); !errors.Is(err, explore.ErrBoardNil) {
		t.Errorf("nil board: want ErrBoardNil, got %v", err)
	}
	// start off the board
	if _, err := explore.Explore(b, out, in); !errors.Is(err, board.ErrCellOutOfBounds) {
		t.Errorf("bad start: want ErrCellOutOfBounds, got %v", err)
	}
	// target off the board
	if _, err := explore.Explore(b, in, out); !errors.Is(err, board.ErrCellOutOfBounds) {
		t.Errorf("bad target: want ErrCellOutOfBounds, got %v", err)
	}
}

// TestExplore_StartEqualsTarget covers the trivial zero-move query.
func TestExplore_StartEqualsTarget(t *testing.T) {
	b, _ := board.New(8, 8)
	c := board.Cell{Row: 0, Col: 0}
	res, err := explore.Explore(b, c, c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.TargetDist != 0 {
		t.Errorf("TargetDist = %d; want 0", res.TargetDist)
	}
	if d, ok := res.Dist[c]; !ok || d != 0 {
		t.Errorf("Dist[start] = %d (present=%v); want 0", d, ok)
	}
	if len(res.Preds[c]) != 0 {
		t.Errorf("start must have no predecessors, got %v", res.Preds[c])
	}
}

// TestExplore_KnownDistance pins the (1,1)→(4,3) query on 8×8:
// minimal distance 3, entered from five cells of the previous layer,
// (3,1) and (2,2) among them.
func TestExplore_KnownDistance(t *testing.T) {
	b, _ := board.New(8, 8)
	start := board.Cell{Row: 1, Col: 1}
	target := board.Cell{Row: 4, Col: 3}

	res, err := explore.Explore(b, start, target)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.TargetDist != 3 {
		t.Fatalf("TargetDist = %d; want 3", res.TargetDist)
	}

	preds := res.Preds[target]
	if len(preds) != 5 {
		t.Fatalf("target preds = %v; want 5 of them", preds)
	}
	want := map[board.Cell]bool{{Row: 2, Col: 2}: false, {Row: 3, Col: 1}: false}
	for _, p := range preds {
		if _, ok := want[p]; ok {
			want[p] = true
		}
		if res.Dist[p] != 2 {
			t.Errorf("pred %s has distance %d; want 2", p, res.Dist[p])
		}
	}
	for p, seen := range want {
		if !seen {
			t.Errorf("expected predecessor %s missing from %v", p, preds)
		}
	}
}

// TestExplore_MonotoneLayers asserts the BFS invariants: every
// predecessor sits exactly one move closer to the start, predecessor
// slices are sorted row-major, and no discovered cell lies beyond the
// target's distance.
func TestExplore_MonotoneLayers(t *testing.T) {
	b, _ := board.New(8, 8)
	start := board.Cell{Row: 0, Col: 0}
	target := board.Cell{Row: 7, Col: 7}

	res, err := explore.Explore(b, start, target)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for c, d := range res.Dist {
		if d > res.TargetDist {
			t.Errorf("cell %s discovered at %d, beyond target distance %d", c, d, res.TargetDist)
		}
		for i, p := range res.Preds[c] {
			if res.Dist[p] != d-1 {
				t.Errorf("pred %s of %s at distance %d; want %d", p, c, res.Dist[p], d-1)
			}
			if i > 0 && !res.Preds[c][i-1].Less(p) {
				t.Errorf("preds of %s not sorted: %v", c, res.Preds[c])
			}
		}
	}
}

// TestExplore_Unreachable covers the isolated 3×3 center: no knight
// move leaves (1,1), so any other target must report ErrUnreachable.
func TestExplore_Unreachable(t *testing.T) {
	b, _ := board.New(3, 3)
	center := board.Cell{Row: 1, Col: 1}
	corner := board.Cell{Row: 0, Col: 0}
	if _, err := explore.Explore(b, center, corner); !errors.Is(err, explore.ErrUnreachable) {
		t.Errorf("3×3 center: want ErrUnreachable, got %v", err)
	}
	// The reverse direction dead-ends the same way.
	if _, err := explore.Explore(b, corner, center); !errors.Is(err, explore.ErrUnreachable) {
		t.Errorf("into 3×3 center: want ErrUnreachable, got %v", err)
	}
}

// TestExplore_Determinism runs the same query twice and demands
// identical results, predecessor order included.
func TestExplore_Determinism(t *testing.T) {
	b, _ := board.New(8, 8)
	start := board.Cell{Row: 1, Col: 1}
	target := board.Cell{Row: 6, Col: 6}

	first, err := explore.Explore(b, start, target)
	if err != nil {
		t.Fatal(err)
	}
	second, err := explore.Explore(b, start, target)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("two identical queries produced different results")
	}
}

// TestExplore_Hooks asserts OnLayer and OnVisit fire with consistent
// depths and that an OnVisit error aborts the search.
func TestExplore_Hooks(t *testing.T) {
	b, _ := board.New(8, 8)
	start := board.Cell{Row: 0, Col: 0}
	target := board.Cell{Row: 4, Col: 4}

	var layers []int
	visits := 0
	res, err := explore.Explore(b, start, target,
		explore.WithOnLayer(func(depth, size int) { layers = append(layers, depth) }),
		explore.WithOnVisit(func(c board.Cell, depth int) error { visits++; return nil }),
	)
	if err != nil {
		t.Fatal(err)
	}
	// Layers 0..TargetDist each open exactly once, in order.
	if len(layers) != res.TargetDist+1 {
		t.Errorf("layer hooks = %v; want %d entries", layers, res.TargetDist+1)
	}
	for i, d := range layers {
		if d != i {
			t.Errorf("layer hook %d fired with depth %d", i, d)
		}
	}
	if visits == 0 {
		t.Error("OnVisit never fired")
	}

	boom := errors.New("boom")
	_, err = explore.Explore(b, start, target,
		explore.WithOnVisit(func(board.Cell, int) error { return boom }),
	)
	if !errors.Is(err, boom) {
		t.Errorf("hook error: want boom, got %v", err)
	}
}

// TestExplore_Cancellation verifies that a cancelled context halts the
// search promptly.
func TestExplore_Cancellation(t *testing.T) {
	b, _ := board.New(50, 50)
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // immediate
	_, err := explore.Explore(b,
		board.Cell{Row: 0, Col: 0}, board.Cell{Row: 49, Col: 49},
		explore.WithContext(ctx),
	)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("cancellation: want context.Canceled, got %v", err)
	}
}
