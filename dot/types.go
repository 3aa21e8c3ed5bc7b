// Package dot defines options and sentinel errors for rendering a
// PathGraph as Graphviz DOT text.
package dot

import (
	"errors"

	"github.com/katalvlaran/knightpath/board"
	"github.com/katalvlaran/knightpath/paths"
)

// Sentinel errors for DOT marshaling.
var (
	// ErrGraphNil is returned if a nil path graph is passed.
	ErrGraphNil = errors.New("dot: path graph is nil")
	// ErrEmptyGraph is returned for a graph with no nodes.
	ErrEmptyGraph = errors.New("dot: path graph has no nodes")
)

// defaultName is the digraph identifier used when WithName is absent.
const defaultName = "knightpath"

// Option configures Marshal output via functional arguments.
type Option func(*Options)

// Options holds the rendering parameters for Marshal.
type Options struct {
	// Name is the DOT digraph identifier.
	Name string

	// Board, when set, renders the whole board as a neato-positioned
	// checkerboard of filled squares behind the path graph.
	Board *board.Board

	// Paths, when non-empty, replaces the plain edge section with one
	// edge chain per shortest path, each chain in its own color.
	Paths []paths.Path
}

// DefaultOptions returns Options with sane defaults: digraph name
// "knightpath", no board background, plain uncolored edges.
func DefaultOptions() Options {
	return Options{Name: defaultName}
}

// WithName sets the digraph identifier. Empty names are ignored.
func WithName(name string) Option {
	return func(o *Options) {
		if name != "" {
			o.Name = name
		}
	}
}

// WithBoard renders every cell of b as a filled square with a fixed
// neato position, alternating black and white like a chessboard.
func WithBoard(b *board.Board) Option {
	return func(o *Options) {
		if b != nil {
			o.Board = b
		}
	}
}

// WithPathColors overlays each given shortest path as a chain of edges
// in a distinct color. Colors are derived from the path index, so the
// output stays a pure function of the input.
func WithPathColors(ps []paths.Path) Option {
	return func(o *Options) {
		if len(ps) > 0 {
			o.Paths = ps
		}
	}
}
