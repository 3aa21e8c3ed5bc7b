// Package dot renders a PathGraph as deterministic Graphviz DOT text:
// one node statement per participating cell, one edge statement per
// predecessor→successor relation, in the graph's fixed sorted order.
package dot

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/knightpath/paths"
)

// Marshal renders g as a DOT digraph, applying any number of
// functional Options. Returns ErrGraphNil or ErrEmptyGraph for invalid
// input.
//
// The emission order is exactly the graph's node and edge order, so
// identical input yields byte-identical output. Node IDs are the
// quoted "row,col" form of each cell; edges point from lower to higher
// distance.
//
// Complexity: O(N + E) over nodes and edges (plus O(W×L) node
// statements under WithBoard).
func Marshal(g *paths.Graph, opts ...Option) ([]byte, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if len(g.Nodes) == 0 {
		return nil, ErrEmptyGraph
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "digraph %s {\n", o.Name)

	if o.Board != nil {
		// Checkerboard background: every board cell as a filled square
		// pinned to its coordinates (neato honors the "!" suffix).
		b.WriteString("\tlayout=neato;\n")
		b.WriteString("\tnode [shape=square, style=filled, width=0.6, height=0.6];\n")
		for row := 0; row < o.Board.Width; row++ {
			for col := 0; col < o.Board.Length; col++ {
				fill, font := "black", "white"
				if (row+col)%2 != 0 {
					fill, font = "white", "black"
				}
				fmt.Fprintf(&b, "\t\"%d,%d\" [fillcolor=%s, fontcolor=%s, pos=\"%d,%d!\"];\n",
					row, col, fill, font, col, -row)
			}
		}
	} else {
		for _, n := range g.Nodes {
			fmt.Fprintf(&b, "\t%q [label=%q];\n", n, n)
		}
	}

	if len(o.Paths) > 0 {
		colors := distinctColors(len(o.Paths))
		for i, p := range o.Paths {
			for j := 1; j < len(p); j++ {
				fmt.Fprintf(&b, "\t%q -> %q [color=%q];\n", p[j-1], p[j], colors[i])
			}
		}
	} else {
		for _, e := range g.Edges {
			fmt.Fprintf(&b, "\t%q -> %q;\n", e.From, e.To)
		}
	}
	b.WriteString("}\n")

	return []byte(b.String()), nil
}

// distinctColors generates n colors spread evenly around the hue
// wheel at fixed saturation 0.7 and value 0.9, as "#rrggbb" strings.
func distinctColors(n int) []string {
	out := make([]string, n)
	for i := 0; i < n; i++ {
		r, g, b := hsvToRGB(float64(i)/float64(n), 0.7, 0.9)
		out[i] = fmt.Sprintf("#%02x%02x%02x", r, g, b)
	}

	return out
}

// hsvToRGB converts an HSV triple (h in [0,1), s and v in [0,1]) into
// 8-bit RGB components.
func hsvToRGB(h, s, v float64) (uint8, uint8, uint8) {
	i := int(math.Floor(h * 6))
	f := h*6 - float64(i)
	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)

	var r, g, b float64
	switch i % 6 {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	case 5:
		r, g, b = v, p, q
	}

	return uint8(r * 255), uint8(g * 255), uint8(b * 255)
}
