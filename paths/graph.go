package paths

import (
	"sort"

	"github.com/katalvlaran/knightpath/board"
	"github.com/katalvlaran/knightpath/explore"
)

// NewGraph builds the PathGraph for a start→target query: the
// predecessor relation restricted to cells on at least one shortest
// path, with edges directed from lower to higher distance.
//
// Node order is ascending (distance, row, col); edge order ascending
// (source distance, source row, source col, target row, target col).
// The ordering is part of the contract: serializing the same query
// twice must yield byte-identical output.
//
// Complexity: O(N log N + E log E) for N nodes and E edges.
func NewGraph(res *explore.Result, start, target board.Cell) (*Graph, error) {
	anc, err := validate(res, start, target)
	if err != nil {
		return nil, err
	}

	g := &Graph{
		Nodes: make([]board.Cell, 0, len(anc)),
		Dist:  make(map[board.Cell]int, len(anc)),
	}
	for c := range anc {
		g.Nodes = append(g.Nodes, c)
		g.Dist[c] = res.Dist[c]
		for _, p := range res.Preds[c] {
			g.Edges = append(g.Edges, Edge{From: p, To: c})
		}
	}

	sort.Slice(g.Nodes, func(i, j int) bool {
		if g.Dist[g.Nodes[i]] != g.Dist[g.Nodes[j]] {
			return g.Dist[g.Nodes[i]] < g.Dist[g.Nodes[j]]
		}

		return g.Nodes[i].Less(g.Nodes[j])
	})
	sort.Slice(g.Edges, func(i, j int) bool {
		a, b := g.Edges[i], g.Edges[j]
		if g.Dist[a.From] != g.Dist[b.From] {
			return g.Dist[a.From] < g.Dist[b.From]
		}
		if a.From != b.From {
			return a.From.Less(b.From)
		}

		return a.To.Less(b.To)
	})

	return g, nil
}
