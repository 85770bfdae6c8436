package graphalg_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/flier/algokit/pkg/graph"
	"github.com/flier/algokit/pkg/graphalg"
)

func TestHopcroftKarp3x3PerfectMatching(t *testing.T) {
	// spec.md §8: a 3x3 bipartite graph with a perfect matching.
	g := graph.NewGraph(6)
	// left 0,1,2 ; right 3,4,5
	g.AddEdge(0, 3)
	g.AddEdge(0, 4)
	g.AddEdge(1, 4)
	g.AddEdge(1, 5)
	g.AddEdge(2, 3)
	g.AddEdge(2, 5)

	m := graphalg.HopcroftKarp(g, 3, 3)
	require.Equal(t, 3, m.Cardinality())

	seen := make(map[int]bool)
	for v := 0; v < 3; v++ {
		w, ok := m.MatchOf(v)
		require.True(t, ok)
		require.False(t, seen[w])
		seen[w] = true
	}
}

func TestHopcroftKarpUnbalanced(t *testing.T) {
	g := graph.NewGraph(5)
	// left 0,1 ; right 2,3,4, but both left vertices only connect to right 2
	g.AddEdge(0, 2)
	g.AddEdge(1, 2)

	m := graphalg.HopcroftKarp(g, 2, 3)
	require.Equal(t, 1, m.Cardinality())
}

func TestMinVertexCoverMatchesKonigBound(t *testing.T) {
	g := graph.NewGraph(6)
	g.AddEdge(0, 3)
	g.AddEdge(0, 4)
	g.AddEdge(1, 4)
	g.AddEdge(1, 5)
	g.AddEdge(2, 3)
	g.AddEdge(2, 5)

	m := graphalg.HopcroftKarp(g, 3, 3)
	cover := graphalg.MinVertexCover(g, m)

	require.Equal(t, m.Cardinality(), len(cover.Left)+len(cover.Right))

	// Every edge must be incident to at least one cover vertex.
	covered := make(map[int]bool)
	for _, v := range cover.Left {
		covered[v] = true
	}
	for _, w := range cover.Right {
		covered[w] = true
	}
	for v := 0; v < 3; v++ {
		for _, w := range g.Adj(v) {
			require.True(t, covered[v] || covered[w], "edge (%d,%d) uncovered", v, w)
		}
	}
}
