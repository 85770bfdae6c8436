package graphalg_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/flier/algokit/pkg/graph"
	"github.com/flier/algokit/pkg/graphalg"
)

func dagSample() *graph.Digraph {
	g := graph.NewDigraph(6)
	g.AddEdge(5, 2)
	g.AddEdge(5, 0)
	g.AddEdge(4, 0)
	g.AddEdge(4, 1)
	g.AddEdge(2, 3)
	g.AddEdge(3, 1)
	return g
}

func isPermutation(order []int, n int) bool {
	if len(order) != n {
		return false
	}
	seen := make([]bool, n)
	for _, v := range order {
		if v < 0 || v >= n || seen[v] {
			return false
		}
		seen[v] = true
	}
	return true
}

func positionOf(order []int, v int) int {
	for i, x := range order {
		if x == v {
			return i
		}
	}
	return -1
}

func TestKahnTopologicalOrderIsAPermutationRespectingEdges(t *testing.T) {
	g := dagSample()
	order := graphalg.KahnTopologicalOrder(g)
	require.True(t, isPermutation(order, g.V()))

	for v := 0; v < g.V(); v++ {
		for _, w := range g.Adj(v) {
			require.Less(t, positionOf(order, v), positionOf(order, w))
		}
	}
}

func TestReversePostorderTopologicalOrderIsAPermutationRespectingEdges(t *testing.T) {
	g := dagSample()
	order := graphalg.ReversePostorderTopologicalOrder(g)
	require.True(t, isPermutation(order, g.V()))

	for v := 0; v < g.V(); v++ {
		for _, w := range g.Adj(v) {
			require.Less(t, positionOf(order, v), positionOf(order, w))
		}
	}
}

func TestTopologicalOrderEmptyOnCycle(t *testing.T) {
	g := graph.NewDigraph(3)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(2, 0)

	require.Nil(t, graphalg.KahnTopologicalOrder(g))
	require.Nil(t, graphalg.ReversePostorderTopologicalOrder(g))
}
