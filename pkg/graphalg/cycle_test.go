package graphalg_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/flier/algokit/pkg/graph"
	"github.com/flier/algokit/pkg/graphalg"
)

func TestFindDirectedCycleDetectsCycle(t *testing.T) {
	g := graph.NewDigraph(3)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(2, 0)

	c := graphalg.FindDirectedCycle(g)
	require.True(t, c.HasCycle())
	require.NotEmpty(t, c.Cycle())
}

func TestFindDirectedCycleOnDAG(t *testing.T) {
	g := graph.NewDigraph(3)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)

	c := graphalg.FindDirectedCycle(g)
	require.False(t, c.HasCycle())
	require.Nil(t, c.Cycle())
}
