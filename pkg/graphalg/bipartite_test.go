package graphalg_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/flier/algokit/pkg/graph"
	"github.com/flier/algokit/pkg/graphalg"
)

func TestCheckBipartiteBFSOnBipartiteGraph(t *testing.T) {
	g := graph.NewGraph(4)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(2, 3)
	g.AddEdge(3, 0)

	b := graphalg.CheckBipartiteBFS(g)
	require.True(t, b.IsBipartite())
	require.NotEqual(t, b.Color(0), b.Color(1))
	require.Equal(t, b.Color(0), b.Color(2))
}

func TestCheckBipartiteBFSOnOddCycle(t *testing.T) {
	g := graph.NewGraph(3)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(2, 0)

	b := graphalg.CheckBipartiteBFS(g)
	require.False(t, b.IsBipartite())
	require.GreaterOrEqual(t, len(b.OddCycle()), 3)
}

func TestCheckBipartiteDFSAgreesWithBFS(t *testing.T) {
	g := graph.NewGraph(5)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(2, 3)
	g.AddEdge(3, 4)

	bfs := graphalg.CheckBipartiteBFS(g)
	dfs := graphalg.CheckBipartiteDFS(g)
	require.Equal(t, bfs.IsBipartite(), dfs.IsBipartite())
}
