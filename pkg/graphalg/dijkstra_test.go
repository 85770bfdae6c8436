package graphalg_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/flier/algokit/pkg/graph"
	"github.com/flier/algokit/pkg/graphalg"
)

func weightedSample() *graph.WeightedDigraph {
	g := graph.NewWeightedDigraph(5)
	g.AddEdge(0, 1, 4)
	g.AddEdge(0, 2, 1)
	g.AddEdge(2, 1, 2)
	g.AddEdge(1, 3, 1)
	g.AddEdge(2, 3, 5)
	g.AddEdge(3, 4, 3)
	return g
}

func TestDijkstraDistToIsOptimal(t *testing.T) {
	g := weightedSample()
	p := graphalg.Dijkstra(g, 0)

	require.Equal(t, 0.0, p.DistTo(0))
	require.Equal(t, 3.0, p.DistTo(1)) // 0->2->1, cost 1+2
	require.Equal(t, 1.0, p.DistTo(2))
	require.Equal(t, 4.0, p.DistTo(3)) // 0->2->1->3, cost 1+2+1
	require.Equal(t, 7.0, p.DistTo(4))
}

func TestDijkstraPathToReconstructsRoute(t *testing.T) {
	g := weightedSample()
	p := graphalg.Dijkstra(g, 0)

	path := p.PathTo(3)
	require.Len(t, path, 3)
	require.Equal(t, 0, path[0].From)
	require.Equal(t, 3, path[len(path)-1].To)
}

func TestDijkstraUnreachableVertex(t *testing.T) {
	g := graph.NewWeightedDigraph(3)
	g.AddEdge(0, 1, 1)

	p := graphalg.Dijkstra(g, 0)
	require.False(t, p.HasPathTo(2))
}

func TestDijkstraNegativeWeightPanics(t *testing.T) {
	g := graph.NewWeightedDigraph(2)
	g.AddEdge(0, 1, -1)

	require.Panics(t, func() { graphalg.Dijkstra(g, 0) })
}

func TestDijkstraAllPairs(t *testing.T) {
	g := weightedSample()
	all := graphalg.DijkstraAllPairs(g)
	require.Len(t, all, 5)
	require.Equal(t, 0.0, all[0].DistTo(0))
	require.Equal(t, 3.0, all[0].DistTo(1))
}
