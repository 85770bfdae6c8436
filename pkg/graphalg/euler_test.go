package graphalg_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/flier/algokit/pkg/graph"
	"github.com/flier/algokit/pkg/graphalg"
)

func square() *graph.Graph {
	g := graph.NewGraph(4)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(2, 3)
	g.AddEdge(3, 0)
	return g
}

func TestEulerianCircuitUndirected(t *testing.T) {
	g := square()
	require.True(t, graphalg.HasEulerianCircuit(g))

	circuit := graphalg.EulerianCircuit(g)
	require.Len(t, circuit, g.E()+1)
	require.Equal(t, circuit[0], circuit[len(circuit)-1])
}

func TestEulerianTrailUndirected(t *testing.T) {
	g := square()
	g.AddEdge(0, 2) // breaks circuit parity: 0 and 2 become odd-degree

	require.False(t, graphalg.HasEulerianCircuit(g))
	require.True(t, graphalg.HasEulerianTrail(g))

	trail := graphalg.EulerianTrail(g)
	require.Len(t, trail, g.E()+1)
}

func TestNoEulerianCircuitWhenOddDegree(t *testing.T) {
	g := graph.NewGraph(3)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)

	require.False(t, graphalg.HasEulerianCircuit(g))
	require.Nil(t, graphalg.EulerianCircuit(g))
}

func TestEulerianCircuitDirected(t *testing.T) {
	g := graph.NewDigraph(3)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(2, 0)

	require.True(t, graphalg.HasEulerianCircuitDirected(g))
	circuit := graphalg.EulerianCircuitDirected(g)
	require.Len(t, circuit, g.E()+1)
	require.Equal(t, circuit[0], circuit[len(circuit)-1])
}

func TestEulerianTrailDirected(t *testing.T) {
	g := graph.NewDigraph(3)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)

	require.True(t, graphalg.HasEulerianTrailDirected(g))
	trail := graphalg.EulerianTrailDirected(g)
	require.Equal(t, []int{0, 1, 2}, trail)
}
