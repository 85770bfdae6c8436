package graph_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/flier/algokit/pkg/graph"
)

func TestDigraph(t *testing.T) {
	g := graph.NewDigraph(4)
	g.AddEdge(0, 1)
	g.AddEdge(0, 2)
	g.AddEdge(1, 2)

	require.Equal(t, 4, g.V())
	require.Equal(t, 3, g.E())
	require.Equal(t, []int{1, 2}, g.Adj(0))
	require.Equal(t, 2, g.Outdegree(0))
	require.Equal(t, 2, g.Indegree(2))
}

func TestDigraphAddEdgeOutOfRangeIsNoop(t *testing.T) {
	g := graph.NewDigraph(2)
	g.AddEdge(0, 5)
	g.AddEdge(-1, 1)

	require.Equal(t, 0, g.E())
	require.Nil(t, g.Adj(5))
}

func TestDigraphReverse(t *testing.T) {
	g := graph.NewDigraph(3)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)

	r := g.Reverse()
	require.Equal(t, []int{0}, r.Adj(1))
	require.Equal(t, []int{1}, r.Adj(2))
}

func TestGraphDegreeMirrorsEdges(t *testing.T) {
	g := graph.NewGraph(4)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(2, 3)

	require.Equal(t, 3, g.E())
	sum := 0
	for v := 0; v < g.V(); v++ {
		sum += g.Degree(v)
	}
	require.Equal(t, 2*g.E(), sum)
}

func TestReadGraph(t *testing.T) {
	in := "4 3\n0 1\n1 2\n2 3\n"
	g, err := graph.ReadGraph(strings.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, 4, g.V())
	require.Equal(t, 3, g.E())
}

func TestReadGraphMalformedVertex(t *testing.T) {
	in := "2 1\n0 9\n"
	_, err := graph.ReadGraph(strings.NewReader(in))
	require.Error(t, err)
}

func TestReadWeightedDigraph(t *testing.T) {
	in := "3 2\n0 1 1.5\n1 2 2.5\n"
	g, err := graph.ReadWeightedDigraph(strings.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, 2, g.E())
	require.Equal(t, 1.5, g.Adj(0)[0].Weight)
}

func TestEdgeMatrix(t *testing.T) {
	m := graph.NewEdgeMatrix(3)
	require.Equal(t, float64(0), m.Weight(1, 1))
	require.False(t, m.HasEdge(0, 2))

	m.AddEdge(0, 2, 4.0)
	require.True(t, m.HasEdge(0, 2))
	require.Equal(t, 4.0, m.Weight(0, 2))
}

func TestSymbolGraph(t *testing.T) {
	in := "JFK MCO\nORD DEN\nORD HOU\nDFW PHX\nJFK ORD\n"
	sg, err := graph.ReadSymbolGraph(strings.NewReader(in), " ")
	require.NoError(t, err)

	require.True(t, sg.Contains("JFK"))
	require.False(t, sg.Contains("SFO"))

	jfk, ok := sg.IndexOf("JFK")
	require.True(t, ok)

	name, ok := sg.NameOf(jfk)
	require.True(t, ok)
	require.Equal(t, "JFK", name)

	require.Equal(t, 2, sg.Graph().Degree(jfk)) // JFK is adjacent to MCO and ORD
}
