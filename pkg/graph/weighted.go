package graph

import "math"

// DirectedEdge is a single weighted directed edge. It is shared between its
// source vertex's adjacency list and the digraph's global edge list; the
// two references point at the same record so Clear releases it exactly
// once (spec.md §4.5, §5 "edge records in weighted graphs are owned by the
// graph's edge list, not by per-vertex adjacency lists").
type DirectedEdge struct {
	From, To int
	Weight   float64
}

// WeightedDigraph is an adjacency-list directed graph whose edges carry a
// float64 weight.
type WeightedDigraph struct {
	v, e  int
	adj   [][]*DirectedEdge
	edges []*DirectedEdge
}

// NewWeightedDigraph returns an edgeless weighted digraph on v vertices.
func NewWeightedDigraph(v int) *WeightedDigraph {
	return &WeightedDigraph{v: v, adj: make([][]*DirectedEdge, v)}
}

// V returns the number of vertices.
func (g *WeightedDigraph) V() int { return g.v }

// E returns the number of edges.
func (g *WeightedDigraph) E() int { return g.e }

func (g *WeightedDigraph) inRange(x int) bool { return x >= 0 && x < g.v }

// AddEdge adds a directed edge from->to with the given weight. It is a
// no-op if either endpoint is out of range.
func (g *WeightedDigraph) AddEdge(from, to int, weight float64) {
	if !g.inRange(from) || !g.inRange(to) {
		return
	}
	e := &DirectedEdge{From: from, To: to, Weight: weight}
	g.adj[from] = append(g.adj[from], e)
	g.edges = append(g.edges, e)
	g.e++
}

// Adj returns the edges leaving v.
func (g *WeightedDigraph) Adj(v int) []*DirectedEdge {
	if !g.inRange(v) {
		return nil
	}
	return g.adj[v]
}

// Edges returns every edge in the graph, each appearing exactly once.
func (g *WeightedDigraph) Edges() []*DirectedEdge { return g.edges }

// Clear releases every owned edge record, leaving the graph edgeless but
// with the same vertex count.
func (g *WeightedDigraph) Clear() {
	for v := range g.adj {
		g.adj[v] = nil
	}
	g.edges = nil
	g.e = 0
}

// EdgeMatrix is a dense V-by-V adjacency-matrix weighted digraph. Absent
// edges store [NoEdge]; this is the variant spec.md §4.5 calls "the dense
// adjacency-matrix variant [that] stores an invalid-sentinel edge for
// absent pairs," used when the graph is expected to be near-complete
// (Floyd-Warshall's all-pairs matrices).
type EdgeMatrix struct {
	v       int
	weights [][]float64
}

// NoEdge is the sentinel weight marking the absence of an edge in an
// [EdgeMatrix].
const NoEdge = math.MaxFloat64

// NewEdgeMatrix returns a V-by-V matrix with every entry set to [NoEdge]
// except the diagonal, which is zero (a vertex reaches itself at cost 0).
func NewEdgeMatrix(v int) *EdgeMatrix {
	m := &EdgeMatrix{v: v, weights: make([][]float64, v)}
	for i := range m.weights {
		row := make([]float64, v)
		for j := range row {
			if i == j {
				row[j] = 0
			} else {
				row[j] = NoEdge
			}
		}
		m.weights[i] = row
	}
	return m
}

// V returns the number of vertices.
func (m *EdgeMatrix) V() int { return m.v }

func (m *EdgeMatrix) inRange(x int) bool { return x >= 0 && x < m.v }

// AddEdge sets the weight of edge from->to, replacing any prior weight for
// that pair. It is a no-op if either endpoint is out of range.
func (m *EdgeMatrix) AddEdge(from, to int, weight float64) {
	if !m.inRange(from) || !m.inRange(to) {
		return
	}
	m.weights[from][to] = weight
}

// Weight returns the weight of edge from->to, or [NoEdge] if no such edge
// has been set.
func (m *EdgeMatrix) Weight(from, to int) float64 {
	if !m.inRange(from) || !m.inRange(to) {
		return NoEdge
	}
	return m.weights[from][to]
}

// HasEdge reports whether edge from->to carries a real weight.
func (m *EdgeMatrix) HasEdge(from, to int) bool {
	return m.Weight(from, to) != NoEdge
}
