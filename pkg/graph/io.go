package graph

import (
	"fmt"
	"io"
)

// ReadGraph parses the graph text input format of spec.md §6: two
// whitespace-separated non-negative integers V and E, then exactly E lines
// each holding two whitespace-separated vertex indices.
//
// Malformed input is a fatal error (spec.md §6): it returns an error here
// rather than panicking, since stream I/O is an external boundary, but the
// caller is expected to treat it as non-recoverable.
func ReadGraph(r io.Reader) (*Graph, error) {
	v, e, err := readVE(r)
	if err != nil {
		return nil, err
	}
	g := NewGraph(v)
	for i := 0; i < e; i++ {
		var a, b int
		if _, err := fmt.Fscan(r, &a, &b); err != nil {
			return nil, fmt.Errorf("graph.ReadGraph: edge %d: %w", i, err)
		}
		if a < 0 || a >= v || b < 0 || b >= v {
			return nil, fmt.Errorf("graph.ReadGraph: edge %d: vertex out of [0, %d)", i, v)
		}
		g.AddEdge(a, b)
	}
	return g, nil
}

// ReadDigraph parses the same format as [ReadGraph] into a [Digraph].
func ReadDigraph(r io.Reader) (*Digraph, error) {
	v, e, err := readVE(r)
	if err != nil {
		return nil, err
	}
	g := NewDigraph(v)
	for i := 0; i < e; i++ {
		var a, b int
		if _, err := fmt.Fscan(r, &a, &b); err != nil {
			return nil, fmt.Errorf("graph.ReadDigraph: edge %d: %w", i, err)
		}
		if a < 0 || a >= v || b < 0 || b >= v {
			return nil, fmt.Errorf("graph.ReadDigraph: edge %d: vertex out of [0, %d)", i, v)
		}
		g.AddEdge(a, b)
	}
	return g, nil
}

// ReadWeightedDigraph parses the weighted variant of spec.md §6: each edge
// line appends a floating-point weight.
func ReadWeightedDigraph(r io.Reader) (*WeightedDigraph, error) {
	v, e, err := readVE(r)
	if err != nil {
		return nil, err
	}
	g := NewWeightedDigraph(v)
	for i := 0; i < e; i++ {
		var a, b int
		var w float64
		if _, err := fmt.Fscan(r, &a, &b, &w); err != nil {
			return nil, fmt.Errorf("graph.ReadWeightedDigraph: edge %d: %w", i, err)
		}
		if a < 0 || a >= v || b < 0 || b >= v {
			return nil, fmt.Errorf("graph.ReadWeightedDigraph: edge %d: vertex out of [0, %d)", i, v)
		}
		g.AddEdge(a, b, w)
	}
	return g, nil
}

func readVE(r io.Reader) (v, e int, err error) {
	if _, err := fmt.Fscan(r, &v, &e); err != nil {
		return 0, 0, fmt.Errorf("graph: reading V, E: %w", err)
	}
	if v < 0 || e < 0 {
		return 0, 0, fmt.Errorf("graph: V and E must be non-negative, got V=%d E=%d", v, e)
	}
	return v, e, nil
}
