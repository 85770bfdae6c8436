package graphalg

import (
	"github.com/flier/algokit/pkg/graph"
	"github.com/flier/algokit/pkg/unionfind"
)

// BoruvkaMST computes a minimum spanning tree (or forest, if g is
// disconnected) of g using Borůvka's algorithm: maintain a union-find over
// V, and repeat until the tree has V-1 edges or no safe edge exists: for
// every component, find the lightest edge leaving it to a different
// component (ties broken by stable iteration order over the edge list),
// queue it, then union the endpoints of every queued edge and add it to
// the tree. One round at least halves the number of components
// (spec.md §4.6 "Minimum spanning tree (Boruvka)").
func BoruvkaMST(g *graph.WeightedDigraph) []*graph.DirectedEdge {
	uf := unionfind.New(g.V())
	var mst []*graph.DirectedEdge

	for trees := g.V(); len(mst) < g.V()-1 && trees > 1; {
		closest := make([]*graph.DirectedEdge, g.V())

		for _, e := range g.Edges() {
			cv, cw := uf.Find(e.From), uf.Find(e.To)
			if cv == cw {
				continue
			}
			if closest[cv] == nil || e.Weight < closest[cv].Weight {
				closest[cv] = e
			}
			if closest[cw] == nil || e.Weight < closest[cw].Weight {
				closest[cw] = e
			}
		}

		merged := 0
		for v := 0; v < g.V(); v++ {
			e := closest[v]
			if e == nil {
				continue
			}
			cv, cw := uf.Find(e.From), uf.Find(e.To)
			if cv == cw {
				continue
			}
			uf.Union(cv, cw)
			mst = append(mst, e)
			merged++
		}
		if merged == 0 {
			break
		}
		trees = uf.Count()
	}
	return mst
}
