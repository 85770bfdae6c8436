package graphalg

import (
	"math"

	"github.com/flier/algokit/pkg/container"
	"github.com/flier/algokit/pkg/graph"
)

// Matching is a maximum matching of a bipartite graph whose left part is
// vertices [0, n1) and right part is vertices [n1, n1+n2), the layout
// [github.com/flier/algokit/pkg/graphgen.GenerateBipartite] produces.
type Matching struct {
	n1, n2      int
	matchL      []int // matchL[v] = matched right-local index, or -1
	matchR      []int // matchR[w] = matched left vertex, or -1
	cardinality int
}

// Cardinality returns the number of matched pairs.
func (m *Matching) Cardinality() int { return m.cardinality }

// MatchOf returns the right-side partner of left vertex v, if matched.
func (m *Matching) MatchOf(v int) (int, bool) {
	if m.matchL[v] < 0 {
		return 0, false
	}
	return m.n1 + m.matchL[v], true
}

const matchInf = math.MaxInt

// HopcroftKarp computes a maximum matching of the bipartite graph g, whose
// left part is vertices [0, n1) and right part is vertices [n1, n1+n2),
// alternating BFS layering phases with DFS-based augmenting-path collection
// until no augmenting path remains (spec.md §4.6 "Hopcroft-Karp bipartite
// matching").
func HopcroftKarp(g *graph.Graph, n1, n2 int) *Matching {
	m := &Matching{n1: n1, n2: n2, matchL: make([]int, n1), matchR: make([]int, n2)}
	for i := range m.matchL {
		m.matchL[i] = -1
	}
	for i := range m.matchR {
		m.matchR[i] = -1
	}

	dist := make([]int, n1)

	bfsLayer := func() bool {
		q := container.NewQueue[int]()
		for v := 0; v < n1; v++ {
			if m.matchL[v] < 0 {
				dist[v] = 0
				q.Enqueue(v)
			} else {
				dist[v] = matchInf
			}
		}
		foundAugmentingPath := false
		for !q.IsEmpty() {
			v, _ := q.Dequeue()
			for _, rv := range g.Adj(v) {
				w := rv - n1
				if w < 0 || w >= n2 {
					continue
				}
				if m.matchR[w] < 0 {
					foundAugmentingPath = true
				} else if dist[m.matchR[w]] == matchInf {
					dist[m.matchR[w]] = dist[v] + 1
					q.Enqueue(m.matchR[w])
				}
			}
		}
		return foundAugmentingPath
	}

	var dfsAugment func(v int) bool
	dfsAugment = func(v int) bool {
		for _, rv := range g.Adj(v) {
			w := rv - n1
			if w < 0 || w >= n2 {
				continue
			}
			if m.matchR[w] < 0 || (dist[m.matchR[w]] == dist[v]+1 && dfsAugment(m.matchR[w])) {
				m.matchL[v] = w
				m.matchR[w] = v
				return true
			}
		}
		dist[v] = matchInf
		return false
	}

	for bfsLayer() {
		for v := 0; v < n1; v++ {
			if m.matchL[v] < 0 && dfsAugment(v) {
				m.cardinality++
			}
		}
	}
	return m
}

// VertexCover is the König's-theorem minimum vertex cover certificate for a
// maximum bipartite matching: a left vertex is in the cover iff it is NOT
// reachable from an unmatched left vertex via an alternating path; a right
// vertex is in the cover iff it IS reachable (spec.md §4.6).
type VertexCover struct {
	Left, Right []int
}

// MinVertexCover computes the minimum vertex cover witnessed by m over g.
func MinVertexCover(g *graph.Graph, m *Matching) *VertexCover {
	reachedL := make([]bool, m.n1)
	reachedR := make([]bool, m.n2)

	q := container.NewQueue[int]()
	for v := 0; v < m.n1; v++ {
		if m.matchL[v] < 0 {
			reachedL[v] = true
			q.Enqueue(v)
		}
	}
	for !q.IsEmpty() {
		v, _ := q.Dequeue()
		for _, rv := range g.Adj(v) {
			w := rv - m.n1
			if w < 0 || w >= m.n2 || reachedR[w] {
				continue
			}
			reachedR[w] = true
			if partner := m.matchR[w]; partner >= 0 && !reachedL[partner] {
				reachedL[partner] = true
				q.Enqueue(partner)
			}
		}
	}

	cover := &VertexCover{}
	for v := 0; v < m.n1; v++ {
		if !reachedL[v] {
			cover.Left = append(cover.Left, v)
		}
	}
	for w := 0; w < m.n2; w++ {
		if reachedR[w] {
			cover.Right = append(cover.Right, m.n1+w)
		}
	}
	return cover
}
