package graphalg

import (
	set3 "github.com/TomTonic/Set3"

	"github.com/flier/algokit/pkg/container"
	"github.com/flier/algokit/pkg/graph"
)

// Bipartite is the two-coloring result of a bipartiteness check.
// IsBipartite is false iff an odd cycle was found, in which case
// OddCycle returns its vertices.
type Bipartite struct {
	color       []bool
	marked      []bool
	isBipartite bool
	oddCycle    []int
}

// IsBipartite reports whether the graph admits a proper two-coloring.
func (b *Bipartite) IsBipartite() bool { return b.isBipartite }

// Color returns v's color, meaningful only if IsBipartite is true.
func (b *Bipartite) Color(v int) bool { return b.color[v] }

// OddCycle returns the vertices of a witnessing odd cycle, or nil if the
// graph is bipartite.
func (b *Bipartite) OddCycle() []int { return b.oddCycle }

// CheckBipartiteBFS runs a BFS from each unexplored vertex, alternating
// colors across levels; on discovering an edge to an already-colored
// same-color neighbor, it records the resulting odd cycle by walking
// parents back to their common ancestor (spec.md §4.6 "Bipartite
// detection").
func CheckBipartiteBFS(g *graph.Graph) *Bipartite {
	b := &Bipartite{
		color:       make([]bool, g.V()),
		marked:      make([]bool, g.V()),
		isBipartite: true,
	}
	edgeTo := make([]int, g.V())
	for v := range edgeTo {
		edgeTo[v] = noParent
	}

	for s := 0; s < g.V() && b.isBipartite; s++ {
		if b.marked[s] {
			continue
		}
		b.marked[s] = true
		q := container.NewQueue[int]()
		q.Enqueue(s)

		for !q.IsEmpty() && b.isBipartite {
			v, _ := q.Dequeue()
			for _, w := range g.Adj(v) {
				if !b.marked[w] {
					b.marked[w] = true
					edgeTo[w] = v
					b.color[w] = !b.color[v]
					q.Enqueue(w)
				} else if b.color[w] == b.color[v] {
					b.isBipartite = false
					b.oddCycle = recoverOddCycle(edgeTo, v, w)
					break
				}
			}
		}
	}
	return b
}

// recoverOddCycle walks parents from v and w back to their common ancestor
// using a visited set, then splices the two paths together into the cycle
// the edge (v,w) closes.
func recoverOddCycle(edgeTo []int, v, w int) []int {
	onPathToV := set3.Empty[int]()
	for x := v; x != noParent; x = edgeTo[x] {
		onPathToV.Add(x)
	}

	ancestor := w
	for !onPathToV.Contains(ancestor) {
		ancestor = edgeTo[ancestor]
	}

	stack := container.NewStack[int]()
	for x := v; x != ancestor; x = edgeTo[x] {
		stack.Push(x)
	}
	stack.Push(ancestor)
	path1 := stack.ToSlice()

	var path2 []int
	for x := w; x != ancestor; x = edgeTo[x] {
		path2 = append(path2, x)
	}

	cycle := make([]int, 0, len(path1)+len(path2))
	cycle = append(cycle, path1...)
	cycle = append(cycle, path2...)
	return cycle
}

// CheckBipartiteDFS is the depth-first variant of [CheckBipartiteBFS],
// coloring each vertex the opposite of its parent as it is first visited.
func CheckBipartiteDFS(g *graph.Graph) *Bipartite {
	b := &Bipartite{
		color:       make([]bool, g.V()),
		marked:      make([]bool, g.V()),
		isBipartite: true,
	}
	edgeTo := make([]int, g.V())
	for v := range edgeTo {
		edgeTo[v] = noParent
	}

	var visit func(v int)
	visit = func(v int) {
		b.marked[v] = true
		for _, w := range g.Adj(v) {
			if !b.isBipartite {
				return
			}
			if !b.marked[w] {
				edgeTo[w] = v
				b.color[w] = !b.color[v]
				visit(w)
			} else if b.color[w] == b.color[v] {
				b.isBipartite = false
				b.oddCycle = recoverOddCycle(edgeTo, v, w)
			}
		}
	}

	for v := 0; v < g.V() && b.isBipartite; v++ {
		if !b.marked[v] {
			visit(v)
		}
	}
	return b
}
