// Package graphalg is the graph-algorithm layer of spec.md §4.6, translated
// from original_source/graphs/{bfs,dfs,cycle,topological,eulerian,scc,
// bipartite,hopcroftkarp,boruvka,dijkstra,floydwarshall}.
//
// Every algorithm here takes a source over the adjacency substrate of
// [github.com/flier/algokit/pkg/graph] ([graph.Graph] or [graph.Digraph]
// via the unexported adjacency interface) and returns caller-owned result
// structures; none of it mutates the graph it is given.
package graphalg

import "github.com/flier/algokit/pkg/container"

// adjacency is the minimal read surface BFS, DFS, and the algorithms built
// on them need from a graph, satisfied by both [graph.Graph] and
// [graph.Digraph].
type adjacency interface {
	V() int
	Adj(v int) []int
}

// noParent marks the absence of a parent edge in an edgeTo array
// (spec.md §4.6: "parent edgeTo[v] (-1 sentinel for 'none')").
const noParent = -1

// infDist marks an unreached vertex's distance (spec.md §4.6: "a
// non-negative distTo[v] ... (infinity sentinel for unreachable)").
const infDist = -1

// Paths is the marked/edgeTo/distTo result of a breadth-first search
// (spec.md §4.6 "BFS and shortest-path tree").
type Paths struct {
	marked []bool
	edgeTo []int
	distTo []int
	source int
}

// BFS computes the shortest-path-in-edges tree from source over g.
func BFS(g adjacency, source int) *Paths {
	p := &Paths{
		marked: make([]bool, g.V()),
		edgeTo: make([]int, g.V()),
		distTo: make([]int, g.V()),
		source: source,
	}
	for v := range p.edgeTo {
		p.edgeTo[v] = noParent
		p.distTo[v] = infDist
	}

	q := container.NewQueue[int]()
	p.marked[source] = true
	p.distTo[source] = 0
	q.Enqueue(source)

	for !q.IsEmpty() {
		v, _ := q.Dequeue()
		for _, w := range g.Adj(v) {
			if !p.marked[w] {
				p.marked[w] = true
				p.edgeTo[w] = v
				p.distTo[w] = p.distTo[v] + 1
				q.Enqueue(w)
			}
		}
	}
	return p
}

// HasPathTo reports whether v is reachable from the search source.
func (p *Paths) HasPathTo(v int) bool { return p.marked[v] }

// DistTo returns the number of edges on the shortest path to v, or
// [infDist] (-1) if v is unreachable. [DFS] does not fill distances, so on
// a DFS result DistTo is -1 for every vertex.
func (p *Paths) DistTo(v int) int { return p.distTo[v] }

// PathTo reconstructs the path from the source to v by walking edgeTo back
// to the source, returning it source-first.
func (p *Paths) PathTo(v int) []int {
	if !p.marked[v] {
		return nil
	}
	s := container.NewStack[int]()
	for x := v; x != p.source; x = p.edgeTo[x] {
		s.Push(x)
	}
	s.Push(p.source)
	return s.ToSlice()
}

// DFS computes the marked/edgeTo reachability tree from source over g
// using a recursive depth-first search (spec.md §4.6 "digraph_dfs(source)
// populate[s] boolean marked[v], parent edgeTo[v]").
func DFS(g adjacency, source int) *Paths {
	p := &Paths{
		marked: make([]bool, g.V()),
		edgeTo: make([]int, g.V()),
		distTo: make([]int, g.V()),
		source: source,
	}
	for v := range p.edgeTo {
		p.edgeTo[v] = noParent
		p.distTo[v] = infDist
	}

	var visit func(v int)
	visit = func(v int) {
		p.marked[v] = true
		for _, w := range g.Adj(v) {
			if !p.marked[w] {
				p.edgeTo[w] = v
				visit(w)
			}
		}
	}
	visit(source)
	return p
}
