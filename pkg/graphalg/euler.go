package graphalg

import (
	"github.com/flier/algokit/internal/debug"
	"github.com/flier/algokit/pkg/container"
	"github.com/flier/algokit/pkg/graph"
)

// undirectedDegrees returns the degree of every vertex in g, used by the
// Eulerian existence predicates below.
func undirectedDegrees(g *graph.Graph) []int {
	deg := make([]int, g.V())
	for v := 0; v < g.V(); v++ {
		deg[v] = g.Degree(v)
	}
	return deg
}

// connectedIgnoringIsolated reports whether g has at least one edge and every
// vertex with nonzero degree lies in a single connected component, the
// shared precondition of both Euler predicates (spec.md §4.6 "in addition
// to >=1 edge and connectivity ignoring isolated vertices").
func connectedIgnoringIsolated(g adjacency, hasEdge func(v int) bool) bool {
	start := -1
	for v := 0; v < g.V(); v++ {
		if hasEdge(v) {
			start = v
			break
		}
	}
	if start == -1 {
		return false
	}

	reached := BFS(undirectedView{g}, start)
	for v := 0; v < g.V(); v++ {
		if hasEdge(v) && !reached.HasPathTo(v) {
			return false
		}
	}
	return true
}

// undirectedView treats a directed adjacency as undirected for reachability
// checks by also following reverse edges; Euler connectivity is defined
// over the underlying undirected shape even for digraphs (spec.md §4.6).
type undirectedView struct{ adjacency }

func (u undirectedView) Adj(v int) []int {
	out := append([]int(nil), u.adjacency.Adj(v)...)
	for w := 0; w < u.V(); w++ {
		for _, x := range u.adjacency.Adj(w) {
			if x == v {
				out = append(out, w)
			}
		}
	}
	return out
}

// HasEulerianCircuit reports whether g (undirected) has an Eulerian
// circuit: every degree is even, and the edge-bearing vertices are
// connected.
func HasEulerianCircuit(g *graph.Graph) bool {
	if g.E() == 0 {
		return false
	}
	deg := undirectedDegrees(g)
	for _, d := range deg {
		if d%2 != 0 {
			return false
		}
	}
	return connectedIgnoringIsolated(g, func(v int) bool { return deg[v] > 0 })
}

// HasEulerianTrail reports whether g (undirected) has an Eulerian trail:
// exactly 0 or 2 vertices have odd degree, and the edge-bearing vertices
// are connected.
func HasEulerianTrail(g *graph.Graph) bool {
	if g.E() == 0 {
		return false
	}
	deg := undirectedDegrees(g)
	odd := 0
	for _, d := range deg {
		if d%2 != 0 {
			odd++
		}
	}
	if odd != 0 && odd != 2 {
		return false
	}
	return connectedIgnoringIsolated(g, func(v int) bool { return deg[v] > 0 })
}

// euEdge is one undirected edge annotated with a used flag, enqueued on
// both endpoints' queues (spec.md §4.6 "each edge carries a used flag and
// is enqueued on both endpoint queues").
type euEdge struct {
	a, b int
	used bool
}

func (e *euEdge) other(v int) int {
	debug.Assert(v == e.a || v == e.b, "graphalg: other() queried with a non-incident vertex")
	if v == e.a {
		return e.b
	}
	return e.a
}

// EulerianCircuit constructs an Eulerian circuit of g via Hierholzer's
// algorithm, or returns nil if none exists.
func EulerianCircuit(g *graph.Graph) []int {
	if !HasEulerianCircuit(g) {
		return nil
	}
	return hierholzerUndirected(g, 0)
}

// EulerianTrail constructs an Eulerian trail of g via Hierholzer's
// algorithm, or returns nil if none exists. When two odd-degree vertices
// exist, the trail starts at one of them.
func EulerianTrail(g *graph.Graph) []int {
	if !HasEulerianTrail(g) {
		return nil
	}
	start := 0
	for v := 0; v < g.V(); v++ {
		if g.Degree(v)%2 != 0 {
			start = v
			break
		}
	}
	return hierholzerUndirected(g, start)
}

func hierholzerUndirected(g *graph.Graph, start int) []int {
	// Isolated vertices play no part in the circuit/trail; never start on one.
	if g.Degree(start) == 0 {
		for v := 0; v < g.V(); v++ {
			if g.Degree(v) > 0 {
				start = v
				break
			}
		}
	}

	adjQueues := make([]*container.Queue[*euEdge], g.V())
	for v := range adjQueues {
		adjQueues[v] = container.NewQueue[*euEdge]()
	}

	// Each self-loop appears twice in its vertex's adjacency list (the
	// undirected graph mirrors an edge into both endpoints, and a
	// self-loop's two endpoints are the same vertex); count the real
	// number of distinct self-loop edges before building the edge queues.
	selfLoops := make([]int, g.V())
	for v := 0; v < g.V(); v++ {
		for _, w := range g.Adj(v) {
			if w == v {
				selfLoops[v]++
			}
		}
	}

	for v := 0; v < g.V(); v++ {
		for _, w := range g.Adj(v) {
			if w > v {
				e := &euEdge{a: v, b: w}
				adjQueues[v].Enqueue(e)
				adjQueues[w].Enqueue(e)
			}
		}
	}
	for v, count := range selfLoops {
		for i := 0; i < count/2; i++ {
			adjQueues[v].Enqueue(&euEdge{a: v, b: v})
		}
	}

	stack := container.NewStack[int]()
	var path []int
	stack.Push(start)
	for !stack.IsEmpty() {
		v, _ := stack.Peek()
		advanced := false
		for !adjQueues[v].IsEmpty() {
			e, _ := adjQueues[v].Dequeue()
			if e.used {
				continue
			}
			e.used = true
			stack.Push(e.other(v))
			advanced = true
			break
		}
		if !advanced {
			x, _ := stack.Pop()
			path = append(path, x)
		}
	}

	// path was built in pop order, which is already trail order once
	// reversed; reverse in place.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	debug.Assert(len(path) == g.E()+1, "graphalg: Eulerian circuit/trail length must equal E+1")
	return path
}

// HasEulerianCircuitDirected reports whether g has a directed Eulerian
// circuit: indegree equals outdegree at every vertex, and the edge-bearing
// vertices are connected (ignoring edge direction).
func HasEulerianCircuitDirected(g *graph.Digraph) bool {
	if g.E() == 0 {
		return false
	}
	for v := 0; v < g.V(); v++ {
		if g.Outdegree(v) != g.Indegree(v) {
			return false
		}
	}
	return connectedIgnoringIsolated(g, func(v int) bool { return g.Outdegree(v) > 0 || g.Indegree(v) > 0 })
}

// HasEulerianTrailDirected reports whether g has a directed Eulerian trail:
// exactly one vertex has outdegree-indegree = +1 (the start), exactly one
// has -1 (the end), all others are balanced, and the edge-bearing vertices
// are connected (ignoring edge direction).
func HasEulerianTrailDirected(g *graph.Digraph) bool {
	if g.E() == 0 {
		return false
	}
	starts, ends := 0, 0
	for v := 0; v < g.V(); v++ {
		switch d := g.Outdegree(v) - g.Indegree(v); {
		case d == 1:
			starts++
		case d == -1:
			ends++
		case d != 0:
			return false
		}
	}
	if !(starts == 0 && ends == 0) && !(starts == 1 && ends == 1) {
		return false
	}
	return connectedIgnoringIsolated(g, func(v int) bool { return g.Outdegree(v) > 0 || g.Indegree(v) > 0 })
}

// EulerianCircuitDirected constructs a directed Eulerian circuit of g via
// Hierholzer's algorithm, or returns nil if none exists.
func EulerianCircuitDirected(g *graph.Digraph) []int {
	if !HasEulerianCircuitDirected(g) {
		return nil
	}
	return hierholzerDirected(g, 0)
}

// EulerianTrailDirected constructs a directed Eulerian trail of g via
// Hierholzer's algorithm, or returns nil if none exists. The trail starts
// at the unique vertex with outdegree-indegree = +1, if one exists.
func EulerianTrailDirected(g *graph.Digraph) []int {
	if !HasEulerianTrailDirected(g) {
		return nil
	}
	start := 0
	for v := 0; v < g.V(); v++ {
		if g.Outdegree(v)-g.Indegree(v) == 1 {
			start = v
			break
		}
	}
	return hierholzerDirected(g, start)
}

func hierholzerDirected(g *graph.Digraph, start int) []int {
	// Isolated vertices play no part in the circuit/trail; never start on one.
	if g.Outdegree(start) == 0 {
		for v := 0; v < g.V(); v++ {
			if g.Outdegree(v) > 0 {
				start = v
				break
			}
		}
	}

	next := make([]int, g.V())
	adj := make([][]int, g.V())
	for v := 0; v < g.V(); v++ {
		adj[v] = g.Adj(v)
	}

	stack := container.NewStack[int]()
	var path []int
	stack.Push(start)
	for !stack.IsEmpty() {
		v, _ := stack.Peek()
		if next[v] < len(adj[v]) {
			w := adj[v][next[v]]
			next[v]++
			stack.Push(w)
		} else {
			x, _ := stack.Pop()
			path = append(path, x)
		}
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	debug.Assert(len(path) == g.E()+1, "graphalg: directed Eulerian circuit/trail length must equal E+1")
	return path
}
