// Package graphgen holds the randomized graph generators spec.md's
// supplemented scope calls for: the original_source test drivers build
// their fixtures this way rather than hand-writing adjacency lists, and
// algokit's graphalg test suite leans on the same generators.
//
// Every generator draws from [github.com/flier/algokit/pkg/rng]'s shared
// source, so seeding it via [rng.Seed] makes a whole test run reproducible.
// Generators that must reject duplicate or self-loop edges (GenerateSimple,
// GenerateBipartite) use [github.com/TomTonic/Set3] to track the edges
// already placed.
package graphgen

import (
	set3 "github.com/TomTonic/Set3"

	"github.com/flier/algokit/internal/debug"
	"github.com/flier/algokit/pkg/graph"
	"github.com/flier/algokit/pkg/rng"
)

type edgeKey struct{ v, w int }

// GenerateSimple returns a random simple undirected graph on v vertices
// with exactly e distinct, self-loop-free edges.
func GenerateSimple(v, e int) *graph.Graph {
	debug.Assert(e <= v*(v-1)/2, "graphgen.GenerateSimple: e exceeds the number of distinct simple-graph edges available")

	g := graph.NewGraph(v)
	seen := set3.EmptyWithCapacity[edgeKey](uint32(e))
	for g.E() < e {
		a, b := rng.RandomInt(0, v), rng.RandomInt(0, v)
		if a == b {
			continue
		}
		if a > b {
			a, b = b, a
		}
		k := edgeKey{a, b}
		if seen.Contains(k) {
			continue
		}
		seen.Add(k)
		g.AddEdge(a, b)
	}
	return g
}

// GenerateBipartite returns a random bipartite graph between a left part of
// n1 vertices (ids [0, n1)) and a right part of n2 vertices (ids
// [n1, n1+n2)), with exactly e distinct edges.
func GenerateBipartite(n1, n2, e int) *graph.Graph {
	debug.Assert(e <= n1*n2, "graphgen.GenerateBipartite: e exceeds the number of distinct bipartite edges available")

	g := graph.NewGraph(n1 + n2)
	seen := set3.EmptyWithCapacity[edgeKey](uint32(e))
	for g.E() < e {
		a := rng.RandomInt(0, n1)
		b := n1 + rng.RandomInt(0, n2)
		k := edgeKey{a, b}
		if seen.Contains(k) {
			continue
		}
		seen.Add(k)
		g.AddEdge(a, b)
	}
	return g
}

// GenerateEulerianCycle returns an undirected graph on v vertices built by
// closing a random walk of e edges into a cycle, which by construction
// admits an Eulerian circuit.
func GenerateEulerianCycle(v, e int) *graph.Graph {
	debug.Assert(v > 0 && e > 0, "graphgen.GenerateEulerianCycle: v and e must be positive")

	g := graph.NewGraph(v)
	walk := make([]int, e)
	for i := range walk {
		walk[i] = rng.RandomInt(0, v)
	}
	for i := 0; i < e-1; i++ {
		g.AddEdge(walk[i], walk[i+1])
	}
	g.AddEdge(walk[e-1], walk[0])
	return g
}

// GenerateEulerianPath returns an undirected graph on v vertices built by
// an open random walk of e edges, which by construction admits an Eulerian
// path but not generally a circuit.
func GenerateEulerianPath(v, e int) *graph.Graph {
	debug.Assert(v > 0 && e > 0, "graphgen.GenerateEulerianPath: v and e must be positive")

	g := graph.NewGraph(v)
	walk := make([]int, e+1)
	for i := range walk {
		walk[i] = rng.RandomInt(0, v)
	}
	for i := 0; i < e; i++ {
		g.AddEdge(walk[i], walk[i+1])
	}
	return g
}

// randomPermutation returns a uniform-random permutation of 0..n-1 via the
// Fisher-Yates shuffle, drawing from the shared RNG.
func randomPermutation(n int) []int {
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	for i := n - 1; i > 0; i-- {
		j := rng.RandomInt(0, i+1)
		perm[i], perm[j] = perm[j], perm[i]
	}
	return perm
}

// GenerateDAG returns a random directed acyclic graph on v vertices with e
// edges, built by drawing edges only from earlier to later vertices in a
// random topological order, which forbids cycles by construction.
func GenerateDAG(v, e int) *graph.Digraph {
	debug.Assert(e <= v*(v-1)/2, "graphgen.GenerateDAG: e exceeds the number of distinct DAG edges available")

	order := randomPermutation(v)
	g := graph.NewDigraph(v)
	seen := set3.EmptyWithCapacity[edgeKey](uint32(e))
	for g.E() < e {
		i, j := rng.RandomInt(0, v), rng.RandomInt(0, v)
		if i >= j {
			continue
		}
		a, b := order[i], order[j]
		k := edgeKey{a, b}
		if seen.Contains(k) {
			continue
		}
		seen.Add(k)
		g.AddEdge(a, b)
	}
	return g
}

// GenerateRootedTree returns a random tree on v vertices rooted at vertex 0:
// each vertex i > 0 is attached to a uniformly random earlier vertex in a
// random permutation, guaranteeing connectivity with exactly v-1 tree
// edges. If directed is true, edges point away from the root (an out-tree,
// i.e. an arborescence); otherwise each tree edge is added in both
// directions, so the returned digraph holds 2(v-1) edges.
func GenerateRootedTree(v int, directed bool) *graph.Digraph {
	order := randomPermutation(v)
	for i, x := range order {
		if x == 0 {
			order[0], order[i] = order[i], order[0]
			break
		}
	}
	g := graph.NewDigraph(v)
	for i := 1; i < v; i++ {
		parent := order[rng.RandomInt(0, i)]
		child := order[i]
		if directed {
			g.AddEdge(parent, child)
		} else {
			g.AddEdge(parent, child)
			g.AddEdge(child, parent)
		}
	}
	return g
}

// GenerateKRegular returns a random undirected multigraph on v vertices
// built from k independent random permutations of the vertex set, each
// paired off consecutively into a matching. For even v every vertex gains
// degree exactly k (a k-regular multigraph). For odd v the last vertex of
// each permutation stays unpaired in that round, so degrees are not all k;
// the debug assertion checks only that v*k is even. Parallel edges across
// rounds are possible (original_source's regular-graph driver does not
// reject them either); self-loops are not, since each pair holds two
// distinct vertices.
func GenerateKRegular(v, k int) *graph.Graph {
	debug.Assert((v*k)%2 == 0, "graphgen.GenerateKRegular: v*k must be even")

	g := graph.NewGraph(v)
	for round := 0; round < k; round++ {
		perm := randomPermutation(v)
		for i := 0; i < v; i += 2 {
			if i+1 < v {
				g.AddEdge(perm[i], perm[i+1])
			}
		}
	}
	return g
}

// GenerateStrongComponents returns a random digraph on v vertices with
// exactly components strongly connected components: the vertex set is
// partitioned evenly across components, each partition is made strongly
// connected via a closed walk that passes through every member once and then
// through random members (a directed variant of the closed random walk
// [GenerateEulerianCycle] uses), and e extra edges are
// scattered strictly from lower-numbered to higher-numbered components so
// they cannot merge any two components together.
func GenerateStrongComponents(v, e, components int) *graph.Digraph {
	debug.Assert(components > 0 && components <= v, "graphgen.GenerateStrongComponents: components must be in [1, v]")

	g := graph.NewDigraph(v)
	groups := make([][]int, components)
	for i := 0; i < v; i++ {
		c := i % components
		groups[c] = append(groups[c], i)
	}

	for _, members := range groups {
		if len(members) == 1 {
			continue
		}
		walkLen := len(members) * 2
		walk := make([]int, walkLen)
		for i := range walk {
			if i < len(members) {
				walk[i] = members[i]
			} else {
				walk[i] = members[rng.RandomInt(0, len(members))]
			}
		}
		for i := 0; i < walkLen-1; i++ {
			g.AddEdge(walk[i], walk[i+1])
		}
		g.AddEdge(walk[walkLen-1], walk[0])
	}

	for i := 0; i < e && components > 1; i++ {
		from := rng.RandomInt(0, components-1)
		to := from + 1 + rng.RandomInt(0, components-from-1)
		if len(groups[from]) == 0 || len(groups[to]) == 0 {
			continue
		}
		a := groups[from][rng.RandomInt(0, len(groups[from]))]
		b := groups[to][rng.RandomInt(0, len(groups[to]))]
		g.AddEdge(a, b)
	}
	return g
}

// GeneratePruferTree returns a uniformly random labeled tree on v vertices
// (v >= 2) by decoding a random Prüfer sequence of length v-2, the standard
// bijection between such sequences and labeled trees.
func GeneratePruferTree(v int) *graph.Graph {
	debug.Assert(v >= 2, "graphgen.GeneratePruferTree: v must be at least 2")

	if v == 2 {
		g := graph.NewGraph(2)
		g.AddEdge(0, 1)
		return g
	}

	seq := make([]int, v-2)
	for i := range seq {
		seq[i] = rng.RandomInt(0, v)
	}

	degree := make([]int, v)
	for i := range degree {
		degree[i] = 1
	}
	for _, s := range seq {
		degree[s]++
	}

	g := graph.NewGraph(v)

	leafAt := func() int {
		for i := 0; i < v; i++ {
			if degree[i] == 1 {
				return i
			}
		}
		return -1
	}

	for _, s := range seq {
		leaf := leafAt()
		g.AddEdge(leaf, s)
		degree[leaf]--
		degree[s]--
	}

	// Exactly two vertices have degree 1 left; connect them for the final
	// edge.
	a, b := -1, -1
	for i := 0; i < v; i++ {
		if degree[i] == 1 {
			if a == -1 {
				a = i
			} else {
				b = i
			}
		}
	}
	g.AddEdge(a, b)
	return g
}
