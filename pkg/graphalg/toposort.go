package graphalg

import "github.com/flier/algokit/pkg/container"

// KahnTopologicalOrder computes a topological order of g by repeatedly
// dequeuing an indegree-zero vertex, appending it to the result, and
// decrementing the indegree of its out-neighbors, enqueuing any that reach
// zero (spec.md §4.6 "Kahn's algorithm"). It returns a permutation of
// [0, g.V()) when g is acyclic, and an empty slice otherwise.
func KahnTopologicalOrder(g adjacency) []int {
	indegree := make([]int, g.V())
	for v := 0; v < g.V(); v++ {
		for _, w := range g.Adj(v) {
			indegree[w]++
		}
	}

	q := container.NewQueue[int]()
	for v := 0; v < g.V(); v++ {
		if indegree[v] == 0 {
			q.Enqueue(v)
		}
	}

	order := make([]int, 0, g.V())
	for !q.IsEmpty() {
		v, _ := q.Dequeue()
		order = append(order, v)
		for _, w := range g.Adj(v) {
			indegree[w]--
			if indegree[w] == 0 {
				q.Enqueue(w)
			}
		}
	}

	if len(order) != g.V() {
		return nil
	}
	return order
}

// ReversePostorderTopologicalOrder computes a topological order of g by
// running a directed-cycle check, then a DFS in natural vertex order,
// emitting the reverse of the post-order sequence (spec.md §4.6 "reverse-
// postorder DFS"). It returns a permutation of [0, g.V()) when g is
// acyclic, and an empty slice otherwise.
func ReversePostorderTopologicalOrder(g adjacency) []int {
	if FindDirectedCycle(g).HasCycle() {
		return nil
	}

	marked := make([]bool, g.V())
	post := container.NewStack[int]()

	var visit func(v int)
	visit = func(v int) {
		marked[v] = true
		for _, w := range g.Adj(v) {
			if !marked[w] {
				visit(w)
			}
		}
		post.Push(v)
	}
	for v := 0; v < g.V(); v++ {
		if !marked[v] {
			visit(v)
		}
	}

	return post.ToSlice()
}
