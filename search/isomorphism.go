package search

import (
	"sort"

	"github.com/rigidkit/pebblegame/graph"
)

// IsIsomorphic reports whether g1 and g2 are isomorphic: whether there
// is a bijection between their vertex sets under which adjacency is
// preserved in both directions. It is a correctness-first, exponential
// VF2-style backtracking search: vertices of g1 are tried in
// descending-degree order against same-degree candidates of g2, and a
// partial assignment is pruned the moment it contradicts an edge
// already decided one way or the other. There is no polynomial
// shortcut for the general case, so this is the only oracle the
// subgraph-enumeration searches below have to deduplicate with.
func IsIsomorphic(g1, g2 *graph.Graph) bool {
	if g1.VertexCount() != g2.VertexCount() || g1.EdgeCount() != g2.EdgeCount() {
		return false
	}
	v1 := g1.Vertices()
	v2 := g2.Vertices()
	n := len(v1)
	if n == 0 {
		return true
	}

	deg1 := degreeMap(g1, v1)
	deg2 := degreeMap(g2, v2)
	if !sameDegreeSequence(v1, deg1, v2, deg2) {
		return false
	}

	order := make([]graph.Vertex, n)
	copy(order, v1)
	sort.Slice(order, func(i, j int) bool {
		return deg1[order[i]] > deg1[order[j]]
	})

	mapped := make(map[graph.Vertex]graph.Vertex, n)
	used := make(map[graph.Vertex]bool, n)
	return vf2Assign(g1, g2, order, 0, deg1, deg2, mapped, used)
}

func vf2Assign(
	g1, g2 *graph.Graph,
	order []graph.Vertex,
	idx int,
	deg1, deg2 map[graph.Vertex]int,
	mapped map[graph.Vertex]graph.Vertex,
	used map[graph.Vertex]bool,
) bool {
	if idx == len(order) {
		return true
	}
	u := order[idx]
	for _, v := range g2.Vertices() {
		if used[v] || deg1[u] != deg2[v] {
			continue
		}
		if !consistentAssignment(g1, g2, u, v, mapped) {
			continue
		}
		mapped[u] = v
		used[v] = true
		if vf2Assign(g1, g2, order, idx+1, deg1, deg2, mapped, used) {
			return true
		}
		delete(mapped, u)
		delete(used, v)
	}
	return false
}

// consistentAssignment reports whether mapping u -> v agrees with
// every vertex pair decided so far: for each already-mapped w, u-w
// must be an edge of g1 exactly when v-mapped[w] is an edge of g2.
func consistentAssignment(g1, g2 *graph.Graph, u, v graph.Vertex, mapped map[graph.Vertex]graph.Vertex) bool {
	for w, mw := range mapped {
		if g1.HasEdge(u, w) != g2.HasEdge(v, mw) {
			return false
		}
	}
	return true
}

func degreeMap(g *graph.Graph, vertices []graph.Vertex) map[graph.Vertex]int {
	out := make(map[graph.Vertex]int, len(vertices))
	for _, v := range vertices {
		nbrs, _ := g.Neighbors(v)
		out[v] = len(nbrs)
	}
	return out
}

func sameDegreeSequence(v1 []graph.Vertex, deg1 map[graph.Vertex]int, v2 []graph.Vertex, deg2 map[graph.Vertex]int) bool {
	seq1 := make([]int, len(v1))
	for i, v := range v1 {
		seq1[i] = deg1[v]
	}
	seq2 := make([]int, len(v2))
	for i, v := range v2 {
		seq2[i] = deg2[v]
	}
	sort.Ints(seq1)
	sort.Ints(seq2)
	for i := range seq1 {
		if seq1[i] != seq2[i] {
			return false
		}
	}
	return true
}
