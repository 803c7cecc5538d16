package graph

import (
	"sort"

	"github.com/rigidkit/pebblegame/gerr"
)

// AddVertex inserts v if absent. Adding an already-live vertex is a
// no-op; adding a vertex previously removed by RemoveVertex revives
// its arena slot rather than leaving it permanently dead, since the
// slot's index is reused for identity, not treated as a tombstone.
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(v Vertex) {
	if i, ok := g.index[v]; ok {
		g.vertices[i].alive = true
		return
	}
	g.index[v] = len(g.vertices)
	g.vertices = append(g.vertices, vertexRecord{id: v, alive: true})
}

// HasVertex reports whether v is currently in the graph.
func (g *Graph) HasVertex(v Vertex) bool {
	i, ok := g.index[v]
	return ok && g.vertices[i].alive
}

// RemoveVertex deletes v and every edge incident to it. Removing an
// absent vertex fails with gerr.ErrVertexNotFound, matching the
// "removal of absent entity fails" policy.
//
// Complexity: O(deg(v)).
func (g *Graph) RemoveVertex(v Vertex) error {
	i, ok := g.index[v]
	if !ok || !g.vertices[i].alive {
		return gerr.ErrVertexNotFound
	}
	for j := range g.adj[i] {
		delete(g.adj[j], i)
		g.edgeN--
	}
	delete(g.adj, i)
	g.vertices[i].alive = false

	return nil
}

// AddEdge inserts the undirected edge {u, v}. It fails with
// gerr.ErrSelfLoop when u == v; it fails with gerr.ErrVertexNotFound
// when either endpoint is absent; re-adding an existing edge is a
// no-op.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v Vertex) error {
	if u == v {
		return gerr.ErrSelfLoop
	}
	iu, ok := g.index[u]
	if !ok || !g.vertices[iu].alive {
		return gerr.ErrVertexNotFound
	}
	iv, ok := g.index[v]
	if !ok || !g.vertices[iv].alive {
		return gerr.ErrVertexNotFound
	}
	if g.adj[iu] == nil {
		g.adj[iu] = make(map[int]struct{})
	}
	if g.adj[iv] == nil {
		g.adj[iv] = make(map[int]struct{})
	}
	if _, exists := g.adj[iu][iv]; exists {
		return nil // duplicate edge is a no-op
	}
	g.adj[iu][iv] = struct{}{}
	g.adj[iv][iu] = struct{}{}
	g.edgeN++

	return nil
}

// RemoveEdge deletes the undirected edge {u, v}. Removal of an absent
// edge fails with gerr.ErrVertexNotFound (reused as the "entity not
// found" sentinel, since no separate edge-identity concept exists in
// this model beyond its endpoint pair).
func (g *Graph) RemoveEdge(u, v Vertex) error {
	iu, ok := g.index[u]
	if !ok || !g.vertices[iu].alive {
		return gerr.ErrVertexNotFound
	}
	iv, ok := g.index[v]
	if !ok || !g.vertices[iv].alive {
		return gerr.ErrVertexNotFound
	}
	if _, exists := g.adj[iu][iv]; !exists {
		return gerr.ErrVertexNotFound
	}
	delete(g.adj[iu], iv)
	delete(g.adj[iv], iu)
	g.edgeN--

	return nil
}

// HasEdge reports whether {u, v} is currently an edge.
func (g *Graph) HasEdge(u, v Vertex) bool {
	iu, ok := g.index[u]
	if !ok || !g.vertices[iu].alive {
		return false
	}
	iv, ok := g.index[v]
	if !ok {
		return false
	}
	_, exists := g.adj[iu][iv]

	return exists
}

// Neighbors returns the vertices adjacent to v, sorted ascending for
// determinism. Fails with gerr.ErrVertexNotFound if v is absent.
//
// Complexity: O(deg(v) log deg(v)).
func (g *Graph) Neighbors(v Vertex) ([]Vertex, error) {
	i, ok := g.index[v]
	if !ok || !g.vertices[i].alive {
		return nil, gerr.ErrVertexNotFound
	}
	out := make([]Vertex, 0, len(g.adj[i]))
	for j := range g.adj[i] {
		out = append(out, g.vertices[j].id)
	}

	return sortedCopy(out), nil
}

// Vertices returns a stable, lexicographically sorted snapshot of the
// live vertex set.
func (g *Graph) Vertices() []Vertex {
	out := make([]Vertex, 0, len(g.vertices))
	for _, rec := range g.vertices {
		if rec.alive {
			out = append(out, rec.id)
		}
	}

	return sortedCopy(out)
}

// Edges returns a stable snapshot of the edge set, each pair in
// canonical order and the slice itself sorted by (U, V).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.edgeN)
	for i, nbrs := range g.adj {
		if !g.vertices[i].alive {
			continue
		}
		for j := range nbrs {
			if j < i {
				continue // each undirected pair reported once
			}
			u, v := canonicalPair(g.vertices[i].id, g.vertices[j].id)
			out = append(out, Edge{U: u, V: v})
		}
	}
	sort.Slice(out, func(a, b int) bool { return lessEdge(out[a], out[b]) })

	return out
}

// VertexCount returns the number of live vertices.
func (g *Graph) VertexCount() int {
	return len(g.Vertices())
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	return g.edgeN
}

func lessEdge(a, b Edge) bool {
	if a.U != b.U {
		return a.U < b.U
	}
	return a.V < b.V
}
