package search

import (
	"github.com/rigidkit/pebblegame/graph"
	"github.com/rigidkit/pebblegame/rigidity"
)

// MaximalRigidSubgraphs returns the vertex-maximal rigid induced
// subgraphs of g: if g itself is rigid, that is the only maximal one;
// otherwise every (|V|-1)-vertex induced subgraph is searched
// recursively and the results are deduplicated by isomorphism. Graphs
// of two or fewer vertices have none (every single edge or isolated
// vertex is trivially "rigid" in a way that carries no information).
func MaximalRigidSubgraphs(g *graph.Graph, dim int) ([]*graph.Graph, error) {
	if g.VertexCount() <= 2 {
		return nil, nil
	}
	rigid, err := rigidity.IsRigid(g, dim)
	if err != nil {
		return nil, err
	}
	if rigid {
		return []*graph.Graph{g}, nil
	}

	var found []*graph.Graph
	for _, subset := range omitOneVertex(g.Vertices()) {
		sub := g.InducedSubgraph(subset)
		sols, err := MaximalRigidSubgraphs(sub, dim)
		if err != nil {
			return nil, err
		}
		found = append(found, sols...)
	}
	return dedupeByIsomorphism(found), nil
}

// MinimalRigidSubgraphs returns the vertex-minimal non-trivial rigid
// induced subgraphs of g: a 3-vertex rigid graph is its own unique
// answer (a triangle), a 3-vertex non-rigid graph has none, and
// otherwise every (|V|-1)-vertex induced subgraph is searched first —
// a subgraph that is itself rigid and whose own recursion turned up
// nothing smaller is recorded directly, everything else contributes
// whatever its recursion found. Results are deduplicated by
// isomorphism.
func MinimalRigidSubgraphs(g *graph.Graph, dim int) ([]*graph.Graph, error) {
	n := g.VertexCount()
	if n <= 2 {
		return nil, nil
	}
	if n == 3 {
		rigid, err := rigidity.IsRigid(g, dim)
		if err != nil {
			return nil, err
		}
		if rigid {
			return []*graph.Graph{g}, nil
		}
		return nil, nil
	}

	var found []*graph.Graph
	for _, subset := range omitOneVertex(g.Vertices()) {
		sub := g.InducedSubgraph(subset)
		sols, err := MinimalRigidSubgraphs(sub, dim)
		if err != nil {
			return nil, err
		}
		if len(sols) == 0 {
			rigid, err := rigidity.IsRigid(sub, dim)
			if err != nil {
				return nil, err
			}
			if rigid {
				found = append(found, sub)
				continue
			}
		}
		found = append(found, sols...)
	}
	return dedupeByIsomorphism(found), nil
}

// omitOneVertex returns the |vertices| induced subsets of size
// len(vertices)-1, one per omitted vertex, in vertex order.
func omitOneVertex(vertices []graph.Vertex) [][]graph.Vertex {
	out := make([][]graph.Vertex, 0, len(vertices))
	for i := range vertices {
		subset := make([]graph.Vertex, 0, len(vertices)-1)
		subset = append(subset, vertices[:i]...)
		subset = append(subset, vertices[i+1:]...)
		out = append(out, subset)
	}
	return out
}

// dedupeByIsomorphism keeps, for every isomorphism class present in
// graphs, only the last occurrence: an earlier entry is dropped as
// soon as some later entry is found isomorphic to it.
func dedupeByIsomorphism(graphs []*graph.Graph) []*graph.Graph {
	clean := make([]*graph.Graph, 0, len(graphs))
	for i, gi := range graphs {
		duplicateLater := false
		for j := i + 1; j < len(graphs); j++ {
			if IsIsomorphic(gi, graphs[j]) {
				duplicateLater = true
				break
			}
		}
		if !duplicateLater {
			clean = append(clean, gi)
		}
	}
	return clean
}
