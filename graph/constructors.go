package graph

import "github.com/rigidkit/pebblegame/gerr"

// FromVerticesAndEdges builds a Graph from an explicit vertex list and
// an edge list given as endpoint pairs. It fails with
// gerr.ErrMalformedEdge if either endpoint of an edge is the empty
// string, gerr.ErrSelfLoop on a self-loop, and gerr.ErrVertexNotFound
// if an edge references a vertex absent from vertices.
func FromVerticesAndEdges(vertices []Vertex, edges [][2]Vertex) (*Graph, error) {
	g := NewGraph()
	for _, v := range vertices {
		g.AddVertex(v)
	}
	for _, e := range edges {
		if e[0] == "" || e[1] == "" {
			return nil, gerr.ErrMalformedEdge
		}
		if err := g.AddEdge(e[0], e[1]); err != nil {
			return nil, err
		}
	}

	return g, nil
}
