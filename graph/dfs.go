package graph

// IsTree reports whether g is connected and has exactly |V|-1 edges:
// acyclic and connected. The empty graph is not a tree.
func (g *Graph) IsTree() bool {
	n := g.VertexCount()
	if n == 0 {
		return false
	}

	return g.EdgeCount() == n-1 && g.Connected()
}
