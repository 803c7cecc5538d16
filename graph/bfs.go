package graph

// Connected reports whether g is connected: every vertex reachable
// from any other. The empty graph and single-vertex graphs are
// connected by convention (used by the dim=1 rigidity frontend, where
// IsRigid <=> Connected).
//
// Complexity: O(V + E).
func (g *Graph) Connected() bool {
	verts := g.Vertices()
	if len(verts) <= 1 {
		return true
	}

	visited := make(map[Vertex]bool, len(verts))
	queue := []Vertex{verts[0]}
	visited[verts[0]] = true
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		nbrs, _ := g.Neighbors(v)
		for _, n := range nbrs {
			if !visited[n] {
				visited[n] = true
				queue = append(queue, n)
			}
		}
	}

	return len(visited) == len(verts)
}
