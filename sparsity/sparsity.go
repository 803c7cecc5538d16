package sparsity

import (
	"math/bits"

	"github.com/rigidkit/pebblegame/graph"
	"github.com/rigidkit/pebblegame/pebble"
)

// IsSparse decides (K, L)-sparsity by the brute-force subset
// definition: for every vertex subset S with |S| >= K, the induced
// edge count must not exceed K*|S| - L. It enumerates subsets as
// bitmasks over the graph's sorted vertex list, so it is exponential
// in |V| and intended for small graphs or as a reference oracle
// against IsSparsePebble.
func IsSparse(g *graph.Graph, k, l int) bool {
	vertices := g.Vertices()
	n := len(vertices)
	if n == 0 {
		return true
	}

	edgeCount := make(map[[2]int]struct{}, g.EdgeCount())
	index := make(map[graph.Vertex]int, n)
	for i, v := range vertices {
		index[v] = i
	}
	for _, e := range g.Edges() {
		i, j := index[e.U], index[e.V]
		if i > j {
			i, j = j, i
		}
		edgeCount[[2]int{i, j}] = struct{}{}
	}

	for mask := 1; mask < (1 << uint(n)); mask++ {
		size := bits.OnesCount(uint(mask))
		if size < k {
			continue
		}
		induced := 0
		for pair := range edgeCount {
			if mask&(1<<uint(pair[0])) != 0 && mask&(1<<uint(pair[1])) != 0 {
				induced++
			}
		}
		if induced > k*size-l {
			return false
		}
	}
	return true
}

// IsSparsePebble decides (K, L)-sparsity by feeding a fresh
// pebble.PebbleDigraph every edge of g, in the deterministic order
// g.Edges() returns them, and reporting whether every edge was
// accepted. This is the efficient implementation and the one the
// rigidity frontend uses internally.
func IsSparsePebble(g *graph.Graph, k, l int) (bool, error) {
	d, err := pebble.NewPebbleDigraph(k, l)
	if err != nil {
		return false, err
	}
	for _, e := range g.Edges() {
		ok, err := d.AddEdgeMaintainingDigraph(e.U, e.V)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

// IsTight decides (K, L)-tightness: (K, L)-sparse and exactly
// K*|V(G)| - L edges.
func IsTight(g *graph.Graph, k, l int) bool {
	sparse, err := IsSparsePebble(g, k, l)
	if err != nil || !sparse {
		return false
	}
	return g.EdgeCount() == k*g.VertexCount()-l
}
