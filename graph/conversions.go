package graph

import (
	"math/big"

	"github.com/rigidkit/pebblegame/gerr"
)

// ToInteger encodes the graph as the integer whose binary digits are
// the strictly-upper-triangular adjacency matrix under sorted vertex
// order, concatenated row-major: bit b(i,j) for i<j is 1 iff
// (V[i],V[j]) is an edge, and the sequence b(0,1)b(0,2)...b(n-2,n-1)
// is read as the binary expansion of the integer, most significant
// bit first.
//
// Fails with gerr.ErrEmptyGraph if the graph has no vertices. A
// single-vertex graph encodes to zero (no upper-triangle bits at all),
// matching the general rule rather than special-casing n<2.
//
// Complexity: O(V^2).
func (g *Graph) ToInteger() (*big.Int, error) {
	verts := g.Vertices()
	if len(verts) == 0 {
		return nil, gerr.ErrEmptyGraph
	}
	n := len(verts)
	pos := make(map[Vertex]int, n)
	for i, v := range verts {
		pos[v] = i
	}
	adjacent := make([][]bool, n)
	for i := range adjacent {
		adjacent[i] = make([]bool, n)
	}
	for _, e := range g.Edges() {
		i, j := pos[e.U], pos[e.V]
		adjacent[i][j] = true
		adjacent[j][i] = true
	}

	result := new(big.Int)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			result.Lsh(result, 1)
			if adjacent[i][j] {
				result.Or(result, big.NewInt(1))
			}
		}
	}

	return result, nil
}

// FromInteger decodes a graph produced by ToInteger (up to vertex
// relabeling to "0".."n-1"): n is the unique integer with
// n(n-1)/2 = bitlength(value) rounded up to the next triangular
// number, and bit i*... maps back to the upper-triangle pairs in the
// same row-major, MSB-first order ToInteger used.
//
// Fails with gerr.ErrNonPositiveInteger if value is not a positive
// integer.
//
// Complexity: O(V^2).
func FromInteger(value *big.Int) (*Graph, error) {
	if value == nil || value.Sign() <= 0 {
		return nil, gerr.ErrNonPositiveInteger
	}
	bitLen := value.BitLen()
	n := triangularRootCeil(bitLen)

	verts := make([]Vertex, n)
	for i := range verts {
		verts[i] = itoa(i)
	}
	g := NewGraph()
	for _, v := range verts {
		g.AddVertex(v)
	}

	// Re-derive the upper-triangle pair order and read bits MSB-first.
	totalBits := n * (n - 1) / 2
	for i, k := 0, totalBits-1; i < n; i++ {
		for j := i + 1; j < n; j, k = j+1, k-1 {
			if value.Bit(k) == 1 {
				_ = g.AddEdge(verts[i], verts[j])
			}
		}
	}

	return g, nil
}

// triangularRootCeil returns the smallest m such that m(m-1)/2 >= bits.
func triangularRootCeil(bits int) int {
	m := 1
	for m*(m-1)/2 < bits {
		m++
	}

	return m
}

func itoa(i int) string {
	if i == 0 {
		return "0"
	}
	digits := make([]byte, 0, 4)
	for i > 0 {
		digits = append([]byte{byte('0' + i%10)}, digits...)
		i /= 10
	}

	return string(digits)
}
