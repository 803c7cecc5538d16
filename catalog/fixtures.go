package catalog

import "github.com/rigidkit/pebblegame/graph"

// K33PlusEdge returns K_{3,3} with one additional edge between two
// vertices of the same part, {0,1}. At 10 edges over 6 vertices it
// exceeds the (2,3)-tightness bound of 2*6-3=9, so it can be rigid in
// the plane without being minimally rigid.
func K33PlusEdge() *graph.Graph {
	g := CompleteBipartite(3, 3)
	if err := g.AddEdge("0", "1"); err != nil {
		panic("catalog: " + err.Error())
	}
	return g
}

// Diamond returns K4 minus one edge: a 4-cycle with one diagonal,
// edges (0,1) (1,2) (2,3) (3,0) (0,2).
func Diamond() *graph.Graph {
	return mustBuild(intVertices(4), [][2]graph.Vertex{
		{"0", "1"}, {"1", "2"}, {"2", "3"}, {"3", "0"}, {"0", "2"},
	})
}

// ThreePrism returns the 3-prism (K3 x K2): two triangles {0,1,2} and
// {3,4,5} joined by a perfect matching 0-3, 1-4, 2-5.
func ThreePrism() *graph.Graph {
	return mustBuild(intVertices(6), [][2]graph.Vertex{
		{"0", "1"}, {"1", "2"}, {"0", "2"},
		{"3", "4"}, {"4", "5"}, {"3", "5"},
		{"0", "3"}, {"1", "4"}, {"2", "5"},
	})
}

// ThreePrismPlusEdge returns the 3-prism with one additional diagonal
// edge (0,5): one edge over the minimally rigid 3-prism, used to
// exercise the deficiency-based rigidity search and redundant-rigidity
// predicates on a graph denser than (2,3)-tight.
func ThreePrismPlusEdge() *graph.Graph {
	g := ThreePrism()
	if err := g.AddEdge("0", "5"); err != nil {
		panic("catalog: " + err.Error())
	}
	return g
}

// SmallestMinimallyRigidGraph returns the smallest flexible minimally
// rigid graph: the diamond with two extra edges connected from its
// opposite spikes, (0,1)(1,2)(2,3)(3,0)(0,2)(1,4)(3,4). The same graph
// is also known as DiamondWithZeroExtension.
func SmallestMinimallyRigidGraph() *graph.Graph {
	return mustBuild(intVertices(5), [][2]graph.Vertex{
		{"0", "1"}, {"1", "2"}, {"2", "3"}, {"3", "0"}, {"0", "2"}, {"1", "4"}, {"3", "4"},
	})
}
