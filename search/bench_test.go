package search_test

import (
	"testing"

	"github.com/rigidkit/pebblegame/catalog"
	"github.com/rigidkit/pebblegame/search"
)

func BenchmarkIsIsomorphicK33PlusEdge(b *testing.B) {
	g1 := catalog.K33PlusEdge()
	g2 := catalog.K33PlusEdge()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		search.IsIsomorphic(g1, g2)
	}
}

func BenchmarkMaximalRigidSubgraphsThreePrismPlusEdge(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := search.MaximalRigidSubgraphs(catalog.ThreePrismPlusEdge(), 2); err != nil {
			b.Fatal(err)
		}
	}
}
