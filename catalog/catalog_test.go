package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rigidkit/pebblegame/catalog"
)

func TestKVertexAndEdgeCounts(t *testing.T) {
	g := catalog.K(5)
	assert.Equal(t, 5, g.VertexCount())
	assert.Equal(t, 10, g.EdgeCount())
}

func TestCycleIsConnectedWithNEdges(t *testing.T) {
	g := catalog.Cycle(6)
	assert.Equal(t, 6, g.VertexCount())
	assert.Equal(t, 6, g.EdgeCount())
	assert.True(t, g.Connected())
}

func TestPathIsTree(t *testing.T) {
	g := catalog.Path(7)
	assert.Equal(t, 7, g.VertexCount())
	assert.Equal(t, 6, g.EdgeCount())
	assert.True(t, g.IsTree())
}

func TestCompleteBipartiteHasNoIntraPartEdges(t *testing.T) {
	g := catalog.CompleteBipartite(2, 3)
	assert.Equal(t, 5, g.VertexCount())
	assert.Equal(t, 6, g.EdgeCount())
	assert.False(t, g.HasEdge("0", "1"))
}

func TestK33PlusEdgeHasOneIntraPartEdge(t *testing.T) {
	g := catalog.K33PlusEdge()
	assert.Equal(t, 6, g.VertexCount())
	assert.Equal(t, 10, g.EdgeCount())
	assert.True(t, g.HasEdge("0", "1"))
}

func TestDiamondEdgeCount(t *testing.T) {
	g := catalog.Diamond()
	assert.Equal(t, 4, g.VertexCount())
	assert.Equal(t, 5, g.EdgeCount())
}

func TestThreePrismAndPlusEdge(t *testing.T) {
	prism := catalog.ThreePrism()
	assert.Equal(t, 6, prism.VertexCount())
	assert.Equal(t, 9, prism.EdgeCount())

	plus := catalog.ThreePrismPlusEdge()
	assert.Equal(t, 10, plus.EdgeCount())
	assert.True(t, plus.HasEdge("0", "5"))
}

func TestSmallestMinimallyRigidGraphShape(t *testing.T) {
	g := catalog.SmallestMinimallyRigidGraph()
	assert.Equal(t, 5, g.VertexCount())
	assert.Equal(t, 7, g.EdgeCount())
}
