package pebble_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rigidkit/pebblegame/gerr"
	"github.com/rigidkit/pebblegame/pebble"
)

func mustDigraph(t *testing.T, k, l int) *pebble.PebbleDigraph {
	t.Helper()
	d, err := pebble.NewPebbleDigraph(k, l)
	require.NoError(t, err)
	return d
}

func TestNewPebbleDigraphRejectsBadParameters(t *testing.T) {
	_, err := pebble.NewPebbleDigraph(0, 0)
	assert.ErrorIs(t, err, gerr.ErrBadK)

	_, err = pebble.NewPebbleDigraph(2, 4)
	assert.ErrorIs(t, err, gerr.ErrBadL)

	_, err = pebble.NewPebbleDigraph(2, -1)
	assert.ErrorIs(t, err, gerr.ErrBadL)
}

func TestBootstrapAcceptsFirstEdgeUnconditionally(t *testing.T) {
	d := mustDigraph(t, 2, 3)
	ok, err := d.AddEdgeMaintainingDigraph("a", "b")
	require.NoError(t, err)
	assert.True(t, ok)

	da, err := d.OutDegree("a")
	require.NoError(t, err)
	db, err := d.OutDegree("b")
	require.NoError(t, err)
	assert.Equal(t, 1, da)
	assert.Equal(t, 0, db)
}

func TestAddEdgeMaintainingDigraphRejectsSelfLoop(t *testing.T) {
	d := mustDigraph(t, 2, 3)
	_, err := d.AddEdgeMaintainingDigraph("a", "a")
	assert.ErrorIs(t, err, gerr.ErrSelfLoop)
}

func TestFundamentalCircuitRequiresKnownVertices(t *testing.T) {
	d := mustDigraph(t, 2, 3)
	d.AddEdgeMaintainingDigraph("a", "b")
	_, err := d.FundamentalCircuit("a", "z")
	assert.ErrorIs(t, err, gerr.ErrVertexNotFound)
}

func TestFundamentalCircuitIndependentEdgeIsNil(t *testing.T) {
	d := mustDigraph(t, 2, 3)
	d.AddEdgeMaintainingDigraph("a", "b")
	d.AddEdgeMaintainingDigraph("c", "d")
	circuit, err := d.FundamentalCircuit("b", "c")
	require.NoError(t, err)
	assert.Nil(t, circuit)
}

// TestK4TightUnderTwoThree feeds every edge of K4 through a (2,3)
// digraph, the parameters under which a generic bar-joint framework in
// the plane is minimally rigid. K4 has 6 edges over 4 vertices; a
// (2,3)-tight spanning subgraph has 2*4-3 = 5 edges, so exactly one
// edge must be rejected as dependent.
func TestK4TightUnderTwoThree(t *testing.T) {
	d := mustDigraph(t, 2, 3)
	edges := [][2]string{
		{"0", "1"}, {"0", "2"}, {"0", "3"},
		{"1", "2"}, {"1", "3"}, {"2", "3"},
	}
	accepted, err := d.AddEdgesMaintainingDigraph(edges)
	require.NoError(t, err)

	acceptedCount := 0
	for _, ok := range accepted {
		if ok {
			acceptedCount++
		}
	}
	assert.Equal(t, 5, acceptedCount)

	for _, v := range []string{"0", "1", "2", "3"} {
		deg, err := d.OutDegree(v)
		require.NoError(t, err)
		assert.LessOrEqual(t, deg, 2)
	}
}

// TestC4IsFullySparse checks that a 4-cycle, which has exactly as many
// edges as a (2,3)-sparse graph on 4 vertices can carry minus one, is
// accepted in full with no rejections.
func TestC4IsFullySparse(t *testing.T) {
	d := mustDigraph(t, 2, 3)
	edges := [][2]string{{"0", "1"}, {"1", "2"}, {"2", "3"}, {"3", "0"}}
	accepted, err := d.AddEdgesMaintainingDigraph(edges)
	require.NoError(t, err)
	for _, ok := range accepted {
		assert.True(t, ok)
	}
}

func TestCanAddEdgeDoesNotChangeAcceptedEdgeCount(t *testing.T) {
	d := mustDigraph(t, 2, 3)
	edges := [][2]string{
		{"0", "1"}, {"0", "2"}, {"0", "3"},
		{"1", "2"}, {"1", "3"},
	}
	_, err := d.AddEdgesMaintainingDigraph(edges)
	require.NoError(t, err)

	before := totalOutDegree(t, d, []string{"0", "1", "2", "3"})
	ok, err := d.CanAddEdge("2", "3")
	require.NoError(t, err)
	assert.False(t, ok)
	after := totalOutDegree(t, d, []string{"0", "1", "2", "3"})
	assert.Equal(t, before, after)
}

func TestCanAddEdgeAbsentEndpointIsTriviallyTrue(t *testing.T) {
	d := mustDigraph(t, 2, 3)
	ok, err := d.CanAddEdge("a", "b")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestSetKLResetsDigraph(t *testing.T) {
	d := mustDigraph(t, 2, 3)
	d.AddEdgeMaintainingDigraph("a", "b")
	require.NoError(t, d.SetKL(1, 0))
	assert.False(t, d.HasVertex("a"))
	assert.Equal(t, 1, d.K())
	assert.Equal(t, 0, d.L())
}

func TestAddEdgesMaintainingDigraphStopsOnFirstError(t *testing.T) {
	d := mustDigraph(t, 2, 3)
	accepted, err := d.AddEdgesMaintainingDigraph([][2]string{
		{"a", "b"},
		{"c", "c"},
		{"d", "e"},
	})
	assert.ErrorIs(t, err, gerr.ErrSelfLoop)
	assert.Equal(t, []bool{true}, accepted)
	assert.False(t, d.HasVertex("d"))
}

func totalOutDegree(t *testing.T, d *pebble.PebbleDigraph, vertices []string) int {
	t.Helper()
	total := 0
	for _, v := range vertices {
		deg, err := d.OutDegree(v)
		require.NoError(t, err)
		total += deg
	}
	return total
}
