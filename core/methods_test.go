package core_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/pwl/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildPath constructs 0-1-2-3 with weights 1,2,3.
func buildPath(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	g.AddVertices(4)
	for i := 1; i < 4; i++ {
		_, err := g.AddEdge(i-1, i, float64(i))
		require.NoError(t, err)
	}

	return g
}

// TestAddVertex_SequentialIDs verifies ids are dense and labels are stored.
func TestAddVertex_SequentialIDs(t *testing.T) {
	g := core.NewGraph()
	assert.Equal(t, 0, g.AddVertex("C"))
	assert.Equal(t, 1, g.AddVertex(""))
	assert.Equal(t, 2, g.AddVertices(3))
	assert.Equal(t, 5, g.VertexCount())

	assert.Equal(t, []string{"C", "", "", "", ""}, g.Labels())
	assert.True(t, g.HasLabels())
	assert.True(t, g.HasVertex(4))
	assert.False(t, g.HasVertex(5))
	assert.False(t, g.HasVertex(-1))
}

// TestHasLabels_Unlabelled verifies that a graph without labels reports so.
func TestHasLabels_Unlabelled(t *testing.T) {
	g := core.NewGraph()
	g.AddVertices(3)
	assert.False(t, g.HasLabels())
}

// TestSetLabels checks bulk and single label updates and their errors.
func TestSetLabels(t *testing.T) {
	g := core.NewGraph()
	g.AddVertices(2)

	require.NoError(t, g.SetLabels([]string{"a", "b"}))
	require.NoError(t, g.SetLabel(1, "c"))
	l, err := g.Label(1)
	require.NoError(t, err)
	assert.Equal(t, "c", l)

	assert.ErrorIs(t, g.SetLabels([]string{"a"}), core.ErrLabelCount)
	assert.ErrorIs(t, g.SetLabel(2, "x"), core.ErrVertexNotFound)
	_, err = g.Label(-1)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

// TestAddEdge_Validation covers every AddEdge error class.
func TestAddEdge_Validation(t *testing.T) {
	g := core.NewGraph()
	g.AddVertices(2)

	tests := []struct {
		name    string
		u, v    int
		w       float64
		wantErr error
	}{
		{"unknown endpoint", 0, 7, 1, core.ErrVertexNotFound},
		{"negative id", -1, 0, 1, core.ErrVertexNotFound},
		{"negative weight", 0, 1, -1, core.ErrBadWeight},
		{"NaN weight", 0, 1, math.NaN(), core.ErrBadWeight},
		{"Inf weight", 0, 1, math.Inf(1), core.ErrBadWeight},
		{"loop disabled", 1, 1, 0, core.ErrLoopNotAllowed},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := g.AddEdge(tc.u, tc.v, tc.w)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}

	_, err := g.AddEdge(0, 1, 1)
	require.NoError(t, err)
	_, err = g.AddEdge(1, 0, 2)
	assert.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed, "reverse orientation is the same undirected edge")
	assert.Equal(t, 1, g.EdgeCount())
}

// TestAddEdge_LoopsAndMulti checks the permissive modes.
func TestAddEdge_LoopsAndMulti(t *testing.T) {
	g := core.NewGraph(core.WithLoops(), core.WithMultiEdges())
	g.AddVertices(2)
	assert.True(t, g.Looped())
	assert.True(t, g.Multigraph())

	_, err := g.AddEdge(0, 0, 0)
	require.NoError(t, err)
	_, err = g.AddEdge(0, 1, 1)
	require.NoError(t, err)
	_, err = g.AddEdge(1, 0, 1)
	require.NoError(t, err)

	deg, err := g.Degree(0)
	require.NoError(t, err)
	assert.Equal(t, 4, deg, "loop counts twice, two parallel edges once each")

	nbs, err := g.Neighbors(0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 1}, nbs)
}

// TestNeighborsAndDegree verifies adjacency in insertion order.
func TestNeighborsAndDegree(t *testing.T) {
	g := buildPath(t)

	nbs, err := g.Neighbors(1)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2}, nbs)

	deg, err := g.Degree(3)
	require.NoError(t, err)
	assert.Equal(t, 1, deg)

	_, err = g.Neighbors(4)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.Degree(4)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)

	assert.True(t, g.HasEdge(2, 1))
	assert.False(t, g.HasEdge(0, 3))
	assert.False(t, g.HasEdge(0, 9))
}

// TestEdgesAndWeights covers Edges ordering, SetWeight and Edge lookups.
func TestEdgesAndWeights(t *testing.T) {
	g := buildPath(t)

	edges := g.Edges()
	require.Len(t, edges, 3)
	for i, e := range edges {
		assert.Equal(t, i, e.ID)
		assert.Equal(t, float64(i+1), e.Weight)
	}

	require.NoError(t, g.SetWeight(2, 0.5))
	e, err := g.Edge(2)
	require.NoError(t, err)
	assert.Equal(t, 0.5, e.Weight)

	assert.ErrorIs(t, g.SetWeight(3, 1), core.ErrEdgeNotFound)
	assert.ErrorIs(t, g.SetWeight(0, math.NaN()), core.ErrBadWeight)
	_, err = g.Edge(-1)
	assert.ErrorIs(t, err, core.ErrEdgeNotFound)
}

// TestEdge_Endpoints checks canonical orientation helpers.
func TestEdge_Endpoints(t *testing.T) {
	u, v := core.Edge{From: 3, To: 1}.Endpoints()
	assert.Equal(t, 1, u)
	assert.Equal(t, 3, v)
	assert.True(t, core.Edge{From: 2, To: 2}.IsLoop())
}

// TestClone_Independent ensures that a clone does not share storage.
func TestClone_Independent(t *testing.T) {
	g := buildPath(t)
	require.NoError(t, g.SetLabels([]string{"a", "b", "c", "d"}))

	c := g.Clone()
	require.NoError(t, c.SetWeight(0, 9))
	require.NoError(t, c.SetLabel(0, "z"))
	_, err := c.AddEdge(0, 3, 1)
	require.NoError(t, err)

	e, _ := g.Edge(0)
	assert.Equal(t, 1.0, e.Weight, "source weight untouched")
	assert.Equal(t, "a", g.Labels()[0], "source label untouched")
	assert.Equal(t, 3, g.EdgeCount())
	assert.False(t, g.HasEdge(0, 3))

	empty := g.CloneEmpty()
	assert.Equal(t, 4, empty.VertexCount())
	assert.Zero(t, empty.EdgeCount())
	assert.Equal(t, g.Labels(), empty.Labels())
}
