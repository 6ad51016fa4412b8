package graph_test

import (
	"testing"

	"github.com/netsensor/idcode/internal/graph"
	"github.com/stretchr/testify/require"
)

func TestAddEdgeCreatesVertices(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.AddEdge("a", "b"))
	require.True(t, g.HasVertex("a"))
	require.True(t, g.HasVertex("b"))

	nbrs, err := g.Neighbors("a")
	require.NoError(t, err)
	require.Equal(t, []string{"b"}, nbrs)
}

func TestSelfLoopRecordedNotRejected(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.AddVertex("a"))
	require.NoError(t, g.AddEdge("a", "a"))
	require.True(t, g.HasLoop("a"))
}

func TestNeighborsUnknownVertex(t *testing.T) {
	g := graph.New()
	_, err := g.Neighbors("missing")
	require.ErrorIs(t, err, graph.ErrVertexNotFound)
}

func TestRemoveVertexDropsIncidentEdges(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.AddEdge("a", "b"))
	require.NoError(t, g.AddEdge("b", "c"))
	g.RemoveVertex("b")

	require.False(t, g.HasVertex("b"))
	nbrs, err := g.Neighbors("a")
	require.NoError(t, err)
	require.Empty(t, nbrs)
	nbrs, err = g.Neighbors("c")
	require.NoError(t, err)
	require.Empty(t, nbrs)
}

func TestDuplicateEdgesCollapse(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.AddEdge("a", "b"))
	require.NoError(t, g.AddEdge("a", "b"))
	require.Equal(t, 1, g.NumEdges())
}
