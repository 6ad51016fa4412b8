package preprocess_test

import (
	"testing"

	"github.com/netsensor/idcode/internal/graph"
	"github.com/netsensor/idcode/internal/preprocess"
	"github.com/stretchr/testify/require"
)

func path3(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.New()
	require.NoError(t, g.AddEdge("1", "2"))
	require.NoError(t, g.AddEdge("2", "3"))
	return g
}

func triangle(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.New()
	require.NoError(t, g.AddEdge("1", "2"))
	require.NoError(t, g.AddEdge("2", "3"))
	require.NoError(t, g.AddEdge("1", "3"))
	return g
}

// paw is a triangle (1,2,3) with a pendant vertex 4 attached to 3. Vertices
// 1 and 2 are true twins (N[1] = N[2] = {1,2,3}); 3 and 4 are not.
func paw(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.New()
	require.NoError(t, g.AddEdge("1", "2"))
	require.NoError(t, g.AddEdge("1", "3"))
	require.NoError(t, g.AddEdge("2", "3"))
	require.NoError(t, g.AddEdge("3", "4"))
	return g
}

func TestCanonicalRelabelIsContiguous(t *testing.T) {
	res, err := preprocess.Run(path3(t), true)
	require.NoError(t, err)
	require.Equal(t, 3, res.Graph.N)
	for _, e := range res.LabelMap.Ordered() {
		require.GreaterOrEqual(t, e.ID, 1)
		require.LessOrEqual(t, e.ID, 3)
	}
}

func TestTwinRemovalTriangleDegenerates(t *testing.T) {
	res, err := preprocess.Run(triangle(t), false)
	require.NoError(t, err)
	require.Equal(t, 1, res.Graph.N)
	require.Len(t, res.Degenerate, 1)
	require.Contains(t, res.TwinMap, res.Degenerate[0])
	require.ElementsMatch(t, []string{"1", "2", "3"}, res.TwinMap[res.Degenerate[0]])
}

func TestTwoStepSkipsTwinRemoval(t *testing.T) {
	res, err := preprocess.Run(triangle(t), true)
	require.NoError(t, err)
	require.Equal(t, 3, res.Graph.N)
	require.Nil(t, res.TwinMap)
}

func TestTwinRemovalMergesOnlyTrueTwins(t *testing.T) {
	res, err := preprocess.Run(paw(t), false)
	require.NoError(t, err)
	require.Equal(t, 3, res.Graph.N) // {1,2} merge; 3 and 4 stay distinct
	require.Len(t, res.Degenerate, 0)

	var mergedLabels []string
	for _, labels := range res.TwinMap {
		mergedLabels = append(mergedLabels, labels...)
	}
	require.ElementsMatch(t, []string{"1", "2"}, mergedLabels)
}

// TestStarLeavesAreNotTwinsUnderClosedNeighborhoodEquality checks the star
// K_{1,4} (center "0", leaves "1".."4") against twin_removal's actual rule
// (spec.md §3: twins iff N1+(u) = N1+(v)). Each leaf's closed neighborhood
// is {center, leaf}, which differs per leaf, so no two leaves are twins of
// each other and twin removal leaves the star's 5 vertices untouched — see
// DESIGN.md's note on spec.md §8 scenario 4's narrative vs. its own twin
// definition.
func TestStarLeavesAreNotTwinsUnderClosedNeighborhoodEquality(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.AddEdge("0", "1"))
	require.NoError(t, g.AddEdge("0", "2"))
	require.NoError(t, g.AddEdge("0", "3"))
	require.NoError(t, g.AddEdge("0", "4"))

	res, err := preprocess.Run(g, false)
	require.NoError(t, err)
	require.Equal(t, 5, res.Graph.N)
	require.Nil(t, res.TwinMap)
}

func TestNeighborhoodCaches(t *testing.T) {
	res, err := preprocess.Run(path3(t), true)
	require.NoError(t, err)
	// vertex 2 (middle of the path) has open neighbors {1,3}.
	mid := 0
	for _, e := range res.LabelMap.Ordered() {
		if e.Label == "2" {
			mid = e.ID
		}
	}
	require.NotZero(t, mid)
	require.Len(t, res.N1[mid-1], 2)
	require.Len(t, res.N1Closed[mid-1], 3)
}

func TestLabelMapRoundTrip(t *testing.T) {
	res, err := preprocess.Run(path3(t), true)
	require.NoError(t, err)
	for _, e := range res.LabelMap.Ordered() {
		label, ok := res.LabelMap.Label(e.ID)
		require.True(t, ok)
		id, ok := res.LabelMap.ID(label)
		require.True(t, ok)
		require.Equal(t, e.ID, id)
	}
}
