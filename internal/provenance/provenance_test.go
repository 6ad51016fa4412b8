package provenance_test

import (
	"testing"
	"time"

	"github.com/netsensor/idcode/internal/graph"
	"github.com/netsensor/idcode/internal/preprocess"
	"github.com/netsensor/idcode/internal/provenance"
	"github.com/stretchr/testify/require"
)

func buildResult(t *testing.T) *preprocess.Result {
	t.Helper()
	g := graph.New()
	require.NoError(t, g.AddEdge("1", "2"))
	require.NoError(t, g.AddEdge("2", "3"))
	res, err := preprocess.Run(g, true)
	require.NoError(t, err)
	return res
}

func TestHeaderContainsNetworkAndLabelMap(t *testing.T) {
	res := buildResult(t)
	h := provenance.Build(provenance.Header{
		NetworkFile: "net.edges",
		Encoding:    "gis",
		TwoStep:     true,
		K:           1,
		NumVertices: res.Graph.N,
		NumEdges:    2,
		LabelMap:    res.LabelMap,
		Now:         time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC),
	})
	require.Contains(t, h, "Network file:     net.edges")
	require.Contains(t, h, "VARIABLE MAP")
	require.Contains(t, h, "Date (YYYY-MM-DD): 2026-01-02")
}

func TestHeaderOmitsGitBlockWithoutProjectDir(t *testing.T) {
	res := buildResult(t)
	h := provenance.Build(provenance.Header{
		NetworkFile: "net.edges",
		Encoding:    "ilp",
		NumVertices: res.Graph.N,
		LabelMap:    res.LabelMap,
		Now:         time.Now(),
	})
	require.NotContains(t, h, "Repository:")
}

func TestHeaderIncludesTwinMapWhenPresent(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.AddEdge("1", "2"))
	require.NoError(t, g.AddEdge("2", "3"))
	require.NoError(t, g.AddEdge("1", "3"))
	res, err := preprocess.Run(g, false)
	require.NoError(t, err)

	h := provenance.Build(provenance.Header{
		NetworkFile:  "triangle.edges",
		Encoding:     "ilp",
		TwinsRemoved: true,
		NumVertices:  res.Graph.N,
		LabelMap:     res.LabelMap,
		TwinMap:      res.TwinMap,
		Now:          time.Now(),
	})
	require.Contains(t, h, "TWIN MAP")
}
