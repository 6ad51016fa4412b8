package graphio_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/netsensor/idcode/internal/graphio"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadEdgeListSkipsComments(t *testing.T) {
	path := writeTemp(t, "net.edges", "# header\n1 2\n% also a comment\n2 3\n")
	g, err := graphio.Load(path)
	require.NoError(t, err)
	require.Equal(t, 3, g.NumVertices())
	require.Equal(t, 2, g.NumEdges())
}

func TestLoadEdgeListMalformedLine(t *testing.T) {
	path := writeTemp(t, "net.edges", "1 2\nonly-one-token\n")
	_, err := graphio.Load(path)
	require.Error(t, err)
	var fe *graphio.FormatError
	require.ErrorAs(t, err, &fe)
	require.Equal(t, 2, fe.Line)
}

func TestLoadMatrixMarket(t *testing.T) {
	path := writeTemp(t, "net.mtx", "%%MatrixMarket matrix coordinate pattern symmetric\n3 3 2\n1 2\n2 3\n")
	g, err := graphio.Load(path)
	require.NoError(t, err)
	require.Equal(t, 3, g.NumVertices())
	require.Equal(t, 2, g.NumEdges())
}

func TestLoadMatrixMarketOutOfBounds(t *testing.T) {
	path := writeTemp(t, "net.mtx", "2 2 1\n5 1\n")
	_, err := graphio.Load(path)
	require.Error(t, err)
}

func TestLoadMatrixMarketNNZMismatch(t *testing.T) {
	path := writeTemp(t, "net.mtx", "3 3 2\n1 2\n")
	_, err := graphio.Load(path)
	require.Error(t, err)
}
