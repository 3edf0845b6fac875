package ingest_test

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ptbdnr/tspseq/internal/ingest"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestParse_SkipsHeaderAndParsesRows(t *testing.T) {
	csv := "id,x,y\n0,0,0\n1,1.5,2.5\n2,3,4\n"
	nodes, err := ingest.Parse(strings.NewReader(csv), discardLogger())

	require.NoError(t, err)
	require.Len(t, nodes, 3)
	require.Equal(t, 1, nodes[1].ID())
	require.InDelta(t, 1.5, nodes[1].X(), 1e-9)
}

func TestParse_SkipsRowsWithWrongFieldCount(t *testing.T) {
	csv := "id,x,y\n0,0,0\n1,1\n2,2,2\n"
	nodes, err := ingest.Parse(strings.NewReader(csv), discardLogger())

	require.NoError(t, err)
	require.Len(t, nodes, 2)
}

func TestParse_SkipsRowsWithNegativeID(t *testing.T) {
	csv := "id,x,y\n-1,0,0\n1,1,1\n"
	nodes, err := ingest.Parse(strings.NewReader(csv), discardLogger())

	require.NoError(t, err)
	require.Len(t, nodes, 1)
	require.Equal(t, 1, nodes[0].ID())
}

func TestParse_EmptyInput(t *testing.T) {
	nodes, err := ingest.Parse(strings.NewReader(""), discardLogger())

	require.NoError(t, err)
	require.Empty(t, nodes)
}
