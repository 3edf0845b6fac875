package distance_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ptbdnr/tspseq/distance"
	"github.com/ptbdnr/tspseq/node"
)

func mustNode(t *testing.T, id int, x, y float64) node.Node {
	t.Helper()
	n, err := node.New(id, x, y)
	require.NoError(t, err)

	return n
}

func TestDistance_Symmetric(t *testing.T) {
	c := distance.New(0, 5)
	a := mustNode(t, 0, 0, 0)
	b := mustNode(t, 1, 3, 4)

	require.InDelta(t, 5.0, c.Distance(a, b), 0)
	require.InDelta(t, c.Distance(a, b), c.Distance(b, a), 0)
}

func TestDistance_SameID(t *testing.T) {
	c := distance.New(0, 5)
	a := mustNode(t, 2, 1, 1)

	require.InDelta(t, 0.0, c.Distance(a, a), 0)
}

func TestDistance_PreSeededClosingEdge(t *testing.T) {
	c := distance.New(0, 5)
	require.Equal(t, 1, c.Len())
}

func TestDistance_CacheGrowsMonotonically(t *testing.T) {
	c := distance.New(0, 3)
	before := c.Len()
	a := mustNode(t, 1, 0, 0)
	b := mustNode(t, 2, 1, 1)

	c.Distance(a, b)
	require.Greater(t, c.Len(), before)

	after := c.Len()
	c.Distance(a, b)
	require.Equal(t, after, c.Len())
}
