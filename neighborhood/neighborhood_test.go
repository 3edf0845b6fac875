package neighborhood_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ptbdnr/tspseq/distance"
	"github.com/ptbdnr/tspseq/neighborhood"
	"github.com/ptbdnr/tspseq/node"
	"github.com/ptbdnr/tspseq/route"
)

func mustNode(t *testing.T, id int, x, y float64) node.Node {
	t.Helper()
	n, err := node.New(id, x, y)
	require.NoError(t, err)

	return n
}

// n=4 instance: depot 0, intermediates 1..4, depot 5, collinear on the x axis.
func fixture(t *testing.T) (route.Route, *route.Evaluator) {
	t.Helper()

	nodes := []node.Node{
		mustNode(t, 0, 0, 0),
		mustNode(t, 1, 1, 0),
		mustNode(t, 2, 2, 0),
		mustNode(t, 3, 3, 0),
		mustNode(t, 4, 4, 0),
		mustNode(t, 5, 5, 0),
	}
	dist := distance.New(0, 5)
	ev := route.NewEvaluator(dist, nodes)
	r := route.New(nodes)

	return r, ev
}

func TestTwoOpt_Apply_ReversesSegment(t *testing.T) {
	r, ev := fixture(t)
	op := neighborhood.NewTwoOpt(ev, rand.New(rand.NewSource(1)))

	out := op.Apply(r, 1, 3)
	require.Equal(t, "0-3-2-1-4-5", out.String())
}

func TestTwoOpt_ApplyBestImprovement_OnOptimalRouteFindsNone(t *testing.T) {
	r, ev := fixture(t)
	op := neighborhood.NewTwoOpt(ev, rand.New(rand.NewSource(1)))

	_, improved := op.ApplyBestImprovement(r)
	require.False(t, improved)
}

func TestTwoOpt_ApplyBestImprovement_FindsImprovement(t *testing.T) {
	r, ev := fixture(t)
	op := neighborhood.NewTwoOpt(ev, rand.New(rand.NewSource(1)))

	// Scramble the valid ordering 0-1-2-4-3-5 (with n=4, 3 -> 4 is forbidden);
	// reversing positions 2..4 recovers it, a strictly better valid route.
	scrambled := route.New([]node.Node{r.Sequence[0], r.Sequence[1], r.Sequence[3], r.Sequence[4], r.Sequence[2], r.Sequence[5]})
	best, improved := op.ApplyBestImprovement(scrambled)
	require.True(t, improved)
	require.LessOrEqual(t, ev.Objective(best), ev.Objective(scrambled))
}

func TestSwap_Apply_ExchangesPositions(t *testing.T) {
	r, ev := fixture(t)
	op := neighborhood.NewSwap(ev, rand.New(rand.NewSource(1)))

	out := op.Apply(r, 1, 4)
	require.Equal(t, "0-4-2-3-1-5", out.String())
}

func TestRelocate_Apply_MovesSingleNode(t *testing.T) {
	r, ev := fixture(t)
	op := neighborhood.NewRelocate(ev, rand.New(rand.NewSource(1)))

	// Move node at position 1 (id 1) to insertPos 3, an index into the
	// original sequence (2 after removal): 0-2-1-3-4-5.
	out := op.Apply(r, 1, 1, 3)
	require.Equal(t, 6, out.Len())

	seen := make(map[int]bool)
	for _, n := range out.Sequence {
		require.False(t, seen[n.ID()])
		seen[n.ID()] = true
	}
	require.Len(t, seen, 6)
}

func TestRelocate_Apply_MovesSegment(t *testing.T) {
	r, ev := fixture(t)
	op := neighborhood.NewRelocate(ev, rand.New(rand.NewSource(1)))

	out := op.Apply(r, 1, 2, 4)
	require.Equal(t, 6, out.Len())
}

func TestRelocate_ApplyFirstImprovement_ReturnsOriginalWhenNoneFound(t *testing.T) {
	r, ev := fixture(t)
	op := neighborhood.NewRelocate(ev, rand.New(rand.NewSource(1)))

	_, improved := op.ApplyFirstImprovement(r)
	require.False(t, improved)
}

func TestSwap_RandomMove_StaysStructurallyComplete(t *testing.T) {
	r, ev := fixture(t)
	op := neighborhood.NewSwap(ev, rand.New(rand.NewSource(7)))

	out := op.RandomMove(r)
	require.Equal(t, r.Len(), out.Len())
}
