package route_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ptbdnr/tspseq/distance"
	"github.com/ptbdnr/tspseq/node"
	"github.com/ptbdnr/tspseq/route"
)

func mustNode(t *testing.T, id int, x, y float64) node.Node {
	t.Helper()
	n, err := node.New(id, x, y)
	require.NoError(t, err)

	return n
}

// n=4 instance: depot 0, intermediates 1..4, depot 5.
func fixtureNodes(t *testing.T) []node.Node {
	t.Helper()

	return []node.Node{
		mustNode(t, 0, 0, 0),
		mustNode(t, 1, 1, 0),
		mustNode(t, 2, 2, 0),
		mustNode(t, 3, 3, 0),
		mustNode(t, 4, 4, 0),
		mustNode(t, 5, 5, 0),
	}
}

func TestRoute_String(t *testing.T) {
	nodes := fixtureNodes(t)
	r := route.New([]node.Node{nodes[0], nodes[2], nodes[1], nodes[3], nodes[4], nodes[5]})

	require.Equal(t, "0-2-1-3-4-5", r.String())
}

func TestRoute_Copy_Independent(t *testing.T) {
	nodes := fixtureNodes(t)
	r := route.New(append([]node.Node{}, nodes...))
	cp := r.Copy()

	cp.Sequence[1], cp.Sequence[2] = cp.Sequence[2], cp.Sequence[1]

	require.NotEqual(t, r.Sequence[1].ID(), cp.Sequence[1].ID())
}

func TestEvaluator_IsValid_WellFormedRoute(t *testing.T) {
	nodes := fixtureNodes(t)
	dist := distance.New(nodes[0].ID(), nodes[5].ID())
	ev := route.NewEvaluator(dist, nodes)

	// With n=4, 3 -> 4 is forbidden (3 odd, 4 even, 3 >= 2), so 3 comes last.
	r := route.New([]node.Node{nodes[0], nodes[1], nodes[2], nodes[4], nodes[3], nodes[5]})

	require.True(t, ev.IsValid(r))
}

func TestEvaluator_IsValid_WrongStart(t *testing.T) {
	nodes := fixtureNodes(t)
	dist := distance.New(nodes[0].ID(), nodes[5].ID())
	ev := route.NewEvaluator(dist, nodes)

	r := route.New([]node.Node{nodes[1], nodes[0], nodes[2], nodes[3], nodes[4], nodes[5]})

	require.False(t, ev.IsValid(r))
}

func TestEvaluator_IsValid_WrongEnd(t *testing.T) {
	nodes := fixtureNodes(t)
	dist := distance.New(nodes[0].ID(), nodes[5].ID())
	ev := route.NewEvaluator(dist, nodes)

	r := route.New([]node.Node{nodes[0], nodes[1], nodes[2], nodes[3], nodes[5], nodes[4]})

	require.False(t, ev.IsValid(r))
}

func TestEvaluator_IsValid_DuplicateIntermediate(t *testing.T) {
	nodes := fixtureNodes(t)
	dist := distance.New(nodes[0].ID(), nodes[5].ID())
	ev := route.NewEvaluator(dist, nodes)

	r := route.New([]node.Node{nodes[0], nodes[1], nodes[1], nodes[3], nodes[4], nodes[5]})

	require.False(t, ev.IsValid(r))
}

func TestEvaluator_IsValid_MissingIntermediate(t *testing.T) {
	nodes := fixtureNodes(t)
	dist := distance.New(nodes[0].ID(), nodes[5].ID())
	ev := route.NewEvaluator(dist, nodes)

	// 5 nodes total instead of 6: id 4 never appears.
	r := route.New([]node.Node{nodes[0], nodes[1], nodes[2], nodes[3], nodes[5]})

	require.False(t, ev.IsValid(r))
}

func TestEvaluator_IsValid_ForbiddenParityTransition(t *testing.T) {
	// n=10 instance so the parity rule's midpoint (5) is meaningful.
	ids := make([]node.Node, 0, 12)
	for i := 0; i <= 11; i++ {
		ids = append(ids, mustNode(t, i, float64(i), 0))
	}
	dist := distance.New(0, 11)
	ev := route.NewEvaluator(dist, ids)

	// Every transition in this order is admissible except the forbidden
	// directed transition (2 -> 3): even, below half. The odd ids at or
	// above half (5, 7, 9) are followed only by odd ids or the end depot.
	order := []int{0, 1, 2, 3, 4, 6, 8, 10, 5, 7, 9, 11}
	seq := make([]node.Node, 0, len(order))
	for _, id := range order {
		seq = append(seq, ids[id])
	}

	require.False(t, ev.IsValid(route.New(seq)))
}

func TestEvaluator_TotalLength_And_EdgeLengths(t *testing.T) {
	nodes := fixtureNodes(t)
	dist := distance.New(nodes[0].ID(), nodes[5].ID())
	ev := route.NewEvaluator(dist, nodes)

	r := route.New([]node.Node{nodes[0], nodes[1], nodes[2], nodes[3], nodes[4], nodes[5]})

	lengths := ev.EdgeLengths(r)
	require.Len(t, lengths, 5)
	for _, d := range lengths {
		require.InDelta(t, 1.0, d, 1e-9)
	}
	require.InDelta(t, 5.0, ev.TotalLength(r), 1e-9)
}

func TestEvaluator_Objective_UniformEdgesHaveZeroDelta(t *testing.T) {
	nodes := fixtureNodes(t)
	dist := distance.New(nodes[0].ID(), nodes[5].ID())
	ev := route.NewEvaluator(dist, nodes)

	r := route.New([]node.Node{nodes[0], nodes[1], nodes[2], nodes[3], nodes[4], nodes[5]})

	// Every edge has length 1, so delta = 0 and objective = total length.
	require.InDelta(t, ev.TotalLength(r), ev.Objective(r), 1e-9)
}

func TestEvaluator_Objective_ScopedPerInstance(t *testing.T) {
	nodesA := fixtureNodes(t)
	distA := distance.New(nodesA[0].ID(), nodesA[5].ID())
	evA := route.NewEvaluator(distA, nodesA)

	// A second, unrelated instance with a much larger span must not share
	// a memoized L with evA; each Evaluator owns its own L.
	nodesB := []node.Node{
		mustNode(t, 0, 0, 0),
		mustNode(t, 1, 100, 0),
		mustNode(t, 2, 200, 0),
	}
	distB := distance.New(nodesB[0].ID(), nodesB[2].ID())
	evB := route.NewEvaluator(distB, nodesB)

	require.NotEqual(t, evA.L(), evB.L())
}
