package alns

import (
	"math/rand"
	"sort"

	"github.com/ptbdnr/tspseq/distance"
)

// destroyOperator removes a fraction of the outgoing edges from a clone of
// current, per spec.md §4.8.
type destroyOperator func(current *state, dist *distance.Cache, rng *rand.Rand) *state

// randomRemoval drops the outgoing edge of a uniformly sampled, without
// replacement, set of nodes.
func randomRemoval(current *state, dist *distance.Cache, rng *rand.Rand) *state {
	destroyed := current.clone()
	numToRemove := current.edgesToRemove()
	if numToRemove > len(destroyed.nodes) {
		numToRemove = len(destroyed.nodes)
	}

	indices := rng.Perm(len(destroyed.nodes))[:numToRemove]
	for _, idx := range indices {
		delete(destroyed.succ, destroyed.nodes[idx].ID())
	}

	return destroyed
}

// pathRemoval removes a consecutive run of outgoing edges starting from a
// randomly chosen node.
func pathRemoval(current *state, dist *distance.Cache, rng *rand.Rand) *state {
	destroyed := current.clone()
	if len(destroyed.nodes) < 3 {
		return destroyed
	}

	curr := destroyed.nodes[rng.Intn(len(destroyed.nodes))].ID()
	numToRemove := current.edgesToRemove()

	for i := 0; i < numToRemove; i++ {
		next, has := destroyed.succ[curr]
		if !has {
			break
		}
		delete(destroyed.succ, curr)
		curr = next
	}

	return destroyed
}

// worstRemoval removes the numToRemove longest edges.
func worstRemoval(current *state, dist *distance.Cache, rng *rand.Rand) *state {
	destroyed := current.clone()
	if len(destroyed.succ) == 0 {
		return destroyed
	}

	type edge struct {
		from int
		d    float64
	}
	edges := make([]edge, 0, len(destroyed.succ))
	for from, to := range destroyed.succ {
		edges = append(edges, edge{from: from, d: dist.Distance(destroyed.nodeByID(from), destroyed.nodeByID(to))})
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].d != edges[j].d {
			return edges[i].d > edges[j].d
		}

		return edges[i].from < edges[j].from
	})

	numToRemove := current.edgesToRemove()
	if numToRemove > len(edges) {
		numToRemove = len(edges)
	}
	for i := 0; i < numToRemove; i++ {
		delete(destroyed.succ, edges[i].from)
	}

	return destroyed
}
