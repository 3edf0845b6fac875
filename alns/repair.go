package alns

import (
	"math/rand"

	"github.com/ptbdnr/tspseq/distance"
	"github.com/ptbdnr/tspseq/internal/rng"
)

// greedyRepair reconnects each orphaned node (one with no outgoing edge)
// to its nearest admissible, non-sub-cycling target, per spec.md §4.8.
// When no such target exists it takes the nearest target allowed by the
// parity rule alone; an orphan with no admissible target stays unconnected,
// which leaves the state's objective at +Inf.
// Orphans are processed in a shuffled order so repeated destroy/repair
// rounds do not fall into the same local pattern every time.
func greedyRepair(current *state, dist *distance.Cache, r *rand.Rand) *state {
	n := len(current.nodes) - 2 // intermediate count; nodes[0] and nodes[last] are depots

	var orphans []int
	for _, nd := range current.nodes {
		if _, has := current.succ[nd.ID()]; !has {
			orphans = append(orphans, nd.ID())
		}
	}
	if len(orphans) == 0 {
		return current
	}

	rng.ShuffleInts(orphans, r)

	visited := make(map[int]bool, len(current.succ))
	for _, to := range current.succ {
		visited[to] = true
	}
	startID := current.nodes[0].ID()

	for _, orphanID := range orphans {
		candidate, found := pickRepairTarget(current, dist, orphanID, startID, n, visited, true)
		if !found {
			candidate, found = pickRepairTarget(current, dist, orphanID, startID, n, visited, false)
		}
		if !found {
			continue
		}
		current.succ[orphanID] = candidate
		visited[candidate] = true
	}

	return current
}

// pickRepairTarget finds the nearest admissible target for orphanID. When
// strict is true it additionally requires the target be unvisited (or the
// start node) and that connecting would not form a sub-cycle, matching
// greedy_repair's primary candidate set; strict=false is the fallback set
// filtered only by edge validity.
func pickRepairTarget(current *state, dist *distance.Cache, orphanID, startID, n int, visited map[int]bool, strict bool) (int, bool) {
	bestID := -1
	bestDist := 0.0

	for _, other := range current.nodes {
		otherID := other.ID()
		if otherID == orphanID {
			continue
		}
		if strict {
			if visited[otherID] && otherID != startID {
				continue
			}
			if current.wouldFormSubcycle(orphanID, otherID) {
				continue
			}
		}
		if !isEdgeValid(orphanID, otherID, n) {
			continue
		}

		d := dist.Distance(current.nodeByID(orphanID), other)
		if bestID == -1 || d < bestDist {
			bestID, bestDist = otherID, d
		}
	}

	return bestID, bestID != -1
}
