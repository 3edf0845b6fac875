// Package construct builds initial feasible routes. Naive produces the
// canonical deterministic ring; Greedy builds a nearest-neighbor tour. Both
// always start at the start depot and end at the end depot (spec.md §4.4).
package construct

import (
	"errors"
	"sort"

	"github.com/ptbdnr/tspseq/distance"
	"github.com/ptbdnr/tspseq/node"
	"github.com/ptbdnr/tspseq/route"
)

// ErrNoIntermediateNodes is returned when a constructor is asked to build a
// route over an instance with no intermediate nodes between the depots.
var ErrNoIntermediateNodes = errors.New("construct: no intermediate nodes")

// Naive builds the canonical deterministic route [start, 1, 2, ..., n, end],
// visiting intermediate nodes in ascending id order. Grounded on
// tsp/solve.go's trivialRing: a fixed, seed-independent baseline tour.
//
// Complexity: O(n).
func Naive(start, end node.Node, intermediates []node.Node) (route.Route, error) {
	if len(intermediates) == 0 {
		return route.Route{}, ErrNoIntermediateNodes
	}

	ordered := make([]node.Node, len(intermediates))
	copy(ordered, intermediates)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].ID() < ordered[j].ID() })

	seq := make([]node.Node, 0, len(ordered)+2)
	seq = append(seq, start)
	seq = append(seq, ordered...)
	seq = append(seq, end)

	return route.New(seq), nil
}

// Greedy builds a nearest-neighbor route: starting from the start depot,
// repeatedly steps to the closest unvisited intermediate node, then closes
// at the end depot. Grounded on
// original_source/src/optimiser/greedy.py (GreedyOptimiser.optimise).
//
// Complexity: O(n^2) (linear scan for the nearest unvisited node at each
// of n steps).
func Greedy(dist *distance.Cache, start, end node.Node, intermediates []node.Node) (route.Route, error) {
	if len(intermediates) == 0 {
		return route.Route{}, ErrNoIntermediateNodes
	}

	unvisited := make([]node.Node, len(intermediates))
	copy(unvisited, intermediates)

	seq := make([]node.Node, 0, len(intermediates)+2)
	seq = append(seq, start)

	curr := start
	for len(unvisited) > 0 {
		bestIdx := 0
		bestDist := dist.Distance(curr, unvisited[0])
		for i := 1; i < len(unvisited); i++ {
			if d := dist.Distance(curr, unvisited[i]); d < bestDist {
				bestDist = d
				bestIdx = i
			}
		}

		curr = unvisited[bestIdx]
		seq = append(seq, curr)
		unvisited = append(unvisited[:bestIdx], unvisited[bestIdx+1:]...)
	}

	seq = append(seq, end)

	return route.New(seq), nil
}
