// Package localsearch implements the round-robin best-improvement engine of
// spec.md §4.6: cycle through 2-opt, relocate, and swap, applying each
// operator's best improving move, until a full round produces no
// improvement or the termination gate fires.
//
// Grounded on tsp/solve.go's SolveWithMatrix dispatcher loop (sequential
// algorithm application with cost threading) and
// original_source/src/optimiser/iterative/iterative.py's IterativeOptimiser
// ABC (add_seed_route / optimise).
package localsearch

import (
	"github.com/ptbdnr/tspseq/callback"
	"github.com/ptbdnr/tspseq/internal/rng"
	"github.com/ptbdnr/tspseq/neighborhood"
	"github.com/ptbdnr/tspseq/route"
	"github.com/ptbdnr/tspseq/termination"
)

// Improver runs round-robin best-improvement local search over the
// 2-opt/relocate/swap neighborhood.
type Improver struct {
	eval     *route.Evaluator
	twoOpt   *neighborhood.TwoOpt
	relocate *neighborhood.Relocate
	swap     *neighborhood.Swap
	journal  *callback.Journal
}

// NewImprover builds an Improver over ev, seeded deterministically from
// seed. journal may be nil to skip iteration recording.
func NewImprover(ev *route.Evaluator, seed int64, journal *callback.Journal) *Improver {
	base := rng.FromSeed(seed)

	return &Improver{
		eval:     ev,
		twoOpt:   neighborhood.NewTwoOpt(ev, rng.Derive(base, 1)),
		relocate: neighborhood.NewRelocate(ev, rng.Derive(base, 2)),
		swap:     neighborhood.NewSwap(ev, rng.Derive(base, 3)),
		journal:  journal,
	}
}

// Optimise runs round-robin best-improvement local search starting from
// seed, returning the best route found and its objective value. A full
// round of {2-opt, relocate, swap} with no improvement, or the gate firing,
// ends the search.
//
// Complexity: O(iterations * n^4) — dominated by relocate's best-improvement
// scan each round.
func (imp *Improver) Optimise(seed route.Route, gate *termination.Gate) (route.Route, float64) {
	current := seed
	bestValue := imp.eval.Objective(current)
	iteration := 0

	for {
		roundImproved := false

		for _, step := range []func(route.Route) (route.Route, bool){
			imp.twoOpt.ApplyBestImprovement,
			imp.relocate.ApplyBestImprovement,
			imp.swap.ApplyBestImprovement,
		} {
			candidate, improved := step(current)
			if !improved {
				continue
			}
			current = candidate
			bestValue = imp.eval.Objective(current)
			roundImproved = true

			iteration++
			if imp.journal != nil {
				imp.journal.OnIteration(iteration, bestValue, bestValue, true, 0)
			}
			if gate != nil && gate.ShouldTerminate(iteration, bestValue) {
				return current, bestValue
			}
		}

		if !roundImproved {
			return current, bestValue
		}
	}
}
