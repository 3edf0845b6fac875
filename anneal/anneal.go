// Package anneal implements the Simulated Annealing improver of spec.md
// §4.7: Metropolis acceptance over randomly sampled neighborhood moves under
// a geometric cooling schedule.
//
// No direct teacher SA implementation exists anywhere in the pack; the
// acceptance/cooling loop follows the spec formula directly, while the
// seeded-determinism policy (one derived *rand.Rand stream per operator,
// no time-based entropy) is grounded on tsp/rng.go's rngFromSeed/deriveRNG,
// centralized in internal/rng.
package anneal

import (
	"math"
	"math/rand"

	"github.com/ptbdnr/tspseq/callback"
	"github.com/ptbdnr/tspseq/internal/rng"
	"github.com/ptbdnr/tspseq/neighborhood"
	"github.com/ptbdnr/tspseq/route"
	"github.com/ptbdnr/tspseq/termination"
)

// Params configures the cooling schedule. T0 is the initial temperature,
// Alpha the geometric cooling rate in (0, 1), TMin the stopping temperature.
type Params struct {
	T0    float64
	Alpha float64
	TMin  float64
}

// Improver runs simulated annealing over the 2-opt/relocate/swap
// neighborhood, sampling one random move per iteration.
type Improver struct {
	eval     *route.Evaluator
	params   Params
	rng      *rand.Rand
	twoOpt   *neighborhood.TwoOpt
	relocate *neighborhood.Relocate
	swap     *neighborhood.Swap
	journal  *callback.Journal
}

// NewImprover builds an Improver over ev with the given cooling schedule,
// seeded deterministically from seed. journal may be nil to skip iteration
// recording.
func NewImprover(ev *route.Evaluator, params Params, seed int64, journal *callback.Journal) *Improver {
	base := rng.FromSeed(seed)

	return &Improver{
		eval:     ev,
		params:   params,
		rng:      base,
		twoOpt:   neighborhood.NewTwoOpt(ev, rng.Derive(base, 1)),
		relocate: neighborhood.NewRelocate(ev, rng.Derive(base, 2)),
		swap:     neighborhood.NewSwap(ev, rng.Derive(base, 3)),
		journal:  journal,
	}
}

// Optimise runs the Metropolis acceptance loop starting from seed until the
// gate fires or the temperature drops below TMin. Returns the best route
// found and its objective value.
//
// Complexity: O(iterations * n) per move (2-opt/swap O(n) apply,
// relocate O(n) apply).
func (imp *Improver) Optimise(seed route.Route, gate *termination.Gate) (route.Route, float64) {
	current := seed
	currentValue := imp.eval.Objective(current)
	best := current
	bestValue := currentValue
	temperature := imp.params.T0
	iteration := 0

	for temperature >= imp.params.TMin {
		if gate != nil && gate.ShouldTerminate(iteration, bestValue) {
			break
		}

		candidate := imp.randomMove(current)
		candidateValue := imp.eval.Objective(candidate)
		delta := candidateValue - currentValue

		accepted := delta < 0
		if !accepted {
			acceptProb := math.Exp(-delta / temperature)
			accepted = imp.rng.Float64() < acceptProb
		}

		if accepted {
			current = candidate
			currentValue = candidateValue
			if currentValue < bestValue {
				best = current
				bestValue = currentValue
			}
		}

		iteration++
		if imp.journal != nil {
			imp.journal.OnIteration(iteration, currentValue, bestValue, accepted, 0)
		}

		temperature *= imp.params.Alpha
	}

	return best, bestValue
}

// randomMove samples one of the three operators uniformly and applies a
// random move from it.
func (imp *Improver) randomMove(r route.Route) route.Route {
	switch imp.rng.Intn(3) {
	case 0:
		return imp.twoOpt.RandomMove(r)
	case 1:
		return imp.relocate.RandomMove(r)
	default:
		return imp.swap.RandomMove(r)
	}
}
