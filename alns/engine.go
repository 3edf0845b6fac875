package alns

import (
	"math/rand"
	"time"

	"github.com/ptbdnr/tspseq/callback"
	"github.com/ptbdnr/tspseq/distance"
	"github.com/ptbdnr/tspseq/internal/rng"
	"github.com/ptbdnr/tspseq/route"
)

// Params configures the destroy-operator strength and the late-acceptance
// hill climbing lookback window, both tunable per spec.md §6 / original
// knobs not named by the distilled spec.
type Params struct {
	DegreeOfDestruction float64
	LookbackWindow      int
}

// DefaultParams mirrors original_source's ALNS defaults: remove 10% of edges
// per destroy, look back 10 iterations for late acceptance.
func DefaultParams() Params {
	return Params{DegreeOfDestruction: 0.1, LookbackWindow: 10}
}

// scoreNewBest, scoreBetterThanCurrent, scoreAcceptedNoImprovement, and
// scoreRejected are the roulette-wheel reward tiers of spec.md §4.8.
const (
	scoreNewBest               = 3.0
	scoreBetterThanCurrent     = 2.0
	scoreAcceptedNoImprovement = 1.0
	scoreRejected              = 0.5
)

// decay is the roulette-wheel weight decay factor applied after each pick.
const decay = 0.8

// roulette is a roulette-wheel selector over a fixed set of operators,
// reset and decayed independently per spec.md §4.8 ("weights... are reset
// across destroy/repair operators separately").
type roulette struct {
	weights []float64
}

func newRoulette(n int) *roulette {
	w := make([]float64, n)
	for i := range w {
		w[i] = 1
	}

	return &roulette{weights: w}
}

func (r *roulette) pick(rng *rand.Rand) int {
	total := 0.0
	for _, w := range r.weights {
		total += w
	}
	if total <= 0 {
		return rng.Intn(len(r.weights))
	}

	target := rng.Float64() * total
	cumulative := 0.0
	for i, w := range r.weights {
		cumulative += w
		if target < cumulative {
			return i
		}
	}

	return len(r.weights) - 1
}

func (r *roulette) reward(idx int, score float64) {
	r.weights[idx] = r.weights[idx]*decay + score
}

// Engine runs Adaptive Large Neighborhood Search: alternating destroy and
// greedy-repair operators selected by roulette wheel, accepted via
// late-acceptance hill climbing.
type Engine struct {
	eval    *route.Evaluator
	dist    *distance.Cache
	rng     *rand.Rand
	journal *callback.Journal
	params  Params

	destroyOps      []destroyOperator
	destroySelector *roulette
	repairSelector  *roulette
}

// NewEngine builds an Engine over ev, seeded deterministically from seed.
// journal may be nil to skip iteration recording.
func NewEngine(ev *route.Evaluator, dist *distance.Cache, seed int64, journal *callback.Journal, params Params) *Engine {
	return &Engine{
		eval:            ev,
		dist:            dist,
		rng:             rng.FromSeed(seed),
		journal:         journal,
		params:          params,
		destroyOps:      []destroyOperator{randomRemoval, pathRemoval, worstRemoval},
		destroySelector: newRoulette(3),
		repairSelector:  newRoulette(1), // a single repair operator: greedyRepair
	}
}

// Optimise runs ALNS starting from seed for up to maxRuntime, returning the
// best route found and its objective value. Wall-clock time is the sole
// stopping criterion, per spec.md §4.8.
//
// Complexity: O(iterations * n^3) (greedyRepair scans every node for each
// orphan, and each candidate costs an O(n) sub-cycle walk).
func (e *Engine) Optimise(seed route.Route, maxRuntime time.Duration) (route.Route, float64) {
	current := newState(seed, e.params.DegreeOfDestruction)
	currentValue := current.objective(e.eval)

	best := current.clone()
	bestValue := currentValue

	history := []float64{currentValue}
	iteration := 0
	deadline := time.Now().Add(maxRuntime)

	for time.Now().Before(deadline) {
		destroyIdx := e.destroySelector.pick(e.rng)
		candidate := e.destroyOps[destroyIdx](current, e.dist, e.rng)
		candidate = greedyRepair(candidate, e.dist, e.rng)
		candidateValue := candidate.objective(e.eval)

		lookbackValue := currentValue
		if iteration >= e.params.LookbackWindow {
			lookbackValue = history[len(history)-e.params.LookbackWindow]
		}

		accepted := candidateValue < lookbackValue
		score := scoreRejected
		if accepted {
			current = candidate
			currentValue = candidateValue
			score = scoreAcceptedNoImprovement
			if currentValue < bestValue {
				best = current.clone()
				bestValue = currentValue
				score = scoreNewBest
			} else if currentValue < history[len(history)-1] {
				score = scoreBetterThanCurrent
			}
		}

		e.destroySelector.reward(destroyIdx, score)
		e.repairSelector.reward(0, score)

		history = append(history, currentValue)
		iteration++
		if e.journal != nil {
			e.journal.OnIteration(iteration, currentValue, bestValue, accepted, 0)
		}
	}

	return best.toRoute(), bestValue
}
