package neighborhood

import (
	"math/rand"

	"github.com/ptbdnr/tspseq/route"
)

// Swap exchanges the nodes at two intermediate positions. No teacher-side Go
// analogue exists (lvlath has no swap move); the index conventions follow
// the same depot-exclusion rule as Relocate and TwoOpt, inferred from
// original_source/src/schemas/route.py's sequence-index handling.
type Swap struct {
	eval *route.Evaluator
	rng  *rand.Rand
}

// NewSwap builds a Swap operator over ev, seeded deterministically.
func NewSwap(ev *route.Evaluator, rng *rand.Rand) *Swap {
	return &Swap{eval: ev, rng: rng}
}

// Apply exchanges r.Sequence[i] and r.Sequence[j] and returns the result. i
// and j must both lie in [1, r.Len()-2]; Apply does not validate the move.
//
// Complexity: O(r.Len()) (copy) plus O(1) exchange.
func (s *Swap) Apply(r route.Route, i, j int) route.Route {
	out := r.Copy()
	out.Sequence[i], out.Sequence[j] = out.Sequence[j], out.Sequence[i]

	return out
}

// RandomMove swaps a uniformly sampled pair of distinct intermediate
// positions. Returns r unchanged if fewer than two intermediate nodes exist.
func (s *Swap) RandomMove(r route.Route) route.Route {
	lo, hi := intermediateBounds(r)
	if hi-lo < 1 {
		return r
	}
	i := lo + s.rng.Intn(hi-lo+1)
	j := lo + s.rng.Intn(hi-lo+1)
	for j == i {
		j = lo + s.rng.Intn(hi-lo+1)
	}

	return s.Apply(r, i, j)
}

// ApplyBestImprovement scans every unordered pair of intermediate positions
// and returns the valid route with the lowest objective value.
//
// Complexity: O(n^3).
func (s *Swap) ApplyBestImprovement(r route.Route) (route.Route, bool) {
	lo, hi := intermediateBounds(r)
	best := r
	bestValue := s.eval.Objective(r)
	improved := false

	for i := lo; i <= hi; i++ {
		for j := i + 1; j <= hi; j++ {
			candidate := s.Apply(r, i, j)
			if !s.eval.IsValid(candidate) {
				continue
			}
			if v := s.eval.Objective(candidate); v < bestValue {
				best, bestValue, improved = candidate, v, true
			}
		}
	}

	return best, improved
}

// ApplyFirstImprovement scans pairs in order and returns the first valid,
// improving swap found.
//
// Complexity: O(n^3) worst case (O(n^2) pairs, O(n) copy + evaluation each).
func (s *Swap) ApplyFirstImprovement(r route.Route) (route.Route, bool) {
	lo, hi := intermediateBounds(r)
	curValue := s.eval.Objective(r)

	for i := lo; i <= hi; i++ {
		for j := i + 1; j <= hi; j++ {
			candidate := s.Apply(r, i, j)
			if !s.eval.IsValid(candidate) {
				continue
			}
			if s.eval.Objective(candidate) < curValue {
				return candidate, true
			}
		}
	}

	return r, false
}
