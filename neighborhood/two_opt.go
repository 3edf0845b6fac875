package neighborhood

import (
	"math/rand"

	"github.com/ptbdnr/tspseq/route"
)

// TwoOpt reverses a segment [i, k] of intermediate positions, removing the
// edges (i-1, i) and (k, k+1) and replacing them with (i-1, k) and (i, k+1).
// Grounded on tsp/two_opt.go's reverseArcInPlace and candidate scan.
type TwoOpt struct {
	eval *route.Evaluator
	rng  *rand.Rand
}

// NewTwoOpt builds a TwoOpt operator over ev, seeded deterministically.
func NewTwoOpt(ev *route.Evaluator, rng *rand.Rand) *TwoOpt {
	return &TwoOpt{eval: ev, rng: rng}
}

// Apply reverses r.Sequence[i:k+1] and returns the resulting route. i and k
// must satisfy 1 <= i < k <= r.Len()-2; Apply does not validate the move.
//
// Complexity: O(k-i).
func (t *TwoOpt) Apply(r route.Route, i, k int) route.Route {
	out := r.Copy()
	for lo, hi := i, k; lo < hi; lo, hi = lo+1, hi-1 {
		out.Sequence[lo], out.Sequence[hi] = out.Sequence[hi], out.Sequence[lo]
	}

	return out
}

// RandomMove applies a 2-opt reversal over a uniformly sampled (i, k) pair.
// Returns r unchanged if the route has fewer than two movable positions.
func (t *TwoOpt) RandomMove(r route.Route) route.Route {
	lo, hi := intermediateBounds(r)
	if hi-lo < 1 {
		return r
	}
	i := lo + t.rng.Intn(hi-lo)
	k := i + 1 + t.rng.Intn(hi-i)

	return t.Apply(r, i, k)
}

// ApplyBestImprovement scans every candidate (i, k) pair and returns the
// valid route with the lowest objective value, alongside whether an
// improvement over r was found.
//
// Complexity: O(n^3) (O(n^2) candidates, O(n) reversal + evaluation each).
func (t *TwoOpt) ApplyBestImprovement(r route.Route) (route.Route, bool) {
	lo, hi := intermediateBounds(r)
	best := r
	bestValue := t.eval.Objective(r)
	improved := false

	for i := lo; i < hi; i++ {
		for k := i + 1; k <= hi; k++ {
			candidate := t.Apply(r, i, k)
			if !t.eval.IsValid(candidate) {
				continue
			}
			if v := t.eval.Objective(candidate); v < bestValue {
				best, bestValue, improved = candidate, v, true
			}
		}
	}

	return best, improved
}

// ApplyFirstImprovement scans candidate (i, k) pairs in order and returns
// the first valid, improving route found.
//
// Complexity: O(n^3) worst case (O(n^2) candidates, O(n) reversal +
// evaluation each); a single candidate on early exit.
func (t *TwoOpt) ApplyFirstImprovement(r route.Route) (route.Route, bool) {
	lo, hi := intermediateBounds(r)
	curValue := t.eval.Objective(r)

	for i := lo; i < hi; i++ {
		for k := i + 1; k <= hi; k++ {
			candidate := t.Apply(r, i, k)
			if !t.eval.IsValid(candidate) {
				continue
			}
			if t.eval.Objective(candidate) < curValue {
				return candidate, true
			}
		}
	}

	return r, false
}
