package neighborhood

import (
	"math/rand"

	"github.com/ptbdnr/tspseq/node"
	"github.com/ptbdnr/tspseq/route"
)

// Relocate cuts the segment r.Sequence[v1:v2+1] and reinserts it elsewhere in
// the route. v1 == v2 relocates a single node; v1 < v2 relocates a
// contiguous segment. Grounded directly on
// original_source/src/optimiser/iterative/operations/relocate.py, which has
// no teacher-side Go analogue (lvlath has no relocate move).
type Relocate struct {
	eval *route.Evaluator
	rng  *rand.Rand
}

// NewRelocate builds a Relocate operator over ev, seeded deterministically.
func NewRelocate(ev *route.Evaluator, rng *rand.Rand) *Relocate {
	return &Relocate{eval: ev, rng: rng}
}

// Apply removes the segment [v1, v2] and reinserts it at insertPos (an index
// into the original sequence, before the segment is removed). insertPos is
// adjusted for the removal shift exactly as relocate.py does: positions at
// or after v1 shift left by the segment length. Apply does not validate
// its inputs or the resulting route.
//
// Complexity: O(r.Len()).
func (op *Relocate) Apply(r route.Route, v1, v2, insertPos int) route.Route {
	segLen := v2 - v1 + 1
	segment := make([]node.Node, segLen)
	copy(segment, r.Sequence[v1:v2+1])

	rest := make([]node.Node, 0, r.Len()-segLen)
	rest = append(rest, r.Sequence[:v1]...)
	rest = append(rest, r.Sequence[v2+1:]...)

	adjusted := insertPos
	if insertPos >= v1 {
		adjusted = insertPos - segLen
	}

	out := make([]node.Node, 0, r.Len())
	out = append(out, rest[:adjusted]...)
	out = append(out, segment...)
	out = append(out, rest[adjusted:]...)

	return route.New(out)
}

// RandomMove relocates a uniformly sampled segment to a uniformly sampled
// valid insertion position. Returns r unchanged if the route is too short
// (fewer than minMovableLength nodes).
func (op *Relocate) RandomMove(r route.Route) route.Route {
	lo, hi := intermediateBounds(r)
	if r.Len() < minMovableLength || hi < lo {
		return r
	}

	v1 := lo + op.rng.Intn(hi-lo+1)
	v2 := v1 + op.rng.Intn(hi-v1+1)
	segLen := v2 - v1 + 1

	var candidates []int
	for i := 1; i <= r.Len()-segLen; i++ {
		if i < v1 || i > v2+1 {
			candidates = append(candidates, i)
		}
	}
	if len(candidates) == 0 {
		return r
	}
	insertPos := candidates[op.rng.Intn(len(candidates))]

	return op.Apply(r, v1, v2, insertPos)
}

// ApplyBestImprovement scans every (v1, v2, insertPos) combination and
// returns the valid route with the lowest objective value.
//
// Complexity: O(n^4) (O(n^3) candidates, O(n) apply + evaluation each).
func (op *Relocate) ApplyBestImprovement(r route.Route) (route.Route, bool) {
	if r.Len() < minMovableLength {
		return r, false
	}
	lo, hi := intermediateBounds(r)
	best := r
	bestValue := op.eval.Objective(r)
	improved := false

	for v1 := lo; v1 <= hi; v1++ {
		for v2 := v1; v2 <= hi; v2++ {
			segLen := v2 - v1 + 1
			for insertPos := 0; insertPos <= r.Len()-segLen; insertPos++ {
				if insertPos >= v1 && insertPos <= v2+1 {
					continue
				}
				candidate := op.Apply(r, v1, v2, insertPos)
				if !op.eval.IsValid(candidate) {
					continue
				}
				if v := op.eval.Objective(candidate); v < bestValue {
					best, bestValue, improved = candidate, v, true
				}
			}
		}
	}

	return best, improved
}

// ApplyFirstImprovement scans (v1, v2, insertPos) combinations in order and
// returns the first valid, improving relocation found.
//
// Complexity: O(n^4) worst case (O(n^3) candidates, O(n) apply + evaluation
// each).
func (op *Relocate) ApplyFirstImprovement(r route.Route) (route.Route, bool) {
	if r.Len() < minMovableLength {
		return r, false
	}
	lo, hi := intermediateBounds(r)
	curValue := op.eval.Objective(r)

	for v1 := lo; v1 <= hi; v1++ {
		for v2 := v1; v2 <= hi; v2++ {
			segLen := v2 - v1 + 1
			for insertPos := 0; insertPos <= r.Len()-segLen; insertPos++ {
				if insertPos >= v1 && insertPos <= v2+1 {
					continue
				}
				candidate := op.Apply(r, v1, v2, insertPos)
				if !op.eval.IsValid(candidate) {
					continue
				}
				if op.eval.Objective(candidate) < curValue {
					return candidate, true
				}
			}
		}
	}

	return r, false
}
