package route

import (
	"sync"

	"github.com/ptbdnr/tspseq/distance"
	"github.com/ptbdnr/tspseq/node"
	"github.com/ptbdnr/tspseq/parity"
)

// Evaluator computes lengths, the composite objective, and validity for
// routes over a fixed instance (all n+2 nodes plus a shared distance
// cache). One Evaluator is created per run and lives to termination —
// spec.md §4.2 explicitly flags the Python original's process-global memo
// of L as a bug; L here is scoped to this instance via lOnce.
type Evaluator struct {
	dist     *distance.Cache
	allNodes []node.Node
	n        int // number of intermediate nodes, excluding the two depots

	lOnce sync.Once
	l     float64
}

// NewEvaluator constructs an Evaluator over the full node set (both depots
// plus every intermediate node) and a shared distance cache.
//
// Complexity: O(1) (L is computed lazily on first use).
func NewEvaluator(dist *distance.Cache, allNodes []node.Node) *Evaluator {
	return &Evaluator{
		dist:     dist,
		allNodes: allNodes,
		n:        len(allNodes) - 2,
	}
}

// N returns the number of intermediate nodes for this instance.
func (e *Evaluator) N() int { return e.n }

// L returns the instance-scoped penalty multiplier L = maxDistance * n,
// computed once and cached for the lifetime of this Evaluator.
//
// Complexity: O(k²) on first call (k = len(allNodes)), O(1) thereafter.
func (e *Evaluator) L() float64 {
	e.lOnce.Do(func() {
		var maxDist float64
		for i := range e.allNodes {
			for j := i + 1; j < len(e.allNodes); j++ {
				if d := e.dist.Distance(e.allNodes[i], e.allNodes[j]); d > maxDist {
					maxDist = d
				}
			}
		}
		e.l = maxDist * float64(e.n)
	})

	return e.l
}

// EdgeLengths returns the consecutive-pair distances along r.Sequence.
//
// Complexity: O(len(r.Sequence)).
func (e *Evaluator) EdgeLengths(r Route) []float64 {
	if len(r.Sequence) < 2 {
		return nil
	}
	out := make([]float64, len(r.Sequence)-1)
	for i := 0; i < len(r.Sequence)-1; i++ {
		out[i] = e.dist.Distance(r.Sequence[i], r.Sequence[i+1])
	}

	return out
}

// TotalLength returns the sum of consecutive-pair distances over r.Sequence.
//
// Complexity: O(len(r.Sequence)).
func (e *Evaluator) TotalLength(r Route) float64 {
	var total float64
	for _, d := range e.EdgeLengths(r) {
		total += d
	}

	return total
}

// Objective returns L*Δ + D, where D is the total length and Δ is the range
// (max - min) of consecutive-edge lengths. A route with no edges (fewer
// than two nodes) has an objective of 0.
//
// Complexity: O(len(r.Sequence)).
func (e *Evaluator) Objective(r Route) float64 {
	lengths := e.EdgeLengths(r)
	if len(lengths) == 0 {
		return 0
	}

	total := 0.0
	minD, maxD := lengths[0], lengths[0]
	for _, d := range lengths {
		total += d
		if d < minD {
			minD = d
		}
		if d > maxD {
			maxD = d
		}
	}
	delta := maxD - minD

	return e.L()*delta + total
}

// IsValid reports whether r satisfies every Route invariant from spec.md
// §3: starts at the start depot (id 0), ends at the end depot (id n+1),
// every intermediate id in {1..n} appears exactly once, and every
// consecutive pair of intermediate nodes is an admissible transition under
// the parity rule.
//
// Complexity: O(len(r.Sequence)).
func (e *Evaluator) IsValid(r Route) bool {
	if len(r.Sequence) < 2 {
		return false
	}
	endID := e.n + 1
	if r.Sequence[0].ID() != 0 {
		return false
	}
	if r.Sequence[len(r.Sequence)-1].ID() != endID {
		return false
	}

	seen := make(map[int]bool, e.n)
	for _, nd := range r.Sequence[1 : len(r.Sequence)-1] {
		id := nd.ID()
		if id < 1 || id > e.n || seen[id] {
			return false
		}
		seen[id] = true
	}
	if len(seen) != e.n {
		return false
	}

	for i := 0; i < len(r.Sequence)-1; i++ {
		cur, next := r.Sequence[i].ID(), r.Sequence[i+1].ID()
		if cur == 0 || cur == endID || next == 0 || next == endID {
			continue
		}
		if !parity.Valid(cur, next, e.n) {
			return false
		}
	}

	return true
}
