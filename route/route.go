// Package route defines the ordered-sequence Route model and the evaluator
// that computes lengths, the composite objective, and validity against the
// spec's sequence-constraint invariants (spec.md §3, §4.2).
package route

import (
	"strconv"
	"strings"

	"github.com/ptbdnr/tspseq/node"
)

// Route is an ordered sequence of nodes. Routes produced by constructors and
// operators are always structurally complete (length n+2) but may be
// invalid with respect to the admissibility rule; validity is a query, not
// a type invariant (spec.md §3).
type Route struct {
	Sequence []node.Node
}

// New wraps a node sequence into a Route. The caller owns seq; Copy
// returns an independent route when mutation-free sharing is required.
func New(seq []node.Node) Route {
	return Route{Sequence: seq}
}

// Copy returns a Route backed by an independent copy of the sequence.
//
// Complexity: O(len(r.Sequence)).
func (r Route) Copy() Route {
	out := make([]node.Node, len(r.Sequence))
	copy(out, r.Sequence)

	return Route{Sequence: out}
}

// Len returns the number of nodes in the route.
func (r Route) Len() int { return len(r.Sequence) }

// String renders the route as a hyphenated id sequence, e.g. "0-3-1-2-4-5",
// matching original_source's Route.__str__.
func (r Route) String() string {
	parts := make([]string, len(r.Sequence))
	for i, n := range r.Sequence {
		parts[i] = strconv.Itoa(n.ID())
	}

	return strings.Join(parts, "-")
}
