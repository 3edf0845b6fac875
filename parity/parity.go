// Package parity implements the forbidden-transition predicate of spec.md
// §4.3: a directed admissibility rule over intermediate node ids, tied to
// parity and the midpoint of the intermediate id range.
//
// The predicate is directional; callers must test both orderings if
// symmetry is assumed elsewhere (spec.md §9 Open Question (a)).
package parity

// Valid reports whether the directed transition i -> j is admissible, given
// n intermediate nodes (ids 1..n). Depot transitions (i or j outside
// [1, n]) are always admissible — callers are expected to pass only
// intermediate ids, but out-of-range ids are treated permissively rather
// than rejected, matching spec.md §4.3 ("transitions that touch depot 0 or
// n+1 are always admissible").
//
// Rules:
//   - forbidden if i is even, j is odd, and i < n/2
//   - forbidden if i is odd, j is even, and i >= n/2
//   - all other directed transitions are admissible
//
// Complexity: O(1).
func Valid(i, j, n int) bool {
	if i < 1 || i > n || j < 1 || j > n {
		return true
	}

	half := float64(n) / 2.0
	iEven := i%2 == 0
	jEven := j%2 == 0

	if iEven && !jEven && float64(i) < half {
		return false
	}
	if !iEven && jEven && float64(i) >= half {
		return false
	}

	return true
}
