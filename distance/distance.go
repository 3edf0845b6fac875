// Package distance provides a memoized Euclidean distance oracle over
// node.Node values.
//
// Design:
//   - Symmetric by construction: lookups key on (min(id_a,id_b), max(id_a,id_b)).
//   - Same-id distance is 0.0; no lookup or cache entry is needed.
//   - Results are rounded to one decimal, matching spec precision.
//   - Single-owner mutation: only Cache.Distance writes to the map (§5).
//
// Complexity: O(1) amortized per query after the first computation.
package distance

import (
	"math"

	"github.com/ptbdnr/tspseq/node"
)

// precisionDigits is the rounding precision applied to every computed
// distance, matching the spec's one-decimal requirement.
const precisionDigits = 1

// pairKey identifies an unordered pair of node ids.
type pairKey struct {
	lo, hi int
}

// Cache is a single-owner, lazily-populated Euclidean distance oracle.
// The zero value is not usable; construct with New.
type Cache struct {
	byKey map[pairKey]float64
}

// New constructs a Cache pre-seeded with the closing-tour entry
// {lastID, firstID} = 0, where lastID is the end depot (n+1) and firstID is
// the start depot (0). This matches spec.md §3: "closing the tour back to
// the depot costs nothing".
//
// Complexity: O(1).
func New(startID, endID int) *Cache {
	c := &Cache{byKey: make(map[pairKey]float64)}
	c.byKey[keyFor(startID, endID)] = 0.0

	return c
}

// Len returns the number of memoized entries. Exposed for invariant testing
// (§8 invariant 3: cache size is non-decreasing across a run).
func (c *Cache) Len() int { return len(c.byKey) }

// Distance returns the Euclidean distance between a and b, rounded to one
// decimal. Repeated queries for the same unordered pair hit the cache.
//
// Complexity: O(1) amortized.
func (c *Cache) Distance(a, b node.Node) float64 {
	if a.ID() == b.ID() {
		return 0.0
	}

	key := keyFor(a.ID(), b.ID())
	if v, ok := c.byKey[key]; ok {
		return v
	}

	d := round(math.Hypot(a.X()-b.X(), a.Y()-b.Y()))
	c.byKey[key] = d

	return d
}

// keyFor builds the canonical unordered-pair key.
func keyFor(idA, idB int) pairKey {
	if idA <= idB {
		return pairKey{lo: idA, hi: idB}
	}

	return pairKey{lo: idB, hi: idA}
}

// round rounds x to precisionDigits decimal places.
func round(x float64) float64 {
	scale := math.Pow(10, precisionDigits)

	return math.Round(x*scale) / scale
}
