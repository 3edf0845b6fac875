// Package neighborhood implements the route-perturbation operators of
// spec.md §4.5: 2-opt, swap, and relocate. Each operator exposes a
// deterministic Apply (explicit indices), ApplyFirstImprovement (stop at the
// first validity- and objective-improving move), and ApplyBestImprovement
// (scan the full neighborhood, keep the best), plus a RandomMove used by the
// sampling-based simulated annealing engine.
//
// Grounded on tsp/two_opt.go's first-improvement restart-the-scan structure,
// generalized here to also support best-improvement, and on
// original_source/src/optimiser/iterative/operations/relocate.py for the
// relocate index arithmetic (lvlath has no relocate move).
package neighborhood

import (
	"github.com/ptbdnr/tspseq/route"
)

// minMovableLength is the minimum route length (including both depots) a
// segment-based operator needs to have room to act: two depots, plus at
// least two intermediate nodes to cut and relocate. Mirrors
// relocate.py's MIN_ROUTE_LENGTH.
const minMovableLength = 4

// intermediateBounds returns the inclusive index range [1, n] of movable
// positions in r.Sequence, where n is the count of intermediate nodes.
func intermediateBounds(r route.Route) (lo, hi int) {
	return 1, r.Len() - 2
}
