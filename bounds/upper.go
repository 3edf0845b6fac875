package bounds

import "github.com/ptbdnr/tspseq/route"

// Upper returns the best (lowest) objective value among the given seed
// routes, i.e. an upper bound on the optimum derived from the constructive
// heuristics (spec.md §4.4). Grounded on original_source/main.py's wiring
// of bounds/upper_bound.py — filtered out of the retrieved source, but its
// role (an upper bound derived from a constructive heuristic) is
// reconstructed here from the seed constructors it feeds.
func Upper(ev *route.Evaluator, seeds []route.Route) float64 {
	if len(seeds) == 0 {
		return 0
	}

	best := ev.Objective(seeds[0])
	for _, r := range seeds[1:] {
		if v := ev.Objective(r); v < best {
			best = v
		}
	}

	return best
}
