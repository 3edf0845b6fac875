// Package tspseq solves a constrained single-vehicle route sequencing problem
// on a set of planar points: given n+2 points with two fixed depots (start
// id 0, end id n+1), compute a visit order that starts at the start depot,
// ends at the end depot, visits every intermediate point exactly once,
// respects parity-based forbidden transitions, and minimizes a composite
// objective that balances consecutive-edge lengths against total length.
//
// Under the hood, the work is organized into focused subpackages:
//
//	node/          — point identity and coordinates
//	distance/      — memoized Euclidean distance oracle
//	parity/        — forbidden-transition predicate
//	route/         — ordered sequence model + objective evaluator
//	construct/     — deterministic seed-route constructors
//	neighborhood/  — 2-opt, swap and relocate moves
//	localsearch/   — best-improvement local search
//	anneal/        — simulated annealing
//	alns/          — adaptive large neighborhood search
//	termination/   — iteration/time budgets
//	callback/      — iteration journal
//	bounds/        — lower/upper bound estimates for reporting
//
// cmd/tspseq wires CSV ingestion, environment configuration, logging and
// JSON/plain-text reporting around these packages into a runnable CLI.
package tspseq
