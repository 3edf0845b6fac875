// Package callback records the per-iteration trace an improvement engine
// produces, plus optional route snapshots, per spec.md §4.10. JSON export
// lives in internal/report; plotting (the Python original's
// matplotlib-based plot_iterations) has no equivalent library anywhere in
// the pack and is dropped rather than hand-rolled.
//
// Grounded on
// original_source/src/optimiser/iterative/callback.py (on_iteration,
// save_route).
package callback

import "github.com/ptbdnr/tspseq/route"

// Record captures one iteration of an improvement engine's trace.
type Record struct {
	Iteration    int
	CurrentValue float64
	BestValue    float64
	Improved     bool
	Runtime      float64
}

// Journal is an append-only log of iteration records plus optional route
// snapshots, keyed by iteration number.
type Journal struct {
	records []Record
	routes  map[int]route.Route
}

// NewJournal returns an empty Journal.
func NewJournal() *Journal {
	return &Journal{routes: make(map[int]route.Route)}
}

// OnIteration appends a Record describing one iteration of the engine.
func (j *Journal) OnIteration(iteration int, currentValue, bestValue float64, improved bool, runtime float64) {
	j.records = append(j.records, Record{
		Iteration:    iteration,
		CurrentValue: currentValue,
		BestValue:    bestValue,
		Improved:     improved,
		Runtime:      runtime,
	})
}

// SaveRoute stores a snapshot of r under iteration.
func (j *Journal) SaveRoute(iteration int, r route.Route) {
	j.routes[iteration] = r.Copy()
}

// Records returns the accumulated iteration trace, in append order.
func (j *Journal) Records() []Record {
	return j.records
}

// Routes returns the accumulated route snapshots, keyed by iteration.
func (j *Journal) Routes() map[int]route.Route {
	return j.routes
}
