// Package report emits the run output spec.md §6 describes: a human route
// summary, optional JSON iteration trace and route snapshots, and a
// two-line bounds file. Grounded on
// original_source/src/optimiser/iterative/callback.py
// (iterations_to_file, routes_to_file) and schemas/route.py's report
// formatting. No JSON library beyond encoding/json appears anywhere in the
// pack, so JSON stays on the standard library.
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/ptbdnr/tspseq/callback"
	"github.com/ptbdnr/tspseq/route"
)

// Summary is the per-run human-readable result: the final route plus its
// length, delta, and objective value.
type Summary struct {
	Route     string
	Distance  float64
	Delta     float64
	Objective float64
}

// WriteSummary writes a one-line human summary of the final route to w.
func WriteSummary(w io.Writer, s Summary) error {
	_, err := fmt.Fprintf(w, "route=%s distance=%.2f delta=%.2f objective=%.2f\n",
		s.Route, s.Distance, s.Delta, s.Objective)

	return err
}

// WriteBounds writes the two-line bounds file format: "Upper bound: <real>"
// followed by "Lower bound: <real>".
func WriteBounds(w io.Writer, upper, lower float64) error {
	if _, err := fmt.Fprintf(w, "Upper bound: %.4f\n", upper); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Lower bound: %.4f\n", lower)

	return err
}

// iterationRecord mirrors callback.Record's field names for the JSON trace
// export.
type iterationRecord struct {
	Iteration    int     `json:"iteration"`
	CurrentValue float64 `json:"current_value"`
	BestValue    float64 `json:"best_value"`
	Improved     bool    `json:"improved"`
	Runtime      float64 `json:"runtime"`
}

// WriteIterations exports j's iteration trace as a JSON array.
func WriteIterations(w io.Writer, j *callback.Journal) error {
	records := j.Records()
	out := make([]iterationRecord, len(records))
	for i, r := range records {
		out[i] = iterationRecord{
			Iteration:    r.Iteration,
			CurrentValue: r.CurrentValue,
			BestValue:    r.BestValue,
			Improved:     r.Improved,
			Runtime:      r.Runtime,
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(out)
}

// WriteRoutes exports j's saved route snapshots as a JSON object mapping
// iteration number to the sequence of node ids.
func WriteRoutes(w io.Writer, j *callback.Journal) error {
	out := make(map[int][]int, len(j.Routes()))
	for iteration, r := range j.Routes() {
		ids := make([]int, r.Len())
		for i, n := range r.Sequence {
			ids[i] = n.ID()
		}
		out[iteration] = ids
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(out)
}

// FormatRoute builds a Summary from r and ev.
func FormatRoute(ev *route.Evaluator, r route.Route) Summary {
	lengths := ev.EdgeLengths(r)
	delta := 0.0
	if len(lengths) > 0 {
		minD, maxD := lengths[0], lengths[0]
		for _, d := range lengths {
			if d < minD {
				minD = d
			}
			if d > maxD {
				maxD = d
			}
		}
		delta = maxD - minD
	}

	return Summary{
		Route:     r.String(),
		Distance:  ev.TotalLength(r),
		Delta:     delta,
		Objective: ev.Objective(r),
	}
}
