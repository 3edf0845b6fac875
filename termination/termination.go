// Package termination implements the iteration/time/value budget gate of
// spec.md §4.9. Grounded on
// original_source/src/optimiser/iterative/termination.py (Termination),
// with the non-negative-duration validation idiom borrowed from
// tsp/validate.go's compatibleTimeBudget.
package termination

import "time"

// Gate decides when an iterative improvement engine should stop. A
// non-positive MaxIterations or MaxSeconds disables that budget; MinValue
// and MaxValue are disabled when left at their zero value (see NewGate).
type Gate struct {
	maxIterations int
	maxDuration   time.Duration
	minValue      float64
	maxValue      float64
	hasMinValue   bool
	hasMaxValue   bool
	startedAt     time.Time
}

// Option configures a Gate at construction.
type Option func(*Gate)

// WithMaxIterations caps the number of iterations. n <= 0 disables the cap.
func WithMaxIterations(n int) Option {
	return func(g *Gate) { g.maxIterations = n }
}

// WithMaxDuration caps wall-clock run time. d <= 0 disables the cap.
func WithMaxDuration(d time.Duration) Option {
	return func(g *Gate) { g.maxDuration = d }
}

// WithMinValue stops the engine once the best value reaches or falls below
// minValue.
func WithMinValue(minValue float64) Option {
	return func(g *Gate) {
		g.minValue = minValue
		g.hasMinValue = true
	}
}

// WithMaxValue stops the engine once the best value reaches or exceeds
// maxValue.
func WithMaxValue(maxValue float64) Option {
	return func(g *Gate) {
		g.maxValue = maxValue
		g.hasMaxValue = true
	}
}

// NewGate builds a Gate with every budget disabled by default, then applies
// opts. The clock starts immediately, matching the Python original's
// start_time-at-construction behavior.
func NewGate(opts ...Option) *Gate {
	g := &Gate{startedAt: time.Now()}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Reset restarts the wall-clock budget from now.
func (g *Gate) Reset() {
	g.startedAt = time.Now()
}

// ShouldTerminate reports whether the engine should stop, given the current
// iteration count and the best objective value found so far. Per spec.md
// §9's resolution of the value-gate ambiguity, minValue/maxValue are always
// compared against the best value, not the current candidate's value.
func (g *Gate) ShouldTerminate(iterationCount int, bestValue float64) bool {
	if g.maxDuration > 0 && time.Since(g.startedAt) >= g.maxDuration {
		return true
	}
	if g.maxIterations > 0 && iterationCount >= g.maxIterations {
		return true
	}
	if g.hasMinValue && bestValue <= g.minValue {
		return true
	}
	if g.hasMaxValue && bestValue >= g.maxValue {
		return true
	}

	return false
}
