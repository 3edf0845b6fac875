package termination_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ptbdnr/tspseq/termination"
)

func TestGate_NoBudgetsNeverTerminates(t *testing.T) {
	g := termination.NewGate()
	require.False(t, g.ShouldTerminate(1_000_000, -1e18))
}

func TestGate_MaxIterations(t *testing.T) {
	g := termination.NewGate(termination.WithMaxIterations(10))
	require.False(t, g.ShouldTerminate(9, 0))
	require.True(t, g.ShouldTerminate(10, 0))
}

func TestGate_MaxDuration(t *testing.T) {
	g := termination.NewGate(termination.WithMaxDuration(10 * time.Millisecond))
	require.False(t, g.ShouldTerminate(0, 0))
	time.Sleep(15 * time.Millisecond)
	require.True(t, g.ShouldTerminate(0, 0))
}

func TestGate_Reset(t *testing.T) {
	g := termination.NewGate(termination.WithMaxDuration(10 * time.Millisecond))
	time.Sleep(15 * time.Millisecond)
	g.Reset()
	require.False(t, g.ShouldTerminate(0, 0))
}

func TestGate_MinValueGate(t *testing.T) {
	g := termination.NewGate(termination.WithMinValue(5))
	require.False(t, g.ShouldTerminate(0, 10))
	require.True(t, g.ShouldTerminate(0, 5))
	require.True(t, g.ShouldTerminate(0, 4))
}

func TestGate_MaxValueGate(t *testing.T) {
	g := termination.NewGate(termination.WithMaxValue(100))
	require.False(t, g.ShouldTerminate(0, 50))
	require.True(t, g.ShouldTerminate(0, 100))
	require.True(t, g.ShouldTerminate(0, 150))
}
