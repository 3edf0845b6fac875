package parity_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ptbdnr/tspseq/parity"
)

func TestValid_EvenToOddForbiddenBelowHalf(t *testing.T) {
	// n=10: transition (2 -> 3) is forbidden (2 even, 3 odd, 2 < 5).
	require.False(t, parity.Valid(2, 3, 10))
}

func TestValid_EvenToOddAdmissibleAtOrAboveHalf(t *testing.T) {
	// n=10: transition (6 -> 7) is admissible (6 >= 5, not odd->even anyway).
	require.True(t, parity.Valid(6, 7, 10))
}

func TestValid_OddToEvenForbiddenAtOrAboveHalf(t *testing.T) {
	// n=10: 7 is odd, 8 is even, 7 >= 5 -> forbidden.
	require.False(t, parity.Valid(7, 8, 10))
}

func TestValid_DepotTransitionsAlwaysAdmissible(t *testing.T) {
	require.True(t, parity.Valid(0, 2, 10))
	require.True(t, parity.Valid(2, 11, 10))
}

func TestValid_Directional(t *testing.T) {
	// (2 -> 3) forbidden, but (3 -> 2) is odd->even with i=3 < 5 -> admissible.
	require.False(t, parity.Valid(2, 3, 10))
	require.True(t, parity.Valid(3, 2, 10))
}
