package simulation_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sigma/exact"
	"github.com/katalvlaran/sigma/goods"
	"github.com/katalvlaran/sigma/simulation"
	"github.com/katalvlaran/sigma/structure"
	"github.com/katalvlaran/sigma/sweep"
)

// Under weak selection the long-run producer frequency is ½ + δ·f'(0), so
// the rescaled frequency (x − ½)/δ must track the exact first-order effect.
func TestSimulationMatchesExactEffect(t *testing.T) {
	if testing.Short() {
		t.Skip("long statistical run")
	}
	s, err := structure.New(6, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}, {5, 0}, {0, 3}})
	require.NoError(t, err)

	const (
		b, c  = 5.0, 1.0
		delta = 0.05
		steps = 20_000_000
		// absolute band on the rescaled effect
		tol = 0.025
	)
	rates := []float64{0.25, 0.5, 0.75}

	ex, err := exact.Run(context.Background(), s, b, c, rates)
	require.NoError(t, err)

	for _, g := range goods.All {
		want := ex.Effects(g)
		for i, w := range want {
			// an effect inside the band could not tell a wrong engine from a right one
			require.Greater(t, math.Abs(w), tol, "%s at mu=%g", g, rates[i])
		}

		sim, err := simulation.Run(context.Background(), s, g, b, c, rates, delta, steps, 1,
			simulation.WithSeed(2024))
		require.NoError(t, err)
		got, err := sweep.Rescale(sim, delta)
		require.NoError(t, err)

		for i := range rates {
			assert.InDelta(t, want[i], got[i], tol, "%s at mu=%g", g, rates[i])
		}
	}
}

func TestNeutralDriftIsSymmetric(t *testing.T) {
	if testing.Short() {
		t.Skip("long statistical run")
	}
	sim, err := simulation.Run(context.Background(), karate(t), goods.Additive, 2, 1,
		[]float64{0.3, 0.6}, 0, 1_000_000, 1, simulation.WithSeed(11))
	require.NoError(t, err)
	for _, x := range sim {
		assert.InDelta(t, 0.5, x, 0.02)
	}
}
