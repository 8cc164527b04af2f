package simulation_test

import (
	"context"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sigma/builder"
	"github.com/katalvlaran/sigma/goods"
	"github.com/katalvlaran/sigma/simulation"
	"github.com/katalvlaran/sigma/structure"
	"github.com/katalvlaran/sigma/sweep"
)

// karateState has 21 producers among the 34 members.
var karateState = []int{
	1, 1, 1, 0, 1, 1, 1, 1, 0, 0,
	1, 1, 1, 1, 1, 1, 1, 0, 0, 0,
	1, 0, 1, 0, 0, 1, 0, 1, 0, 0,
	1, 1, 0, 1,
}

func karate(t testing.TB) *structure.Structure {
	t.Helper()
	s, err := structure.New(builder.KarateSize, builder.KarateEdges())
	require.NoError(t, err)

	return s
}

func params(good goods.Good) simulation.Params {
	return simulation.Params{Good: good, Benefit: 2, Cost: 1, Mutation: 0.1, Delta: 0.05}
}

func TestNewPopulation_Validation(t *testing.T) {
	s := karate(t)
	short := karateState[:10]
	bad := append([]int(nil), karateState...)
	bad[4] = 2

	tests := []struct {
		name  string
		state []int
		p     simulation.Params
		want  error
	}{
		{"state length", short, params(goods.Additive), simulation.ErrStateLength},
		{"trait value", bad, params(goods.Additive), simulation.ErrInvalidTrait},
		{"good", karateState, params(goods.Good(0)), goods.ErrUnknownGood},
		{"mutation NaN", karateState, simulation.Params{Good: goods.Additive, Mutation: math.NaN()}, simulation.ErrNotFinite},
		{"delta Inf", karateState, simulation.Params{Good: goods.Additive, Mutation: 0.1, Delta: math.Inf(1)}, simulation.ErrNotFinite},
		{"mutation range", karateState, simulation.Params{Good: goods.Additive, Mutation: 1.1}, simulation.ErrMutationRate},
		{"negative mutation", karateState, simulation.Params{Good: goods.Additive, Mutation: -0.1}, simulation.ErrMutationRate},
		{"negative delta", karateState, simulation.Params{Good: goods.Proportional, Mutation: 0.1, Delta: -1}, simulation.ErrSelectionIntensity},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := simulation.NewPopulation(s, tc.state, tc.p)
			require.ErrorIs(t, err, tc.want)
		})
	}

	isolated, err := structure.New(3, [][2]int{{0, 1}})
	require.NoError(t, err)
	_, err = simulation.NewPopulation(isolated, []int{0, 1, 0}, params(goods.Additive))
	require.ErrorIs(t, err, structure.ErrIsolatedNode)
}

func TestMeanFrequency(t *testing.T) {
	pop, err := simulation.NewPopulation(karate(t), karateState, params(goods.Additive))
	require.NoError(t, err)

	assert.InDelta(t, 21.0/34, pop.MeanFrequency(1), 1e-15)
	assert.InDelta(t, 13.0/34, pop.MeanFrequency(0), 1e-15)
	assert.Zero(t, pop.MeanFrequency(7))
}

func TestPayoff(t *testing.T) {
	s := karate(t)

	ff, err := simulation.NewPopulation(s, karateState, params(goods.Additive))
	require.NoError(t, err)
	got, err := ff.Payoff([]int{23, 31})
	require.NoError(t, err)
	const b, c = 2.0, 1.0
	assert.InDeltaSlice(t, []float64{
		b * (1.0/3 + 1.0/4 + 1.0/17),
		-c + b*(1.0/16+1.0/3+1.0/17),
	}, got, 1e-12)

	pp, err := simulation.NewPopulation(s, karateState, params(goods.Proportional))
	require.NoError(t, err)
	got, err = pp.Payoff([]int{23, 31})
	require.NoError(t, err)
	// 23: producers 25, 27, 33; 31 (degree 6): producers 0, 25, 33.
	assert.InDeltaSlice(t, []float64{3 * b, 3*b - 6*c}, got, 1e-12)

	_, err = pp.Payoff([]int{34})
	require.ErrorIs(t, err, structure.ErrNodeOutOfRange)
}

func TestStep_Invariants(t *testing.T) {
	s := karate(t)
	pop, err := simulation.NewPopulation(s, karateState, params(goods.Proportional))
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 2000; i++ {
		before := pop.State()
		ev := pop.Step(rng)
		after := pop.State()

		assert.Contains(t, s.Neighbors(ev.Site), ev.Parent)
		assert.Equal(t, before[ev.Site], ev.Previous)
		assert.Equal(t, ev.Trait, after[ev.Site])
		if ev.Mutated {
			assert.Equal(t, 1-before[ev.Parent], ev.Trait)
		} else {
			assert.Equal(t, before[ev.Parent], ev.Trait)
		}
		for k := range after {
			if k != ev.Site {
				require.Equal(t, before[k], after[k])
			}
		}

		ones := 0
		for _, v := range after {
			ones += v
		}
		require.InDelta(t, float64(ones)/34, pop.MeanFrequency(1), 1e-15)
	}
}

func TestRuleStep_NoMutationCopiesParent(t *testing.T) {
	s, err := structure.New(2, [][2]int{{0, 1}})
	require.NoError(t, err)
	rule, err := simulation.NewRule(s, simulation.Params{Good: goods.Additive, Mutation: 0})
	require.NoError(t, err)

	state := []int{1, 0}
	ev := rule.Step(state, rand.New(rand.NewSource(3)))
	assert.False(t, ev.Mutated)
	assert.Equal(t, 1-ev.Site, ev.Parent)
	assert.Equal(t, state[0], state[1], "the dead site copies its only neighbour")
}

func TestUpdateAndMeanOverAgree(t *testing.T) {
	s := karate(t)
	a, err := simulation.NewPopulation(s, karateState, params(goods.Additive))
	require.NoError(t, err)
	b, err := simulation.NewPopulation(s, karateState, params(goods.Additive))
	require.NoError(t, err)

	traj, err := a.Update(rand.New(rand.NewSource(9)), 1, 5000)
	require.NoError(t, err)
	require.Len(t, traj, 5000)
	var sum float64
	for _, x := range traj {
		sum += x
	}

	mean, err := b.MeanOver(rand.New(rand.NewSource(9)), 1, 5000)
	require.NoError(t, err)
	assert.InDelta(t, sum/5000, mean, 1e-12)
	assert.Equal(t, a.State(), b.State())

	_, err = a.Update(rand.New(rand.NewSource(1)), 1, 0)
	require.ErrorIs(t, err, simulation.ErrSteps)
	_, err = a.MeanOver(rand.New(rand.NewSource(1)), 2, 10)
	require.ErrorIs(t, err, simulation.ErrInvalidTrait)
}

func TestRun_DeterministicAndIndexAligned(t *testing.T) {
	s := karate(t)
	rates := []float64{0.1, 0.3, 0.5, 0.7, 0.9}

	serial, err := simulation.Run(context.Background(), s, goods.Additive, 2, 1, rates, 0.05, 2000, 1,
		simulation.WithWorkers(1), simulation.WithSeed(7))
	require.NoError(t, err)
	parallel, err := simulation.Run(context.Background(), s, goods.Additive, 2, 1, rates, 0.05, 2000, 1,
		simulation.WithWorkers(5), simulation.WithSeed(7))
	require.NoError(t, err)
	assert.Equal(t, serial, parallel)

	// Task i must reproduce a standalone run driven by TaskSource(seed, i).
	for i, mu := range rates {
		rng := simulation.TaskSource(7, i)
		state := make([]int, s.Len())
		for k := range state {
			state[k] = rng.Intn(2)
		}
		p := params(goods.Additive)
		p.Mutation = mu
		pop, err := simulation.NewPopulation(s, state, p)
		require.NoError(t, err)
		want, err := pop.MeanOver(rng, 1, 2000)
		require.NoError(t, err)
		assert.Equal(t, want, parallel[i], "rate %d", i)
	}
}

func TestRun_Errors(t *testing.T) {
	s := karate(t)
	ctx := context.Background()

	_, err := simulation.Run(ctx, s, goods.Additive, 2, 1, []float64{0.1, 1.5}, 0.05, 10, 1)
	require.ErrorIs(t, err, simulation.ErrMutationRate)
	var te *sweep.TaskError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, 1, te.Index)

	_, err = simulation.Run(ctx, s, goods.Additive, 2, 1, []float64{0.1}, 0.05, 0, 1)
	require.ErrorIs(t, err, simulation.ErrSteps)
	_, err = simulation.Run(ctx, s, goods.Additive, 2, 1, []float64{0.1}, 0.05, 10, 3)
	require.ErrorIs(t, err, simulation.ErrInvalidTrait)
	_, err = simulation.Run(ctx, s, goods.Good(5), 2, 1, []float64{0.1}, 0.05, 10, 1)
	require.ErrorIs(t, err, goods.ErrUnknownGood)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = simulation.Run(cancelled, s, goods.Additive, 2, 1, []float64{0.1}, 0.05, 1_000_000, 1)
	require.ErrorIs(t, err, context.Canceled)

	assert.Panics(t, func() { simulation.WithWorkers(-2) })
}

func BenchmarkStepKarate(b *testing.B) {
	pop, err := simulation.NewPopulation(karate(b), karateState, params(goods.Additive))
	require.NoError(b, err)
	rng := rand.New(rand.NewSource(1))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		pop.Step(rng)
	}
}
