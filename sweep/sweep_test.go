package sweep_test

import (
	"context"
	"errors"
	"math/rand"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sigma/sweep"
)

func TestMap_IndexAlignedUnderShuffledCompletion(t *testing.T) {
	const n = 64
	delays := rand.New(rand.NewSource(1)).Perm(n)

	out, err := sweep.Map(context.Background(), n, 8, func(_ context.Context, i int) (int, error) {
		time.Sleep(time.Duration(delays[i]) * 50 * time.Microsecond)
		return i * i, nil
	})
	require.NoError(t, err)
	for i, v := range out {
		assert.Equal(t, i*i, v)
	}
}

func TestMap_RespectsWorkerLimit(t *testing.T) {
	var cur, peak int64
	_, err := sweep.Map(context.Background(), 32, 3, func(_ context.Context, i int) (struct{}, error) {
		c := atomic.AddInt64(&cur, 1)
		for {
			p := atomic.LoadInt64(&peak)
			if c <= p || atomic.CompareAndSwapInt64(&peak, p, c) {
				break
			}
		}
		time.Sleep(200 * time.Microsecond)
		atomic.AddInt64(&cur, -1)
		return struct{}{}, nil
	})
	require.NoError(t, err)
	assert.LessOrEqual(t, atomic.LoadInt64(&peak), int64(3))
}

func TestMap_FailFastReportsIndex(t *testing.T) {
	boom := errors.New("boom")
	var ran int64

	_, err := sweep.Map(context.Background(), 200, 1, func(ctx context.Context, i int) (int, error) {
		atomic.AddInt64(&ran, 1)
		if i == 3 {
			return 0, boom
		}
		return i, nil
	})
	require.ErrorIs(t, err, boom)

	var te *sweep.TaskError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, 3, te.Index)
	assert.Less(t, atomic.LoadInt64(&ran), int64(200), "remaining tasks must be cancelled")
}

func TestMap_EmptyAndCancelled(t *testing.T) {
	out, err := sweep.Map(context.Background(), 0, 4, func(context.Context, int) (float64, error) {
		t.Fatal("must not be called")
		return 0, nil
	})
	require.NoError(t, err)
	assert.Empty(t, out)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = sweep.Map(ctx, 5, 2, func(context.Context, int) (float64, error) {
		t.Fatal("must not be called")
		return 1, nil
	})
	require.ErrorIs(t, err, context.Canceled)

	var te *sweep.TaskError
	require.ErrorAs(t, err, &te, "a cancelled parent is reported at the first skipped index")
	assert.Equal(t, 0, te.Index)
}

func TestWorkers(t *testing.T) {
	assert.Equal(t, 5, sweep.Workers(5))
	assert.Positive(t, sweep.Workers(0))
}

func TestGrids(t *testing.T) {
	ex, err := sweep.ExactRates(4)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.25, 0.5, 0.75, 1}, ex, 1e-15)

	sim, err := sweep.SimulationRates(3)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.25, 0.5, 0.75}, sim, 1e-15)

	one, err := sweep.Linspace(2, 5, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{2}, one)

	_, err = sweep.ExactRates(0)
	require.ErrorIs(t, err, sweep.ErrInvalidGrid)
	_, err = sweep.SimulationRates(-1)
	require.ErrorIs(t, err, sweep.ErrInvalidGrid)
}

func TestRescale(t *testing.T) {
	got, err := sweep.Rescale([]float64{0.5, 0.55, 0.45}, 0.05)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0, 1, -1}, got, 1e-12)

	_, err = sweep.Rescale(nil, 0)
	require.ErrorIs(t, err, sweep.ErrInvalidGrid)
}
