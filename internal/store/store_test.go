package store

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sigma/goods"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "sigma.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	return s
}

func sampleRun() Run {
	return Run{
		Name: "panel", Graph: "cycle:4", Nodes: 4,
		Edges: [][2]int{{0, 1}, {1, 2}, {2, 3}, {0, 3}},
		Cost:  1, Delta: 0.05, Steps: 1000, Solver: "direct", Seed: 7,
	}
}

func TestOpen_RequiresPath(t *testing.T) {
	_, err := Open("  ")
	require.Error(t, err)

	var nilStore *Store
	assert.NoError(t, nilStore.Close())
}

func TestCreateAndLoadRun(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	id, err := s.CreateRun(ctx, sampleRun())
	require.NoError(t, err)

	got, err := s.Run(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, "cycle:4", got.Graph)
	assert.Equal(t, [][2]int{{0, 1}, {0, 3}, {1, 2}, {2, 3}}, got.Edges)
	assert.Equal(t, int64(7), got.Seed)
	assert.False(t, got.CreatedAt.IsZero())
	_, err = uuid.Parse(got.UUID)
	assert.NoError(t, err)

	_, err = s.Run(ctx, id+100)
	require.ErrorIs(t, err, ErrNotFound)

	second, err := s.CreateRun(ctx, sampleRun())
	require.NoError(t, err)
	runs, err := s.Runs(ctx)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.ElementsMatch(t, []int64{id, second}, []int64{runs[0].ID, runs[1].ID})
	assert.Nil(t, runs[0].Edges)
	assert.NotEqual(t, runs[0].UUID, runs[1].UUID)
}

func TestSaveSeries(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	id, err := s.CreateRun(ctx, sampleRun())
	require.NoError(t, err)

	pp := Series{Benefit: 2, Good: goods.Proportional, Kind: Simulation, Rates: []float64{0.25, 0.75}, Values: []float64{-1, 0.5}}
	ff := Series{Benefit: 2, Good: goods.Additive, Kind: Exact, Rates: []float64{0.5, 1}, Values: []float64{0.1, 0}}
	require.NoError(t, s.SaveSeries(ctx, id, pp))
	require.NoError(t, s.SaveSeries(ctx, id, ff))

	// Saving again replaces rather than duplicates.
	ff.Values = []float64{0.2, 0}
	require.NoError(t, s.SaveSeries(ctx, id, ff))

	got, err := s.Series(ctx, id)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, ff, got[0])
	assert.Equal(t, pp, got[1])
}

func TestSaveSeries_Errors(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	id, err := s.CreateRun(ctx, sampleRun())
	require.NoError(t, err)

	tests := []struct {
		name string
		run  int64
		sr   Series
		want error
	}{
		{"length", id, Series{Good: goods.Additive, Kind: Exact, Rates: []float64{1}}, ErrLengthMismatch},
		{"kind", id, Series{Good: goods.Additive, Kind: "guess"}, ErrUnknownKind},
		{"good", id, Series{Good: goods.Good(9), Kind: Exact}, goods.ErrUnknownGood},
		{"run", id + 1, Series{Good: goods.Additive, Kind: Exact}, ErrNotFound},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.ErrorIs(t, s.SaveSeries(ctx, tc.run, tc.sr), tc.want)
		})
	}
}

func TestExportCSV(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	id, err := s.CreateRun(ctx, sampleRun())
	require.NoError(t, err)
	require.NoError(t, s.SaveSeries(ctx, id, Series{
		Benefit: 0.9, Good: goods.Additive, Kind: Exact,
		Rates: []float64{0.5, 1}, Values: []float64{-0.125, 0},
	}))

	var buf bytes.Buffer
	require.NoError(t, s.ExportCSV(ctx, id, &buf))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "run_id,benefit,good,kind,mutation_rate,value", lines[0])
	assert.Equal(t, "1,0.9,ff,exact,0.5,-0.125", lines[1])
	assert.Equal(t, "1,0.9,ff,exact,1,0", lines[2])

	require.ErrorIs(t, s.ExportCSV(ctx, 42, &buf), ErrNotFound)
}
