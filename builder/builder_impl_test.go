package builder_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sigma/builder"
	"github.com/katalvlaran/sigma/core"
	"github.com/katalvlaran/sigma/structure"
)

func build(t *testing.T, ctor builder.Constructor, opts ...builder.BuilderOption) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(opts, ctor)
	require.NoError(t, err)

	return g
}

func degrees(t *testing.T, g *core.Graph) map[string]int {
	t.Helper()
	out := make(map[string]int)
	for _, v := range g.Vertices() {
		d, err := g.Degree(v)
		require.NoError(t, err)
		out[v] = d
	}

	return out
}

func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		ctor  builder.Constructor
		opts  []builder.BuilderOption
		wantV int
		wantE int
		check func(t *testing.T, g *core.Graph)
	}{
		{
			name: "Cycle(5)", ctor: builder.Cycle(5), wantV: 5, wantE: 5,
			check: func(t *testing.T, g *core.Graph) {
				for i, d := range degrees(t, g) {
					assert.Equal(t, 2, d, i)
				}
				assert.True(t, g.HasEdge("4", "0"))
			},
		},
		{
			name: "Path(4)", ctor: builder.Path(4), wantV: 4, wantE: 3,
			check: func(t *testing.T, g *core.Graph) {
				deg := degrees(t, g)
				assert.Equal(t, 1, deg["0"])
				assert.Equal(t, 2, deg["1"])
				assert.Equal(t, 1, deg["3"])
			},
		},
		{
			name: "Star(6)", ctor: builder.Star(6), wantV: 6, wantE: 5,
			check: func(t *testing.T, g *core.Graph) {
				deg := degrees(t, g)
				assert.Equal(t, 5, deg["0"])
				assert.Equal(t, 1, deg["5"])
			},
		},
		{
			name: "Wheel(6)", ctor: builder.Wheel(6), wantV: 6, wantE: 10,
			check: func(t *testing.T, g *core.Graph) {
				deg := degrees(t, g)
				assert.Equal(t, 5, deg["0"])
				for i := 1; i < 6; i++ {
					assert.Equal(t, 3, deg[builder.DefaultIDFn(i)])
				}
				assert.True(t, g.HasEdge("5", "1"))
			},
		},
		{
			name: "Complete(5)", ctor: builder.Complete(5), wantV: 5, wantE: 10,
		},
		{
			name: "CompleteBipartite(2,3)", ctor: builder.CompleteBipartite(2, 3), wantV: 5, wantE: 6,
			check: func(t *testing.T, g *core.Graph) {
				assert.False(t, g.HasEdge("0", "1"))
				assert.False(t, g.HasEdge("2", "3"))
				assert.True(t, g.HasEdge("1", "4"))
			},
		},
		{
			name: "Grid(3,4)", ctor: builder.Grid(3, 4), wantV: 12, wantE: 17,
			check: func(t *testing.T, g *core.Graph) {
				deg := degrees(t, g)
				assert.Equal(t, 2, deg["0"])
				assert.Equal(t, 4, deg["5"])
				assert.True(t, g.HasEdge("1", "5"))
			},
		},
		{
			name: "RandomSparse(8,1)", ctor: builder.RandomSparse(8, 1), wantV: 8, wantE: 28,
		},
		{
			name: "RandomSparse(8,0)", ctor: builder.RandomSparse(8, 0), wantV: 8, wantE: 0,
		},
		{
			name: "RandomRegular(12,4)", ctor: builder.RandomRegular(12, 4),
			opts: []builder.BuilderOption{builder.WithSeed(3)}, wantV: 12, wantE: 24,
			check: func(t *testing.T, g *core.Graph) {
				for i, d := range degrees(t, g) {
					assert.Equal(t, 4, d, i)
				}
			},
		},
		{
			name: "BarabasiAlbert(30,2)", ctor: builder.BarabasiAlbert(30, 2),
			opts: []builder.BuilderOption{builder.WithSeed(9)}, wantV: 30, wantE: 2 + 27*2,
			check: func(t *testing.T, g *core.Graph) {
				s, err := structure.FromGraph(g)
				require.NoError(t, err)
				assert.True(t, s.Connected())
				lo, _ := s.DegreeRange()
				assert.GreaterOrEqual(t, lo, 1)
			},
		},
		{
			name: "Karate", ctor: builder.Karate(), wantV: builder.KarateSize, wantE: 78,
			check: func(t *testing.T, g *core.Graph) {
				deg := degrees(t, g)
				assert.Equal(t, 16, deg["0"])
				assert.Equal(t, 17, deg["33"])
				assert.Equal(t, 1, deg["11"])
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := build(t, tc.ctor, tc.opts...)
			assert.Equal(t, tc.wantV, g.VertexCount())
			assert.Equal(t, tc.wantE, g.EdgeCount())
			if tc.check != nil {
				tc.check(t, g)
			}
		})
	}
}

func TestBuilders_Errors(t *testing.T) {
	t.Parallel()

	seeded := []builder.BuilderOption{builder.WithSeed(1)}
	tests := []struct {
		name string
		ctor builder.Constructor
		opts []builder.BuilderOption
		want error
	}{
		{"cycle too small", builder.Cycle(2), nil, builder.ErrTooFewVertices},
		{"path too small", builder.Path(1), nil, builder.ErrTooFewVertices},
		{"star too small", builder.Star(1), nil, builder.ErrTooFewVertices},
		{"wheel too small", builder.Wheel(3), nil, builder.ErrTooFewVertices},
		{"complete empty", builder.Complete(0), nil, builder.ErrTooFewVertices},
		{"bipartite empty side", builder.CompleteBipartite(0, 3), nil, builder.ErrTooFewVertices},
		{"grid zero", builder.Grid(0, 3), nil, builder.ErrTooFewVertices},
		{"sparse p>1", builder.RandomSparse(5, 1.5), seeded, builder.ErrInvalidProbability},
		{"sparse NaN", builder.RandomSparse(5, math.NaN()), seeded, builder.ErrInvalidProbability},
		{"sparse no rng", builder.RandomSparse(5, 0.5), nil, builder.ErrNeedRandSource},
		{"regular odd", builder.RandomRegular(5, 3), seeded, builder.ErrTooFewVertices},
		{"regular degree", builder.RandomRegular(5, 5), seeded, builder.ErrTooFewVertices},
		{"regular no rng", builder.RandomRegular(6, 2), nil, builder.ErrNeedRandSource},
		{"ba m>=n", builder.BarabasiAlbert(3, 3), seeded, builder.ErrTooFewVertices},
		{"ba m=0", builder.BarabasiAlbert(5, 0), seeded, builder.ErrTooFewVertices},
		{"ba no rng", builder.BarabasiAlbert(5, 2), nil, builder.ErrNeedRandSource},
		{"nil constructor", nil, nil, builder.ErrConstructFailed},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.BuildGraph(tc.opts, tc.ctor)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestBuilders_Deterministic(t *testing.T) {
	t.Parallel()

	for _, ctor := range []func() builder.Constructor{
		func() builder.Constructor { return builder.RandomSparse(20, 0.2) },
		func() builder.Constructor { return builder.RandomRegular(20, 3) },
		func() builder.Constructor { return builder.BarabasiAlbert(20, 3) },
	} {
		a := build(t, ctor(), builder.WithSeed(77))
		b := build(t, ctor(), builder.WithSeed(77))
		assert.Equal(t, a.Edges(), b.Edges())
	}
}

func TestKarateEdges(t *testing.T) {
	t.Parallel()

	edges := builder.KarateEdges()
	require.Len(t, edges, 78)
	for _, e := range edges {
		assert.Less(t, e[0], e[1])
		assert.Less(t, e[1], builder.KarateSize)
	}
	edges[0] = [2]int{-1, -1}
	assert.Equal(t, [2]int{0, 1}, builder.KarateEdges()[0], "callers get a fresh slice")

	s, err := structure.New(builder.KarateSize, builder.KarateEdges())
	require.NoError(t, err)
	assert.True(t, s.Connected())
}

func TestBuildGraph_ComposesAndPrefixes(t *testing.T) {
	t.Parallel()

	g := build(t, builder.Cycle(4), builder.WithSymbNumb("v"))
	assert.Equal(t, []string{"v0", "v1", "v2", "v3"}, g.Vertices())

	// A second constructor over the same indices reuses the vertices.
	_, err := builder.BuildGraph(nil, builder.Path(3), builder.Cycle(3))
	require.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)
}
