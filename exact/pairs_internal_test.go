package exact

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sigma/structure"
)

func TestPairIndex_ColumnMajorBijection(t *testing.T) {
	const n = 5
	seen := make(map[int]bool, n*n)
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			p := pairIndex(i, j, n)
			require.False(t, seen[p])
			seen[p] = true
			assert.Equal(t, i, p%n)
			assert.Equal(t, j, p/n)
		}
	}
	assert.Len(t, seen, n*n)
}

func TestUpperIndex_Bijection(t *testing.T) {
	const n = 6
	seen := make(map[int]bool)
	for j := 1; j < n; j++ {
		for i := 0; i < j; i++ {
			p := upperIndex(i, j)
			assert.Equal(t, p, upperIndex(j, i), "unordered")
			require.False(t, seen[p])
			seen[p] = true
		}
	}
	for p := 0; p < n*(n-1)/2; p++ {
		assert.True(t, seen[p], "index %d unused", p)
	}
}

func TestPairSystem_Shape(t *testing.T) {
	s, err := structure.New(3, [][2]int{{0, 1}, {1, 2}})
	require.NoError(t, err)
	w, err := NewWalk(s)
	require.NoError(t, err)

	m, rhs := w.pairSystem(0.2)
	assert.Equal(t, 9, m.Rows())
	for i := 0; i < 3; i++ {
		row := pairIndex(i, i, 3)
		assert.Equal(t, 1.0, rhs[row])
		v, err := m.At(row, row)
		require.NoError(t, err)
		assert.Equal(t, 1.0, v)
	}
	// φ[0][2]: node 0 steps only to 1, node 2 steps only to 1.
	row := pairIndex(0, 2, 3)
	v, err := m.At(row, pairIndex(1, 2, 3))
	require.NoError(t, err)
	assert.InDelta(t, -0.4, v, 1e-15)
	v, err = m.At(row, pairIndex(0, 1, 3))
	require.NoError(t, err)
	assert.InDelta(t, -0.4, v, 1e-15)
	assert.InDelta(t, 0.1, rhs[row], 1e-15)
}
