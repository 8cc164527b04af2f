package builder

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDSchemeOptions(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "7", newBuilderConfig().idFn(7))
	assert.Equal(t, "v3", newBuilderConfig(WithSymbNumb("v")).idFn(3))
	assert.Equal(t, "3", newBuilderConfig(WithSymbNumb("v"), WithDefaultIDs()).idFn(3),
		"later options win")
	assert.Panics(t, func() { WithIDScheme(nil) })
}

func TestRNGOptions(t *testing.T) {
	t.Parallel()

	assert.Nil(t, newBuilderConfig().rng)

	a := newBuilderConfig(WithSeed(42))
	b := newBuilderConfig(WithSeed(42))
	require.NotNil(t, a.rng)
	for i := 0; i < 5; i++ {
		assert.Equal(t, a.rng.Int63(), b.rng.Int63())
	}

	r := rand.New(rand.NewSource(1))
	assert.Same(t, r, newBuilderConfig(WithRand(r)).rng)
	assert.Panics(t, func() { WithRand(nil) })
}

func TestPairStubs_Regular(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(5))
	var (
		edges [][2]int
		ok    bool
	)
	for attempt := 0; attempt < maxRegularAttempts && !ok; attempt++ {
		edges, ok = pairStubs(10, 3, rng)
	}
	require.True(t, ok)
	require.Len(t, edges, 15)
	deg := make([]int, 10)
	seen := map[[2]int]bool{}
	for _, e := range edges {
		require.Less(t, e[0], e[1])
		require.False(t, seen[e], "duplicate %v", e)
		seen[e] = true
		deg[e[0]]++
		deg[e[1]]++
	}
	for i, d := range deg {
		assert.Equal(t, 3, d, "vertex %d", i)
	}
}

func TestCanPair(t *testing.T) {
	t.Parallel()

	assert.True(t, canPair(map[int]int{}, nil))
	assert.False(t, canPair(map[int]int{4: 2}, map[[2]int]struct{}{}), "a single vertex cannot pair with itself")
	assert.False(t, canPair(map[int]int{1: 1, 2: 1}, map[[2]int]struct{}{{1, 2}: {}}))
	assert.True(t, canPair(map[int]int{1: 1, 2: 1, 3: 2}, map[[2]int]struct{}{{1, 2}: {}}))
}
