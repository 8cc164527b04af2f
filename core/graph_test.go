package core_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sigma/core"
)

func TestAddVertex_Idempotent(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.AddVertex("A"))
	require.Equal(t, 1, g.VertexCount())
	require.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)
}

func TestAddEdge_Policies(t *testing.T) {
	g := core.NewGraph()

	eid, err := g.AddEdge("A", "B")
	require.NoError(t, err)
	require.Equal(t, "e1", eid)
	require.True(t, g.HasEdge("A", "B"))
	require.True(t, g.HasEdge("B", "A"), "undirected edges are mirrored")

	_, err = g.AddEdge("B", "A")
	require.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)

	_, err = g.AddEdge("A", "A")
	require.ErrorIs(t, err, core.ErrLoopNotAllowed)

	_, err = g.AddEdge("", "A")
	require.ErrorIs(t, err, core.ErrEmptyVertexID)
	require.Equal(t, 1, g.EdgeCount(), "rejected edges leave the graph unchanged")
}

func TestNeighborIDsAndDegree(t *testing.T) {
	g := core.NewGraph()
	for _, e := range [][2]string{{"0", "2"}, {"0", "1"}, {"0", "10"}, {"1", "2"}} {
		_, err := g.AddEdge(e[0], e[1])
		require.NoError(t, err)
	}

	nbrs, err := g.NeighborIDs("0")
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "10", "2"}, nbrs)

	deg, err := g.Degree("2")
	require.NoError(t, err)
	assert.Equal(t, 2, deg)

	_, err = g.NeighborIDs("missing")
	require.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.Degree("missing")
	require.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestEdgesSortedByID(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 12; i++ {
		_, err := g.AddEdge("hub", string(rune('a'+i)))
		require.NoError(t, err)
	}

	edges := g.Edges()
	require.Len(t, edges, 12)
	assert.Equal(t, "e1", edges[0].ID)
	assert.Equal(t, "e10", edges[9].ID)

	edges[0].To = "mutated"
	assert.Equal(t, "a", g.Edges()[0].To, "Edges returns copies")
}

func TestConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph()
	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				_, _ = g.AddEdge("hub", string(rune('A'+w))+string(rune('a'+i%26))+string(rune('0'+i/26)))
			}
		}(w)
	}
	wg.Wait()
	require.Equal(t, 400, g.EdgeCount())
	deg, err := g.Degree("hub")
	require.NoError(t, err)
	require.Equal(t, 400, deg)
}
