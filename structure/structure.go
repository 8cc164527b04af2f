// SPDX-License-Identifier: MIT

// Package structure is the read-only view of a population graph used by the
// exact and simulation engines.
//
// A Structure freezes an undirected simple graph into dense integer indices
// 0..N-1 with sorted neighbour lists. It is immutable after construction and
// safe for concurrent use by any number of goroutines.
package structure

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/katalvlaran/sigma/core"
	"github.com/katalvlaran/sigma/matrix"
)

// Sentinel errors for structure construction and preconditions.
var (
	// ErrEmpty indicates a graph without nodes.
	ErrEmpty = errors.New("structure: graph has no nodes")

	// ErrIsolatedNode indicates a node of degree zero where the engines
	// require every node to have at least one neighbour.
	ErrIsolatedNode = errors.New("structure: isolated node")

	// ErrNodeOutOfRange indicates an edge endpoint outside 0..N-1.
	ErrNodeOutOfRange = errors.New("structure: node index out of range")

	// ErrSelfLoop indicates a self-loop; population graphs are simple.
	ErrSelfLoop = errors.New("structure: self-loop not allowed")
)

const (
	methodNew       = "New"
	methodFromGraph = "FromGraph"
)

// Structure is an immutable, index-addressed undirected simple graph.
type Structure struct {
	ids   []string
	index map[string]int
	nbrs  [][]int
	edges int
}

// New builds a Structure with n nodes labelled "0".."n-1" and the given
// undirected edges. Duplicate edges (in either orientation) collapse to one.
//
// Errors:
//   - ErrEmpty if n <= 0.
//   - ErrNodeOutOfRange for endpoints outside 0..n-1.
//   - ErrSelfLoop for an edge {i, i}.
//
// Complexity: O(n + E log E).
func New(n int, edges [][2]int) (*Structure, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%s: n=%d: %w", methodNew, n, ErrEmpty)
	}
	ids := make([]string, n)
	for i := range ids {
		ids[i] = strconv.Itoa(i)
	}
	s := newStructure(ids)

	for _, e := range edges {
		u, v := e[0], e[1]
		if u < 0 || u >= n || v < 0 || v >= n {
			return nil, fmt.Errorf("%s: edge {%d,%d} with n=%d: %w", methodNew, u, v, n, ErrNodeOutOfRange)
		}
		if u == v {
			return nil, fmt.Errorf("%s: node %d: %w", methodNew, u, ErrSelfLoop)
		}
		s.nbrs[u] = append(s.nbrs[u], v)
		s.nbrs[v] = append(s.nbrs[v], u)
	}
	s.finish()

	return s, nil
}

// FromGraph freezes a core.Graph. Vertex IDs that all parse as integers are
// ordered numerically, otherwise lexicographically; index i is the i-th ID
// in that order.
//
// Errors:
//   - ErrEmpty for a graph without vertices.
//
// core.Graph rejects self-loops, so every frozen edge joins two nodes.
//
// Complexity: O(V log V + E log E).
func FromGraph(g *core.Graph) (*Structure, error) {
	if g == nil || g.VertexCount() == 0 {
		return nil, fmt.Errorf("%s: %w", methodFromGraph, ErrEmpty)
	}
	ids := g.Vertices()
	sortIDs(ids)
	s := newStructure(ids)

	for _, e := range g.Edges() {
		u, v := s.index[e.From], s.index[e.To]
		s.nbrs[u] = append(s.nbrs[u], v)
		s.nbrs[v] = append(s.nbrs[v], u)
	}
	s.finish()

	return s, nil
}

func newStructure(ids []string) *Structure {
	s := &Structure{
		ids:   ids,
		index: make(map[string]int, len(ids)),
		nbrs:  make([][]int, len(ids)),
	}
	for i, id := range ids {
		s.index[id] = i
	}

	return s
}

// finish sorts and deduplicates neighbour lists and counts edges.
func (s *Structure) finish() {
	total := 0
	for i, nb := range s.nbrs {
		sort.Ints(nb)
		out := nb[:0]
		for k, v := range nb {
			if k > 0 && v == nb[k-1] {
				continue
			}
			out = append(out, v)
		}
		s.nbrs[i] = out[:len(out):len(out)]
		total += len(out)
	}
	s.edges = total / 2
}

// sortIDs orders numerically when every ID is an integer.
func sortIDs(ids []string) {
	nums := make([]int, len(ids))
	for i, id := range ids {
		n, err := strconv.Atoi(id)
		if err != nil {
			sort.Strings(ids)
			return
		}
		nums[i] = n
	}
	sort.Sort(byNumber{ids: ids, nums: nums})
}

type byNumber struct {
	ids  []string
	nums []int
}

func (b byNumber) Len() int           { return len(b.ids) }
func (b byNumber) Less(i, j int) bool { return b.nums[i] < b.nums[j] }
func (b byNumber) Swap(i, j int) {
	b.ids[i], b.ids[j] = b.ids[j], b.ids[i]
	b.nums[i], b.nums[j] = b.nums[j], b.nums[i]
}

// Len returns the number of nodes N.
func (s *Structure) Len() int { return len(s.ids) }

// EdgeCount returns the number of undirected edges.
func (s *Structure) EdgeCount() int { return s.edges }

// Degree returns the number of neighbours of node i. Panics if i is out of range.
func (s *Structure) Degree(i int) int { return len(s.nbrs[i]) }

// Neighbors returns the ascending neighbour indices of node i.
// The slice is shared and must not be modified.
func (s *Structure) Neighbors(i int) []int { return s.nbrs[i] }

// ID returns the label of node i.
func (s *Structure) ID(i int) string { return s.ids[i] }

// Index returns the position of the node labelled id.
func (s *Structure) Index(id string) (int, bool) {
	i, ok := s.index[id]

	return i, ok
}

// Edges returns every undirected edge once as {u, v} with u < v, sorted.
func (s *Structure) Edges() [][2]int {
	out := make([][2]int, 0, s.edges)
	for u, nb := range s.nbrs {
		for _, v := range nb {
			if u < v {
				out = append(out, [2]int{u, v})
			}
		}
	}

	return out
}

// Adjacency returns the N×N 0/1 adjacency matrix w.
// Complexity: O(N² + E).
func (s *Structure) Adjacency() *matrix.Dense {
	n := len(s.ids)
	w, _ := matrix.NewDense(n, n)
	for i, nb := range s.nbrs {
		for _, j := range nb {
			_ = w.Set(i, j, 1)
		}
	}

	return w
}

// Isolated returns the indices of nodes with degree zero.
func (s *Structure) Isolated() []int {
	var out []int
	for i, nb := range s.nbrs {
		if len(nb) == 0 {
			out = append(out, i)
		}
	}

	return out
}

// RequireNoIsolated returns ErrIsolatedNode naming the first isolated node.
func (s *Structure) RequireNoIsolated() error {
	for i, nb := range s.nbrs {
		if len(nb) == 0 {
			return fmt.Errorf("node %d (%q): %w", i, s.ids[i], ErrIsolatedNode)
		}
	}

	return nil
}

// Connected reports whether every node is reachable from node 0.
// Complexity: O(N + E).
func (s *Structure) Connected() bool {
	n := len(s.ids)
	seen := make([]bool, n)
	queue := []int{0}
	seen[0] = true
	visited := 1
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, v := range s.nbrs[u] {
			if !seen[v] {
				seen[v] = true
				visited++
				queue = append(queue, v)
			}
		}
	}

	return visited == n
}

// DegreeRange returns the minimum and maximum degree.
func (s *Structure) DegreeRange() (lo, hi int) {
	lo = len(s.nbrs[0])
	for _, nb := range s.nbrs {
		d := len(nb)
		if d < lo {
			lo = d
		}
		if d > hi {
			hi = d
		}
	}

	return lo, hi
}
