// SPDX-License-Identifier: MIT

// Package core defines the Graph and Edge types, the sentinel errors and the
// NewGraph constructor.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates an edge from a vertex to itself.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a second edge between the same endpoints.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Edge is an undirected connection between two vertices.
// From/To preserve the insertion order of the endpoints; semantics are symmetric.
type Edge struct {
	// ID uniquely identifies this edge in the Graph ("e1", "e2", …).
	ID string

	// From is the first endpoint as passed to AddEdge.
	From string

	// To is the second endpoint as passed to AddEdge.
	To string
}

// Graph is an undirected simple graph guarded by a single RWMutex.
//
// adjacency[u][v] holds the ID of the edge u—v and is mirrored in
// adjacency[v][u].
type Graph struct {
	mu sync.RWMutex

	nextEdgeID uint64              // atomic edge ID generator
	vertices   map[string]struct{} // vertex set
	edges      map[string]*Edge    // edge ID → Edge
	adjacency  map[string]map[string]string
}

// NewGraph creates an empty undirected simple Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		vertices:  make(map[string]struct{}),
		edges:     make(map[string]*Edge),
		adjacency: make(map[string]map[string]string),
	}
}
