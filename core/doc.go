// Package core provides a thread-safe in-memory undirected graph used to
// describe the spatial structure of a population.
//
// A Graph G = (V,E) holds string-labelled vertices and simple undirected
// edges. It is the mutable, builder-facing side of the module: topologies are
// assembled here (see package builder) and then frozen into an indexed,
// read-only structure.Structure before any numerical work starts.
//
// Behavior:
//
//   - Undirected edges only; an edge u—v is visible from both endpoints.
//   - Parallel edges are rejected (ErrMultiEdgeNotAllowed).
//   - Self-loops are rejected (ErrLoopNotAllowed).
//   - Deterministic iteration: Vertices(), Edges() and NeighborIDs() return
//     sorted results.
//   - A single sync.RWMutex guards vertices, edges and adjacency.
//
// Core Methods:
//
//	AddVertex(id string) error                   // O(1), idempotent
//	AddEdge(from, to string) (edgeID string, err) // O(1), adds missing endpoints
//	HasEdge(u, v string) bool                    // O(1)
//	NeighborIDs(id string) ([]string, error)     // O(d·log d), sorted
//	Degree(id string) (int, error)               // O(1)
//	Vertices() []string                          // O(V·log V), sorted
//	Edges() []*Edge                              // O(E·log E), sorted by ID
//	VertexCount() / EdgeCount() int              // O(1)
//
// Errors:
//
//	ErrEmptyVertexID       – zero-length vertex ID
//	ErrVertexNotFound      – missing vertex
//	ErrLoopNotAllowed      – self-loop
//	ErrMultiEdgeNotAllowed – parallel edge
package core
