// SPDX-License-Identifier: MIT
// Package: sigma/builder
//
// impl_karate.go — Zachary's karate club network.
//
// The 34 members are indexed 0..33 in the order of the published
// adjacency list (the instructor is 0, the administrator 33).

package builder

import "github.com/katalvlaran/sigma/core"

const methodKarate = "Karate"

// KarateSize is the number of members in the karate club.
const KarateSize = 34

// karateTies lists, per member, the higher-indexed members they interact with.
var karateTies = [KarateSize][]int{
	0:  {1, 2, 3, 4, 5, 6, 7, 8, 10, 11, 12, 13, 17, 19, 21, 31},
	1:  {2, 3, 7, 13, 17, 19, 21, 30},
	2:  {3, 7, 8, 9, 13, 27, 28, 32},
	3:  {7, 12, 13},
	4:  {6, 10},
	5:  {6, 10, 16},
	6:  {16},
	8:  {30, 32, 33},
	9:  {33},
	13: {33},
	14: {32, 33},
	15: {32, 33},
	18: {32, 33},
	19: {33},
	20: {32, 33},
	22: {32, 33},
	23: {25, 27, 29, 32, 33},
	24: {25, 27, 31},
	25: {31},
	26: {29, 33},
	27: {33},
	28: {31, 33},
	29: {32, 33},
	30: {32, 33},
	31: {32, 33},
	32: {33},
}

// KarateEdges returns the 78 ties as index pairs (i<j), sorted.
// The slice is freshly allocated on every call.
func KarateEdges() [][2]int {
	edges := make([][2]int, 0, 78)
	for i, row := range karateTies {
		for _, j := range row {
			edges = append(edges, [2]int{i, j})
		}
	}

	return edges
}

// Karate returns a Constructor that adds the karate club network.
func Karate() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		ids, err := addIndexedVertices(g, methodKarate, KarateSize, cfg.idFn)
		if err != nil {
			return err
		}
		for _, e := range KarateEdges() {
			if err = addEdge(g, methodKarate, ids[e[0]], ids[e[1]]); err != nil {
				return err
			}
		}

		return nil
	}
}
