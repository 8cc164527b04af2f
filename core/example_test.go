package core_test

import (
	"fmt"

	"github.com/katalvlaran/sigma/core"
)

// ExampleGraph builds a small square and inspects its neighbourhoods.
//
//	A───B
//	│   │
//	C───D
func ExampleGraph() {
	g := core.NewGraph()
	for _, e := range [][2]string{{"A", "B"}, {"B", "D"}, {"D", "C"}, {"C", "A"}} {
		if _, err := g.AddEdge(e[0], e[1]); err != nil {
			fmt.Println("error:", err)
			return
		}
	}

	nbrs, _ := g.NeighborIDs("A")
	deg, _ := g.Degree("D")
	fmt.Println(g.VertexCount(), g.EdgeCount())
	fmt.Println(nbrs)
	fmt.Println(deg)
	// Output:
	// 4 4
	// [B C]
	// 2
}
