package gridgraph_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/gridpath/gridgraph"
)

////////////////////////////////////////////////////////////////////////////////
// Example: ShortestPath + ReconstructPath
////////////////////////////////////////////////////////////////////////////////

// ExampleShortestPath searches an open 3×3 board from corner to corner.
// Scenario:
//
//   - start (0,0), finish (2,2), no walls
//   - every cell is finalized before the finish pops at distance 4
//   - the path is one of the monotonic staircases of five cells
//
// Complexity: O(V²·log V) with the default queue, Memory: O(V)
func ExampleShortestPath() {
	g, _ := gridgraph.NewGrid(3, 3, gridgraph.Position{Row: 0, Col: 0}, gridgraph.Position{Row: 2, Col: 2})

	visited, _ := gridgraph.ShortestPath(g, g.Start().Position(), g.Finish().Position())
	path, _ := gridgraph.ReconstructPath(g, g.Finish().Position())

	fmt.Println("visited:", len(visited), "finish distance:", g.Finish().Distance)
	fmt.Println(strings.Join(g.ASCII(visited, path), "\n"))

	// Output:
	// visited: 9 finish distance: 4
	// Soo
	// *oo
	// **F
}

////////////////////////////////////////////////////////////////////////////////
// Example: unreachable finish
////////////////////////////////////////////////////////////////////////////////

// ExampleReconstructPath_unreachable shows how "no path" is encoded in data:
// the visit order ends without the finish and the path is just [finish].
func ExampleReconstructPath_unreachable() {
	g, _ := gridgraph.FromASCII([]string{"S#F"})

	visited, _ := gridgraph.ShortestPath(g, g.Start().Position(), g.Finish().Position())
	path, _ := gridgraph.ReconstructPath(g, g.Finish().Position())

	found := visited[len(visited)-1].IsFinish
	fmt.Printf("visited=%d found=%v path=%v\n", len(visited), found, path[0].Position())

	// Output:
	// visited=1 found=false path=(0,2)
}

////////////////////////////////////////////////////////////////////////////////
// Example: editing
////////////////////////////////////////////////////////////////////////////////

// ExampleGrid_ToggleWall shows that endpoints cannot be walled.
func ExampleGrid_ToggleWall() {
	g, _ := gridgraph.FromASCII([]string{"S..F"})

	fmt.Println(g.ToggleWall(0, 1))
	fmt.Println(g.ToggleWall(0, 0))
	fmt.Println(g)

	// Output:
	// <nil>
	// gridgraph: illegal edit: (0,0) is the start cell
	// S#.F
}
