// File: pathfind/example_test.go
package pathfind_test

import (
	"fmt"

	"github.com/FrediBach/maze-and-pathfinding/grid"
	"github.com/FrediBach/maze-and-pathfinding/pathfind"
)

////////////////////////////////////////////////////////////////////////////////
// Example: BFS
////////////////////////////////////////////////////////////////////////////////

// ExampleBFS solves the smallest maze — a single cell between the forced
// entrance and exit — and prints the exact route and settle order.
// Scenario:
//
//   - 3×3 lattice, interior cell (1,1), entrance (1,0), exit (1,2)
//   - BFS settles exactly three positions, left to right
//
// Complexity: O(n)
func ExampleBFS() {
	g, _ := grid.FromCells([][]grid.CellState{
		{grid.Wall, grid.Wall, grid.Wall},
		{grid.Path, grid.Path, grid.Path},
		{grid.Wall, grid.Wall, grid.Wall},
	})

	res := pathfind.BFS(g, g.Entrance(), g.Exit())
	fmt.Println("found:", res.Found())
	fmt.Println("path:", res.Path)
	fmt.Println("visited:", res.VisitedOrder)

	// Output:
	// found: true
	// path: [{1 0} {1 1} {1 2}]
	// visited: [{1 0} {1 1} {1 2}]
}

////////////////////////////////////////////////////////////////////////////////
// Example: AStar (no-path outcome)
////////////////////////////////////////////////////////////////////////////////

// ExampleAStar demonstrates the recoverable no-path contract: an endpoint
// sitting on a wall suppresses the search entirely, and exhaustion on a
// disconnected grid returns nil with the accumulated trace.
func ExampleAStar() {
	g, _ := grid.FromCells([][]grid.CellState{
		{grid.Wall, grid.Wall, grid.Wall},
		{grid.Path, grid.Path, grid.Path},
		{grid.Wall, grid.Wall, grid.Wall},
	})

	// End on a wall: fail fast, no visited trace.
	res := pathfind.AStar(g, g.Entrance(), grid.Coord{Row: 0, Col: 0})
	fmt.Println("found:", res.Found(), "visited:", len(res.VisitedOrder))

	// Output:
	// found: false visited: 0
}
