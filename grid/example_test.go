// File: grid/example_test.go
package grid_test

import (
	"fmt"

	"github.com/FrediBach/maze-and-pathfinding/grid"
)

// ExampleFromCells demonstrates constructing the smallest valid lattice —
// a 1×1 maze — and reading back its external 0/1 representation.
// Scenario:
//
//   - 3×3 matrix, single interior cell at (1,1)
//   - entrance (1,0) and exit (1,2) carved through the outer ring
//
// Complexity: O(rows×cols)
func ExampleFromCells() {
	g, _ := grid.FromCells([][]grid.CellState{
		{grid.Wall, grid.Wall, grid.Wall},
		{grid.Path, grid.Path, grid.Path},
		{grid.Wall, grid.Wall, grid.Wall},
	})

	fmt.Println("size:", g.Width(), "x", g.Height())
	fmt.Println("entrance:", g.Entrance(), "exit:", g.Exit())
	for _, row := range g.Cells() {
		fmt.Println(row)
	}

	// Output:
	// size: 1 x 1
	// entrance: {1 0} exit: {1 2}
	// [1 1 1]
	// [0 0 0]
	// [1 1 1]
}

// ExampleToGridCoord shows the cell→grid coordinate mapping: logical cell
// (cr, cc) lives at matrix position (2*cr+1, 2*cc+1).
func ExampleToGridCoord() {
	fmt.Println(grid.ToGridCoord(grid.Coord{Row: 0, Col: 0}))
	fmt.Println(grid.ToGridCoord(grid.Coord{Row: 2, Col: 3}))

	// Output:
	// {1 1}
	// {5 7}
}
