// File: mazegen/example_test.go
package mazegen_test

import (
	"fmt"
	"math/rand"

	"github.com/FrediBach/maze-and-pathfinding/mazegen"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Backtracker
////////////////////////////////////////////////////////////////////////////////

// ExampleBacktracker carves a 4×3 maze and inspects the structural facts
// every generator guarantees: matrix dimensions 2w+1 × 2h+1 and the forced
// entrance/exit openings. The carved structure itself varies with the
// random source, so the example prints only the invariants.
//
// Complexity: O(w·h)
func ExampleBacktracker() {
	g, _ := mazegen.Backtracker(4, 3)

	cells := g.Cells()
	fmt.Println("matrix:", g.Rows(), "x", g.Cols())
	fmt.Println("entrance open:", cells[1][0] == 0)
	fmt.Println("exit open:", cells[g.Rows()-2][g.Cols()-1] == 0)

	// Output:
	// matrix: 7 x 9
	// entrance open: true
	// exit open: true
}

////////////////////////////////////////////////////////////////////////////////
// Example: Generate (runtime dispatch)
////////////////////////////////////////////////////////////////////////////////

// ExampleGenerate selects the strategy by name — the shape UI layers use
// when the algorithm comes from a dropdown — and shows the sentinel
// returned for an unrecognized name.
func ExampleGenerate() {
	r := rand.New(rand.NewSource(42))

	g, err := mazegen.Generate(mazegen.AlgoGrowingTree, 5, 5,
		mazegen.WithRand(r), mazegen.WithPolicy(mazegen.Random))
	fmt.Println("err:", err, "size:", g.Width(), "x", g.Height())

	_, err = mazegen.Generate(mazegen.Algorithm("sidewinder"), 5, 5)
	fmt.Println(err)

	// Output:
	// err: <nil> size: 5 x 5
	// mazegen: unknown algorithm
}
