package mazegen_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/FrediBach/maze-and-pathfinding/grid"
	"github.com/FrediBach/maze-and-pathfinding/mazegen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// genFunc adapts every generator to one shape for table-driven property tests.
type genFunc func(width, height int, opts ...mazegen.Option) (*grid.Grid, error)

// perfectGenerators lists every generator whose output must be a spanning
// tree of the cell graph. Division is excluded: it guarantees connectivity
// only. Map iteration order does not matter; each subtest seeds its own RNG.
func perfectGenerators() map[string]genFunc {
	gens := map[string]genFunc{
		"backtracker":  mazegen.Backtracker,
		"prim":         mazegen.Prim,
		"kruskal":      mazegen.Kruskal,
		"binarytree":   mazegen.BinaryTree,
		"wilson":       mazegen.Wilson,
		"aldousbroder": mazegen.AldousBroder,
	}
	for _, p := range []mazegen.Policy{mazegen.Newest, mazegen.Oldest, mazegen.Random} {
		policy := p
		gens["growingtree/"+policy.String()] = func(w, h int, opts ...mazegen.Option) (*grid.Grid, error) {
			return mazegen.GrowingTree(w, h, policy, opts...)
		}
	}

	return gens
}

// testSizes covers degenerate single-row/column mazes and a few general shapes.
var testSizes = []struct{ w, h int }{
	{1, 1}, {1, 5}, {5, 1}, {2, 2}, {8, 5}, {12, 12},
}

// countInteriorCells counts carved logical cell positions (odd/odd).
func countInteriorCells(g *grid.Grid) int {
	n := 0
	for r := 1; r < g.Rows(); r += 2 {
		for c := 1; c < g.Cols(); c += 2 {
			if g.At(r, c) == grid.Path {
				n++
			}
		}
	}

	return n
}

// countInteriorPassages counts carved wall positions strictly inside the
// outer ring (exactly one odd index). The forced entrance/exit openings sit
// on the ring and are deliberately not counted.
func countInteriorPassages(g *grid.Grid) int {
	n := 0
	for r := 1; r < g.Rows()-1; r++ {
		for c := 1; c < g.Cols()-1; c++ {
			if (r%2)+(c%2) == 1 && g.At(r, c) == grid.Path {
				n++
			}
		}
	}

	return n
}

// floodReach runs a plain queue flood fill over Path positions from the
// entrance and reports how many interior cell positions it reaches.
func floodReach(g *grid.Grid) int {
	visited := make(map[grid.Coord]bool)
	queue := []grid.Coord{g.Entrance()}
	visited[g.Entrance()] = true
	cells := 0
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if g.IsInteriorCell(cur.Row, cur.Col) {
			cells++
		}
		for _, d := range [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
			next := grid.Coord{Row: cur.Row + d[0], Col: cur.Col + d[1]}
			if g.IsPath(next.Row, next.Col) && !visited[next] {
				visited[next] = true
				queue = append(queue, next)
			}
		}
	}

	return cells
}

// assertEntranceExit checks the forced openings every generator must leave.
func assertEntranceExit(t *testing.T, g *grid.Grid) {
	t.Helper()
	assert.Equal(t, grid.Path, g.At(1, 0), "entrance (1,0) must be open")
	assert.Equal(t, grid.Path, g.At(g.Rows()-2, g.Cols()-1), "exit must be open")
}

// TestPerfectGenerators_SpanningTree verifies, for every perfect-maze
// generator and size, that the carved cell graph is a spanning tree:
// width*height carved cells, exactly width*height-1 interior passages, and
// full reachability from the entrance.
func TestPerfectGenerators_SpanningTree(t *testing.T) {
	for name, gen := range perfectGenerators() {
		for _, sz := range testSizes {
			t.Run(fmt.Sprintf("%s/%dx%d", name, sz.w, sz.h), func(t *testing.T) {
				g, err := gen(sz.w, sz.h, mazegen.WithRand(rand.New(rand.NewSource(42))))
				require.NoError(t, err)

				wantRows, wantCols := grid.Dims(sz.w, sz.h)
				assert.Equal(t, wantRows, g.Rows())
				assert.Equal(t, wantCols, g.Cols())

				assertEntranceExit(t, g)
				n := sz.w * sz.h
				assert.Equal(t, n, countInteriorCells(g), "every cell must be carved")
				assert.Equal(t, n-1, countInteriorPassages(g), "spanning tree carves n-1 passages")
				assert.Equal(t, n, floodReach(g), "all cells reachable from the entrance")
			})
		}
	}
}

// TestPerfectGenerators_DistinctSeeds spot-checks that the randomness
// actually reaches the structure: two far-apart seeds should not keep
// producing identical mazes (Backtracker on a size with astronomically many
// spanning trees).
func TestPerfectGenerators_DistinctSeeds(t *testing.T) {
	a, err := mazegen.Backtracker(12, 12, mazegen.WithRand(rand.New(rand.NewSource(1))))
	require.NoError(t, err)
	b, err := mazegen.Backtracker(12, 12, mazegen.WithRand(rand.New(rand.NewSource(999))))
	require.NoError(t, err)

	assert.NotEqual(t, a.Cells(), b.Cells())
}

// TestDivision_Connectivity verifies the looser Division property: every
// interior cell reachable from the entrance, entrance/exit forced open.
// Division is subtractive, so no passage-count assertion applies.
func TestDivision_Connectivity(t *testing.T) {
	for _, sz := range testSizes {
		t.Run(fmt.Sprintf("%dx%d", sz.w, sz.h), func(t *testing.T) {
			g, err := mazegen.Division(sz.w, sz.h, mazegen.WithRand(rand.New(rand.NewSource(42))))
			require.NoError(t, err)

			assertEntranceExit(t, g)
			assert.Equal(t, sz.w*sz.h, countInteriorCells(g), "division never walls a cell position")
			assert.Equal(t, sz.w*sz.h, floodReach(g), "each split leaves a connector")
		})
	}
}

// TestDivision_OuterRing verifies the ring stays walled apart from the two
// forced openings.
func TestDivision_OuterRing(t *testing.T) {
	g, err := mazegen.Division(6, 4, mazegen.WithRand(rand.New(rand.NewSource(7))))
	require.NoError(t, err)

	for c := 0; c < g.Cols(); c++ {
		assert.Equal(t, grid.Wall, g.At(0, c))
		assert.Equal(t, grid.Wall, g.At(g.Rows()-1, c))
	}
	for r := 0; r < g.Rows(); r++ {
		if r != 1 {
			assert.Equal(t, grid.Wall, g.At(r, 0))
		}
		if r != g.Rows()-2 {
			assert.Equal(t, grid.Wall, g.At(r, g.Cols()-1))
		}
	}
}

// TestValidation_Dimensions verifies the defensive dimension guard on every
// entry point.
func TestValidation_Dimensions(t *testing.T) {
	gens := perfectGenerators()
	gens["division"] = mazegen.Division
	for name, gen := range gens {
		t.Run(name, func(t *testing.T) {
			_, err := gen(0, 5)
			assert.ErrorIs(t, err, mazegen.ErrInvalidDimensions)
			_, err = gen(5, -1)
			assert.ErrorIs(t, err, mazegen.ErrInvalidDimensions)
		})
	}
}

// TestGrowingTree_UnknownPolicy verifies the policy guard.
func TestGrowingTree_UnknownPolicy(t *testing.T) {
	_, err := mazegen.GrowingTree(3, 3, mazegen.Policy(99))
	assert.ErrorIs(t, err, mazegen.ErrUnknownPolicy)
}

// TestGenerate_Dispatch verifies the runtime dispatcher covers every
// algorithm name and rejects unknown ones.
func TestGenerate_Dispatch(t *testing.T) {
	algos := []mazegen.Algorithm{
		mazegen.AlgoBacktracker, mazegen.AlgoPrim, mazegen.AlgoKruskal,
		mazegen.AlgoBinaryTree, mazegen.AlgoWilson, mazegen.AlgoAldousBroder,
		mazegen.AlgoDivision, mazegen.AlgoGrowingTree,
	}
	for _, algo := range algos {
		t.Run(string(algo), func(t *testing.T) {
			g, err := mazegen.Generate(algo, 4, 3,
				mazegen.WithRand(rand.New(rand.NewSource(42))),
				mazegen.WithPolicy(mazegen.Oldest))
			require.NoError(t, err)
			assertEntranceExit(t, g)
			assert.Equal(t, 12, floodReach(g))
		})
	}

	_, err := mazegen.Generate(mazegen.Algorithm("sidewinder"), 4, 3)
	assert.ErrorIs(t, err, mazegen.ErrUnknownAlgorithm)
}
