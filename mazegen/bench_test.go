package mazegen_test

import (
	"math/rand"
	"testing"

	"github.com/FrediBach/maze-and-pathfinding/grid"
	"github.com/FrediBach/maze-and-pathfinding/mazegen"
)

// benchSize is the upper bound the external UI layer allows (≤50 per axis).
const benchSize = 50

// benchGen runs one generator at the maximum supported size with a
// deterministic source, so runs are comparable across machines.
func benchGen(b *testing.B, gen genFunc) {
	b.Helper()
	r := rand.New(rand.NewSource(42))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := gen(benchSize, benchSize, mazegen.WithRand(r)); err != nil {
			b.Fatalf("generate failed: %v", err)
		}
	}
}

func BenchmarkBacktracker(b *testing.B) { benchGen(b, mazegen.Backtracker) }
func BenchmarkPrim(b *testing.B)        { benchGen(b, mazegen.Prim) }
func BenchmarkKruskal(b *testing.B)     { benchGen(b, mazegen.Kruskal) }
func BenchmarkBinaryTree(b *testing.B)  { benchGen(b, mazegen.BinaryTree) }
func BenchmarkWilson(b *testing.B)      { benchGen(b, mazegen.Wilson) }
func BenchmarkDivision(b *testing.B)    { benchGen(b, mazegen.Division) }

// Aldous-Broder's cover-time constant dwarfs the others; kept separate so
// comparative runs can exclude it cheaply with -bench filters.
func BenchmarkAldousBroder(b *testing.B) { benchGen(b, mazegen.AldousBroder) }

func BenchmarkGrowingTree(b *testing.B) {
	for _, p := range []mazegen.Policy{mazegen.Newest, mazegen.Oldest, mazegen.Random} {
		policy := p
		b.Run(policy.String(), func(b *testing.B) {
			benchGen(b, func(w, h int, opts ...mazegen.Option) (*grid.Grid, error) {
				return mazegen.GrowingTree(w, h, policy, opts...)
			})
		})
	}
}
