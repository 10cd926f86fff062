// Package pathfind - shared search plumbing: movement offsets, endpoint
// validation, parent-map path reconstruction, and the RNG policy.
//
// Randomness mirrors the mazegen policy: one *rand.Rand per call, supplied
// via WithRand or freshly seeded. math/rand.Rand is not goroutine-safe;
// concurrent searches are safe only with per-call sources.
package pathfind

import (
	"math/rand"
	"time"

	"github.com/FrediBach/maze-and-pathfinding/grid"
)

// moveOffsets are the four orthogonal directions, expanded in this fixed
// order (up, down, left, right) by the deterministic searches.
var moveOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// newRNG returns the per-call random source: the caller-supplied one when
// present, otherwise a stream seeded from the wall clock. Complexity: O(1).
func newRNG(o Options) *rand.Rand {
	if o.Rand != nil {
		return o.Rand
	}

	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// validEndpoints reports whether both endpoints are in bounds and on Path
// positions. Every search fails fast to the zero Result when this is
// false — an invalid endpoint is a recoverable caller condition, not an
// error. Complexity: O(1).
func validEndpoints(g *grid.Grid, start, end grid.Coord) bool {
	return g != nil && g.IsPath(start.Row, start.Col) && g.IsPath(end.Row, end.Col)
}

// manhattan is the admissible heuristic for A* and the priority for
// Greedy: |Δrow| + |Δcol|, a lower bound on 4-directional unit-cost
// distance. Complexity: O(1).
func manhattan(a, b grid.Coord) int {
	dr, dc := a.Row-b.Row, a.Col-b.Col
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}

	return dr + dc
}

// walkParents reconstructs the start→end route by following parent links
// back from end and reversing in place. The parent map must contain a link
// chain terminating at start. Complexity: O(path length).
func walkParents(parent map[grid.Coord]grid.Coord, start, end grid.Coord) []grid.Coord {
	path := []grid.Coord{end}
	for cur := end; cur != start; {
		cur = parent[cur]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
