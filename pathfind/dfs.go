// Package pathfind provides depth-first search over a grid.Grid: a LIFO
// frontier with randomized neighbor order, committed to the first route it
// stumbles into.
package pathfind

import "github.com/FrediBach/maze-and-pathfinding/grid"

// DFS searches from start to end with an explicit LIFO stack. Positions
// are marked seen on push and recorded in VisitedOrder on pop (first
// settle); neighbor push order is shuffled per expansion, so the explored
// shape varies run to run unless WithRand pins the source. The search
// stops at the first pop of end.
//
// Contract:
//   - Invalid start/end (out of bounds or Wall) → zero Result, no search.
//   - Stack drains without reaching end → nil Path, accumulated order.
//
// Guarantee: none on path length — DFS commits to whatever branch reaches
// end first.
//
// Complexity: O(n) time and memory, n = matrix positions.
func DFS(g *grid.Grid, start, end grid.Coord, opts ...Option) Result {
	if !validEndpoints(g, start, end) {
		return Result{}
	}
	rng := newRNG(buildOptions(opts))

	n := g.Rows() * g.Cols()
	seen := make(map[grid.Coord]bool, n)
	parent := make(map[grid.Coord]grid.Coord, n)
	order := make([]grid.Coord, 0, n)

	stack := make([]grid.Coord, 0, n)
	stack = append(stack, start)
	seen[start] = true

	var nbrs []grid.Coord
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		order = append(order, cur)

		if cur == end {
			return Result{Path: walkParents(parent, start, end), VisitedOrder: order}
		}

		nbrs = nbrs[:0]
		for _, d := range moveOffsets {
			next := grid.Coord{Row: cur.Row + d[0], Col: cur.Col + d[1]}
			if g.IsPath(next.Row, next.Col) && !seen[next] {
				nbrs = append(nbrs, next)
			}
		}
		// Randomize the branch order before pushing.
		for i := len(nbrs) - 1; i > 0; i-- {
			j := rng.Intn(i + 1)
			nbrs[i], nbrs[j] = nbrs[j], nbrs[i]
		}
		for _, next := range nbrs {
			seen[next] = true
			parent[next] = cur
			stack = append(stack, next)
		}
	}

	return Result{Path: nil, VisitedOrder: order}
}
