// Package pathfind provides the random-mouse search over a grid.Grid: an
// unguided wander under an explicit step budget, returning its raw
// traversal rather than a reconstructed path.
package pathfind

import "github.com/FrediBach/maze-and-pathfinding/grid"

// RandomMouse wanders from start toward end, bounded by maxSteps moves.
// Each move prefers a uniformly chosen unvisited passable neighbor; failing
// that, a uniformly chosen visited neighbor other than the immediately
// previous position; failing that it pops one step back along its path
// stack. The walk stops when end is the current position at the top of a
// move cycle, when the budget is exhausted, or when no move remains.
//
// Contract:
//   - Invalid start/end (out of bounds or Wall) → zero Result, no search.
//   - maxSteps < 1 → zero Result (budget exhausted before the first move).
//   - Arrival is only detected before a move, so reaching end with the
//     final budgeted move still reports no path: maxSteps=1 with
//     start ≠ end is always a no-path outcome.
//   - On success Path is the raw traversed stack — it may repeat positions
//     the walk crossed more than once and is an exploration trace, not a
//     minimal path. VisitedOrder records each position the first time it
//     is stepped into; backtracking never re-adds.
//
// Guarantee: none beyond termination within maxSteps moves.
//
// Complexity: O(maxSteps) time, O(n + maxSteps) memory.
func RandomMouse(g *grid.Grid, start, end grid.Coord, maxSteps int, opts ...Option) Result {
	if !validEndpoints(g, start, end) || maxSteps < 1 {
		return Result{}
	}
	rng := newRNG(buildOptions(opts))

	seen := make(map[grid.Coord]bool, g.Rows()*g.Cols())
	seen[start] = true
	order := []grid.Coord{start}
	trail := []grid.Coord{start}

	// hasPrev distinguishes the first move, where nothing is "previous".
	var prev grid.Coord
	hasPrev := false

	var fresh, stale []grid.Coord
	for steps := 0; steps < maxSteps; steps++ {
		cur := trail[len(trail)-1]
		if cur == end {
			return Result{Path: trail, VisitedOrder: order}
		}

		// Partition passable neighbors into unvisited and visited
		// (excluding the position we just came from).
		fresh, stale = fresh[:0], stale[:0]
		for _, d := range moveOffsets {
			next := grid.Coord{Row: cur.Row + d[0], Col: cur.Col + d[1]}
			if !g.IsPath(next.Row, next.Col) {
				continue
			}
			switch {
			case !seen[next]:
				fresh = append(fresh, next)
			case !hasPrev || next != prev:
				stale = append(stale, next)
			}
		}

		switch {
		case len(fresh) > 0:
			next := fresh[rng.Intn(len(fresh))]
			seen[next] = true
			order = append(order, next)
			trail = append(trail, next)
			prev, hasPrev = cur, true
		case len(stale) > 0:
			next := stale[rng.Intn(len(stale))]
			trail = append(trail, next)
			prev, hasPrev = cur, true
		case len(trail) > 1:
			// Boxed in: retreat one step along the stack.
			trail = trail[:len(trail)-1]
			prev, hasPrev = cur, true
		default:
			// Nowhere to go at all: start is sealed off.
			return Result{Path: nil, VisitedOrder: order}
		}
	}

	// Budget exhausted away from end.
	return Result{Path: nil, VisitedOrder: order}
}
