// Package pathfind provides greedy best-first search over a grid.Grid:
// best-first ordered by the heuristic alone, with no cost accounting.
package pathfind

import (
	"container/heap"

	"github.com/FrediBach/maze-and-pathfinding/grid"
)

// Greedy searches from start to end with a binary-heap open set keyed by
// the Manhattan distance to end only. Each position keeps its
// first-discovered parent permanently — there is no relaxation — so every
// position enters the open set at most once. Ties break toward earlier
// insertion.
//
// Contract:
//   - Invalid start/end (out of bounds or Wall) → zero Result, no search.
//   - Open set drains without reaching end → nil Path, accumulated order.
//   - VisitedOrder records each position once, when it is expanded.
//
// Guarantee: none on path length — the heuristic chases end without
// accounting for the distance already walked.
//
// Complexity: O(n log n) time, O(n) memory, n = matrix positions.
func Greedy(g *grid.Grid, start, end grid.Coord) Result {
	if !validEndpoints(g, start, end) {
		return Result{}
	}

	n := g.Rows() * g.Cols()
	seen := make(map[grid.Coord]bool, n)
	parent := make(map[grid.Coord]grid.Coord, n)
	order := make([]grid.Coord, 0, n)

	open := &openHeap{}
	heap.Init(open)
	seq := 0
	push := func(pos grid.Coord) {
		heap.Push(open, openItem{pos: pos, prio: manhattan(pos, end), seq: seq})
		seq++
	}

	seen[start] = true
	push(start)

	for open.Len() > 0 {
		cur := heap.Pop(open).(openItem)
		order = append(order, cur.pos)

		if cur.pos == end {
			return Result{Path: walkParents(parent, start, end), VisitedOrder: order}
		}

		for _, d := range moveOffsets {
			next := grid.Coord{Row: cur.pos.Row + d[0], Col: cur.pos.Col + d[1]}
			if !g.IsPath(next.Row, next.Col) || seen[next] {
				continue
			}
			// First discovery wins; the parent link never changes.
			seen[next] = true
			parent[next] = cur.pos
			push(next)
		}
	}

	return Result{Path: nil, VisitedOrder: order}
}
