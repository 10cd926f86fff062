// Package pathfind provides A* search over a grid.Grid: a best-first
// search ordered by f = g + h with the Manhattan-distance heuristic.
package pathfind

import (
	"container/heap"

	"github.com/FrediBach/maze-and-pathfinding/grid"
)

// AStar searches from start to end with a binary-heap open set keyed by
// f = g + h, where g is the move count from start and h the Manhattan
// distance to end. A neighbor's g is relaxed whenever a shorter route to
// it is found before it closes; closed positions are never re-expanded
// (with this consistent heuristic no shorter route can appear after
// closing). Ties on f break toward lower h, then earlier insertion —
// deterministic, since the heuristic and expansion order contain no
// randomness.
//
// Contract:
//   - Invalid start/end (out of bounds or Wall) → zero Result, no search.
//   - Open set drains without reaching end → nil Path, accumulated order.
//   - VisitedOrder records each position once, when it closes.
//
// Guarantee: shortest path — Manhattan distance is admissible under
// uniform step cost 1.
//
// Complexity: O(n log n) time, O(n) memory, n = matrix positions.
func AStar(g *grid.Grid, start, end grid.Coord) Result {
	if !validEndpoints(g, start, end) {
		return Result{}
	}

	n := g.Rows() * g.Cols()
	gScore := make(map[grid.Coord]int, n)
	parent := make(map[grid.Coord]grid.Coord, n)
	closed := make(map[grid.Coord]bool, n)
	order := make([]grid.Coord, 0, n)

	open := &openHeap{}
	heap.Init(open)
	seq := 0
	push := func(pos grid.Coord, cost int) {
		h := manhattan(pos, end)
		heap.Push(open, openItem{pos: pos, g: cost, prio: cost + h, tie: h, seq: seq})
		seq++
	}

	gScore[start] = 0
	push(start, 0)

	for open.Len() > 0 {
		cur := heap.Pop(open).(openItem)
		if closed[cur.pos] {
			// Stale entry superseded by an earlier relaxation.
			continue
		}
		closed[cur.pos] = true
		order = append(order, cur.pos)

		if cur.pos == end {
			return Result{Path: walkParents(parent, start, end), VisitedOrder: order}
		}

		for _, d := range moveOffsets {
			next := grid.Coord{Row: cur.pos.Row + d[0], Col: cur.pos.Col + d[1]}
			if !g.IsPath(next.Row, next.Col) || closed[next] {
				continue
			}
			cost := cur.g + 1
			if prev, ok := gScore[next]; ok && cost >= prev {
				continue
			}
			// First discovery, or a strictly shorter route: relax.
			gScore[next] = cost
			parent[next] = cur.pos
			push(next, cost)
		}
	}

	return Result{Path: nil, VisitedOrder: order}
}
