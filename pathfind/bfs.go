// Package pathfind provides breadth-first search over a grid.Grid,
// returning a shortest route and first-settle visit order.
package pathfind

import "github.com/FrediBach/maze-and-pathfinding/grid"

// BFS searches from start to end with a FIFO frontier. Positions are
// marked seen on enqueue (so nothing is expanded twice) and recorded in
// VisitedOrder on dequeue (first settle). On an unweighted grid the first
// dequeue of end yields a shortest path.
//
// Contract:
//   - Invalid start/end (out of bounds or Wall) → zero Result, no search.
//   - Queue drains without reaching end → nil Path, accumulated order.
//
// Guarantee: shortest path (minimum move count), unweighted BFS property.
//
// Complexity: O(n) time and memory, n = matrix positions.
func BFS(g *grid.Grid, start, end grid.Coord) Result {
	if !validEndpoints(g, start, end) {
		return Result{}
	}

	n := g.Rows() * g.Cols()
	seen := make(map[grid.Coord]bool, n)
	parent := make(map[grid.Coord]grid.Coord, n)
	order := make([]grid.Coord, 0, n)

	queue := make([]grid.Coord, 0, n)
	queue = append(queue, start)
	seen[start] = true

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		order = append(order, cur)

		if cur == end {
			return Result{Path: walkParents(parent, start, end), VisitedOrder: order}
		}

		for _, d := range moveOffsets {
			next := grid.Coord{Row: cur.Row + d[0], Col: cur.Col + d[1]}
			if !g.IsPath(next.Row, next.Col) || seen[next] {
				continue
			}
			seen[next] = true
			parent[next] = cur
			queue = append(queue, next)
		}
	}

	// Frontier exhausted: end unreachable from start.
	return Result{Path: nil, VisitedOrder: order}
}
