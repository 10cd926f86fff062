// Package mazegen provides the iterative recursive-backtracker generator:
// depth-first search over the cell-adjacency graph, carving as it goes and
// retreating on dead ends.
package mazegen

import "github.com/FrediBach/maze-and-pathfinding/grid"

// Backtracker carves a perfect maze by depth-first search over the cell
// graph. Neighbor visit order is randomized per expansion; on a dead end
// the walk retreats along an explicit stack (no recursion, so depth is
// bounded by the stack slice, not the goroutine stack).
//
// Error Conditions:
//   - ErrInvalidDimensions: width or height below 1.
//
// Steps:
//  1. Carve a random start cell and push it on the stack.
//  2. While the stack is non-empty, peek the top cell and collect its
//     uncarved neighbors.
//  3. No candidates → pop (backtrack). Otherwise pick one uniformly, carve
//     the connecting passage and the neighbor, and push the neighbor.
//  4. Force the entrance/exit openings and seal the grid.
//
// Guarantee: spanning tree of the cell graph (perfect maze) — every cell is
// pushed exactly once and every carved passage joins a fresh cell.
//
// Complexity: O(n) time, O(n) memory, n = width×height.
func Backtracker(width, height int, opts ...Option) (*grid.Grid, error) {
	if err := validateDims(width, height); err != nil {
		return nil, err
	}
	o := buildOptions(opts)
	cv := newCarver(width, height, newRNG(o))

	// 1. Seed the walk.
	start := cv.randomCell()
	cv.carveCell(start)
	stack := make([]cellRef, 0, width*height)
	stack = append(stack, start)

	var buf []cellRef
	for len(stack) > 0 {
		// 2. Peek the current head of the walk.
		cur := stack[len(stack)-1]
		cand := cv.uncarvedNeighbors(cur, buf)
		buf = cand

		// 3. Dead end: retreat one step.
		if len(cand) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		// Advance into a uniformly chosen fresh neighbor.
		next := cand[cv.rng.Intn(len(cand))]
		cv.carvePassage(cur, next)
		cv.carveCell(next)
		stack = append(stack, next)
	}

	// 4. Entrance/exit invariant, then seal.
	return cv.finish()
}
