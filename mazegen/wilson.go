// Package mazegen provides Wilson's generator: loop-erased random walks
// producing a uniform spanning tree of the cell graph.
package mazegen

import "github.com/FrediBach/maze-and-pathfinding/grid"

// Wilson carves a perfect maze by loop-erased random walks. One seed cell
// joins the tree first; thereafter each round starts a uniform random walk
// from an uncarved cell, erasing loops in place (revisiting a cell on the
// current walk truncates the walk back to it) until the walk hits the
// carved set, then carves the entire loop-erased path.
//
// Error Conditions:
//   - ErrInvalidDimensions: width or height below 1.
//
// Steps:
//  1. Carve a random seed cell.
//  2. Pick any still-uncarved cell and walk: each step moves to a uniform
//     in-bounds neighbor. The walk lives in an explicit path buffer plus a
//     position index keyed by flat cell index — loop erasure is a
//     truncation of that buffer, no recursion anywhere.
//  3. When the walk reaches a carved cell, carve every cell and passage
//     along the surviving path and clear the buffer.
//  4. Repeat from 2 until all n cells are carved, then force the
//     entrance/exit openings and seal the grid.
//
// Guarantee: spanning tree, and uniformly distributed over all spanning
// trees of the cell graph (a true UST) — the distinguishing property of
// this algorithm.
//
// Complexity: O(n) expected time (sum of loop-erased walk lengths), worst
// case unbounded but almost surely finite; O(n) memory.
func Wilson(width, height int, opts ...Option) (*grid.Grid, error) {
	if err := validateDims(width, height); err != nil {
		return nil, err
	}
	o := buildOptions(opts)
	cv := newCarver(width, height, newRNG(o))

	n := width * height
	index := func(cell cellRef) int { return cell.r*width + cell.c }

	// 1. Seed the tree.
	cv.carveCell(cv.randomCell())
	remaining := n - 1

	// onPath maps flat cell index → 1-based position in the current walk
	// (0 = not on the walk), so loop erasure is a single lookup.
	onPath := make([]int, n)
	path := make([]cellRef, 0, n)

	for start := 0; remaining > 0; start++ {
		// 2. Find the next uncarved walk origin (scan order does not bias
		//    the tree; the walk itself is what gets sampled).
		cell := cellRef{r: start / width, c: start % width}
		if cv.isCarved(cell) {
			continue
		}

		path = append(path[:0], cell)
		onPath[index(cell)] = 1
		for {
			cur := path[len(path)-1]
			d := cellOffsets[cv.rng.Intn(len(cellOffsets))]
			next := cellRef{r: cur.r + d[0], c: cur.c + d[1]}
			if !cv.inBounds(next) {
				continue
			}
			if cv.isCarved(next) {
				// 3. Walk reached the tree: commit the loop-erased path.
				prev := next
				for i := len(path) - 1; i >= 0; i-- {
					cv.carveCell(path[i])
					cv.carvePassage(path[i], prev)
					onPath[index(path[i])] = 0
					prev = path[i]
					remaining--
				}
				path = path[:0]
				break
			}
			if pos := onPath[index(next)]; pos > 0 {
				// Loop: truncate the walk back to the earlier visit.
				for i := pos; i < len(path); i++ {
					onPath[index(path[i])] = 0
				}
				path = path[:pos]
				continue
			}
			path = append(path, next)
			onPath[index(next)] = len(path)
		}
	}
	// Degenerate 1×1 maze: the seed is the whole tree.

	return cv.finish()
}
