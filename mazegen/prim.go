// Package mazegen provides the randomized-Prim generator: frontier-wall
// growth from a single seed cell.
package mazegen

import "github.com/FrediBach/maze-and-pathfinding/grid"

// wallRef is a candidate passage between two adjacent cells, held in the
// frontier while at most one side is carved.
type wallRef struct {
	a, b cellRef
}

// Prim carves a perfect maze by frontier-wall growth. The frontier holds
// walls adjacent to the carved region; each step removes one uniformly at
// random and carves through it only when exactly one side is already
// carved, then exposes the fresh cell's own walls.
//
// Error Conditions:
//   - ErrInvalidDimensions: width or height below 1.
//
// Steps:
//  1. Carve a random seed cell; push its walls onto the frontier.
//  2. While the frontier is non-empty, swap-remove a uniformly chosen wall.
//  3. If exactly one flanking cell is carved, carve the passage and the
//     other cell, and push that cell's in-bounds walls.
//  4. Force the entrance/exit openings and seal the grid.
//
// Guarantee: spanning tree — a wall is carved only when it joins a fresh
// cell to the tree, so exactly n-1 passages are opened.
//
// Complexity: O(n) time (each wall enters the frontier at most twice),
// O(n) memory.
func Prim(width, height int, opts ...Option) (*grid.Grid, error) {
	if err := validateDims(width, height); err != nil {
		return nil, err
	}
	o := buildOptions(opts)
	cv := newCarver(width, height, newRNG(o))

	// pushWalls exposes every in-bounds wall of a freshly carved cell.
	frontier := make([]wallRef, 0, 4*width*height)
	pushWalls := func(cell cellRef) {
		for _, d := range cellOffsets {
			n := cellRef{r: cell.r + d[0], c: cell.c + d[1]}
			if cv.inBounds(n) {
				frontier = append(frontier, wallRef{a: cell, b: n})
			}
		}
	}

	// 1. Seed the carved region.
	seed := cv.randomCell()
	cv.carveCell(seed)
	pushWalls(seed)

	for len(frontier) > 0 {
		// 2. Uniform pick, order-agnostic removal.
		i := cv.rng.Intn(len(frontier))
		w := frontier[i]
		frontier[i] = frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]

		// 3. Carve only across the tree boundary.
		aCarved, bCarved := cv.isCarved(w.a), cv.isCarved(w.b)
		if aCarved == bCarved {
			continue
		}
		fresh := w.b
		if bCarved {
			fresh = w.a
		}
		cv.carvePassage(w.a, w.b)
		cv.carveCell(fresh)
		pushWalls(fresh)
	}

	// 4. Entrance/exit invariant, then seal.
	return cv.finish()
}
