// Package mazegen provides the binary-tree generator: a purely local
// per-cell choice between carving up or carving left.
package mazegen

import "github.com/FrediBach/maze-and-pathfinding/grid"

// BinaryTree carves a perfect maze with one local decision per cell: open
// the passage toward the "up" or "left" neighbor, chosen uniformly when
// both exist, forced when only one exists, and skipped at the top-left
// corner. The result is a valid spanning tree with a recognizable diagonal
// texture (the top row and left column are always straight corridors).
//
// Error Conditions:
//   - ErrInvalidDimensions: width or height below 1.
//
// Guarantee: spanning tree — every cell except (0,0) carves exactly one
// passage to a cell strictly closer to the corner, so all n cells connect
// through n-1 passages with no cycle.
//
// Complexity: O(n) time, O(1) extra memory beyond the lattice.
func BinaryTree(width, height int, opts ...Option) (*grid.Grid, error) {
	if err := validateDims(width, height); err != nil {
		return nil, err
	}
	o := buildOptions(opts)
	cv := newCarver(width, height, newRNG(o))

	for r := 0; r < height; r++ {
		for c := 0; c < width; c++ {
			cell := cellRef{r: r, c: c}
			cv.carveCell(cell)

			up := cellRef{r: r - 1, c: c}
			left := cellRef{r: r, c: c - 1}
			switch {
			case r == 0 && c == 0:
				// Corner cell: no candidate, the tree root.
			case r == 0:
				cv.carvePassage(cell, left)
			case c == 0:
				cv.carvePassage(cell, up)
			case cv.rng.Intn(2) == 0:
				cv.carvePassage(cell, up)
			default:
				cv.carvePassage(cell, left)
			}
		}
	}

	return cv.finish()
}
