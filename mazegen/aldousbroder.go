// Package mazegen provides the Aldous-Broder generator: a plain random
// walk that carves on first visit and keeps walking until it has covered
// every cell.
package mazegen

import "github.com/FrediBach/maze-and-pathfinding/grid"

// AldousBroder carves a perfect maze with a single uniform random walk
// from a random seed. Each step moves to a uniform in-bounds neighbor; if
// that neighbor is unvisited, the connecting passage and the neighbor are
// carved. The walk passes freely through visited cells without carving and
// ends once every cell has been visited.
//
// Error Conditions:
//   - ErrInvalidDimensions: width or height below 1.
//
// Guarantee: spanning tree, uniformly distributed over all spanning trees
// (a true UST, like Wilson) — first-entry edges of a random walk form a
// uniform spanning tree. Asymptotically slower than Wilson: the walk must
// cover the whole graph, and the tail of the cover time is spent bumping
// through already-visited regions.
//
// Complexity: O(n log n) expected time (cover time of the grid walk),
// almost surely finite; O(n) memory for the lattice only.
func AldousBroder(width, height int, opts ...Option) (*grid.Grid, error) {
	if err := validateDims(width, height); err != nil {
		return nil, err
	}
	o := buildOptions(opts)
	cv := newCarver(width, height, newRNG(o))

	cur := cv.randomCell()
	cv.carveCell(cur)
	remaining := width*height - 1

	for remaining > 0 {
		d := cellOffsets[cv.rng.Intn(len(cellOffsets))]
		next := cellRef{r: cur.r + d[0], c: cur.c + d[1]}
		if !cv.inBounds(next) {
			continue
		}
		if !cv.isCarved(next) {
			cv.carvePassage(cur, next)
			cv.carveCell(next)
			remaining--
		}
		cur = next
	}

	return cv.finish()
}
