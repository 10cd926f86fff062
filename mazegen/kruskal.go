// Package mazegen provides the randomized-Kruskal generator: a union-find
// over cell indices, carving shuffled walls between distinct components.
package mazegen

import "github.com/FrediBach/maze-and-pathfinding/grid"

// Kruskal carves a perfect maze with a disjoint-set (union-find) over the
// flat cell index, using path compression and union by rank. All interior
// walls are shuffled once; each is carved iff its flanking cells are still
// in different components.
//
// Error Conditions:
//   - ErrInvalidDimensions: width or height below 1.
//
// Steps:
//  1. Enumerate every interior wall as a pair of adjacent cells (right and
//     down per cell covers each wall exactly once).
//  2. Fisher–Yates shuffle the wall list.
//  3. Initialize parent and rank index arrays; find is iterative with path
//     compression (no recursion-depth concern).
//  4. For each wall, if find differs on its two sides: carve both cells and
//     the passage, then union. Stop early at n-1 carved passages.
//  5. Force the entrance/exit openings and seal the grid.
//
// Guarantee: spanning tree — unions are acyclic by construction and the
// wall list covers the whole connected cell graph.
//
// Complexity: O(n α(n)) time, O(n) memory, n = width×height.
func Kruskal(width, height int, opts ...Option) (*grid.Grid, error) {
	if err := validateDims(width, height); err != nil {
		return nil, err
	}
	o := buildOptions(opts)
	cv := newCarver(width, height, newRNG(o))

	n := width * height
	index := func(cell cellRef) int { return cell.r*width + cell.c }

	// 1. Enumerate interior walls: the passage to the right of and below
	//    each cell, when those neighbors exist.
	walls := make([]wallRef, 0, 2*n)
	for r := 0; r < height; r++ {
		for c := 0; c < width; c++ {
			cell := cellRef{r: r, c: c}
			if c+1 < width {
				walls = append(walls, wallRef{a: cell, b: cellRef{r: r, c: c + 1}})
			}
			if r+1 < height {
				walls = append(walls, wallRef{a: cell, b: cellRef{r: r + 1, c: c}})
			}
		}
	}

	// 2. Shuffle the walls.
	shuffleWallsInPlace(walls, cv.rng)

	// 3. Disjoint-set over flat cell indices.
	parent := make([]int, n)
	rank := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	find := func(u int) int {
		for parent[u] != u {
			parent[u] = parent[parent[u]] // path compression
			u = parent[u]
		}

		return u
	}
	union := func(u, v int) {
		ru, rv := find(u), find(v)
		if ru == rv {
			return
		}
		if rank[ru] < rank[rv] {
			parent[ru] = rv
		} else {
			parent[rv] = ru
			if rank[ru] == rank[rv] {
				rank[ru]++
			}
		}
	}

	// 4. Carve across component boundaries only.
	carved := 0
	for _, w := range walls {
		u, v := index(w.a), index(w.b)
		if find(u) == find(v) {
			continue
		}
		union(u, v)
		cv.carveCell(w.a)
		cv.carveCell(w.b)
		cv.carvePassage(w.a, w.b)
		carved++
		if carved == n-1 {
			break
		}
	}
	// Degenerate 1×1 maze: no walls to carve, but the lone cell is still open.
	if n == 1 {
		cv.carveCell(cellRef{r: 0, c: 0})
	}

	// 5. Entrance/exit invariant, then seal.
	return cv.finish()
}
