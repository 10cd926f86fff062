// Package mazegen - the carver, mutable working state shared by all
// generators.
//
// A carver owns the lattice under construction in cell-coordinate space and
// is the only place that touches raw matrix indices; algorithm files speak
// in cells and passages. The finished lattice is sealed into an immutable
// grid.Grid by finish.
package mazegen

import (
	"math/rand"

	"github.com/FrediBach/maze-and-pathfinding/grid"
)

// cellRef is a (row, col) pair in cell-coordinate space:
// 0 ≤ r < height, 0 ≤ c < width.
type cellRef struct {
	r, c int
}

// cellOffsets are the four orthogonal cell-neighbor directions.
var cellOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// carver holds the mutable lattice a generator carves into.
type carver struct {
	width, height int // logical size in cells
	rows, cols    int // matrix size
	cells         [][]grid.CellState
	rng           *rand.Rand
}

// newCarver returns a carver with every position walled; additive
// generators carve cells and passages out of it. Complexity: O(n).
func newCarver(width, height int, rng *rand.Rand) *carver {
	rows, cols := grid.Dims(width, height)
	cells := make([][]grid.CellState, rows)
	for r := 0; r < rows; r++ {
		cells[r] = make([]grid.CellState, cols)
		for c := 0; c < cols; c++ {
			cells[r][c] = grid.Wall
		}
	}

	return &carver{width: width, height: height, rows: rows, cols: cols, cells: cells, rng: rng}
}

// newOpenCarver returns a carver with everything inside the outer ring
// open; subtractive generators (Division) add walls into it.
// Complexity: O(n).
func newOpenCarver(width, height int, rng *rand.Rand) *carver {
	cv := newCarver(width, height, rng)
	for r := 1; r < cv.rows-1; r++ {
		for c := 1; c < cv.cols-1; c++ {
			cv.cells[r][c] = grid.Path
		}
	}

	return cv
}

// inBounds reports whether the cell coordinate lies inside the maze.
func (cv *carver) inBounds(cell cellRef) bool {
	return cell.r >= 0 && cell.r < cv.height && cell.c >= 0 && cell.c < cv.width
}

// isCarved reports whether the cell's lattice position is already Path.
func (cv *carver) isCarved(cell cellRef) bool {
	return cv.cells[2*cell.r+1][2*cell.c+1] == grid.Path
}

// carveCell opens the cell's own lattice position.
func (cv *carver) carveCell(cell cellRef) {
	cv.cells[2*cell.r+1][2*cell.c+1] = grid.Path
}

// carvePassage opens the wall position exactly between two adjacent cells.
// Both cells must be orthogonal neighbors.
func (cv *carver) carvePassage(a, b cellRef) {
	cv.cells[a.r+b.r+1][a.c+b.c+1] = grid.Path
}

// randomCell returns a uniformly chosen cell coordinate.
func (cv *carver) randomCell() cellRef {
	return cellRef{r: cv.rng.Intn(cv.height), c: cv.rng.Intn(cv.width)}
}

// neighbors appends to buf the in-bounds orthogonal neighbors of cell and
// returns the result. buf is reused to keep hot loops allocation-free.
func (cv *carver) neighbors(cell cellRef, buf []cellRef) []cellRef {
	buf = buf[:0]
	for _, d := range cellOffsets {
		n := cellRef{r: cell.r + d[0], c: cell.c + d[1]}
		if cv.inBounds(n) {
			buf = append(buf, n)
		}
	}

	return buf
}

// uncarvedNeighbors is neighbors filtered down to not-yet-carved cells.
func (cv *carver) uncarvedNeighbors(cell cellRef, buf []cellRef) []cellRef {
	buf = cv.neighbors(cell, buf)
	keep := buf[:0]
	for _, n := range buf {
		if !cv.isCarved(n) {
			keep = append(keep, n)
		}
	}

	return keep
}

// finish forces the entrance (1, 0) and exit (rows-2, cols-1) open —
// overriding whatever the algorithm left there — and seals the lattice
// into an immutable grid.Grid. Complexity: O(n).
func (cv *carver) finish() (*grid.Grid, error) {
	cv.cells[1][0] = grid.Path
	cv.cells[cv.rows-2][cv.cols-1] = grid.Path

	return grid.FromCells(cv.cells)
}
