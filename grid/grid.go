// Package grid provides the immutable Grid type wrapping the maze lattice.
//
// A Grid is constructed once from a cell-state matrix (normally by a
// mazegen generator) and never mutated afterwards; pathfinders read it
// through the accessors below.
package grid

import "strings"

// Grid is an immutable rectangular matrix of cell states.
// width and height are the logical maze dimensions in cells; rows and cols
// are the matrix dimensions (2*height+1 × 2*width+1).
type Grid struct {
	width, height int
	rows, cols    int
	cells         [][]CellState
}

// FromCells constructs a Grid from a non-empty, rectangular matrix with odd
// dimensions ≥ 3. It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid, ErrNonRectangular, or ErrEvenDimension on a matrix
// that cannot be a maze lattice.
// Complexity: O(rows×cols) time and memory.
func FromCells(cells [][]CellState) (*Grid, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(cells), len(cells[0])
	for _, row := range cells {
		if len(row) != cols {
			return nil, ErrNonRectangular
		}
	}
	if rows < 3 || cols < 3 || rows%2 == 0 || cols%2 == 0 {
		return nil, ErrEvenDimension
	}
	// Deep copy to prevent external mutation.
	cp := make([][]CellState, rows)
	for r := 0; r < rows; r++ {
		cp[r] = make([]CellState, cols)
		copy(cp[r], cells[r])
	}

	return &Grid{
		width:  (cols - 1) / 2,
		height: (rows - 1) / 2,
		rows:   rows,
		cols:   cols,
		cells:  cp,
	}, nil
}

// Width returns the logical maze width in cells. Complexity: O(1).
func (g *Grid) Width() int { return g.width }

// Height returns the logical maze height in cells. Complexity: O(1).
func (g *Grid) Height() int { return g.height }

// Rows returns the matrix row count, 2*Height()+1. Complexity: O(1).
func (g *Grid) Rows() int { return g.rows }

// Cols returns the matrix column count, 2*Width()+1. Complexity: O(1).
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether (r, c) lies within the matrix boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(r, c int) bool {
	return r >= 0 && r < g.rows && c >= 0 && c < g.cols
}

// At returns the cell state at (r, c). The caller must ensure InBounds;
// use IsPath for a bounds-safe query. Complexity: O(1).
func (g *Grid) At(r, c int) CellState {
	return g.cells[r][c]
}

// IsPath reports whether (r, c) is in bounds and traversable.
// Complexity: O(1).
func (g *Grid) IsPath(r, c int) bool {
	return g.InBounds(r, c) && g.cells[r][c] == Path
}

// IsInteriorCell reports whether (r, c) is a logical cell position: both
// indices odd and strictly inside the outer ring. Complexity: O(1).
func (g *Grid) IsInteriorCell(r, c int) bool {
	return r > 0 && r < g.rows-1 && c > 0 && c < g.cols-1 && r%2 == 1 && c%2 == 1
}

// Entrance returns the forced opening on the left edge, (1, 0).
// Complexity: O(1).
func (g *Grid) Entrance() Coord { return Coord{Row: 1, Col: 0} }

// Exit returns the forced opening on the right edge, (rows-2, cols-1).
// Complexity: O(1).
func (g *Grid) Exit() Coord { return Coord{Row: g.rows - 2, Col: g.cols - 1} }

// Cells exports the grid as a fresh row-major matrix of 0 (path) / 1 (wall)
// integers — the external representation handed to rendering layers. Each
// call allocates a new matrix, so callers may mutate the result freely.
// Complexity: O(rows×cols) time and memory.
func (g *Grid) Cells() [][]int {
	out := make([][]int, g.rows)
	for r := 0; r < g.rows; r++ {
		out[r] = make([]int, g.cols)
		for c := 0; c < g.cols; c++ {
			out[r][c] = int(g.cells[r][c])
		}
	}

	return out
}

// String renders the grid as ASCII art, one rune per position: '█' for
// walls, ' ' for carved positions. Diagnostics only; the external contract
// is Cells. Complexity: O(rows×cols).
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.rows * (g.cols + 1))
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if g.cells[r][c] == Wall {
				sb.WriteRune('█')
			} else {
				sb.WriteRune(' ')
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
