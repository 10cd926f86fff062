// Package grid defines core types and sentinel errors for the maze lattice.
package grid

import "errors"

// Sentinel errors for Grid construction.
var (
	// ErrEmptyGrid indicates the input matrix has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")

	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")

	// ErrEvenDimension indicates a matrix dimension that cannot come from the
	// 2*width+1 × 2*height+1 maze lattice (even, or smaller than 3).
	ErrEvenDimension = errors.New("grid: matrix dimensions must be odd and at least 3")
)

// CellState is the binary state of a single grid position.
// The numeric values are the external contract: 0 traversable, 1 blocked.
type CellState int

const (
	// Path marks a traversable position (carved cell or passage, value 0).
	Path CellState = iota
	// Wall marks a blocked position (value 1).
	Wall
)

// Coord is a (row, col) pair in grid-coordinate space. Row comes first to
// match the row-major external matrix representation.
type Coord struct {
	Row, Col int
}

// Dims returns the grid-matrix dimensions for a logical maze of
// width×height cells: rows = 2*height+1, cols = 2*width+1.
// Complexity: O(1).
func Dims(width, height int) (rows, cols int) {
	return 2*height + 1, 2*width + 1
}

// ToGridCoord maps a cell coordinate (cr, cc) to its grid coordinate
// (2*cr+1, 2*cc+1). Complexity: O(1).
func ToGridCoord(cell Coord) Coord {
	return Coord{Row: 2*cell.Row + 1, Col: 2*cell.Col + 1}
}

// ToCellCoord maps an odd/odd grid coordinate back to its cell coordinate
// ((r-1)/2, (c-1)/2). The inverse of ToGridCoord on cell positions; for
// wall positions the result is truncated toward the upper-left cell.
// Complexity: O(1).
func ToCellCoord(g Coord) Coord {
	return Coord{Row: (g.Row - 1) / 2, Col: (g.Col - 1) / 2}
}
