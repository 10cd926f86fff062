// Package grid defines the cell/wall encoding and coordinate mapping shared
// by every maze generator and pathfinder in this module.
//
// What:
//
//   - A Grid is a rectangular matrix of binary cell states (Path or Wall)
//     with dimensions (2*height+1) × (2*width+1), where height×width is the
//     logical maze size in cells.
//   - Two coordinate systems coexist:
//     – grid coordinates (r, c): every matrix position, walls included;
//     – cell coordinates (cr, cc): logical maze cells, mapped to grid
//     coordinates by (2*cr+1, 2*cc+1).
//     Odd/odd grid positions are always logical cells; the position exactly
//     between two adjacent cells is the wall (or carved passage) connecting
//     them.
//   - The outermost ring is Wall except for two forced openings: the
//     entrance (1, 0) and the exit (rows-2, cols-1).
//
// Why:
//
//   - Thirteen algorithms operate over this encoding; keeping the mapping in
//     one leaf package is what keeps them mutually consistent.
//   - Immutability: a Grid deep-copies its cells on construction and only
//     hands out copies, so a generator's output can be shared freely between
//     pathfinder calls and renderers.
//
// Complexity:
//
//   - FromCells, Cells, String: O(rows×cols) time and memory.
//   - All coordinate helpers and accessors: O(1).
//
// Errors:
//
//   - ErrEmptyGrid: the input matrix has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrEvenDimension: a dimension is even or below 3, so the matrix cannot
//     be a 2w+1 × 2h+1 maze lattice.
package grid
