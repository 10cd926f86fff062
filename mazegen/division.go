// Package mazegen provides the recursive-division generator: the one
// subtractive algorithm, splitting open chambers with walls instead of
// carving passages out of rock.
package mazegen

import "github.com/FrediBach/maze-and-pathfinding/grid"

// chamber is a sub-rectangle of cells awaiting division:
// rows r0..r0+h-1, cols c0..c0+w-1 in cell-coordinate space.
type chamber struct {
	r0, c0, h, w int
}

// Division carves a maze by subtractive chamber splitting. The lattice
// starts fully open inside the outer ring; chambers are bisected along
// their longer axis (ties broken randomly) by a wall on an even lattice
// index with exactly one randomly placed passage through it, and both
// halves are processed in turn. A chamber with fewer than 2 cells along
// either axis is left as is.
//
// Error Conditions:
//   - ErrInvalidDimensions: width or height below 1.
//
// Steps:
//  1. Start from a fully open lattice and push the whole maze as one
//     chamber onto an explicit work stack (no recursion; depth would be
//     O(n) on corridor-shaped inputs).
//  2. Pop a chamber; skip it when either axis is below 2 cells.
//  3. Split along the longer axis: choose an interior split line, fill its
//     even lattice row/column across the chamber, then reopen one uniform
//     cell-aligned passage through it.
//  4. Push both halves; repeat until the stack drains, then force the
//     entrance/exit openings and seal the grid.
//
// Guarantee: connected — every division leaves exactly one connector, so
// any two cells remain mutually reachable. Unlike the additive carvers the
// result is not a spanning tree of lattice passages: junction positions
// where no wall was drawn stay open.
//
// Complexity: O(n) time (each lattice position is written O(1) times per
// enclosing split, O(n) total), O(n) memory for the work stack worst case.
func Division(width, height int, opts ...Option) (*grid.Grid, error) {
	if err := validateDims(width, height); err != nil {
		return nil, err
	}
	o := buildOptions(opts)
	cv := newOpenCarver(width, height, newRNG(o))
	rng := cv.rng

	// 1. The whole maze is the first chamber.
	stack := []chamber{{r0: 0, c0: 0, h: height, w: width}}

	for len(stack) > 0 {
		ch := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		// 2. Too thin to split.
		if ch.h < 2 || ch.w < 2 {
			continue
		}

		// 3. Longer axis wins; square chambers flip a coin.
		horizontal := ch.h > ch.w || (ch.h == ch.w && rng.Intn(2) == 0)
		if horizontal {
			// Wall on lattice row 2*s between cell rows s-1 and s.
			s := ch.r0 + 1 + rng.Intn(ch.h-1)
			wallRow := 2 * s
			for c := 2 * ch.c0; c <= 2*(ch.c0+ch.w); c++ {
				cv.cells[wallRow][c] = grid.Wall
			}
			passage := ch.c0 + rng.Intn(ch.w)
			cv.cells[wallRow][2*passage+1] = grid.Path

			// 4. Both halves.
			stack = append(stack,
				chamber{r0: ch.r0, c0: ch.c0, h: s - ch.r0, w: ch.w},
				chamber{r0: s, c0: ch.c0, h: ch.r0 + ch.h - s, w: ch.w},
			)
		} else {
			// Wall on lattice column 2*s between cell cols s-1 and s.
			s := ch.c0 + 1 + rng.Intn(ch.w-1)
			wallCol := 2 * s
			for r := 2 * ch.r0; r <= 2*(ch.r0+ch.h); r++ {
				cv.cells[r][wallCol] = grid.Wall
			}
			passage := ch.r0 + rng.Intn(ch.h)
			cv.cells[2*passage+1][wallCol] = grid.Path

			stack = append(stack,
				chamber{r0: ch.r0, c0: ch.c0, h: ch.h, w: s - ch.c0},
				chamber{r0: ch.r0, c0: s, h: ch.h, w: ch.c0 + ch.w - s},
			)
		}
	}

	return cv.finish()
}
