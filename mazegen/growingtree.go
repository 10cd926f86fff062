// Package mazegen provides the growing-tree generator: a generalized
// frontier carver whose selection policy interpolates between Backtracker
// and Prim texture.
package mazegen

import "github.com/FrediBach/maze-and-pathfinding/grid"

// GrowingTree carves a perfect maze from an active list seeded with one
// random cell. Each step selects an active cell according to policy —
// Newest (stack-like, mimics Backtracker), Oldest (queue-like, long
// straight runs), or Random (mimics Prim) — and either carves to a random
// uncarved neighbor (pushing it) or, on a dead end, removes the cell from
// the active list.
//
// Error Conditions:
//   - ErrInvalidDimensions: width or height below 1.
//   - ErrUnknownPolicy: policy outside Newest, Oldest, Random.
//
// Guarantee: spanning tree regardless of policy — every passage joins a
// fresh cell; the policy shapes texture only.
//
// Complexity: O(n) time for Newest, O(n) amortized for Oldest and Random
// (removals shift or swap within the active slice), O(n) memory.
func GrowingTree(width, height int, policy Policy, opts ...Option) (*grid.Grid, error) {
	if err := validateDims(width, height); err != nil {
		return nil, err
	}
	if policy != Newest && policy != Oldest && policy != Random {
		return nil, ErrUnknownPolicy
	}
	o := buildOptions(opts)
	cv := newCarver(width, height, newRNG(o))

	// Seed the active list.
	seed := cv.randomCell()
	cv.carveCell(seed)
	active := make([]cellRef, 0, width*height)
	active = append(active, seed)

	var buf []cellRef
	for len(active) > 0 {
		// Select per policy.
		var i int
		switch policy {
		case Newest:
			i = len(active) - 1
		case Oldest:
			i = 0
		case Random:
			i = cv.rng.Intn(len(active))
		}
		cur := active[i]

		cand := cv.uncarvedNeighbors(cur, buf)
		buf = cand
		if len(cand) == 0 {
			// Exhausted: drop cur from the active list.
			active = append(active[:i], active[i+1:]...)
			continue
		}

		next := cand[cv.rng.Intn(len(cand))]
		cv.carvePassage(cur, next)
		cv.carveCell(next)
		active = append(active, next)
	}

	return cv.finish()
}
