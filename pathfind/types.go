// Package pathfind defines result types, tunable options, algorithm names,
// and sentinel errors for grid search.
package pathfind

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/FrediBach/maze-and-pathfinding/grid"
)

// Sentinel errors for the Find dispatch surface.
var (
	// ErrUnknownAlgorithm indicates an Algorithm name Find does not recognize.
	ErrUnknownAlgorithm = errors.New("pathfind: unknown algorithm")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("pathfind: invalid option supplied")
)

// DefaultMaxSteps is the Random Mouse step budget the Find dispatcher uses
// when the caller supplies none.
const DefaultMaxSteps = 10000

// Algorithm names a search strategy for the Find dispatcher.
type Algorithm string

const (
	// AlgoBFS selects breadth-first search (shortest path, FIFO frontier).
	AlgoBFS Algorithm = "bfs"
	// AlgoDFS selects depth-first search (LIFO frontier, randomized order).
	AlgoDFS Algorithm = "dfs"
	// AlgoAStar selects A* with the Manhattan-distance heuristic.
	AlgoAStar Algorithm = "astar"
	// AlgoGreedy selects greedy best-first search (heuristic only).
	AlgoGreedy Algorithm = "greedy"
	// AlgoRandomMouse selects the budgeted random walk.
	AlgoRandomMouse Algorithm = "randommouse"
)

// Result is the outcome of one search call.
//   - Path: ordered grid coordinates from start to end inclusive; nil when
//     no route was found. Random Mouse returns its raw traversed stack,
//     which may repeat cells.
//   - VisitedOrder: grid coordinates in first-settle order. No coordinate
//     appears twice.
//
// Both slices are freshly allocated per call; no state is shared between
// searches.
type Result struct {
	Path         []grid.Coord
	VisitedOrder []grid.Coord
}

// Found reports whether a route was found. Complexity: O(1).
func (r Result) Found() bool { return r.Path != nil }

// Options holds tunable parameters shared by the searches.
type Options struct {
	// Rand is the random source for DFS neighbor order and Random Mouse
	// moves. nil means a freshly seeded stream per call.
	Rand *rand.Rand

	// MaxSteps is the Random Mouse budget used by the Find dispatcher.
	MaxSteps int

	// internal error recorded during option parsing
	err error
}

// Option configures Options via functional arguments.
type Option func(*Options)

// DefaultOptions returns Options with a nil (auto-seeded) random source and
// the DefaultMaxSteps budget. Complexity: O(1).
func DefaultOptions() Options {
	return Options{Rand: nil, MaxSteps: DefaultMaxSteps, err: nil}
}

// WithRand sets a caller-supplied random source, making DFS and Random
// Mouse reproducible. A nil r keeps the auto-seeded default.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
		}
	}
}

// WithMaxSteps sets the Random Mouse step budget used by Find.
//
//	n >= 1: limit the walk to n moves
//	n < 1:  invalid option → ErrOptionViolation from Find
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: MaxSteps must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxSteps = n
	}
}

// buildOptions folds functional options over the defaults.
func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return o
}

// Find dispatches to the search named by algo. AlgoRandomMouse consults
// Options.MaxSteps (see WithMaxSteps); the other searches ignore it.
// Returns ErrUnknownAlgorithm for unrecognized names and ErrOptionViolation
// for invalid options; the Result contract itself never errors.
//
// Note: this is optional scaffolding — every search can still be called
// directly.
func Find(algo Algorithm, g *grid.Grid, start, end grid.Coord, opts ...Option) (Result, error) {
	o := buildOptions(opts)
	if o.err != nil {
		return Result{}, o.err
	}

	switch algo {
	case AlgoBFS:
		return BFS(g, start, end), nil
	case AlgoDFS:
		return DFS(g, start, end, opts...), nil
	case AlgoAStar:
		return AStar(g, start, end), nil
	case AlgoGreedy:
		return Greedy(g, start, end), nil
	case AlgoRandomMouse:
		return RandomMouse(g, start, end, o.MaxSteps, opts...), nil
	default:
		return Result{}, ErrUnknownAlgorithm
	}
}
