// Package mazegen defines configuration options, algorithm names, and
// sentinel errors for maze generation.
package mazegen

import (
	"errors"
	"math/rand"

	"github.com/FrediBach/maze-and-pathfinding/grid"
)

// Sentinel errors for maze generation.
var (
	// ErrInvalidDimensions indicates a logical maze size below 1×1.
	ErrInvalidDimensions = errors.New("mazegen: width and height must be at least 1")

	// ErrUnknownPolicy indicates a GrowingTree policy outside Newest, Oldest, Random.
	ErrUnknownPolicy = errors.New("mazegen: unknown growing-tree policy")

	// ErrUnknownAlgorithm indicates an Algorithm name Generate does not recognize.
	ErrUnknownAlgorithm = errors.New("mazegen: unknown algorithm")
)

// Algorithm names a maze-generation strategy for the Generate dispatcher.
type Algorithm string

const (
	// AlgoBacktracker selects the iterative recursive-backtracker (DFS) carver.
	AlgoBacktracker Algorithm = "backtracker"
	// AlgoPrim selects randomized Prim frontier-wall growth.
	AlgoPrim Algorithm = "prim"
	// AlgoKruskal selects randomized Kruskal over a union-find of cells.
	AlgoKruskal Algorithm = "kruskal"
	// AlgoBinaryTree selects the per-cell up-or-left binary-tree carver.
	AlgoBinaryTree Algorithm = "binarytree"
	// AlgoWilson selects Wilson's loop-erased random-walk carver.
	AlgoWilson Algorithm = "wilson"
	// AlgoAldousBroder selects the Aldous-Broder random-walk cover carver.
	AlgoAldousBroder Algorithm = "aldousbroder"
	// AlgoDivision selects subtractive recursive division.
	AlgoDivision Algorithm = "division"
	// AlgoGrowingTree selects the generalized growing-tree carver.
	AlgoGrowingTree Algorithm = "growingtree"
)

// Policy selects which active-list cell GrowingTree expands next.
type Policy int

const (
	// Newest always expands the most recently added cell (stack-like,
	// mimics Backtracker).
	Newest Policy = iota
	// Oldest always expands the earliest added cell (queue-like, favors
	// long straight runs).
	Oldest
	// Random expands a uniformly chosen active cell (mimics Prim).
	Random
)

// String returns the policy name, or "unknown" outside the declared set.
func (p Policy) String() string {
	switch p {
	case Newest:
		return "newest"
	case Oldest:
		return "oldest"
	case Random:
		return "random"
	default:
		return "unknown"
	}
}

// Options holds tunable parameters shared by all generators.
// Use DefaultOptions() for the baseline setup.
type Options struct {
	// Rand is the random source used for every shuffle, pick, and walk.
	// nil means a freshly seeded stream per call.
	Rand *rand.Rand

	// Policy is the GrowingTree selection policy, consulted only by the
	// Generate dispatcher (GrowingTree itself takes the policy explicitly).
	Policy Policy
}

// Option configures Options via functional arguments.
type Option func(*Options)

// DefaultOptions returns Options with a nil (auto-seeded) random source and
// the Newest growing-tree policy. Complexity: O(1).
func DefaultOptions() Options {
	return Options{Rand: nil, Policy: Newest}
}

// WithRand sets a caller-supplied random source, making the generated
// structure reproducible. A nil r keeps the auto-seeded default.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
		}
	}
}

// WithPolicy sets the GrowingTree selection policy used by Generate.
func WithPolicy(p Policy) Option {
	return func(o *Options) {
		o.Policy = p
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

// validateDims guards against logical sizes no lattice can hold.
// Conforming callers validate before invocation; this is the library-side
// backstop. Complexity: O(1).
func validateDims(width, height int) error {
	if width < 1 || height < 1 {
		return ErrInvalidDimensions
	}

	return nil
}

// Generate dispatches to the generator named by algo.
//
//   - AlgoGrowingTree consults Options.Policy (see WithPolicy).
//   - Unrecognized names return ErrUnknownAlgorithm.
//
// Note: this is optional scaffolding — every generator can still be called
// directly.
func Generate(algo Algorithm, width, height int, opts ...Option) (*grid.Grid, error) {
	switch algo {
	case AlgoBacktracker:
		return Backtracker(width, height, opts...)
	case AlgoPrim:
		return Prim(width, height, opts...)
	case AlgoKruskal:
		return Kruskal(width, height, opts...)
	case AlgoBinaryTree:
		return BinaryTree(width, height, opts...)
	case AlgoWilson:
		return Wilson(width, height, opts...)
	case AlgoAldousBroder:
		return AldousBroder(width, height, opts...)
	case AlgoDivision:
		return Division(width, height, opts...)
	case AlgoGrowingTree:
		return GrowingTree(width, height, buildOptions(opts).Policy, opts...)
	default:
		return nil, ErrUnknownAlgorithm
	}
}
