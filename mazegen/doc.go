// Package mazegen provides eight maze-generation algorithms that carve a
// perfect or near-perfect maze into a grid.Grid.
//
// What:
//
//   - One entry point per algorithm, each consuming a logical maze size
//     (width, height ≥ 1 cells) and producing an immutable *grid.Grid:
//     Backtracker, Prim, Kruskal, BinaryTree, Wilson, AldousBroder,
//     Division, GrowingTree.
//   - Generate(algo, width, height, opts...) dispatches by Algorithm name,
//     for callers that select the strategy at runtime.
//   - Every generator forces the entrance (1, 0) and exit (rows-2, cols-1)
//     open after its own carving completes, whatever the algorithm would
//     otherwise leave there.
//
// Why:
//
//   - Each algorithm is a distinct graph-construction strategy with its own
//     texture and guarantee: Backtracker, Prim, Kruskal, BinaryTree, Wilson,
//     AldousBroder and GrowingTree carve spanning trees of the cell graph
//     (perfect mazes, exactly one route between any two cells); Division
//     carves subtractively and guarantees connectivity only.
//   - Wilson and AldousBroder sample uniformly among all spanning trees;
//     BinaryTree is deliberately biased (diagonal texture); GrowingTree
//     interpolates between Backtracker and Prim via its selection policy.
//
// Determinism:
//
//	All randomness flows through a single *rand.Rand. By default each call
//	draws from a freshly seeded stream; pass WithRand for reproducible
//	structure (structural invariants hold either way).
//
// Complexity (n = width×height cells):
//
//   - Backtracker, BinaryTree, Division, GrowingTree, Prim: O(n) expected,
//     O(n) memory.
//   - Kruskal: O(n α(n)) with union-find, O(n) memory.
//   - Wilson: O(n) expected (loop-erased walks), worst case unbounded but
//     almost surely finite; AldousBroder: O(n log n) expected cover time,
//     likewise almost surely finite.
//
// Options:
//
//   - WithRand(r):    use a caller-supplied random source.
//   - WithPolicy(p):  GrowingTree selection policy for the Generate
//     dispatcher (Newest, Oldest, Random).
//
// Errors:
//
//   - ErrInvalidDimensions: width or height below 1.
//   - ErrUnknownPolicy:     GrowingTree policy outside the declared set.
//   - ErrUnknownAlgorithm:  Generate received an unrecognized name.
package mazegen
