// Package pathfind provides five search algorithms over a generated
// grid.Grid, each returning a route between two grid coordinates plus the
// order in which positions were first settled.
//
// What:
//
//   - One entry point per algorithm, each consuming an immutable *grid.Grid
//     and start/end grid coordinates: BFS, DFS, AStar, Greedy, RandomMouse
//     (which additionally takes a positive step budget).
//   - Find(algo, g, start, end, opts...) dispatches by Algorithm name.
//   - Every search returns a Result{Path, VisitedOrder}: Path is the route
//     from start to end inclusive (nil when no route exists); VisitedOrder
//     is the first-settle order, for diagnostics and visualization only.
//   - Movement is 4-directional, unweighted (uniform step cost 1), never
//     diagonal. The grid is read through IsPath and never mutated.
//
// Why:
//
//   - Each algorithm trades differently between path quality and
//     exploration shape: BFS and A* guarantee shortest paths on the
//     unweighted grid; DFS and Greedy commit to first discoveries; Random
//     Mouse wanders under an explicit budget and returns its raw traversal
//     (an exploration trace, not a minimal path).
//
// Contract:
//
//   - A start or end coordinate that is out of bounds or on a Wall yields
//     the zero Result (nil Path, empty VisitedOrder) before any search
//     runs — this is a recoverable condition, never an error.
//   - Frontier exhaustion before reaching end yields nil Path with whatever
//     VisitedOrder accumulated.
//   - start == end (on a Path position) is trivially found: Path and
//     VisitedOrder are both [start].
//
// Determinism:
//
//	BFS, A*, and Greedy expand neighbors in a fixed up/down/left/right
//	order and break priority ties by (lower heuristic, then earlier
//	insertion), so their results are fully reproducible. DFS and Random
//	Mouse randomize; pass WithRand for reproducible runs.
//
// Complexity (n = matrix positions):
//
//   - BFS, DFS: O(n) time, O(n) memory.
//   - AStar, Greedy: O(n log n) time (binary-heap open set), O(n) memory.
//   - RandomMouse: O(maxSteps) time, O(n + maxSteps) memory.
//
// Options:
//
//   - WithRand(r):     random source for DFS neighbor order and Random
//     Mouse moves.
//   - WithMaxSteps(n): step budget the Find dispatcher passes to Random
//     Mouse (n ≥ 1; DefaultMaxSteps otherwise).
//
// Errors:
//
//   - ErrUnknownAlgorithm: Find received an unrecognized name.
//   - ErrOptionViolation:  an invalid Option (e.g. WithMaxSteps(0)).
//     Direct entry points return Results only; errors exist solely on the
//     dispatch surface.
package pathfind
