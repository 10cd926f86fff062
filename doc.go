// Package mazeandpathfinding is an in-memory playground for carving mazes
// and searching them — from the shared grid encoding up to eight carving
// strategies and five search strategies.
//
// 🚀 What is maze-and-pathfinding?
//
//	A small, pure-Go library that brings together:
//		• Grid codec: one cell/wall encoding shared by every algorithm
//		• Generators: Recursive Backtracker, Prim, Kruskal, Binary Tree,
//		  Wilson, Aldous–Broder, Recursive Division, Growing Tree
//		• Pathfinders: BFS, DFS, A*, Greedy Best-First, Random Mouse
//
// ✨ Why choose it?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – spanning-tree and shortest-path properties
//     stated per algorithm and covered by tests
//   - Pure Go – no cgo, no hidden deps
//   - Deterministic on demand – every randomized algorithm accepts
//     WithRand for reproducible runs
//
// Everything is organized under three subpackages:
//
//	grid/     — the Grid type, cell-state encoding and coordinate mapping
//	mazegen/  — the eight maze generators plus a dispatch entry point
//	pathfind/ — the five pathfinders plus a dispatch entry point
//
// A caller picks one generator to build a Grid, then optionally runs one
// pathfinder over it; the two families never call each other.
//
//	go get github.com/FrediBach/maze-and-pathfinding
package mazeandpathfinding
