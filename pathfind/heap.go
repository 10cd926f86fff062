// Package pathfind - the binary-heap open set shared by A* and Greedy.
package pathfind

import "github.com/FrediBach/maze-and-pathfinding/grid"

// openItem is one open-set entry. prio is the ordering key (f for A*, h
// for Greedy); tie breaks equal priorities (h for A*, unused for Greedy);
// seq — the insertion sequence number — breaks remaining ties, making the
// expansion order fully deterministic.
type openItem struct {
	pos  grid.Coord
	g    int // cost from start; Greedy leaves it 0
	prio int
	tie  int
	seq  int
}

// openHeap implements heap.Interface as a min-heap of openItem, ordered by
// (prio, tie, seq).
type openHeap []openItem

// Len returns the number of open entries. Complexity: O(1).
func (h openHeap) Len() int { return len(h) }

// Less orders by priority, then tie-break, then insertion sequence.
// Complexity: O(1).
func (h openHeap) Less(i, j int) bool {
	if h[i].prio != h[j].prio {
		return h[i].prio < h[j].prio
	}
	if h[i].tie != h[j].tie {
		return h[i].tie < h[j].tie
	}

	return h[i].seq < h[j].seq
}

// Swap swaps entries i and j. Complexity: O(1).
func (h openHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

// Push appends a new openItem. Called by heap.Push.
// Complexity: O(log n) amortized.
func (h *openHeap) Push(x interface{}) { *h = append(*h, x.(openItem)) }

// Pop removes and returns the minimal openItem. Called by heap.Pop.
// Complexity: O(log n) amortized.
func (h *openHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}
