// Package frontier implements the min-heap priority queue SearchEngine
// drives its wavefront with: cell handles ordered by ascending cost.
//
// It uses the same "lazy decrease-key" pattern as dijkstra.nodePQ: there is
// no in-place priority update, so an improved cost is pushed as a new
// entry and the stale, higher-cost entry is left in the heap. A popped
// entry whose cell has already been finalized (Frozen) is a stale
// duplicate and must be discarded by the caller rather than re-frozen —
// see spec §5.
package frontier

import "container/heap"

// Entry is one (cell index, cost-at-push-time) pair stored in the heap.
// Cost is snapshotted at push time; if the cell's authoritative cost later
// improves, a fresh Entry is pushed rather than mutating this one.
type Entry struct {
	Index int
	Cost  float64
}

// Frontier is a min-heap of *Entry ordered by ascending Cost.
type Frontier struct {
	items queue
}

// New returns an empty, ready-to-use Frontier.
func New() *Frontier {
	f := &Frontier{items: make(queue, 0, 64)}
	heap.Init(&f.items)
	return f
}

// Len reports the number of entries currently in the heap, including any
// stale duplicates not yet popped.
func (f *Frontier) Len() int { return f.items.Len() }

// Push inserts a new (index, cost) entry.
func (f *Frontier) Push(index int, cost float64) {
	heap.Push(&f.items, &Entry{Index: index, Cost: cost})
}

// Pop removes and returns the entry with the smallest cost. Panics if
// empty; callers must check Len first.
func (f *Frontier) Pop() *Entry {
	return heap.Pop(&f.items).(*Entry)
}

// Peek returns the entry with the smallest cost without removing it, and
// whether the frontier was non-empty.
func (f *Frontier) Peek() (*Entry, bool) {
	if f.items.Len() == 0 {
		return nil, false
	}
	return f.items[0], true
}

// Reset empties the frontier for reuse across runs.
func (f *Frontier) Reset() {
	f.items = f.items[:0]
}

// queue implements heap.Interface over *Entry, ordered by ascending Cost.
type queue []*Entry

func (q queue) Len() int            { return len(q) }
func (q queue) Less(i, j int) bool  { return q[i].Cost < q[j].Cost }
func (q queue) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *queue) Push(x interface{}) { *q = append(*q, x.(*Entry)) }
func (q *queue) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return item
}
