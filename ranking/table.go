package ranking

import (
	"container/heap"

	"github.com/jjorge/knapsack/numeric"
)

// QualityTable is the map from scalar value to the paths having that value,
// backed by a max-heap ordered on Path.Value so PopMax runs in O(log n).
//
// GC discards every entry below a threshold in one pass. It runs only when
// the paths region's lower bound strictly increases, not on every pop —
// a cleanup on each pop is measurably more expensive for the batch sizes
// this table sees in practice.
type QualityTable struct {
	h pathHeap
}

// NewQualityTable returns an empty table.
func NewQualityTable() *QualityTable {
	t := &QualityTable{}
	heap.Init(&t.h)

	return t
}

// Insert adds p to the table.
func (t *QualityTable) Insert(p *Path) {
	heap.Push(&t.h, p)
}

// Max returns the current maximum value without removing anything, and
// false if the table is empty.
func (t *QualityTable) Max() (numeric.Real, bool) {
	if t.h.Len() == 0 {
		return 0, false
	}

	return t.h[0].Value, true
}

// PopMax removes and returns the path with the current maximum value.
func (t *QualityTable) PopMax() (*Path, bool) {
	if t.h.Len() == 0 {
		return nil, false
	}

	return heap.Pop(&t.h).(*Path), true
}

// Len returns the number of paths currently stored.
func (t *QualityTable) Len() int { return t.h.Len() }

// GC discards every path whose value is strictly below threshold. Inserting
// a path's image into the paths region may raise its min-profit and trigger
// a garbage collection of the quality table.
func (t *QualityTable) GC(threshold numeric.Real) {
	kept := t.h[:0:0]
	for _, p := range t.h {
		if numeric.GreaterEqual(p.Value, threshold) {
			kept = append(kept, p)
		}
	}
	t.h = kept
	heap.Init(&t.h)
}

// pathHeap is a max-heap of *Path ordered by Value descending.
type pathHeap []*Path

func (h pathHeap) Len() int            { return len(h) }
func (h pathHeap) Less(i, j int) bool  { return numeric.Greater(h[i].Value, h[j].Value) }
func (h pathHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *pathHeap) Push(x interface{}) { *h = append(*h, x.(*Path)) }
func (h *pathHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}
