package triobj

import (
	"container/heap"

	"github.com/jjorge/knapsack/kpinstance"
	"github.com/jjorge/knapsack/numeric"
)

// queueItem wraps a Node with the precomputed comparator fields (this package
// step 6: "priority queue ordered by (tightness-ratio closest to 0.5, fewer
// dominated solutions, more solutions, smaller residual capacity, higher
// cardinality)").
type queueItem struct {
	node          *Node
	tightnessDist numeric.Real // |tightnessRatio - 0.5|
	dominated     int
	solutions     int
	residual      numeric.Real
	cardinality   int
}

func newQueueItem(in *kpinstance.Instance, n *Node) *queueItem {
	ratio := n.TightnessRatio(in)
	dist := ratio - 0.5
	if dist < 0 {
		dist = -dist
	}

	return &queueItem{
		node:          n,
		tightnessDist: dist,
		dominated:     n.dominatedCount,
		solutions:     n.Reachable.Len(),
		residual:      n.Residual(in),
		cardinality:   n.Cardinality(),
	}
}

// nodeHeap is a min-heap ordered by the comparator: smaller
// tightness-distance first, then fewer dominated solutions, then more
// solutions, then smaller residual, then higher cardinality.
type nodeHeap []*queueItem

func (h nodeHeap) Len() int { return len(h) }
func (h nodeHeap) Less(i, j int) bool {
	a, b := h[i], h[j]
	if !numeric.Equal(a.tightnessDist, b.tightnessDist) {
		return a.tightnessDist < b.tightnessDist
	}
	if a.dominated != b.dominated {
		return a.dominated < b.dominated
	}
	if a.solutions != b.solutions {
		return a.solutions > b.solutions
	}
	if !numeric.Equal(a.residual, b.residual) {
		return a.residual < b.residual
	}

	return a.cardinality > b.cardinality
}
func (h nodeHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *nodeHeap) Push(x interface{}) { *h = append(*h, x.(*queueItem)) }
func (h *nodeHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}

// Queue is the A* priority queue over pending nodes.
type Queue struct {
	h  nodeHeap
	in *kpinstance.Instance
}

// NewQueue returns an empty queue for in.
func NewQueue(in *kpinstance.Instance) *Queue {
	q := &Queue{in: in}
	heap.Init(&q.h)

	return q
}

// Push adds a node to the queue.
func (q *Queue) Push(n *Node) {
	heap.Push(&q.h, newQueueItem(q.in, n))
}

// Pop removes and returns the highest-priority node, or false if empty.
func (q *Queue) Pop() (*Node, bool) {
	if q.h.Len() == 0 {
		return nil, false
	}

	return heap.Pop(&q.h).(*queueItem).node, true
}

// Len returns the number of queued nodes.
func (q *Queue) Len() int { return q.h.Len() }

// RefreshDominance recomputes every queued node's dominated-solution count
// against global and re-establishes heap order ("whenever a new
// solution is added to the global set, the 'number of dominated solutions'
// of every queued node is refreshed").
func (q *Queue) RefreshDominance(dominatedCounter func(*Node) (int, error)) error {
	for _, item := range q.h {
		count, err := dominatedCounter(item.node)
		if err != nil {
			return err
		}
		item.node.dominatedCount = count
		item.dominated = count
	}
	heap.Init(&q.h)

	return nil
}
