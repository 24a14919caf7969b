package heap

import "container/heap"

// ClusterPayload names a candidate elimination cluster: the indices of
// its member variables in the compiling graph.
type ClusterPayload struct {
	Vars []int
}

// SepsetPayload names a candidate sepset by its index into the
// compiler's working sepset-candidate slice.
type SepsetPayload struct {
	SepsetIndex int
}

// Item is one heap entry: a (primary, secondary) key pair plus exactly
// one of Cluster or Sepset. index is maintained by the heap for Fix/Pop
// and must not be read or written by callers.
type Item struct {
	Primary   int
	Secondary int
	Cluster   *ClusterPayload
	Sepset    *SepsetPayload

	seq   int // insertion order, for stable tie-breaking
	index int // position in the backing slice, maintained by container/heap
}

// innerHeap is the container/heap.Interface implementation. It is
// unexported; callers drive it only through the Heap wrapper below so
// that Push/Pop/Fix keep each Item's index field consistent.
type innerHeap []*Item

func (h innerHeap) Len() int { return len(h) }

func (h innerHeap) Less(i, j int) bool {
	a, b := h[i], h[j]
	if a.Primary != b.Primary {
		return a.Primary < b.Primary
	}
	if a.Secondary != b.Secondary {
		return a.Secondary < b.Secondary
	}

	return a.seq < b.seq // stable tie-break: insertion order
}

func (h innerHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *innerHeap) Push(x interface{}) {
	item := x.(*Item)
	item.index = len(*h)
	*h = append(*h, item)
}

func (h *innerHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*h = old[:n-1]

	return item
}

// Heap is a min-heap of *Item ordered by (Primary, Secondary), ties
// broken by insertion order.
type Heap struct {
	inner   innerHeap
	nextSeq int
}

// New returns an empty Heap.
func New() *Heap {
	h := &Heap{}
	heap.Init(&h.inner)

	return h
}

// Len returns the number of items currently in the heap.
func (h *Heap) Len() int { return h.inner.Len() }

// Push inserts item into the heap in O(log n).
func (h *Heap) Push(item *Item) {
	item.seq = h.nextSeq
	h.nextSeq++
	heap.Push(&h.inner, item)
}

// Pop removes and returns the minimum item in O(log n).
func (h *Heap) Pop() (*Item, error) {
	if h.inner.Len() == 0 {
		return nil, ErrEmpty
	}

	return heap.Pop(&h.inner).(*Item), nil
}

// Peek returns, without removing, the minimum item.
func (h *Heap) Peek() (*Item, error) {
	if h.inner.Len() == 0 {
		return nil, ErrEmpty
	}

	return h.inner[0], nil
}

// Fix re-heapifies after item's Primary/Secondary have been mutated in
// place — the elimination-cluster rescoring step: every heap entry whose
// cluster shared the eliminated variable needs its score recomputed.
// item must currently be a member of h.
func (h *Heap) Fix(item *Item) {
	heap.Fix(&h.inner, item.index)
}

// Items returns a snapshot slice of every item currently in the heap, in
// internal (non-priority) order, for callers that need to scan for
// affected entries (e.g. clusters sharing an eliminated variable) ahead
// of calling Fix.
func (h *Heap) Items() []*Item {
	out := make([]*Item, len(h.inner))
	copy(out, h.inner)

	return out
}
