package heap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CrazyPandaXJ/nip/heap"
)

func TestHeap_OrdersByPrimaryThenSecondary(t *testing.T) {
	t.Parallel()

	h := heap.New()
	h.Push(&heap.Item{Primary: 2, Secondary: 1, Cluster: &heap.ClusterPayload{Vars: []int{0}}})
	h.Push(&heap.Item{Primary: 1, Secondary: 5, Cluster: &heap.ClusterPayload{Vars: []int{1}}})
	h.Push(&heap.Item{Primary: 1, Secondary: 2, Cluster: &heap.ClusterPayload{Vars: []int{2}}})

	first, err := h.Pop()
	require.NoError(t, err)
	assert.Equal(t, 1, first.Primary)
	assert.Equal(t, 2, first.Secondary)

	second, err := h.Pop()
	require.NoError(t, err)
	assert.Equal(t, 1, second.Primary)
	assert.Equal(t, 5, second.Secondary)

	third, err := h.Pop()
	require.NoError(t, err)
	assert.Equal(t, 2, third.Primary)

	assert.Equal(t, 0, h.Len())
}

func TestHeap_TieBreaksByInsertionOrder(t *testing.T) {
	t.Parallel()

	h := heap.New()
	h.Push(&heap.Item{Primary: 1, Secondary: 1, Sepset: &heap.SepsetPayload{SepsetIndex: 0}})
	h.Push(&heap.Item{Primary: 1, Secondary: 1, Sepset: &heap.SepsetPayload{SepsetIndex: 1}})
	h.Push(&heap.Item{Primary: 1, Secondary: 1, Sepset: &heap.SepsetPayload{SepsetIndex: 2}})

	for i := 0; i < 3; i++ {
		item, err := h.Pop()
		require.NoError(t, err)
		assert.Equal(t, i, item.Sepset.SepsetIndex)
	}
}

func TestHeap_Fix_Rescore(t *testing.T) {
	t.Parallel()

	h := heap.New()
	a := &heap.Item{Primary: 5, Secondary: 0, Cluster: &heap.ClusterPayload{Vars: []int{0}}}
	b := &heap.Item{Primary: 1, Secondary: 0, Cluster: &heap.ClusterPayload{Vars: []int{1}}}
	h.Push(a)
	h.Push(b)

	// Rescore a to be smaller than b, then fix in place.
	a.Primary = 0
	h.Fix(a)

	top, err := h.Peek()
	require.NoError(t, err)
	assert.Same(t, a, top)
}

func TestHeap_PopEmpty(t *testing.T) {
	t.Parallel()

	h := heap.New()
	_, err := h.Pop()
	assert.ErrorIs(t, err, heap.ErrEmpty)
	_, err = h.Peek()
	assert.ErrorIs(t, err, heap.ErrEmpty)
}
