package heap_test

import (
	"fmt"

	"github.com/CrazyPandaXJ/nip/heap"
)

// ExampleHeap pushes three scored clusters and pops them back in
// (primary, secondary) priority order, ties broken by insertion order.
func ExampleHeap() {
	h := heap.New()
	h.Push(&heap.Item{Primary: 2, Secondary: 0, Cluster: &heap.ClusterPayload{Vars: []int{2}}})
	h.Push(&heap.Item{Primary: 0, Secondary: 4, Cluster: &heap.ClusterPayload{Vars: []int{0}}})
	h.Push(&heap.Item{Primary: 0, Secondary: 1, Cluster: &heap.ClusterPayload{Vars: []int{1}}})

	for h.Len() > 0 {
		item, err := h.Pop()
		if err != nil {
			fmt.Println(err)

			return
		}
		fmt.Println(item.Cluster.Vars[0])
	}

	// Output:
	// 1
	// 0
	// 2
}
