// Package heap implements a priority queue keyed on (primary, secondary)
// integer pairs, specialized to the two candidate-scoring uses the
// compiler needs: elimination-cluster scoring during triangulation and
// sepset scoring during sepset selection. A single Item type carries a
// tagged payload (ClusterPayload xor SepsetPayload), so one heap
// implementation serves both passes.
//
// Ties on (primary, secondary) are broken by insertion order, matching
// the legacy heap's behavior: items are extracted in the order they were
// pushed when their keys compare equal.
//
// Errors:
//
//	ErrEmpty - Pop or Peek was called on an empty heap.
package heap
