// Package jointree implements the compiled junction tree: Clique and
// Sepset, connected into a JoinTree, and HUGIN-style COLLECT/DISTRIBUTE
// message passing, evidence insertion, and retraction.
//
// A Clique owns a potential over its (id-sorted) variable set; a Sepset
// owns two potentials (p_new, p_old — double-buffered) over the
// intersection of its two host cliques. Cliques and sepsets are addressed
// by index into the JoinTree's arenas rather than by pointer, so that the
// natural Clique↔Sepset↔Clique cycle never needs an owning back-pointer.
//
// Errors:
//
//	ErrNilArgument     - a required pointer/slice argument was nil.
//	ErrInvalidArgument - bad index, geometry mismatch, or malformed tree.
//	ErrNotFound        - a requested variable is not present in a clique.
//	ErrGeneralFailure  - a reset or retraction was requested before
//	                     SnapshotInitial recorded the CPT-initialized state.
//	                     The package does not check the running
//	                     intersection property itself.
package jointree
