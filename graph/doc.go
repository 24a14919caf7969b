// Package graph implements the labeled directed adjacency matrix over a
// fixed variable set used as the compiler's input representation: a
// dense n×n boolean adjacency matrix plus an id-to-index table for O(1)
// variable lookup, supporting moralization, DBN interface augmentation,
// and conversion to an undirected graph ahead of triangulation.
//
// Errors:
//
//	ErrNilVariable    - a nil *variable.Variable was supplied.
//	ErrDuplicateID    - two variables share the same id.
//	ErrUnknownVariable - a variable id not present in the graph was referenced.
//	ErrBufferTooSmall - the caller's neighbor buffer is smaller than needed.
package graph
