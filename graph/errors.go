package graph

import "errors"

// Sentinel errors for Graph construction and queries.
var (
	// ErrNilVariable indicates a nil *variable.Variable was supplied.
	ErrNilVariable = errors.New("graph: nil variable")

	// ErrDuplicateID indicates two variables were added with the same id.
	ErrDuplicateID = errors.New("graph: duplicate variable id")

	// ErrUnknownVariable indicates a referenced variable id is not in the graph.
	ErrUnknownVariable = errors.New("graph: unknown variable")

	// ErrBufferTooSmall indicates Neighbors' out buffer is too small.
	ErrBufferTooSmall = errors.New("graph: neighbor buffer too small")
)
