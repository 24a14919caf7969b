package jointree

import "errors"

// Sentinel errors for jointree construction, message passing, and evidence.
var (
	// ErrNilArgument indicates a required argument was nil.
	ErrNilArgument = errors.New("jointree: argument is nil")

	// ErrInvalidArgument indicates a bad index or geometry mismatch.
	ErrInvalidArgument = errors.New("jointree: invalid argument")

	// ErrNotFound indicates a variable is not present in the referenced clique.
	ErrNotFound = errors.New("jointree: variable not found")

	// ErrGeneralFailure indicates the tree has no CPT-initialized snapshot
	// to reset to (SnapshotInitial was not called after the tree was built).
	ErrGeneralFailure = errors.New("jointree: no initial snapshot")
)
