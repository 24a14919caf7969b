package variable

import "errors"

// Sentinel errors for variable construction and mutation.
var (
	// ErrEmptySymbol indicates a Variable was constructed with an empty symbol.
	ErrEmptySymbol = errors.New("variable: symbol is empty")

	// ErrSymbolTooLong indicates the symbol exceeds MaxSymbolLen characters.
	ErrSymbolTooLong = errors.New("variable: symbol too long")

	// ErrNameTooLong indicates the verbose name exceeds MaxNameLen characters.
	ErrNameTooLong = errors.New("variable: name too long")

	// ErrInvalidCardinality indicates a non-positive cardinality was requested.
	ErrInvalidCardinality = errors.New("variable: cardinality must be positive")

	// ErrStateCountMismatch indicates len(states) does not match cardinality.
	ErrStateCountMismatch = errors.New("variable: state label count mismatch")

	// ErrLikelihoodLenMismatch indicates a likelihood vector of the wrong length.
	ErrLikelihoodLenMismatch = errors.New("variable: likelihood length mismatch")

	// ErrUnknownState indicates a state index outside [0, cardinality).
	ErrUnknownState = errors.New("variable: state index out of range")
)
