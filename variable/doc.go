// Package variable defines Variable, the identity of a categorical random
// variable: a stable id, cardinality, state labels, parent list, and a
// cached likelihood vector used to carry evidence into the junction tree.
//
// Errors:
//
//	ErrEmptySymbol      - the supplied symbol is the empty string.
//	ErrSymbolTooLong    - symbol exceeds MaxSymbolLen characters.
//	ErrNameTooLong      - verbose name exceeds MaxNameLen characters.
//	ErrInvalidCardinality - cardinality is not a positive integer.
//	ErrStateCountMismatch - len(states) != cardinality.
//	ErrLikelihoodLenMismatch - likelihood vector length != cardinality.
package variable
