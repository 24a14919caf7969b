// Package potential implements dense, row-major multidimensional
// probability tables ("potentials") and the tensor algebra over them:
// marginalization, pointwise update with index remapping, and
// normalization. A Potential is indexed by an ordered tuple of
// variables; the first variable is least significant, so that
// conditional-distribution normalization can treat contiguous strides
// as one conditional slice (see NormalizeCPD).
//
// Errors:
//
//	ErrNilArgument      - a required pointer/slice argument was nil.
//	ErrInvalidArgument  - bad geometry: negative cardinality, dimension
//	                      mismatch, out-of-range index, mapping not
//	                      strictly increasing, mapping dimension
//	                      exceeding the source's dimension.
//	ErrOutOfMemory      - allocation size overflowed or was refused.
package potential
