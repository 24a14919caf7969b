package compiler

import "errors"

// ErrNilArgument is returned when the graph or the CPT map is nil.
var ErrNilArgument = errors.New("compiler: nil argument")

// ErrInvalidArgument is returned when the cpts map has no entry for a
// variable with parents. A CPT that cannot be folded into its family
// clique fails with the error the potential package reports instead.
var ErrInvalidArgument = errors.New("compiler: invalid argument")

// ErrGeneralFailure is returned when triangulation or sepset selection
// could not produce a valid junction tree satisfying running intersection
// — an internal bug, never an expected outcome for a well-formed graph.
var ErrGeneralFailure = errors.New("compiler: could not produce a valid junction tree")
