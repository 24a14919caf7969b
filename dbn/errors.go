package dbn

import "errors"

// ErrNilArgument is returned when a required compiler.Result or variable
// list argument is nil.
var ErrNilArgument = errors.New("dbn: nil argument")

// ErrInvalidArgument is returned when a declared outgoing-interface
// variable has no Next link, or a hand-off is attempted against a
// template that declares no matching interface clique.
var ErrInvalidArgument = errors.New("dbn: invalid argument")
