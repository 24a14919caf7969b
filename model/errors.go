package model

import "errors"

// MissingState is the wire-boundary sentinel a DataSource uses in place of
// an observed state index when a variable's value is missing for a row.
const MissingState = -1

// ErrNotFound is returned when a symbol lookup into a Model fails.
var ErrNotFound = errors.New("model: symbol not found")

// ErrMissingCPD is returned when a Model is missing the conditional
// probability potential required for one of its variables.
var ErrMissingCPD = errors.New("model: missing conditional probability distribution")

// ErrInvalidPrior is returned when a caller supplies a prior for a
// variable that is not independent (has one or more parents).
var ErrInvalidPrior = errors.New("model: prior supplied for a non-independent variable")

// ErrIoFailure is returned by Loader/DataSource/DataSink implementations
// for failures at the I/O boundary; the core otherwise never returns it.
var ErrIoFailure = errors.New("model: i/o failure")
