// Package dbn drives a compiled two-slice junction tree template across a
// time-series of observations: per-step evidence insertion and message
// passing, interface hand-off between slices, and both a forward and a
// forward-backward (smoothing) inference mode.
package dbn
