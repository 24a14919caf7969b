// Package compiler turns a directed graph plus a table of conditional
// probability potentials into a compiled jointree.JoinTree: moralization,
// DBN interface augmentation, undirected conversion, triangulation by
// minimum-weight elimination, sepset
// selection by maximum-intersection spanning tree, CPT folding, and
// DBN interface-clique selection.
package compiler
