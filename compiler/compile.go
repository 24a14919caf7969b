package compiler

import (
	"github.com/CrazyPandaXJ/nip/graph"
	"github.com/CrazyPandaXJ/nip/jointree"
	"github.com/CrazyPandaXJ/nip/potential"
	"github.com/CrazyPandaXJ/nip/variable"
)

// Result is everything Compile produces: the compiled junction tree plus
// the two interface cliques a dbn.Driver needs to hand messages between
// time-slices. OutClique/InClique are -1 when the graph declares no
// variables with the corresponding interface flag.
type Result struct {
	Tree      *jointree.JoinTree
	OutClique int
	InClique  int
}

// Compile runs the full pipeline: moralize, augment the DBN interfaces,
// undirect, triangulate by minimum-weight elimination, select a
// maximum-intersection sepset spanning tree, assemble the resulting
// jointree.JoinTree, fold every supplied CPT into its variable's family
// clique, and record the out/in interface cliques.
//
// cpts maps a variable id to its conditional probability potential —
// P(child|parents) for a variable with parents, or a prior P(v) for a
// parentless one. A variable with parents and no entry in cpts fails with
// ErrInvalidArgument.
func Compile(g *graph.Graph, cpts map[int]*potential.Potential) (*Result, error) {
	if g == nil || cpts == nil {
		return nil, ErrNilArgument
	}

	g.Moralize()
	g.AugmentInterface(variable.Outgoing)
	g.AugmentInterface(variable.OldOutgoing)
	g.Undirect()

	vars := g.Variables()
	cardinality := func(i int) int { return vars[i].Cardinality() }

	w := newWorkingGraph(g)
	rawClusters := triangulate(w, cardinality)
	cliqueIdx := maximalCliques(rawClusters)
	if len(cliqueIdx) == 0 {
		return nil, ErrGeneralFailure
	}

	cliqueVarSets := make([][]*variable.Variable, len(cliqueIdx))
	for i, members := range cliqueIdx {
		set := make([]*variable.Variable, len(members))
		for j, m := range members {
			set[j] = vars[m]
		}
		cliqueVarSets[i] = set
	}

	sepsetCands := selectSepsets(cliqueIdx, cardinality)
	if len(cliqueIdx) > 1 && len(sepsetCands) != len(cliqueIdx)-1 {
		return nil, ErrGeneralFailure
	}

	links := make([]jointree.SepsetLink, len(sepsetCands))
	for i, cand := range sepsetCands {
		vs := make([]*variable.Variable, len(cand.vars))
		for j, m := range cand.vars {
			vs[j] = vars[m]
		}
		links[i] = jointree.SepsetLink{C1: cand.c1, C2: cand.c2, Vars: vs}
	}

	tree, err := jointree.New(cliqueVarSets, links)
	if err != nil {
		return nil, err
	}

	for _, v := range vars {
		family := append([]*variable.Variable{v}, v.Parents()...)
		idx, ok := tree.FindCliqueContaining(family)
		if !ok {
			return nil, ErrGeneralFailure
		}
		v.FamilyClique = idx
	}

	for _, v := range vars {
		cpt, ok := cpts[v.ID()]
		if !ok {
			if len(v.Parents()) > 0 {
				return nil, ErrInvalidArgument
			}

			continue
		}
		clique := tree.Cliques()[v.FamilyClique]
		if err := clique.FoldCPT(cpt); err != nil {
			return nil, err
		}
	}

	outClique := -1
	if members := interfaceMembers(vars, variable.Outgoing); len(members) > 0 {
		if idx, ok := tree.FindCliqueContaining(members); ok {
			outClique = idx
		} else {
			return nil, ErrGeneralFailure
		}
	}

	inClique := -1
	if members := interfaceMembers(vars, variable.OldOutgoing); len(members) > 0 {
		if idx, ok := tree.FindCliqueContaining(members); ok {
			inClique = idx
		} else {
			return nil, ErrGeneralFailure
		}
	}

	tree.SnapshotInitial()

	return &Result{Tree: tree, OutClique: outClique, InClique: inClique}, nil
}

func interfaceMembers(vars []*variable.Variable, flag variable.InterfaceFlag) []*variable.Variable {
	var out []*variable.Variable
	for _, v := range vars {
		if v.Interface == flag {
			out = append(out, v)
		}
	}

	return out
}
