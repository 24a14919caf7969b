package jointree

import (
	"sort"

	"github.com/CrazyPandaXJ/nip/variable"
)

// sortedByID returns a copy of vars sorted ascending by variable id, the
// canonical clique/sepset variable order.
func sortedByID(vars []*variable.Variable) []*variable.Variable {
	out := make([]*variable.Variable, len(vars))
	copy(out, vars)
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })

	return out
}

// mappingInto computes, for each variable in sub (in order), its index
// position within super. Both sub and super must already be sorted
// ascending by id; since sub is required to be a subset of super, the
// resulting mapping is then automatically strictly increasing, as
// potential.Marginalize requires (potential.Update accepts any order).
//
// Fails with ErrNotFound if some variable in sub is absent from super.
func mappingInto(sub, super []*variable.Variable) ([]int, error) {
	index := make(map[int]int, len(super))
	for i, v := range super {
		index[v.ID()] = i
	}

	mapping := make([]int, len(sub))
	for j, v := range sub {
		pos, ok := index[v.ID()]
		if !ok {
			return nil, ErrNotFound
		}
		mapping[j] = pos
	}

	return mapping, nil
}

// positionOf returns the index of v within vars, or ErrNotFound.
func positionOf(v *variable.Variable, vars []*variable.Variable) (int, error) {
	for i, candidate := range vars {
		if candidate.Equal(v) {
			return i, nil
		}
	}

	return 0, ErrNotFound
}
