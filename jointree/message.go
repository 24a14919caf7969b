package jointree

// project saves S's current potential into its previous-state buffer,
// then recomputes the current buffer as C's potential marginalized down
// to S's variables.
func (t *JoinTree) project(cIdx, sIdx int) error {
	c := t.cliques[cIdx]
	s := t.sepsets[sIdx]

	if err := s.pOld.Retract(s.pNew); err != nil {
		return err
	}
	mapping, err := mappingInto(s.vars, c.vars)
	if err != nil {
		return err
	}

	return c.potential.Marginalize(s.pNew, mapping)
}

// absorb updates C' via C'.p *= S.p_new / S.p_old, under the mapping from
// S's dimensions to C's dimensions, with the 0/0:=0 convention handled by
// potential.Update.
func (t *JoinTree) absorb(sIdx, cIdx int) error {
	s := t.sepsets[sIdx]
	c := t.cliques[cIdx]

	mapping, err := mappingInto(s.vars, c.vars)
	if err != nil {
		return err
	}

	return c.potential.Update(s.pNew, s.pOld, mapping)
}

// pass projects from→S then absorbs the result into to.
func (t *JoinTree) pass(fromIdx, sIdx, toIdx int) error {
	if err := t.project(fromIdx, sIdx); err != nil {
		return err
	}

	return t.absorb(sIdx, toIdx)
}

// collect is the recursive COLLECT_EVIDENCE primitive. callerIdx and sIn
// identify the clique/sepset that invoked this call (negative callerIdx
// marks the top-level root call, which performs no final pass).
func (t *JoinTree) collect(callerIdx, sIn, cIdx int) error {
	c := t.cliques[cIdx]
	c.mark = true

	for _, sIdx := range t.neighborSepsets(cIdx) {
		other := t.otherClique(sIdx, cIdx)
		if t.cliques[other].mark {
			continue
		}
		if err := t.collect(cIdx, sIdx, other); err != nil {
			return err
		}
		if err := t.pass(other, sIdx, cIdx); err != nil {
			return err
		}
	}

	if callerIdx >= 0 {
		return t.pass(cIdx, sIn, callerIdx)
	}

	return nil
}

// Collect runs COLLECT_EVIDENCE from rootIdx: every clique is visited at
// most once (the mark field), and evidence flows inward toward rootIdx.
// It does not, by itself, make the tree consistent — pair with Distribute
// (see MakeConsistent).
func (t *JoinTree) Collect(rootIdx int) error {
	if rootIdx < 0 || rootIdx >= len(t.cliques) {
		return ErrInvalidArgument
	}
	t.unmarkAll()

	return t.collect(-1, -1, rootIdx)
}

// distribute is the recursive DISTRIBUTE_EVIDENCE primitive.
func (t *JoinTree) distribute(cIdx int) error {
	c := t.cliques[cIdx]
	c.mark = true

	for _, sIdx := range t.neighborSepsets(cIdx) {
		other := t.otherClique(sIdx, cIdx)
		if t.cliques[other].mark {
			continue
		}
		if err := t.pass(cIdx, sIdx, other); err != nil {
			return err
		}
		if err := t.distribute(other); err != nil {
			return err
		}
	}

	return nil
}

// Distribute runs DISTRIBUTE_EVIDENCE from rootIdx: evidence flows
// outward from rootIdx to every other clique.
func (t *JoinTree) Distribute(rootIdx int) error {
	if rootIdx < 0 || rootIdx >= len(t.cliques) {
		return ErrInvalidArgument
	}
	t.unmarkAll()

	return t.distribute(rootIdx)
}

// MakeConsistent runs Collect then Distribute from rootIdx, producing
// globally consistent marginals independent of the chosen root.
func (t *JoinTree) MakeConsistent(rootIdx int) error {
	if err := t.Collect(rootIdx); err != nil {
		return err
	}

	return t.Distribute(rootIdx)
}
