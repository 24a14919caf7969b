package jointree

import "github.com/CrazyPandaXJ/nip/variable"

// Marginal total-marginalizes v's family clique's potential over v,
// returning the per-state marginal normalized to sum to 1 (all zeros are
// returned as is when the clique carries no mass). Requires
// v.FamilyClique to have been assigned by compiler.Compile.
func (t *JoinTree) Marginal(v *variable.Variable) ([]float64, error) {
	if v == nil {
		return nil, ErrNilArgument
	}
	if v.FamilyClique < 0 || v.FamilyClique >= len(t.cliques) {
		return nil, ErrInvalidArgument
	}
	c := t.cliques[v.FamilyClique]
	pos, err := positionOf(v, c.vars)
	if err != nil {
		return nil, err
	}

	dest := make([]float64, v.Cardinality())
	if err := c.potential.TotalMarginalize(dest, pos); err != nil {
		return nil, err
	}
	total := 0.0
	for _, x := range dest {
		total += x
	}
	if total > 0 {
		for i := range dest {
			dest[i] /= total
		}
	}

	return dest, nil
}

// needsGlobalRetraction reports whether moving from old to new likelihood
// requires a global retraction first: some state that was previously
// impossible (likelihood 0) must become possible (new likelihood > 0),
// which the multiplicative update cannot express without first restoring
// the CPT-initialized state.
func needsGlobalRetraction(old, newLik []float64) bool {
	for i := range old {
		if old[i] == 0 && newLik[i] > 0 {
			return true
		}
	}

	return false
}

// applyRaw multiplies v's family clique's potential by newLik/oldLik
// along v's dimension, the core of "entering evidence", without any
// retraction bookkeeping.
func (t *JoinTree) applyRaw(v *variable.Variable, oldLik, newLik []float64) error {
	c := t.cliques[v.FamilyClique]
	pos, err := positionOf(v, c.vars)
	if err != nil {
		return err
	}

	return c.potential.UpdateEvidence(newLik, oldLik, pos)
}

// EnterEvidence inserts hard evidence (via variable.Variable.Indicator)
// or soft evidence (any non-negative likelihood vector summing to a
// positive value) for v. If the transition from v's current likelihood to
// newLik would move a previously-zero-likelihood state to positive, a
// global retraction runs first: v's own earlier evidence entries are
// dropped (newLik replaces them), every clique/sepset is restored to its
// CPT-initialized state and every remaining evidence event is replayed,
// before newLik itself is applied.
func (t *JoinTree) EnterEvidence(v *variable.Variable, newLik []float64) error {
	if v == nil || newLik == nil {
		return ErrNilArgument
	}
	if v.FamilyClique < 0 || v.FamilyClique >= len(t.cliques) {
		return ErrInvalidArgument
	}
	if len(newLik) != v.Cardinality() {
		return ErrInvalidArgument
	}

	old := make([]float64, len(v.Likelihood()))
	copy(old, v.Likelihood())

	if needsGlobalRetraction(old, newLik) {
		kept := t.evidence[:0]
		for _, entry := range t.evidence {
			if !entry.v.Equal(v) {
				kept = append(kept, entry)
			}
		}
		t.evidence = kept
		if err := t.retract(); err != nil {
			return err
		}
	}

	if err := t.applyRaw(v, v.Likelihood(), newLik); err != nil {
		return err
	}
	if err := v.SetLikelihood(newLik); err != nil {
		return err
	}

	logged := make([]float64, len(newLik))
	copy(logged, newLik)
	t.evidence = append(t.evidence, evidenceEntry{v: v, lik: logged})

	return nil
}

// retract restores every clique/sepset potential to the CPT-initialized
// snapshot and every variable's likelihood to uninformative, then replays
// the full evidence log recorded so far (each entry re-applied against
// the freshly reset tree). It does not clear the evidence log: the
// eventual new EnterEvidence call appends to it afterward.
func (t *JoinTree) retract() error {
	if err := t.resetPotentials(); err != nil {
		return err
	}
	for _, v := range t.allVars {
		v.ResetLikelihood()
	}

	log := t.evidence
	t.evidence = nil
	for _, entry := range log {
		old := make([]float64, len(entry.v.Likelihood()))
		copy(old, entry.v.Likelihood())
		if err := t.applyRaw(entry.v, old, entry.lik); err != nil {
			return err
		}
		if err := entry.v.SetLikelihood(entry.lik); err != nil {
			return err
		}
		t.evidence = append(t.evidence, entry)
	}

	return nil
}

func (t *JoinTree) resetPotentials() error {
	if len(t.initialC) != len(t.cliques) {
		return ErrGeneralFailure
	}
	for i, c := range t.cliques {
		if err := c.potential.Retract(t.initialC[i]); err != nil {
			return err
		}
	}
	for i, s := range t.sepsets {
		if err := s.pNew.Retract(t.initialS[i].pNew); err != nil {
			return err
		}
		if err := s.pOld.Retract(t.initialS[i].pOld); err != nil {
			return err
		}
	}

	return nil
}

// ResetToInitial restores every clique/sepset potential to the
// CPT-initialized snapshot, resets every variable's likelihood, and
// discards the evidence log entirely — a fresh start, used by the DBN
// driver at the beginning of every time-slice, as opposed to retract's
// log-replaying behavior used mid-slice.
func (t *JoinTree) ResetToInitial() error {
	if err := t.resetPotentials(); err != nil {
		return err
	}
	for _, v := range t.allVars {
		v.ResetLikelihood()
	}
	t.evidence = nil

	return nil
}
