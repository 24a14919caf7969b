package potential

import "github.com/CrazyPandaXJ/nip/variable"

// MappingInto computes, for each variable in sub (in order), its index
// position within super. It does not require either slice to be sorted
// and allows any permutation — the general-purpose helper compiler and
// dbn use to fold a CPT (naturally ordered child-then-parents) or an
// inter-slice interface message into a clique whose own variable order is
// unrelated. Contrast jointree's internal mappingInto, which additionally
// relies on both slices being id-sorted so the result is always strictly
// increasing, as Marginalize requires.
//
// Fails with ErrInvalidArgument if some variable in sub is absent from
// super.
func MappingInto(sub, super []*variable.Variable) ([]int, error) {
	index := make(map[int]int, len(super))
	for i, v := range super {
		index[v.ID()] = i
	}

	mapping := make([]int, len(sub))
	for j, v := range sub {
		pos, ok := index[v.ID()]
		if !ok {
			return nil, potentialErrorf("MappingInto", ErrInvalidArgument)
		}
		mapping[j] = pos
	}

	return mapping, nil
}

// validateMapping checks that mapping is strictly increasing, that every
// entry indexes into a dimension of dim(source), and that len(mapping)
// does not exceed dim(source). Marginalize is the one operation whose
// mapping must be strictly increasing (it reduces P's dimension order down
// onto Q's, and Q's dimensions must stay in the same relative order as P's
// for the sum to be well defined).
func validateMapping(mapping []int, sourceDim int) error {
	if len(mapping) > sourceDim {
		return potentialErrorf("validateMapping", ErrInvalidArgument)
	}
	last := -1
	for _, m := range mapping {
		if m <= last || m < 0 || m >= sourceDim {
			return potentialErrorf("validateMapping", ErrInvalidArgument)
		}
		last = m
	}

	return nil
}

// validateIndexMapping checks only that every mapping entry indexes into
// a dimension of a target of dimension targetDim; Update checks
// len(mapping) itself. Unlike Marginalize, Update/InitPotential
// gather rather than reduce, so the mapping may be any permutation — a
// CPT's natural (child, parent...) variable order rarely matches a
// clique's id-sorted order.
func validateIndexMapping(mapping []int, targetDim int) error {
	for _, m := range mapping {
		if m < 0 || m >= targetDim {
			return potentialErrorf("validateIndexMapping", ErrInvalidArgument)
		}
	}

	return nil
}

// newRaw allocates a Potential directly from pre-validated vars/card,
// skipping the per-variable revalidation New performs. Used internally by
// NormalizeDim to build a scratch potential over a dimension subset that
// is already known-valid.
func newRaw(vars []*variable.Variable, card []int) *Potential {
	data := make([]float64, product(card))

	return &Potential{
		vars:    vars,
		card:    card,
		stride:  strides(card),
		data:    data,
		scratch: make([]int, len(vars)),
	}
}

func product(card []int) int {
	n := 1
	for _, c := range card {
		n *= c
	}

	return n
}

// Marginalize sums P down onto dest's dimensions. mapping[j] names the
// source (P) dimension that becomes dest dimension j; mapping must be
// strictly increasing. dest is zeroed first, then every source cell's
// value is added into the corresponding dest cell. A 0-dimensional dest
// (empty mapping) receives the grand total.
//
// Stage 1 (Validate): dest non-nil, mapping strictly increasing and in
// range, dest's cardinalities match the mapped source dimensions.
// Stage 2 (Prepare): zero dest.
// Stage 3 (Execute): walk every source cell, project its index through
// mapping, accumulate into the matching dest cell.
// Stage 4 (Finalize): return.
//
// Fails with ErrInvalidArgument when len(mapping) > P.Dim(), mapping is
// not strictly increasing, or dest's cardinalities don't match the
// mapped source dimensions.
func (p *Potential) Marginalize(dest *Potential, mapping []int) error {
	// Stage 1: Validate
	if dest == nil {
		return potentialErrorf("Marginalize", ErrNilArgument)
	}
	if err := validateMapping(mapping, len(p.vars)); err != nil {
		return potentialErrorf("Marginalize", ErrInvalidArgument)
	}
	if len(mapping) != dest.Dim() {
		return potentialErrorf("Marginalize", ErrInvalidArgument)
	}
	for j, m := range mapping {
		if dest.card[j] != p.card[m] {
			return potentialErrorf("Marginalize", ErrInvalidArgument)
		}
	}

	// Stage 2: Prepare
	dest.Uniform(0)
	srcIdx := make([]int, len(p.vars))
	destIdx := make([]int, len(mapping))

	// Stage 3: Execute
	for flat := 0; flat < len(p.data); flat++ {
		remaining := flat
		for j, c := range p.card {
			srcIdx[j] = remaining % c
			remaining /= c
		}
		for j, m := range mapping {
			destIdx[j] = srcIdx[m]
		}
		destFlat, err := dest.FlatIndex(destIdx)
		if err != nil {
			return potentialErrorf("Marginalize", err)
		}
		dest.data[destFlat] += p.data[flat]
	}

	// Stage 4: Finalize
	return nil
}

// TotalMarginalize computes the single-variable marginal of P over
// dimension varIndex into dest, a 1-D array of length
// Cardinalities()[varIndex].
func (p *Potential) TotalMarginalize(dest []float64, varIndex int) error {
	if varIndex < 0 || varIndex >= len(p.vars) {
		return potentialErrorf("TotalMarginalize", ErrInvalidArgument)
	}
	if len(dest) != p.card[varIndex] {
		return potentialErrorf("TotalMarginalize", ErrInvalidArgument)
	}
	for i := range dest {
		dest[i] = 0
	}
	for flat := 0; flat < len(p.data); flat++ {
		state := (flat / p.stride[varIndex]) % p.card[varIndex]
		dest[state] += p.data[flat]
	}

	return nil
}

// broadcastValue returns the value that potential src contributes to a
// target cell whose full index is idx, given the mapping from src's
// dimensions onto target dimensions. A nil src contributes the neutral
// multiplier/divisor 1 (meaning: absent from the update). A 0-dimensional
// src broadcasts its single scalar value across every target cell.
func broadcastValue(src *Potential, idx []int, mapping []int) (float64, error) {
	if src == nil {
		return 1, nil
	}
	if src.Dim() == 0 {
		return src.data[0], nil
	}
	subIdx := make([]int, len(mapping))
	for j, m := range mapping {
		subIdx[j] = idx[m]
	}

	return src.Get(subIdx)
}

// Update multiplies every cell of T (the receiver) by the corresponding
// cell of num (if given) and divides by the corresponding cell of den (if
// given), using mapping to project T's full index down to num/den's
// (shared) dimension set. Division by zero yields 0 in the target (the
// 0/0:=0 convention); at least one of num, den must be non-nil, and when
// both are given they must share dimensionality.
//
// Stage 1 (Validate): at least one of num/den given, shared dimensionality
// when both are given, mapping length matches and stays in bounds.
// Stage 2 (Prepare): scratch index buffer.
// Stage 3 (Execute): walk every target cell, broadcast num/den through
// mapping, multiply/divide in place.
// Stage 4 (Finalize): return.
func (t *Potential) Update(num, den *Potential, mapping []int) error {
	// Stage 1: Validate
	if num == nil && den == nil {
		return potentialErrorf("Update", ErrInvalidArgument)
	}
	if num != nil && den != nil && num.Dim() != den.Dim() {
		return potentialErrorf("Update", ErrInvalidArgument)
	}
	mapDim := len(mapping)
	switch {
	case num != nil && num.Dim() > 0 && mapDim != num.Dim():
		return potentialErrorf("Update", ErrInvalidArgument)
	case num == nil && den != nil && den.Dim() > 0 && mapDim != den.Dim():
		return potentialErrorf("Update", ErrInvalidArgument)
	}
	if err := validateIndexMapping(mapping, len(t.vars)); err != nil {
		return potentialErrorf("Update", err)
	}

	// Stage 2: Prepare
	idx := make([]int, len(t.vars))

	// Stage 3: Execute
	for flat := 0; flat < len(t.data); flat++ {
		remaining := flat
		for j, c := range t.card {
			idx[j] = remaining % c
			remaining /= c
		}

		val := t.data[flat]
		if num != nil {
			nVal, err := broadcastValue(num, idx, mapping)
			if err != nil {
				return potentialErrorf("Update", err)
			}
			val *= nVal
		}
		if den != nil {
			dVal, err := broadcastValue(den, idx, mapping)
			if err != nil {
				return potentialErrorf("Update", err)
			}
			if dVal == 0 {
				val = 0 // 0/0 := 0, and any/0 := 0 by the same documented convention
			} else {
				val /= dVal
			}
		}
		t.data[flat] = val
	}

	// Stage 4: Finalize
	return nil
}

// UpdateEvidence is the 1-D variant of Update, keyed on a single target
// dimension varIdx: for each target cell, multiply by num[state] and, if
// den is given, divide by den[state] (0/0:=0). The caller must ensure
// den[i]==0 implies num[i]==0 for every i (UpdateEvidence validates this
// precondition and fails with ErrInvalidArgument if it is violated).
func (t *Potential) UpdateEvidence(num, den []float64, varIdx int) error {
	if varIdx < 0 || varIdx >= len(t.vars) {
		return potentialErrorf("UpdateEvidence", ErrInvalidArgument)
	}
	card := t.card[varIdx]
	if len(num) != card {
		return potentialErrorf("UpdateEvidence", ErrInvalidArgument)
	}
	if den != nil {
		if len(den) != card {
			return potentialErrorf("UpdateEvidence", ErrInvalidArgument)
		}
		for i := 0; i < card; i++ {
			if den[i] == 0 && num[i] != 0 {
				return potentialErrorf("UpdateEvidence", ErrInvalidArgument)
			}
		}
	}

	stride := t.stride[varIdx]
	for flat := 0; flat < len(t.data); flat++ {
		state := (flat / stride) % card
		val := t.data[flat] * num[state]
		if den != nil {
			if den[state] == 0 {
				val = 0
			} else {
				val /= den[state]
			}
		}
		t.data[flat] = val
	}

	return nil
}

// sameGeometry reports whether a and b have identical cardinality vectors.
func sameGeometry(a, b *Potential) bool {
	if len(a.card) != len(b.card) {
		return false
	}
	for i := range a.card {
		if a.card[i] != b.card[i] {
			return false
		}
	}

	return true
}

// InitPotential multiplies T (the receiver) by probs, folding a CPT into
// its host clique at tree construction. If mapping is nil, T and probs
// must share the same geometry (vars in the same order) and the product
// is a plain elementwise multiply; otherwise mapping projects T's index
// down onto probs's dimensions exactly as in Update.
func (t *Potential) InitPotential(probs *Potential, mapping []int) error {
	if probs == nil {
		return potentialErrorf("InitPotential", ErrNilArgument)
	}
	if mapping == nil {
		if !sameGeometry(t, probs) {
			return potentialErrorf("InitPotential", ErrInvalidArgument)
		}
		for i := range t.data {
			t.data[i] *= probs.data[i]
		}

		return nil
	}

	return t.Update(probs, nil, mapping)
}

// NormalizeMass divides every entry by the grand total. A zero-mass
// potential is left unchanged (0/0:=0 applied elementwise).
func (p *Potential) NormalizeMass() error {
	total := 0.0
	for _, v := range p.data {
		total += v
	}
	if total == 0 {
		return nil
	}
	for i := range p.data {
		p.data[i] /= total
	}

	return nil
}

// NormalizeCPD divides each contiguous stride-Card[0] block by its sum.
// Vars[0] is by convention the child variable, so each block is exactly
// one conditional slice P(child | parents=fixed); after NormalizeCPD each
// such slice sums to 1.0. Requires Dim() >= 1.
func (p *Potential) NormalizeCPD() error {
	if len(p.vars) == 0 {
		return potentialErrorf("NormalizeCPD", ErrInvalidArgument)
	}
	blockSize := p.card[0]
	for start := 0; start < len(p.data); start += blockSize {
		sum := 0.0
		for i := start; i < start+blockSize; i++ {
			sum += p.data[i]
		}
		if sum == 0 {
			continue
		}
		for i := start; i < start+blockSize; i++ {
			p.data[i] /= sum
		}
	}

	return nil
}

// NormalizeDim marginalizes dimension dim out of P to build a normalizer
// over the remaining dimensions, then divides each cell of P by the
// normalizer value implied by its remaining-dimension index (0/0:=0).
//
// Stage 1 (Validate): dim in range.
// Stage 2 (Prepare): build the remaining-dimension variable/cardinality/
// mapping triple and marginalize P onto it.
// Stage 3 (Execute): walk every cell of P, look up its normalizer value,
// divide in place.
// Stage 4 (Finalize): return.
func (p *Potential) NormalizeDim(dim int) error {
	// Stage 1: Validate
	if dim < 0 || dim >= len(p.vars) {
		return potentialErrorf("NormalizeDim", ErrInvalidArgument)
	}

	// Stage 2: Prepare
	remainingVars := make([]*variable.Variable, 0, len(p.vars)-1)
	remainingCard := make([]int, 0, len(p.vars)-1)
	mapping := make([]int, 0, len(p.vars)-1)
	for j, v := range p.vars {
		if j == dim {
			continue
		}
		remainingVars = append(remainingVars, v)
		remainingCard = append(remainingCard, p.card[j])
		mapping = append(mapping, j)
	}

	norm := newRaw(remainingVars, remainingCard)
	if err := p.Marginalize(norm, mapping); err != nil {
		return potentialErrorf("NormalizeDim", err)
	}

	// Stage 3: Execute
	idx := make([]int, len(p.vars))
	subIdx := make([]int, len(mapping))
	for flat := 0; flat < len(p.data); flat++ {
		remaining := flat
		for j, c := range p.card {
			idx[j] = remaining % c
			remaining /= c
		}
		for j, m := range mapping {
			subIdx[j] = idx[m]
		}
		normFlat, err := norm.FlatIndex(subIdx)
		if err != nil {
			return potentialErrorf("NormalizeDim", err)
		}
		normVal := norm.data[normFlat]
		if normVal == 0 {
			p.data[flat] = 0
		} else {
			p.data[flat] /= normVal
		}
	}

	// Stage 4: Finalize
	return nil
}

// Retract restores P to a prior reference state R (same geometry
// required), used to undo evidence insertion when a previously-zeroed
// likelihood must become positive again (global retraction).
func (p *Potential) Retract(ref *Potential) error {
	if ref == nil {
		return potentialErrorf("Retract", ErrNilArgument)
	}
	if len(ref.data) != len(p.data) {
		return potentialErrorf("Retract", ErrInvalidArgument)
	}
	copy(p.data, ref.data)

	return nil
}

// Sum adds other elementwise into P (P += other). Both must share the
// same flat size.
func (p *Potential) Sum(other *Potential) error {
	if other == nil {
		return potentialErrorf("Sum", ErrNilArgument)
	}
	if len(other.data) != len(p.data) {
		return potentialErrorf("Sum", ErrInvalidArgument)
	}
	for i := range p.data {
		p.data[i] += other.data[i]
	}

	return nil
}
