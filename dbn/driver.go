package dbn

import (
	"math"
	"sort"

	"github.com/CrazyPandaXJ/nip/compiler"
	"github.com/CrazyPandaXJ/nip/jointree"
	"github.com/CrazyPandaXJ/nip/model"
	"github.com/CrazyPandaXJ/nip/potential"
	"github.com/CrazyPandaXJ/nip/variable"
)

// Driver wraps a compiled two-slice junction tree template and the two
// interface cliques compiler.Compile selected, driving it one time-slice
// at a time. The same tree and the same Variable objects are reused for
// every slice; ResetToInitial at the start of each Step discards whatever
// the previous slice's evidence left behind.
type Driver struct {
	tree     *jointree.JoinTree
	outIdx   int
	inIdx    int
	outgoing []*variable.Variable // sorted by id; the "leaving this slice" interface
	oldOut   []*variable.Variable // oldOutgoing[i] == outgoing[i].Next, for every i
	vars     []*variable.Variable
	byID     map[int]*variable.Variable
}

// NewDriver builds a Driver from a compiler.Result and the full variable
// set it was compiled from. Fails with ErrNilArgument if either is nil, or
// ErrInvalidArgument if an Outgoing-flagged variable has no Next link.
func NewDriver(res *compiler.Result, vars []*variable.Variable) (*Driver, error) {
	if res == nil || res.Tree == nil || vars == nil {
		return nil, ErrNilArgument
	}

	var outgoing []*variable.Variable
	byID := make(map[int]*variable.Variable, len(vars))
	for _, v := range vars {
		byID[v.ID()] = v
		if v.Interface == variable.Outgoing {
			outgoing = append(outgoing, v)
		}
	}
	sort.Slice(outgoing, func(i, j int) bool { return outgoing[i].ID() < outgoing[j].ID() })

	oldOut := make([]*variable.Variable, len(outgoing))
	for i, v := range outgoing {
		if v.Next == nil {
			return nil, ErrInvalidArgument
		}
		oldOut[i] = v.Next
	}

	return &Driver{
		tree:     res.Tree,
		outIdx:   res.OutClique,
		inIdx:    res.InClique,
		outgoing: outgoing,
		oldOut:   oldOut,
		vars:     vars,
		byID:     byID,
	}, nil
}

// Tree exposes the underlying junction tree for inspection (marginals,
// clique/sepset state) between Step calls.
func (d *Driver) Tree() *jointree.JoinTree {
	return d.tree
}

func (d *Driver) rootIndex() int {
	if d.outIdx >= 0 {
		return d.outIdx
	}

	return 0
}

// applyPriors enters every prior in priors as soft evidence, failing with
// model.ErrInvalidPrior if supplied for a variable with one or more
// parents: priors apply only to independent variables.
func (d *Driver) applyPriors(priors map[int][]float64) error {
	for id, lik := range priors {
		v, ok := d.byID[id]
		if !ok {
			return model.ErrNotFound
		}
		if len(v.Parents()) > 0 {
			return model.ErrInvalidPrior
		}
		if err := d.tree.EnterEvidence(v, lik); err != nil {
			return err
		}
	}

	return nil
}

// insertEvidence enters hard evidence for every observed row entry,
// leaving missing (model.MissingState) variables at their just-reset
// all-ones likelihood.
func (d *Driver) insertEvidence(row map[int]int) error {
	for id, state := range row {
		if state == model.MissingState {
			continue
		}
		v, ok := d.byID[id]
		if !ok {
			return model.ErrNotFound
		}
		ind, err := v.Indicator(state)
		if err != nil {
			return err
		}
		if err := d.tree.EnterEvidence(v, ind); err != nil {
			return err
		}
	}

	return nil
}

// injectForwardMessage folds msg — a joint potential over d.outgoing from
// the previous slice — into this slice's in_clique. msg's variables are
// renamed onto d.oldOut positionally (outgoing[i] and oldOut[i] are the
// same boundary variable one slice apart) before folding, since
// potential.MappingInto matches by variable id.
func (d *Driver) injectForwardMessage(msg *potential.Potential) error {
	if msg == nil {
		return nil
	}
	if d.inIdx < 0 {
		return ErrInvalidArgument
	}
	renamed, err := potential.New(d.oldOut, msg.Data())
	if err != nil {
		return err
	}
	clique := d.tree.Cliques()[d.inIdx]
	mapping, err := potential.MappingInto(renamed.Vars(), clique.Vars())
	if err != nil {
		return err
	}

	return clique.Potential().InitPotential(renamed, mapping)
}

// injectBackwardMessage folds beta — a backward message already indexed
// by d.outgoing's own variable identities — into this slice's out_clique.
// Unlike injectForwardMessage, no renaming is needed: beta was produced by
// extractBackwardMessage using the same identity convention.
func (d *Driver) injectBackwardMessage(beta *potential.Potential) error {
	if beta == nil {
		return nil
	}
	if d.outIdx < 0 {
		return ErrInvalidArgument
	}
	clique := d.tree.Cliques()[d.outIdx]
	mapping, err := potential.MappingInto(beta.Vars(), clique.Vars())
	if err != nil {
		return err
	}

	return clique.Potential().InitPotential(beta, mapping)
}

// extractOutgoingMessage marginalizes out_clique's potential down to
// d.outgoing, the joint to hand off to the following slice. Returns nil if
// the template declares no outgoing interface.
func (d *Driver) extractOutgoingMessage() (*potential.Potential, error) {
	if d.outIdx < 0 {
		return nil, nil
	}
	clique := d.tree.Cliques()[d.outIdx]
	mapping, err := potential.MappingInto(d.outgoing, clique.Vars())
	if err != nil {
		return nil, err
	}
	dest, err := potential.New(d.outgoing, nil)
	if err != nil {
		return nil, err
	}
	if err := clique.Potential().Marginalize(dest, mapping); err != nil {
		return nil, err
	}

	return dest, nil
}

// extractBackwardMessage marginalizes in_clique's potential down to
// d.oldOut (the incoming boundary of this slice, carrying information
// about the past), then renames it onto d.outgoing's identities so the
// previous slice's injectBackwardMessage can fold it in directly. The
// result still includes whatever forward message was folded into this
// slice; RunForwardBackward divides that back out before passing it on.
// Returns nil if the template declares no incoming interface.
func (d *Driver) extractBackwardMessage() (*potential.Potential, error) {
	if d.inIdx < 0 {
		return nil, nil
	}
	clique := d.tree.Cliques()[d.inIdx]
	mapping, err := potential.MappingInto(d.oldOut, clique.Vars())
	if err != nil {
		return nil, err
	}
	raw, err := potential.New(d.oldOut, nil)
	if err != nil {
		return nil, err
	}
	if err := clique.Potential().Marginalize(raw, mapping); err != nil {
		return nil, err
	}

	return potential.New(d.outgoing, raw.Data())
}

// clique total mass prior to normalization at each step; root's Data()
// sums to the joint probability of every state kept compatible with
// evidence so far.
func (d *Driver) massAtRoot() float64 {
	root := d.tree.Cliques()[d.rootIndex()]
	total := 0.0
	for _, v := range root.Potential().Data() {
		total += v
	}

	return total
}

// normalizeByMass divides every clique's potential by mass, the scaled-
// forward-algorithm rescaling that keeps the tree's numbers in [0,1] and
// turns the outgoing hand-off into a proper distribution for the next
// slice to multiply against: take the log first, then normalize. A zero
// mass (evidence with zero probability) is left as is.
func (d *Driver) normalizeByMass(mass float64) error {
	if mass == 0 {
		return nil
	}
	scalar := potential.NewScalar(mass)
	for _, c := range d.tree.Cliques() {
		if err := c.Potential().Update(nil, scalar, nil); err != nil {
			return err
		}
	}

	return nil
}

// Step runs one time-slice: reset to CPT-initialized state, apply priors
// (independent variables only), fold in the forward message from the
// previous slice (if any), insert observed evidence, then make the tree
// consistent. It returns the outgoing-interface joint to hand off to the
// next slice (nil if none is declared) and this step's contribution to the
// sequence log-likelihood: the log of the clique total mass prior to
// normalization.
func (d *Driver) Step(evidence map[int]int, priors map[int][]float64, incoming *potential.Potential) (*potential.Potential, float64, error) {
	if err := d.tree.ResetToInitial(); err != nil {
		return nil, 0, err
	}
	if err := d.applyPriors(priors); err != nil {
		return nil, 0, err
	}
	if err := d.injectForwardMessage(incoming); err != nil {
		return nil, 0, err
	}
	if err := d.insertEvidence(evidence); err != nil {
		return nil, 0, err
	}
	if err := d.tree.MakeConsistent(d.rootIndex()); err != nil {
		return nil, 0, err
	}

	mass := d.massAtRoot()
	if err := d.normalizeByMass(mass); err != nil {
		return nil, 0, err
	}
	outgoing, err := d.extractOutgoingMessage()
	if err != nil {
		return nil, 0, err
	}

	return outgoing, math.Log(mass), nil
}
