package dbn

import (
	"github.com/CrazyPandaXJ/nip/model"
	"github.com/CrazyPandaXJ/nip/potential"
)

// RunForward drives src to exhaustion with a single forward sweep,
// writing each step's per-variable marginal to sink and accumulating the
// sequence log-likelihood, which is written once at the end — a thin
// batch orchestration over Step.
func (d *Driver) RunForward(src model.DataSource, sink model.DataSink) (float64, error) {
	var incoming *potential.Potential
	totalLogLik := 0.0

	for step := 0; ; step++ {
		row, ok, err := src.Next()
		if err != nil {
			return 0, err
		}
		if !ok {
			break
		}

		outgoing, stepLogLik, err := d.Step(row, nil, incoming)
		if err != nil {
			return 0, err
		}
		totalLogLik += stepLogLik

		for _, v := range d.vars {
			marg, err := d.tree.Marginal(v)
			if err != nil {
				return 0, err
			}
			if err := sink.WriteMarginal(step, v.ID(), marg); err != nil {
				return 0, err
			}
		}

		incoming = outgoing
	}

	if err := sink.WriteLogLikelihood(totalLogLik); err != nil {
		return 0, err
	}

	return totalLogLik, nil
}

// RunForwardBackward runs a forward sweep to completion (buffering each
// slice's observed row and forward interface message, since DataSource is
// a forward-only iterator), then a second, backward sweep carrying a
// backward message beta initialized to uniform at the last slice,
// incorporating beta_{t+1} before each slice's COLLECT+DISTRIBUTE. Smoothed
// per-variable marginals from the second pass are what reaches sink; the
// returned log-likelihood is the same accumulated forward quantity
// RunForward would report, since both passes observe the same evidence.
func (d *Driver) RunForwardBackward(src model.DataSource, sink model.DataSink) (float64, error) {
	var rows []map[int]int
	var forwardMsgs []*potential.Potential // forwardMsgs[t] is the message injected at step t (nil at t=0)

	var incoming *potential.Potential
	totalLogLik := 0.0

	for {
		row, ok, err := src.Next()
		if err != nil {
			return 0, err
		}
		if !ok {
			break
		}
		rows = append(rows, row)
		forwardMsgs = append(forwardMsgs, incoming)

		outgoing, stepLogLik, err := d.Step(row, nil, incoming)
		if err != nil {
			return 0, err
		}
		totalLogLik += stepLogLik
		incoming = outgoing
	}

	var beta *potential.Potential // beta_{t+1}; nil (vacuous/uniform) beyond the last slice
	for t := len(rows) - 1; t >= 0; t-- {
		if err := d.tree.ResetToInitial(); err != nil {
			return 0, err
		}
		if err := d.injectForwardMessage(forwardMsgs[t]); err != nil {
			return 0, err
		}
		if err := d.injectBackwardMessage(beta); err != nil {
			return 0, err
		}
		if err := d.insertEvidence(rows[t]); err != nil {
			return 0, err
		}
		if err := d.tree.MakeConsistent(d.rootIndex()); err != nil {
			return 0, err
		}
		if err := d.normalizeByMass(d.massAtRoot()); err != nil {
			return 0, err
		}

		for _, v := range d.vars {
			marg, err := d.tree.Marginal(v)
			if err != nil {
				return 0, err
			}
			if err := sink.WriteMarginal(t, v.ID(), marg); err != nil {
				return 0, err
			}
		}

		next, err := d.extractBackwardMessage()
		if err != nil {
			return 0, err
		}
		// The in_clique marginal still carries the forward message folded in
		// at this slice; dividing it back out leaves only the evidence from
		// slice t onward, so earlier slices do not count it twice.
		if next != nil && forwardMsgs[t] != nil {
			mapping, err := potential.MappingInto(forwardMsgs[t].Vars(), next.Vars())
			if err != nil {
				return 0, err
			}
			if err := next.Update(nil, forwardMsgs[t], mapping); err != nil {
				return 0, err
			}
		}
		beta = next
	}

	if err := sink.WriteLogLikelihood(totalLogLik); err != nil {
		return 0, err
	}

	return totalLogLik, nil
}
