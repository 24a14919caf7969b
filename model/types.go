package model

import (
	"github.com/CrazyPandaXJ/nip/potential"
	"github.com/CrazyPandaXJ/nip/variable"
)

// Model is the value a Loader returns: a populated variable table plus,
// for every variable with parents, the conditional probability potential
// P(child|parents) keyed by the child's id; a variable with no parents may
// carry a prior under the same key. DBN annotations (Variable.Next,
// Variable.Interface) are already attached to the variables in Variables.
type Model struct {
	Variables []*variable.Variable
	CPTs      map[int]*potential.Potential
}

// ByID looks up a variable by its id, for Loader implementations and
// callers that only have an id on hand (e.g. a DataSource row key).
func (m *Model) ByID(id int) (*variable.Variable, error) {
	for _, v := range m.Variables {
		if v.ID() == id {
			return v, nil
		}
	}

	return nil, ErrNotFound
}

// Loader parses an external network description (e.g. a HUGIN .net file)
// into a Model. Concrete loaders are out of scope; this is the contract
// compiler.Compile and dbn.Driver are built against.
type Loader interface {
	Load() (*Model, error)
}

// DataSource yields successive rows of observations, one time-slice at a
// time. A row maps a variable id to its observed state index, or to
// MissingState when the variable was not observed on that row. ok is false
// once the source is exhausted.
type DataSource interface {
	Next() (row map[int]int, ok bool, err error)
}

// DataSink receives per-step inference results: the marginal distribution
// of a variable at a given step, and the accumulated log-likelihood of an
// observation sequence once a run completes.
type DataSink interface {
	WriteMarginal(step int, variable int, dist []float64) error
	WriteLogLikelihood(logLik float64) error
}
