package variable

import "fmt"

// MaxSymbolLen is the maximum length, in bytes, of a Variable's short symbol.
const MaxSymbolLen = 20

// MaxNameLen is the maximum length, in bytes, of a Variable's verbose name.
const MaxNameLen = 40

// InterfaceFlag marks a Variable's role at a DBN time-slice boundary.
// None is the default; Outgoing marks a variable belonging to the
// outgoing interface of slice t (the set that, together, d-separates
// slice t from slice t+1); OldOutgoing marks the corresponding variable
// in slice t+1 that receives the interface message.
type InterfaceFlag int

const (
	// None marks a variable with no DBN interface role.
	None InterfaceFlag = iota
	// Outgoing marks a variable in the outgoing interface of a time-slice.
	Outgoing
	// OldOutgoing marks the receiving variable in the following time-slice.
	OldOutgoing
)

// String renders the InterfaceFlag for logging and error messages.
func (f InterfaceFlag) String() string {
	switch f {
	case None:
		return "none"
	case Outgoing:
		return "outgoing"
	case OldOutgoing:
		return "old-outgoing"
	default:
		return fmt.Sprintf("InterfaceFlag(%d)", int(f))
	}
}

// Variable is the identity of a categorical random variable.
//
// Two variables are equal iff their ids are equal; id is assigned once at
// construction and never reused within a session. Parents records the CPT
// structure (P(self | Parents...)); Likelihood is reset to all-ones on
// construction and mutated in place as evidence is entered and retracted.
//
// FamilyClique is a non-owning back-reference: the index, into the
// compiled jointree.JoinTree's clique arena, of the clique holding this
// variable's family (itself union its parents). It is -1 until
// compiler.Compile assigns it.
type Variable struct {
	id          int
	symbol      string
	name        string
	cardinality int
	states      []string
	parents     []*Variable
	likelihood  []float64

	// Next names the variable, in the following DBN time-slice, that
	// receives this variable's value when this variable carries the
	// Outgoing interface flag. Nil for variables with no such link.
	Next *Variable

	// Interface marks this variable's role at a time-slice boundary.
	Interface InterfaceFlag

	// FamilyClique is the index of the owning clique in a compiled
	// junction tree, or -1 if the variable has not been compiled yet.
	FamilyClique int
}

// New constructs a Variable with the given id, symbol, verbose name,
// ordered state labels, and parent list. Cardinality is len(states).
// The likelihood vector is initialized to all 1.0 (uninformative).
//
// Fails with ErrEmptySymbol, ErrSymbolTooLong, ErrNameTooLong, or
// ErrInvalidCardinality (when states is empty).
func New(id int, symbol, name string, states []string, parents []*Variable) (*Variable, error) {
	if symbol == "" {
		return nil, ErrEmptySymbol
	}
	if len(symbol) > MaxSymbolLen {
		return nil, ErrSymbolTooLong
	}
	if len(name) > MaxNameLen {
		return nil, ErrNameTooLong
	}
	if len(states) == 0 {
		return nil, ErrInvalidCardinality
	}

	// Defensive copies: the caller's slices must not alias our storage.
	ownStates := make([]string, len(states))
	copy(ownStates, states)
	ownParents := make([]*Variable, len(parents))
	copy(ownParents, parents)

	v := &Variable{
		id:           id,
		symbol:       symbol,
		name:         name,
		cardinality:  len(states),
		states:       ownStates,
		parents:      ownParents,
		likelihood:   make([]float64, len(states)),
		Interface:    None,
		FamilyClique: -1,
	}
	v.ResetLikelihood()

	return v, nil
}

// ID returns the variable's stable identifier.
func (v *Variable) ID() int { return v.id }

// Symbol returns the variable's short symbol.
func (v *Variable) Symbol() string { return v.symbol }

// Name returns the variable's verbose name.
func (v *Variable) Name() string { return v.name }

// Cardinality returns the number of states this variable can take.
func (v *Variable) Cardinality() int { return v.cardinality }

// States returns the ordered state labels. The returned slice must not be
// mutated by the caller.
func (v *Variable) States() []string { return v.states }

// Parents returns this variable's parent list (for CPT structure). The
// returned slice must not be mutated by the caller.
func (v *Variable) Parents() []*Variable { return v.parents }

// Likelihood returns the current cached likelihood vector. The returned
// slice must not be mutated directly; use SetLikelihood or ResetLikelihood.
func (v *Variable) Likelihood() []float64 { return v.likelihood }

// SetLikelihood overwrites the cached likelihood vector. len(lik) must
// equal Cardinality(); otherwise ErrLikelihoodLenMismatch is returned.
func (v *Variable) SetLikelihood(lik []float64) error {
	if len(lik) != v.cardinality {
		return ErrLikelihoodLenMismatch
	}
	copy(v.likelihood, lik)

	return nil
}

// ResetLikelihood restores the likelihood vector to all 1.0, the
// uninformative baseline used at load time and after retraction.
func (v *Variable) ResetLikelihood() {
	for i := range v.likelihood {
		v.likelihood[i] = 1.0
	}
}

// Indicator builds a hard-evidence likelihood vector: 1.0 at state i, 0.0
// elsewhere. Fails with ErrUnknownState if i is out of range.
func (v *Variable) Indicator(state int) ([]float64, error) {
	if state < 0 || state >= v.cardinality {
		return nil, ErrUnknownState
	}
	lik := make([]float64, v.cardinality)
	lik[state] = 1.0

	return lik, nil
}

// Equal reports whether two variables share the same id.
func (v *Variable) Equal(other *Variable) bool {
	if v == nil || other == nil {
		return v == other
	}

	return v.id == other.id
}

// String renders the variable as "symbol(id)" for logging and error messages.
func (v *Variable) String() string {
	return fmt.Sprintf("%s(%d)", v.symbol, v.id)
}
