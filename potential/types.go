package potential

import (
	"math/rand"

	"github.com/CrazyPandaXJ/nip/variable"
)

// Potential is a dense row-major multidimensional array of non-negative
// reals indexed by an ordered tuple of variables.
//
// Data entries must be non-negative; cardinalities must be positive;
// allocation size must exactly equal the product of cardinalities. A
// 0-dimensional Potential (empty Vars) is a scalar: Size()==1.
//
// Vars[0] is least significant in the flat-index formula:
//
//	flatIndex(i_0,...,i_{k-1}) = sum_j i_j * stride[j]
//	stride[0] = 1; stride[j] = stride[j-1] * Card[j-1]
//
// This lets NormalizeCPD treat each contiguous run of Card[0] entries as
// one conditional slice over the child variable (Vars[0]).
type Potential struct {
	vars    []*variable.Variable
	card    []int
	stride  []int
	data    []float64
	scratch []int // reusable index scratch, length len(vars)
}

// New allocates a Potential over vars. If data is nil, the potential is
// filled with 1.0 (the uninformative / "all evidence accepted" baseline);
// otherwise data is copied in and must have length exactly
// product(cardinalities).
//
// Fails with ErrInvalidArgument if any variable has non-positive
// cardinality, or if data is supplied with the wrong length.
func New(vars []*variable.Variable, data []float64) (*Potential, error) {
	card := make([]int, len(vars))
	for i, v := range vars {
		if v == nil {
			return nil, potentialErrorf("New", ErrNilArgument)
		}
		c := v.Cardinality()
		if c <= 0 {
			return nil, potentialErrorf("New", ErrInvalidArgument)
		}
		card[i] = c
	}

	size := 1
	for _, c := range card {
		size *= c
	}

	var own []float64
	if data == nil {
		own = make([]float64, size)
		for i := range own {
			own[i] = 1.0
		}
	} else {
		if len(data) != size {
			return nil, potentialErrorf("New", ErrInvalidArgument)
		}
		own = make([]float64, size)
		copy(own, data)
	}

	ownVars := make([]*variable.Variable, len(vars))
	copy(ownVars, vars)

	return &Potential{
		vars:    ownVars,
		card:    card,
		stride:  strides(card),
		data:    own,
		scratch: make([]int, len(vars)),
	}, nil
}

// NewScalar allocates a 0-dimensional potential holding value.
func NewScalar(value float64) *Potential {
	return &Potential{
		vars:    nil,
		card:    nil,
		stride:  nil,
		data:    []float64{value},
		scratch: nil,
	}
}

// strides computes stride[j] = product(card[0:j]), Vars[0] least significant.
func strides(card []int) []int {
	s := make([]int, len(card))
	running := 1
	for i, c := range card {
		s[i] = running
		running *= c
	}

	return s
}

// Dim returns the number of dimensions (variables) of P.
func (p *Potential) Dim() int { return len(p.vars) }

// Size returns len(P.data), the product of cardinalities (1 for a scalar).
func (p *Potential) Size() int { return len(p.data) }

// Vars returns the ordered variable tuple. The returned slice must not be
// mutated by the caller.
func (p *Potential) Vars() []*variable.Variable { return p.vars }

// Cardinalities returns the per-dimension cardinality vector. The returned
// slice must not be mutated by the caller.
func (p *Potential) Cardinalities() []int { return p.card }

// Data returns the flat backing array. The returned slice must not be
// mutated by the caller except through Set/Uniform/Random/etc.
func (p *Potential) Data() []float64 { return p.data }

// FlatIndex computes the flat offset for indices, via the row-major
// formula with Vars[0] least significant. Fails with ErrInvalidArgument if
// len(indices) != Dim() or any index is out of [0, card) range.
func (p *Potential) FlatIndex(indices []int) (int, error) {
	if len(indices) != len(p.vars) {
		return 0, potentialErrorf("FlatIndex", ErrInvalidArgument)
	}
	flat := 0
	for j, idx := range indices {
		if idx < 0 || idx >= p.card[j] {
			return 0, potentialErrorf("FlatIndex", ErrInvalidArgument)
		}
		flat += idx * p.stride[j]
	}

	return flat, nil
}

// InverseMapping recovers the index tuple for a flat offset, dividing and
// taking the remainder by the running stride from least to most
// significant dimension. flatIndex(InverseMapping(f)) == f for all f in
// [0, Size()) (FlatIndex and InverseMapping are mutual inverses).
//
// Fails with ErrInvalidArgument if flat is out of [0, Size()) range.
func (p *Potential) InverseMapping(flat int) ([]int, error) {
	if flat < 0 || flat >= len(p.data) {
		return nil, potentialErrorf("InverseMapping", ErrInvalidArgument)
	}
	out := make([]int, len(p.vars))
	remaining := flat
	for j, c := range p.card {
		out[j] = remaining % c
		remaining /= c
	}

	return out, nil
}

// Get returns the value at indices.
func (p *Potential) Get(indices []int) (float64, error) {
	flat, err := p.FlatIndex(indices)
	if err != nil {
		return 0, err
	}

	return p.data[flat], nil
}

// Set stores value at indices.
func (p *Potential) Set(indices []int, value float64) error {
	flat, err := p.FlatIndex(indices)
	if err != nil {
		return err
	}
	p.data[flat] = value

	return nil
}

// Uniform bulk-overwrites every entry with value.
func (p *Potential) Uniform(value float64) {
	for i := range p.data {
		p.data[i] = value
	}
}

// Random bulk-overwrites every entry with a uniform random value in
// [0,1) drawn from rng. If rng is nil, a new source seeded with 1 is
// used, so the fill is the same on every call.
func (p *Potential) Random(rng *rand.Rand) {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	for i := range p.data {
		p.data[i] = rng.Float64()
	}
}

// Clone returns a deep copy of P: identical Vars/Cardinalities and an
// independent copy of Data, used by Retract's reference snapshots and by
// the DBN driver's per-step CPT-initialized-state reset.
func (p *Potential) Clone() *Potential {
	vars := make([]*variable.Variable, len(p.vars))
	copy(vars, p.vars)
	card := make([]int, len(p.card))
	copy(card, p.card)
	stride := make([]int, len(p.stride))
	copy(stride, p.stride)
	data := make([]float64, len(p.data))
	copy(data, p.data)

	return &Potential{
		vars:    vars,
		card:    card,
		stride:  stride,
		data:    data,
		scratch: make([]int, len(vars)),
	}
}
