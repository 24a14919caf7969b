package jointree

import (
	"github.com/CrazyPandaXJ/nip/potential"
	"github.com/CrazyPandaXJ/nip/variable"
)

// Clique is a maximal set of variables jointly represented by a single
// potential in the junction tree: the product of all CPTs assigned to it
// times accumulated evidence. mark is scratch state for COLLECT/DISTRIBUTE
// traversal, reset by unmarkAll before every pass.
type Clique struct {
	vars      []*variable.Variable
	potential *potential.Potential
	sepsets   []int // indices into JoinTree.sepsets incident to this clique
	mark      bool
}

// newClique builds a Clique over vars (sorted ascending by id), with its
// potential initialized to all-1.0 (CPT folding happens afterwards via
// InitPotential).
func newClique(vars []*variable.Variable) (*Clique, error) {
	sorted := sortedByID(vars)
	pot, err := potential.New(sorted, nil)
	if err != nil {
		return nil, err
	}

	return &Clique{vars: sorted, potential: pot}, nil
}

// Vars returns the clique's variable set, sorted ascending by id. The
// returned slice must not be mutated by the caller.
func (c *Clique) Vars() []*variable.Variable { return c.vars }

// Potential returns the clique's current potential.
func (c *Clique) Potential() *potential.Potential { return c.potential }

// Contains reports whether v belongs to this clique.
func (c *Clique) Contains(v *variable.Variable) bool {
	_, err := positionOf(v, c.vars)

	return err == nil
}

// ContainsAll reports whether every variable in vars belongs to this clique.
func (c *Clique) ContainsAll(vars []*variable.Variable) bool {
	for _, v := range vars {
		if !c.Contains(v) {
			return false
		}
	}

	return true
}

// FoldCPT multiplies this clique's potential by cpt, mapping cpt's own
// variable order (typically child-then-parents) onto this clique's
// variable order via potential.MappingInto. This is how a conditional
// probability table is folded into its host clique at tree construction.
func (c *Clique) FoldCPT(cpt *potential.Potential) error {
	mapping, err := potential.MappingInto(cpt.Vars(), c.vars)
	if err != nil {
		return err
	}

	return c.potential.InitPotential(cpt, mapping)
}

// Sepset is the variable intersection of two neighboring cliques, with
// two double-buffered potentials (pNew, pOld) acting as the message
// channel between them: an explicit two-slot field, not pointer
// shuffling — project in message.go copies pNew into pOld before
// recomputing pNew.
type Sepset struct {
	c1, c2 int // clique arena indices of the two host cliques
	vars   []*variable.Variable
	pNew   *potential.Potential
	pOld   *potential.Potential
}

// newSepset builds a Sepset over the intersection of the two cliques'
// variable sets, both potentials initialized to all-1.0.
func newSepset(c1, c2 int, vars []*variable.Variable) (*Sepset, error) {
	sorted := sortedByID(vars)
	pNew, err := potential.New(sorted, nil)
	if err != nil {
		return nil, err
	}
	pOld, err := potential.New(sorted, nil)
	if err != nil {
		return nil, err
	}

	return &Sepset{c1: c1, c2: c2, vars: sorted, pNew: pNew, pOld: pOld}, nil
}

// Vars returns the sepset's variable set, sorted ascending by id.
func (s *Sepset) Vars() []*variable.Variable { return s.vars }

// Current returns the sepset's current (post-projection) potential.
func (s *Sepset) Current() *potential.Potential { return s.pNew }

// Previous returns the sepset's prior (pre-projection) potential.
func (s *Sepset) Previous() *potential.Potential { return s.pOld }

// JoinTree is a connected acyclic graph of cliques linked by sepsets,
// satisfying the running intersection property. The tree owns its
// cliques and sepsets outright (arena-and-index ownership); a
// variable's family-clique back-reference is a plain int index into
// Cliques(), assigned by compiler.Compile.
type JoinTree struct {
	cliques  []*Clique
	sepsets  []*Sepset
	allVars  []*variable.Variable // union of all clique vars, for full-network reset
	initialC []*potential.Potential
	initialS []potSnapshot
	evidence []evidenceEntry
}

type potSnapshot struct {
	pNew *potential.Potential
	pOld *potential.Potential
}

type evidenceEntry struct {
	v   *variable.Variable
	lik []float64
}

// New assembles a JoinTree from a set of cliques (each a variable set)
// and a set of sepsets (each naming the two clique indices it connects,
// by position in cliqueVarSets). It is the low-level constructor used by
// compiler.Compile; cliqueVarSets[i] becomes Cliques()[i].
//
// Every clique/sepset potential starts as all-1.0. The caller folds CPTs
// in via Clique.FoldCPT on the returned tree and then calls SnapshotInitial
// once to capture the CPT-initialized reference state.
func New(cliqueVarSets [][]*variable.Variable, sepsetLinks []SepsetLink) (*JoinTree, error) {
	cliques := make([]*Clique, len(cliqueVarSets))
	for i, vars := range cliqueVarSets {
		c, err := newClique(vars)
		if err != nil {
			return nil, err
		}
		cliques[i] = c
	}

	tree := &JoinTree{cliques: cliques}

	sepsets := make([]*Sepset, len(sepsetLinks))
	for i, link := range sepsetLinks {
		if link.C1 < 0 || link.C1 >= len(cliques) || link.C2 < 0 || link.C2 >= len(cliques) {
			return nil, ErrInvalidArgument
		}
		s, err := newSepset(link.C1, link.C2, link.Vars)
		if err != nil {
			return nil, err
		}
		sepsets[i] = s
		cliques[link.C1].sepsets = append(cliques[link.C1].sepsets, i)
		cliques[link.C2].sepsets = append(cliques[link.C2].sepsets, i)
	}
	tree.sepsets = sepsets

	tree.allVars = unionVars(cliques)
	for _, v := range tree.allVars {
		v.ResetLikelihood()
	}

	return tree, nil
}

// SepsetLink names the two host clique indices and the intersection
// variable set for one sepset, as produced by the compiler's sepset
// selection pass.
type SepsetLink struct {
	C1, C2 int
	Vars   []*variable.Variable
}

func unionVars(cliques []*Clique) []*variable.Variable {
	seen := make(map[int]bool)
	var out []*variable.Variable
	for _, c := range cliques {
		for _, v := range c.vars {
			if !seen[v.ID()] {
				seen[v.ID()] = true
				out = append(out, v)
			}
		}
	}

	return out
}

// Cliques returns the clique arena. The returned slice must not be
// mutated by the caller.
func (t *JoinTree) Cliques() []*Clique { return t.cliques }

// Sepsets returns the sepset arena. The returned slice must not be
// mutated by the caller.
func (t *JoinTree) Sepsets() []*Sepset { return t.sepsets }

// FindCliqueContaining returns the index of the first clique (in arena
// order) whose variable set is a superset of vars. Used at compile time
// both to assign each variable's family clique (vars = self ∪ parents)
// and to select the out_clique/in_clique that hosts a DBN interface in
// its entirety.
func (t *JoinTree) FindCliqueContaining(vars []*variable.Variable) (int, bool) {
	for i, c := range t.cliques {
		if c.ContainsAll(vars) {
			return i, true
		}
	}

	return 0, false
}

// SnapshotInitial records the current clique/sepset potentials as the
// CPT-initialized reference state used by ResetToInitial and the
// automatic retraction triggered by EnterEvidence. Called once by
// compiler.Compile after every CPT has been folded in via InitPotential.
func (t *JoinTree) SnapshotInitial() {
	t.initialC = make([]*potential.Potential, len(t.cliques))
	for i, c := range t.cliques {
		t.initialC[i] = c.potential.Clone()
	}
	t.initialS = make([]potSnapshot, len(t.sepsets))
	for i, s := range t.sepsets {
		t.initialS[i] = potSnapshot{pNew: s.pNew.Clone(), pOld: s.pOld.Clone()}
	}
}

func (t *JoinTree) unmarkAll() {
	for _, c := range t.cliques {
		c.mark = false
	}
}

func (t *JoinTree) neighborSepsets(cIdx int) []int {
	return t.cliques[cIdx].sepsets
}

func (t *JoinTree) otherClique(sIdx, excludeIdx int) int {
	s := t.sepsets[sIdx]
	if s.c1 == excludeIdx {
		return s.c2
	}

	return s.c1
}
