package compiler_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CrazyPandaXJ/nip/compiler"
	"github.com/CrazyPandaXJ/nip/graph"
	"github.com/CrazyPandaXJ/nip/potential"
	"github.com/CrazyPandaXJ/nip/variable"
)

func newVar(t *testing.T, id int, symbol string, card int, parents []*variable.Variable) *variable.Variable {
	t.Helper()
	states := make([]string, card)
	for i := range states {
		states[i] = symbol
	}
	v, err := variable.New(id, symbol, symbol, states, parents)
	require.NoError(t, err)

	return v
}

// TestTriangulateFourCycle checks that a 4-cycle A-B-C-D-A triangulates
// to exactly two cliques sharing one sepset
// of size 2.
func TestTriangulateFourCycle(t *testing.T) {
	t.Parallel()

	a := newVar(t, 0, "A", 2, nil)
	b := newVar(t, 1, "B", 2, nil)
	c := newVar(t, 2, "C", 2, nil)
	d := newVar(t, 3, "D", 2, nil)

	g := graph.New()
	require.NoError(t, g.AddVariable(a))
	require.NoError(t, g.AddVariable(b))
	require.NoError(t, g.AddVariable(c))
	require.NoError(t, g.AddVariable(d))
	// Build the 4-cycle from one directed edge per side; no node has two
	// parents, so moralization adds nothing and Undirect yields the
	// undirected 4-cycle.
	require.NoError(t, g.AddEdge(a.ID(), b.ID()))
	require.NoError(t, g.AddEdge(b.ID(), c.ID()))
	require.NoError(t, g.AddEdge(c.ID(), d.ID()))
	require.NoError(t, g.AddEdge(d.ID(), a.ID()))

	cpts := map[int]*potential.Potential{}
	res, err := compiler.Compile(g, cpts)
	require.NoError(t, err)

	assert.Len(t, res.Tree.Cliques(), 2)
	assert.Len(t, res.Tree.Sepsets(), 1)
	assert.Len(t, res.Tree.Sepsets()[0].Vars(), 2)
}

// TestCompileChainMatchesHandBuiltTree implements S2 end to end through
// Compile rather than a hand-assembled jointree.JoinTree.
func TestCompileChainMatchesHandBuiltTree(t *testing.T) {
	t.Parallel()

	a := newVar(t, 0, "A", 2, nil)
	b := newVar(t, 1, "B", 2, []*variable.Variable{a})
	c := newVar(t, 2, "C", 2, []*variable.Variable{b})

	g := graph.New()
	require.NoError(t, g.AddVariable(a))
	require.NoError(t, g.AddVariable(b))
	require.NoError(t, g.AddVariable(c))
	require.NoError(t, g.AddEdge(a.ID(), b.ID()))
	require.NoError(t, g.AddEdge(b.ID(), c.ID()))

	pa, err := potential.New([]*variable.Variable{a}, []float64{0.3, 0.7})
	require.NoError(t, err)
	pb, err := potential.New([]*variable.Variable{b, a}, []float64{0.9, 0.1, 0.2, 0.8})
	require.NoError(t, err)
	pc, err := potential.New([]*variable.Variable{c, b}, []float64{0.8, 0.2, 0.3, 0.7})
	require.NoError(t, err)

	cpts := map[int]*potential.Potential{a.ID(): pa, b.ID(): pb, c.ID(): pc}
	res, err := compiler.Compile(g, cpts)
	require.NoError(t, err)

	root := c.FamilyClique
	require.NoError(t, res.Tree.MakeConsistent(root))

	marg, err := res.Tree.Marginal(c)
	require.NoError(t, err)
	assert.InDelta(t, 0.505, marg[0], 1e-9)
	assert.InDelta(t, 0.495, marg[1], 1e-9)
}

// TestCompileMissingCPDFails ensures a variable with parents but no entry
// in the cpts map is rejected rather than silently left uniform.
func TestCompileMissingCPDFails(t *testing.T) {
	t.Parallel()

	a := newVar(t, 0, "A", 2, nil)
	b := newVar(t, 1, "B", 2, []*variable.Variable{a})

	g := graph.New()
	require.NoError(t, g.AddVariable(a))
	require.NoError(t, g.AddVariable(b))
	require.NoError(t, g.AddEdge(a.ID(), b.ID()))

	_, err := compiler.Compile(g, map[int]*potential.Potential{})
	assert.ErrorIs(t, err, compiler.ErrInvalidArgument)
}

// TestCompileInterfaceCliqueSelection checks OutClique/InClique are
// assigned when a DBN interface is declared.
func TestCompileInterfaceCliqueSelection(t *testing.T) {
	t.Parallel()

	x0 := newVar(t, 0, "X0", 2, nil)
	x1 := newVar(t, 1, "X1", 2, []*variable.Variable{x0})
	x0.Interface = variable.Outgoing
	x0.Next = x1
	x1.Interface = variable.OldOutgoing

	g := graph.New()
	require.NoError(t, g.AddVariable(x0))
	require.NoError(t, g.AddVariable(x1))
	require.NoError(t, g.AddEdge(x0.ID(), x1.ID()))

	px0, err := potential.New([]*variable.Variable{x0}, []float64{0.5, 0.5})
	require.NoError(t, err)
	px1, err := potential.New([]*variable.Variable{x1, x0}, []float64{0.9, 0.2, 0.1, 0.8})
	require.NoError(t, err)

	res, err := compiler.Compile(g, map[int]*potential.Potential{x0.ID(): px0, x1.ID(): px1})
	require.NoError(t, err)

	assert.GreaterOrEqual(t, res.OutClique, 0)
	assert.GreaterOrEqual(t, res.InClique, 0)
}
