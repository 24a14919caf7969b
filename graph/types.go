package graph

import "github.com/CrazyPandaXJ/nip/variable"

// Graph is a labeled directed adjacency matrix over a fixed variable set.
//
// Invariant: A[i][i] is always false (no self-loops); edge directions are
// recorded as A[parent][child]=true. After Undirect, A is symmetric
// (A[i][j] == A[j][i] for all i,j).
type Graph struct {
	vars    []*variable.Variable
	idIndex map[int]int
	adj     [][]bool
}

// New constructs an empty Graph. Variables are added via AddVariable.
func New() *Graph {
	return &Graph{
		idIndex: make(map[int]int),
	}
}

// AddVariable appends v to the graph's fixed variable set, growing the
// adjacency matrix by one row and column. Fails with ErrNilVariable or
// ErrDuplicateID.
func (g *Graph) AddVariable(v *variable.Variable) error {
	if v == nil {
		return ErrNilVariable
	}
	if _, exists := g.idIndex[v.ID()]; exists {
		return ErrDuplicateID
	}

	idx := len(g.vars)
	g.vars = append(g.vars, v)
	g.idIndex[v.ID()] = idx

	for i := range g.adj {
		g.adj[i] = append(g.adj[i], false)
	}
	row := make([]bool, len(g.vars))
	g.adj = append(g.adj, row)

	return nil
}

// Size returns the number of variables in the graph.
func (g *Graph) Size() int { return len(g.vars) }

// Variables returns the fixed variable array, in insertion order. The
// returned slice must not be mutated by the caller.
func (g *Graph) Variables() []*variable.Variable { return g.vars }

// indexOf resolves a variable id to its row/column index.
func (g *Graph) indexOf(id int) (int, error) {
	idx, ok := g.idIndex[id]
	if !ok {
		return 0, ErrUnknownVariable
	}

	return idx, nil
}

// AddEdge records a directed edge parent→child: A[parent][child]=true.
// Preserves any existing edges; adding the same edge twice is a no-op.
func (g *Graph) AddEdge(parentID, childID int) error {
	pi, err := g.indexOf(parentID)
	if err != nil {
		return err
	}
	ci, err := g.indexOf(childID)
	if err != nil {
		return err
	}
	if pi == ci {
		return nil // no self-loops
	}
	g.adj[pi][ci] = true

	return nil
}

// IsChild reports whether A[parent][child] is set.
func (g *Graph) IsChild(parentID, childID int) (bool, error) {
	pi, err := g.indexOf(parentID)
	if err != nil {
		return false, err
	}
	ci, err := g.indexOf(childID)
	if err != nil {
		return false, err
	}

	return g.adj[pi][ci], nil
}

// Neighbors writes into out the indices (into Variables()) adjacent to
// the variable at index vIdx in either direction (A[vIdx][j] or
// A[j][vIdx]), and returns the count written. ErrBufferTooSmall is
// returned when out has fewer slots than the variable has neighbors; a
// buffer of Size()-1 is always large enough.
func (g *Graph) Neighbors(vIdx int, out []int) (int, error) {
	if vIdx < 0 || vIdx >= len(g.vars) {
		return 0, ErrUnknownVariable
	}
	count := 0
	for j := 0; j < len(g.vars); j++ {
		if j == vIdx {
			continue
		}
		if g.adj[vIdx][j] || g.adj[j][vIdx] {
			if count >= len(out) {
				return 0, ErrBufferTooSmall
			}
			out[count] = j
			count++
		}
	}

	return count, nil
}

// IndexOfID exposes indexOf for callers (the compiler) that need to map a
// variable id onto its adjacency-matrix row/column.
func (g *Graph) IndexOfID(id int) (int, error) { return g.indexOf(id) }
