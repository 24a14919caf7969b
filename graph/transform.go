package graph

import "github.com/CrazyPandaXJ/nip/variable"

// parentsOf returns the indices of all variables p such that A[p][vIdx].
func (g *Graph) parentsOf(vIdx int) []int {
	parents := make([]int, 0, 4)
	for p := 0; p < len(g.vars); p++ {
		if p != vIdx && g.adj[p][vIdx] {
			parents = append(parents, p)
		}
	}

	return parents
}

// connectUndirected sets A[i][j] and A[j][i], the moralization/interface
// primitive "add an undirected edge between i and j". It is a no-op for
// i==j and preserves any edges already present.
func (g *Graph) connectUndirected(i, j int) {
	if i == j {
		return
	}
	g.adj[i][j] = true
	g.adj[j][i] = true
}

// Moralize adds an undirected edge between every pair of co-parents: for
// every node v and every pair (p1,p2) of its parents with id(p1)<id(p2),
// connects p1—p2. Existing edges are preserved.
func (g *Graph) Moralize() {
	for v := 0; v < len(g.vars); v++ {
		parents := g.parentsOf(v)
		for a := 0; a < len(parents); a++ {
			for b := a + 1; b < len(parents); b++ {
				p1, p2 := parents[a], parents[b]
				if g.vars[p1].ID() > g.vars[p2].ID() {
					p1, p2 = p2, p1
				}
				g.connectUndirected(p1, p2)
			}
		}
	}
}

// AugmentInterface connects every pair of variables carrying the given
// DBN interface flag (variable.Outgoing or variable.OldOutgoing), so that
// the interface becomes a clique under triangulation and a clean
// inter-slice message can be extracted from a single host clique.
func (g *Graph) AugmentInterface(flag variable.InterfaceFlag) {
	members := make([]int, 0, 4)
	for i, v := range g.vars {
		if v.Interface == flag {
			members = append(members, i)
		}
	}
	for a := 0; a < len(members); a++ {
		for b := a + 1; b < len(members); b++ {
			g.connectUndirected(members[a], members[b])
		}
	}
}

// Undirect makes the adjacency matrix symmetric: A ← A ∨ Aᵀ.
func (g *Graph) Undirect() {
	n := len(g.vars)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if g.adj[i][j] || g.adj[j][i] {
				g.adj[i][j] = true
				g.adj[j][i] = true
			}
		}
	}
}
