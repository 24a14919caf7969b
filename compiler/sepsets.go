package compiler

import "github.com/CrazyPandaXJ/nip/heap"

// sepsetCandidate names one of the C(k,2) candidate sepsets considered
// during spanning-tree construction: the two accepted-clique indices it
// would connect and their intersection (as working-graph variable
// indices).
type sepsetCandidate struct {
	c1, c2 int
	vars   []int
}

// intersect returns the sorted intersection of two variable-index sets.
func intersect(a, b []int) []int {
	set := make(map[int]bool, len(a))
	for _, m := range a {
		set[m] = true
	}
	var out []int
	for _, m := range b {
		if set[m] {
			out = append(out, m)
		}
	}

	return out
}

// selectSepsets enumerates every pair of accepted cliques, scores each
// candidate sepset by (−|intersection|, sum of host-clique state-space
// weights), and greedily accepts k−1 of them via a union-find spanning
// tree.
func selectSepsets(cliques [][]int, cardinality func(int) int) []sepsetCandidate {
	k := len(cliques)
	weight := make([]int, k)
	for i, c := range cliques {
		w := 1
		for _, m := range c {
			w *= cardinality(m)
		}
		weight[i] = w
	}

	candidates := make([]sepsetCandidate, 0, k*(k-1)/2)
	h := heap.New()
	for i := 0; i < k; i++ {
		for j := i + 1; j < k; j++ {
			vars := intersect(cliques[i], cliques[j])
			idx := len(candidates)
			candidates = append(candidates, sepsetCandidate{c1: i, c2: j, vars: vars})
			h.Push(&heap.Item{
				Primary:   -len(vars),
				Secondary: weight[i] + weight[j],
				Sepset:    &heap.SepsetPayload{SepsetIndex: idx},
			})
		}
	}

	uf := newUnionFind(k)
	accepted := make([]sepsetCandidate, 0, k-1)
	for len(accepted) < k-1 {
		item, err := h.Pop()
		if err != nil {
			break
		}
		cand := candidates[item.Sepset.SepsetIndex]
		if uf.find(cand.c1) == uf.find(cand.c2) {
			continue // would close a cycle; discarded
		}
		uf.union(cand.c1, cand.c2)
		accepted = append(accepted, cand)
	}

	return accepted
}
