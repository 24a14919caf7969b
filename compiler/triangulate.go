package compiler

import (
	"github.com/CrazyPandaXJ/nip/graph"
	"github.com/CrazyPandaXJ/nip/heap"
)

// workingGraph is the compiler's private undirected adjacency copy used
// during triangulation. Fill-in edges are added here; the caller's
// *graph.Graph is never mutated past the moralize/interface/undirect
// steps that happen before triangulation begins.
type workingGraph struct {
	n   int
	adj [][]bool
}

func newWorkingGraph(g *graph.Graph) *workingGraph {
	n := g.Size()
	adj := make([][]bool, n)
	vars := g.Variables()
	for i := range adj {
		adj[i] = make([]bool, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			connected, _ := g.IsChild(vars[i].ID(), vars[j].ID())
			if connected {
				adj[i][j] = true
				adj[j][i] = true
			}
		}
	}

	return &workingGraph{n: n, adj: adj}
}

func (w *workingGraph) connect(i, j int) {
	if i == j {
		return
	}
	w.adj[i][j] = true
	w.adj[j][i] = true
}

// activeNeighbors returns the indices of i's neighbors that have not yet
// been eliminated.
func (w *workingGraph) activeNeighbors(i int, eliminated []bool) []int {
	out := make([]int, 0, 4)
	for j := 0; j < w.n; j++ {
		if j != i && w.adj[i][j] && !eliminated[j] {
			out = append(out, j)
		}
	}

	return out
}

// cluster builds i's elimination cluster (itself plus its active
// neighbors, self always first) and the two-key score it would cost to
// eliminate i right now: primary is the number of fill-in edges the
// cluster would introduce; secondary is the product of cluster member
// cardinalities.
func (w *workingGraph) cluster(i int, eliminated []bool, cardinality func(int) int) ([]int, int, int) {
	neighbors := w.activeNeighbors(i, eliminated)
	members := make([]int, 0, len(neighbors)+1)
	members = append(members, i)
	members = append(members, neighbors...)

	fillIn := 0
	for a := 0; a < len(members); a++ {
		for b := a + 1; b < len(members); b++ {
			if !w.adj[members[a]][members[b]] {
				fillIn++
			}
		}
	}

	weight := 1
	for _, m := range members {
		weight *= cardinality(m)
	}

	return members, fillIn, weight
}

// triangulate runs greedy minimum-weight-elimination triangulation over w,
// returning one elimination cluster per variable in elimination order. The
// caller applies the maximality filter afterward: candidate clusters that
// are subsets of previously accepted clusters get discarded.
//
// Stage 1 (Validate): none — w and cardinality are trusted internal inputs.
// Stage 2 (Prepare): score every variable's initial elimination cluster and
// seed the heap, one item per variable.
// Stage 3 (Execute): repeatedly pop the cheapest cluster, eliminate its
// variable, connect its surviving neighbors (fill-in), and rescore every
// affected neighbor's heap entry.
// Stage 4 (Finalize): return the accepted clusters in elimination order.
func triangulate(w *workingGraph, cardinality func(int) int) [][]int {
	// Stage 2: Prepare
	eliminated := make([]bool, w.n)
	itemOf := make([]*heap.Item, w.n)
	h := heap.New()

	for i := 0; i < w.n; i++ {
		members, fillIn, weight := w.cluster(i, eliminated, cardinality)
		item := &heap.Item{
			Primary:   fillIn,
			Secondary: weight,
			Cluster:   &heap.ClusterPayload{Vars: members},
		}
		h.Push(item)
		itemOf[i] = item
	}

	// Stage 3: Execute
	clusters := make([][]int, 0, w.n)
	for len(clusters) < w.n {
		item, err := h.Pop()
		if err != nil {
			break // heap exhausted before every variable was eliminated
		}
		v := item.Cluster.Vars[0]

		members := make([]int, len(item.Cluster.Vars))
		copy(members, item.Cluster.Vars)
		clusters = append(clusters, members)

		neighbors := members[1:]
		for a := 0; a < len(neighbors); a++ {
			for b := a + 1; b < len(neighbors); b++ {
				w.connect(neighbors[a], neighbors[b])
			}
		}
		eliminated[v] = true

		for _, u := range neighbors {
			if eliminated[u] {
				continue
			}
			newMembers, fillIn, weight := w.cluster(u, eliminated, cardinality)
			itemOf[u].Cluster.Vars = newMembers
			itemOf[u].Primary = fillIn
			itemOf[u].Secondary = weight
			h.Fix(itemOf[u])
		}
	}

	// Stage 4: Finalize
	return clusters
}

// maximalCliques discards every cluster that is a subset of another
// cluster in the list, preserving the relative order of the surviving
// clusters.
func maximalCliques(clusters [][]int) [][]int {
	sets := make([]map[int]bool, len(clusters))
	for i, c := range clusters {
		set := make(map[int]bool, len(c))
		for _, m := range c {
			set[m] = true
		}
		sets[i] = set
	}

	isSubset := func(small, big map[int]bool) bool {
		if len(small) > len(big) {
			return false
		}
		for m := range small {
			if !big[m] {
				return false
			}
		}

		return true
	}

	accepted := make([][]int, 0, len(clusters))
	for i, c := range clusters {
		subsumed := false
		for j := range clusters {
			if i == j {
				continue
			}
			if isSubset(sets[i], sets[j]) && (len(sets[i]) < len(sets[j]) || j < i) {
				subsumed = true

				break
			}
		}
		if !subsumed {
			accepted = append(accepted, c)
		}
	}

	return accepted
}
