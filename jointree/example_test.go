package jointree_test

import (
	"fmt"

	"github.com/CrazyPandaXJ/nip/jointree"
	"github.com/CrazyPandaXJ/nip/potential"
	"github.com/CrazyPandaXJ/nip/variable"
)

// ExampleJoinTree_MakeConsistent assembles the three-node chain A->B->C as
// two cliques {A,B},{B,C} linked by a sepset on B, folds in P(A), P(B|A),
// P(C|B), makes the tree consistent, and prints the leaf's marginal.
func ExampleJoinTree_MakeConsistent() {
	a, _ := variable.New(0, "A", "", []string{"0", "1"}, nil)
	b, _ := variable.New(1, "B", "", []string{"0", "1"}, []*variable.Variable{a})
	c, _ := variable.New(2, "C", "", []string{"0", "1"}, []*variable.Variable{b})

	tree, err := jointree.New(
		[][]*variable.Variable{{a, b}, {b, c}},
		[]jointree.SepsetLink{{C1: 0, C2: 1, Vars: []*variable.Variable{b}}},
	)
	if err != nil {
		fmt.Println(err)

		return
	}
	a.FamilyClique, b.FamilyClique, c.FamilyClique = 0, 0, 1

	pa, _ := potential.New([]*variable.Variable{a}, []float64{0.3, 0.7})
	pb, _ := potential.New([]*variable.Variable{b, a}, []float64{0.9, 0.1, 0.2, 0.8})
	pc, _ := potential.New([]*variable.Variable{c, b}, []float64{0.8, 0.2, 0.3, 0.7})

	if err := tree.Cliques()[0].FoldCPT(pa); err != nil {
		fmt.Println(err)

		return
	}
	if err := tree.Cliques()[0].FoldCPT(pb); err != nil {
		fmt.Println(err)

		return
	}
	if err := tree.Cliques()[1].FoldCPT(pc); err != nil {
		fmt.Println(err)

		return
	}
	tree.SnapshotInitial()

	if err := tree.MakeConsistent(0); err != nil {
		fmt.Println(err)

		return
	}

	marg, err := tree.Marginal(c)
	if err != nil {
		fmt.Println(err)

		return
	}
	fmt.Printf("P(C=0)=%.3f P(C=1)=%.3f\n", marg[0], marg[1])

	// Output:
	// P(C=0)=0.505 P(C=1)=0.495
}
