package dbn_test

import (
	"fmt"

	"github.com/CrazyPandaXJ/nip/compiler"
	"github.com/CrazyPandaXJ/nip/dbn"
	"github.com/CrazyPandaXJ/nip/graph"
	"github.com/CrazyPandaXJ/nip/potential"
	"github.com/CrazyPandaXJ/nip/variable"
)

// ExampleDriver_Step drives one time-slice of the canonical two-state HMM
// (stay-probability 0.7, emission accuracy 0.9/0.8) with a uniform prior
// on X0 and the observation Y=0, and prints the step's log-likelihood
// contribution and outgoing posterior over X.
func ExampleDriver_Step() {
	xOld, _ := variable.New(0, "Xold", "", []string{"0", "1"}, nil)
	x, _ := variable.New(1, "X", "", []string{"0", "1"}, []*variable.Variable{xOld})
	y, _ := variable.New(2, "Y", "", []string{"0", "1"}, []*variable.Variable{x})

	xOld.Interface = variable.OldOutgoing
	x.Interface = variable.Outgoing
	x.Next = xOld

	g := graph.New()
	_ = g.AddVariable(xOld)
	_ = g.AddVariable(x)
	_ = g.AddVariable(y)
	_ = g.AddEdge(xOld.ID(), x.ID())
	_ = g.AddEdge(x.ID(), y.ID())

	transition, _ := potential.New([]*variable.Variable{x, xOld}, []float64{0.7, 0.3, 0.3, 0.7})
	emission, _ := potential.New([]*variable.Variable{y, x}, []float64{0.9, 0.1, 0.2, 0.8})

	res, err := compiler.Compile(g, map[int]*potential.Potential{
		x.ID(): transition,
		y.ID(): emission,
	})
	if err != nil {
		fmt.Println(err)

		return
	}

	driver, err := dbn.NewDriver(res, []*variable.Variable{xOld, x, y})
	if err != nil {
		fmt.Println(err)

		return
	}

	outgoing, logLik, err := driver.Step(
		map[int]int{y.ID(): 0},
		map[int][]float64{xOld.ID(): {0.5, 0.5}},
		nil,
	)
	if err != nil {
		fmt.Println(err)

		return
	}
	fmt.Printf("logLik=%.4f P(X=0)=%.4f P(X=1)=%.4f\n", logLik, outgoing.Data()[0], outgoing.Data()[1])

	// Output:
	// logLik=-0.5978 P(X=0)=0.8182 P(X=1)=0.1818
}
