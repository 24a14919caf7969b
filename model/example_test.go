package model_test

import (
	"fmt"

	"github.com/CrazyPandaXJ/nip/model"
	"github.com/CrazyPandaXJ/nip/potential"
	"github.com/CrazyPandaXJ/nip/variable"
)

// ExampleModel_ByID looks up a variable in a Model by its id.
func ExampleModel_ByID() {
	a, _ := variable.New(7, "A", "", []string{"0", "1"}, nil)
	m := &model.Model{
		Variables: []*variable.Variable{a},
		CPTs:      map[int]*potential.Potential{},
	}

	found, err := m.ByID(7)
	if err != nil {
		fmt.Println(err)

		return
	}
	fmt.Println(found.Symbol())

	// Output:
	// A
}
