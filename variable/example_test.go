package variable_test

import (
	"fmt"

	"github.com/CrazyPandaXJ/nip/variable"
)

// ExampleVariable_Indicator builds a binary variable and prints the
// hard-evidence likelihood vector for observing state 1.
func ExampleVariable_Indicator() {
	v, err := variable.New(0, "X", "", []string{"0", "1"}, nil)
	if err != nil {
		fmt.Println(err)

		return
	}

	lik, err := v.Indicator(1)
	if err != nil {
		fmt.Println(err)

		return
	}
	fmt.Println(lik)

	// Output:
	// [0 1]
}
