package expr_test

import (
	"fmt"

	"github.com/katalvlaran/campusgraph/expr"
)

// ExampleBuild shows postfix input turned into an infix tree and evaluated.
func ExampleBuild() {
	t, err := expr.Build([]string{"3", "4", "5", "*", "6", "-", "+"})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	v, err := t.Eval()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(t)
	fmt.Println(v)
	// Output:
	// (3 + ((4 * 5) - 6))
	// 17
}
