package unionfind_test

import (
	"fmt"

	"github.com/katalvlaran/cyclebasis/unionfind"
)

// ExampleDisjointSet demonstrates the union/find/connected life-cycle.
func ExampleDisjointSet() {
	// 1) Start with four singleton sets:
	d := unionfind.New([]string{"A", "B", "C", "D"})
	fmt.Println("components:", d.Components())

	// 2) Merge two pairs:
	d.Union("A", "B")
	d.Union("C", "D")
	fmt.Println("A~D connected?", d.Connected("A", "D"))

	// 3) Bridge the pairs — connectivity is transitive:
	d.Union("B", "C")
	fmt.Println("A~D connected?", d.Connected("A", "D"))
	fmt.Println("components:", d.Components())

	// Output:
	// components: 4
	// A~D connected? false
	// A~D connected? true
	// components: 1
}
