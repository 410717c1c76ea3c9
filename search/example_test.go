package search_test

import (
	"fmt"

	"github.com/katalvlaran/keyvault/reach"
	"github.com/katalvlaran/keyvault/search"
	"github.com/katalvlaran/keyvault/vaultgrid"
)

// ExampleMinSteps collects a, then walks back through door A to b.
func ExampleMinSteps() {
	grid, err := vaultgrid.Parse("#########\n#b.A.@.a#\n#########")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	g, err := reach.Build(grid)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	res, err := search.MinSteps(g, search.WithReturnPath())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Steps, res.Order)
	// Output: 8 [a b]
}
