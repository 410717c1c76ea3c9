package vaultgrid_test

import (
	"fmt"

	"github.com/katalvlaran/keyvault/vaultgrid"
)

// ExampleParse shows the registries of a small vault. Door C has no key in
// the map, so it is rendered back as open floor.
func ExampleParse() {
	g, err := vaultgrid.Parse("#########\n#b.A.@.a#\n#C#######")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(g.AllKeys(), g.Entrances())
	fmt.Print(g.String())
	// Output:
	// ab [5,1]
	// #########
	// #b.A.@.a#
	// #.#######
}
