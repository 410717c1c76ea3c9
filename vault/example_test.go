package vault_test

import (
	"fmt"

	"github.com/katalvlaran/keyvault/puzzle"
	"github.com/katalvlaran/keyvault/vault"
)

// ExampleSolver_Solve answers both parts; part two splits the vault into four
// quadrants and sums them.
func ExampleSolver_Solve() {
	text := "" +
		"#######\n" +
		"#a.#Cd#\n" +
		"##...##\n" +
		"##.@.##\n" +
		"##...##\n" +
		"#cB#Ab#\n" +
		"#######\n"
	s := vault.New()
	for _, part := range []puzzle.Part{puzzle.PartOne, puzzle.PartTwo} {
		answer, err := s.Solve(puzzle.Input{Text: text, Part: part})
		if err != nil {
			fmt.Println(part, "error:", err)
			continue
		}
		fmt.Println(part, answer)
	}
	// Output:
	// part one 26
	// part two 8
}
