// Package vault wires the pipeline together: text is parsed by vaultgrid,
// compressed into a key graph by reach, and solved by search. Part two first
// splits the map into four quadrants and sums their answers.
//
// Solver implements puzzle.Solver.
//
//	s := vault.New(vault.WithLogger(logger))
//	answer, err := s.Solve(puzzle.Input{Text: text, Part: puzzle.PartTwo})
package vault
