// Package puzzle defines the contract shared by every solver: raw input text
// plus a part selector in, a textual answer or an error out.
package puzzle

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownPart is returned by ParsePart for anything but 1, 2, one or two.
var ErrUnknownPart = errors.New("puzzle: unknown part")

// Part selects the variant of a puzzle.
type Part int

const (
	// PartOne is the first variant.
	PartOne Part = iota + 1
	// PartTwo is the second variant.
	PartTwo
)

func (p Part) String() string {
	switch p {
	case PartOne:
		return "part one"
	case PartTwo:
		return "part two"
	}
	return fmt.Sprintf("Part(%d)", int(p))
}

// ParsePart accepts "1", "2", "one" or "two" in any case.
func ParsePart(s string) (Part, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "one":
		return PartOne, nil
	case "2", "two":
		return PartTwo, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPart, s)
}

// Input is the text of a puzzle and the part to solve.
type Input struct {
	Text string
	Part Part
}

// Solver answers an Input.
type Solver interface {
	Solve(in Input) (string, error)
}

// SolverFunc adapts a function to Solver.
type SolverFunc func(in Input) (string, error)

// Solve calls f(in).
func (f SolverFunc) Solve(in Input) (string, error) { return f(in) }
