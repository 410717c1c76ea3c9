package cli

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/keyvault/puzzle"
	"github.com/katalvlaran/keyvault/vault"
)

// solveCommand creates the solve command.
func (c *CLI) solveCommand() *cobra.Command {
	var (
		part   string
		strict bool
	)
	cmd := &cobra.Command{
		Use:   "solve [file]",
		Short: "Print the fewest steps that collect every key",
		Long: `Solve reads a vault map and prints the fewest steps that collect every key.

Part 1 walks from the single entrance. Part 2 splits the map into four
quadrants around the entrance and prints the sum of their answers.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("part") {
				part = c.Config.Part
			}
			if !cmd.Flags().Changed("strict") {
				strict = c.Config.Strict
			}
			p, err := puzzle.ParsePart(part)
			if err != nil {
				return err
			}
			text, err := readInput(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}

			logger := loggerFromContext(cmd.Context())
			prog := newProgress(logger)
			answer, err := solver(logger, strict).Solve(puzzle.Input{Text: text, Part: p})
			if err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Solved %s", p))

			_, err = fmt.Fprintln(cmd.OutOrStdout(), answer)
			return err
		},
	}
	cmd.Flags().StringVarP(&part, "part", "p", "1", "puzzle part: 1 (single entrance) or 2 (four quadrants)")
	cmd.Flags().BoolVar(&strict, "strict", false, "reject floor characters other than '.'")
	return cmd
}

// solver returns a vault.Solver that logs through logger.
func solver(logger *log.Logger, strict bool) *vault.Solver {
	opts := []vault.Option{vault.WithLogger(logger)}
	if strict {
		opts = append(opts, vault.WithStrict())
	}
	return vault.New(opts...)
}
