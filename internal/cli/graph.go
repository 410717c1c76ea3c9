package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/keyvault/reach"
)

const (
	formatDOT = "dot"
	formatSVG = "svg"
)

// graphCommand creates the graph command.
func (c *CLI) graphCommand() *cobra.Command {
	var (
		format   string
		output   string
		onlyFree bool
	)
	cmd := &cobra.Command{
		Use:   "graph [file]",
		Short: "Print the key graph of a vault map",
		Long: `Graph builds the key-to-key graph of a vault map and prints it as Graphviz DOT,
or renders it to SVG. Edge labels show the step count and the keys the doors on
that walk need.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("format") {
				format = c.Config.Graph.Format
			}
			if !cmd.Flags().Changed("only-free") {
				onlyFree = c.Config.Graph.OnlyFree
			}
			if format != formatDOT && format != formatSVG {
				return fmt.Errorf("unknown format %q (want %s or %s)", format, formatDOT, formatSVG)
			}
			text, err := readInput(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}

			logger := loggerFromContext(cmd.Context())
			g, err := solver(logger, c.Config.Strict).Graph(text)
			if err != nil {
				return err
			}
			title := "keys"
			if len(args) > 0 {
				title = filepath.Base(args[0])
			}
			data := []byte(reach.ToDOT(g, reach.DOTOptions{OnlyFree: onlyFree, Title: title}))
			if format == formatSVG {
				prog := newProgress(logger)
				if data, err = reach.RenderSVG(cmd.Context(), string(data)); err != nil {
					return err
				}
				prog.done("Rendered SVG")
			}

			if output == "" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			logger.Info("Wrote graph", "path", output, "edges", g.Len())
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", formatDOT, "output format: dot or svg")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to this file instead of stdout")
	cmd.Flags().BoolVar(&onlyFree, "only-free", false, "omit edges that cross a locked door")
	return cmd
}
