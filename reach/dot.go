package reach

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/katalvlaran/keyvault/keyset"
)

// DOTOptions configures DOT output.
type DOTOptions struct {
	// OnlyFree drops edges that cross a locked door.
	OnlyFree bool
	// Title is written as the graph label when non-empty.
	Title string
}

// ToDOT renders g as a Graphviz digraph. Nodes are keys and entrances; each
// edge is labelled with its step count and, if any, the keys its doors need.
func ToDOT(g *Graph, opts DOTOptions) string {
	var buf bytes.Buffer
	buf.WriteString("digraph keys {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  node [shape=circle, fontsize=14];\n")
	if opts.Title != "" {
		fmt.Fprintf(&buf, "  label=%q;\n", opts.Title)
	}
	buf.WriteString("\n")

	for _, k := range g.sources {
		fmt.Fprintf(&buf, "  %q [%s];\n", k.String(), nodeAttrs(k))
	}

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		if opts.OnlyFree && e.Required != keyset.Empty {
			continue
		}
		fmt.Fprintf(&buf, "  %q -> %q [label=%q];\n", e.From.String(), e.To.String(), edgeLabel(e))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeAttrs(k keyset.Key) string {
	if k.IsEntrance() {
		return "shape=doublecircle, style=filled, fillcolor=lightgrey"
	}
	return "style=filled, fillcolor=white"
}

func edgeLabel(e Edge) string {
	if e.Required == keyset.Empty {
		return fmt.Sprintf("%d", e.Steps)
	}
	return fmt.Sprintf("%d [%s]", e.Steps, e.Required)
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("reach: init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("reach: parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("reach: render: %w", err)
	}
	return buf.Bytes(), nil
}
