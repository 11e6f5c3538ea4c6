package render

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/aliace-game/screenlayout/pkg/overlap"
)

// OverlapDOT converts an overlap report to Graphviz DOT format. Widgets are
// nodes; overlapping pairs become solid red edges labeled with the shared
// span, near-overlap warnings become dashed amber edges labeled with the
// gap. Clean pairs contribute their endpoints but no edge, so well-spaced
// widgets show up isolated.
func OverlapDOT(screenID string, records []overlap.Record) string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "graph %q {\n", screenID)
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  overlap=false;\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=12];\n")
	buf.WriteString("\n")

	var nodes []string
	seen := make(map[string]bool)
	for _, r := range records {
		for _, id := range []string{r.A, r.B} {
			if !seen[id] {
				seen[id] = true
				nodes = append(nodes, id)
			}
		}
	}
	for _, id := range nodes {
		fmt.Fprintf(&buf, "  %q;\n", id)
	}

	buf.WriteString("\n")
	for _, r := range records {
		switch {
		case r.Kind == overlap.KindOverlap:
			fmt.Fprintf(&buf, "  %q -- %q [color=red, penwidth=2, label=\"%dpx\"];\n", r.A, r.B, r.Amount)
		case r.Warning:
			fmt.Fprintf(&buf, "  %q -- %q [color=orange, style=dashed, label=\"gap %dpx\"];\n", r.A, r.B, r.Gap)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderGraphSVG renders a DOT graph to SVG using Graphviz.
func RenderGraphSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
