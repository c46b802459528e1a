// Package export renders waveplan structures to Graphviz DOT for
// diagnostics. Migration engineers use these dumps to eyeball a schedule
// while debugging; report generation proper lives in downstream tools.
package export

import (
	"bytes"
	"cmp"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/mbeckers/waveplan/pkg/graph"
	"github.com/mbeckers/waveplan/pkg/wave"
)

// GraphToDOT converts a dependency graph to Graphviz DOT format. Nodes and
// edges are emitted in sorted order, so output is deterministic. Node
// categories, when present, are shown in the label.
func GraphToDOT[K cmp.Ordered](g *graph.Graph[K]) string {
	var buf bytes.Buffer
	buf.WriteString("digraph deps {\n")
	buf.WriteString("  rankdir=BT;\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white];\n")
	buf.WriteString("\n")

	for _, n := range g.Nodes() {
		id := fmt.Sprint(n)
		label := id
		if info, ok := g.Info(n); ok && info.Category != "" {
			label = fmt.Sprintf("%s\n%s", id, info.Category)
		}
		fmt.Fprintf(&buf, "  %q [label=%q];\n", id, label)
	}

	buf.WriteString("\n")
	for _, n := range g.Nodes() {
		for _, d := range g.DirectDependencies(n) {
			fmt.Fprintf(&buf, "  %q -> %q;\n", fmt.Sprint(n), fmt.Sprint(d))
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// PlanToDOT converts a deployment schedule to DOT: one node per wave,
// one edge per nonzero inter-partition matrix cell, labeled with the edge
// count. Wave types are color-coded.
func PlanToDOT[K cmp.Ordered](parts []wave.Partition[K], matrix []wave.MatrixEntry) string {
	var buf bytes.Buffer
	buf.WriteString("digraph waves {\n")
	buf.WriteString("  rankdir=BT;\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\"];\n")
	buf.WriteString("\n")

	for _, p := range parts {
		fmt.Fprintf(&buf, "  %d [label=\"wave %d\\n%s, %d objects\", fillcolor=%q];\n",
			p.Number, p.Number, p.Type, len(p.Nodes), typeColor(p.Type))
	}

	buf.WriteString("\n")
	for _, e := range matrix {
		fmt.Fprintf(&buf, "  %d -> %d [label=\"%d\"];\n", e.From, e.To, e.Count)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func typeColor(t wave.Type) string {
	switch t {
	case wave.TypeSimpleObject:
		return "lightgrey"
	case wave.TypeUserPrioritized:
		return "lightgoldenrod"
	default:
		return "white"
	}
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
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
