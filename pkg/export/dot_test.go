package export

import (
	"strings"
	"testing"

	"github.com/mbeckers/waveplan/pkg/graph"
	"github.com/mbeckers/waveplan/pkg/wave"
)

func TestGraphToDOT(t *testing.T) {
	g := graph.New[string]()
	g.AddEdge("V_SALES", "T_ORDERS")
	g.SetInfo("T_ORDERS", graph.Info{Category: "TABLE"})

	dot := GraphToDOT(g)

	for _, want := range []string{
		"digraph deps {",
		`"T_ORDERS" [label="T_ORDERS\nTABLE"];`,
		`"V_SALES" [label="V_SALES"];`,
		`"V_SALES" -> "T_ORDERS";`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q:\n%s", want, dot)
		}
	}
}

func TestGraphToDOT_Deterministic(t *testing.T) {
	build := func() *graph.Graph[string] {
		g := graph.New[string]()
		g.AddEdge("c", "a")
		g.AddEdge("b", "a")
		g.AddEdge("c", "b")
		return g
	}
	first := GraphToDOT(build())
	for i := 0; i < 5; i++ {
		if got := GraphToDOT(build()); got != first {
			t.Fatal("DOT output differs between runs")
		}
	}
}

func TestPlanToDOT(t *testing.T) {
	parts := []wave.Partition[string]{
		{Number: 1, Type: wave.TypeSimpleObject, Nodes: []string{"t1", "t2"}},
		{Number: 2, Type: wave.TypeUserPrioritized, Nodes: []string{"p"}},
		{Number: 3, Type: wave.TypeRegular, Nodes: []string{"r"}},
	}
	matrix := []wave.MatrixEntry{
		{From: 2, To: 1, Count: 4},
		{From: 3, To: 2, Count: 1},
	}

	dot := PlanToDOT(parts, matrix)

	for _, want := range []string{
		"digraph waves {",
		`1 [label="wave 1\nsimple_object, 2 objects", fillcolor="lightgrey"];`,
		`2 [label="wave 2\nuser_prioritized, 1 objects", fillcolor="lightgoldenrod"];`,
		`3 [label="wave 3\nregular, 1 objects", fillcolor="white"];`,
		`2 -> 1 [label="4"];`,
		`3 -> 2 [label="1"];`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q:\n%s", want, dot)
		}
	}
}

func TestRenderSVG(t *testing.T) {
	g := graph.New[string]()
	g.AddEdge("b", "a")

	svg, err := RenderSVG(GraphToDOT(g))
	if err != nil {
		t.Fatalf("RenderSVG: %v", err)
	}
	if !strings.Contains(string(svg), "<svg") {
		t.Error("output is not SVG")
	}
}
