package connect

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/mbeckers/waveplan/pkg/graph"
)

func TestStronglyConnected(t *testing.T) {
	tests := []struct {
		name  string
		build func() *graph.Graph[string]
		want  [][]string
	}{
		{
			name:  "Empty",
			build: func() *graph.Graph[string] { return graph.New[string]() },
			want:  nil,
		},
		{
			name: "Chain",
			build: func() *graph.Graph[string] {
				g := graph.New[string]()
				g.AddEdge("A", "B")
				g.AddEdge("B", "C")
				return g
			},
			want: [][]string{{"A"}, {"B"}, {"C"}},
		},
		{
			name: "TwoCycle",
			build: func() *graph.Graph[string] {
				g := graph.New[string]()
				g.AddEdge("A", "B")
				g.AddEdge("B", "A")
				return g
			},
			want: [][]string{{"A", "B"}},
		},
		{
			name: "CyclePlusTail",
			build: func() *graph.Graph[string] {
				// a <-> b, b -> c
				g := graph.New[string]()
				g.AddEdge("a", "b")
				g.AddEdge("b", "a")
				g.AddEdge("b", "c")
				return g
			},
			want: [][]string{{"a", "b"}, {"c"}},
		},
		{
			name: "TwoSeparateCycles",
			build: func() *graph.Graph[string] {
				g := graph.New[string]()
				g.AddEdge("a", "b")
				g.AddEdge("b", "a")
				g.AddEdge("c", "d")
				g.AddEdge("d", "c")
				return g
			},
			want: [][]string{{"a", "b"}, {"c", "d"}},
		},
		{
			name: "Triangle",
			build: func() *graph.Graph[string] {
				g := graph.New[string]()
				g.AddEdge("x", "y")
				g.AddEdge("y", "z")
				g.AddEdge("z", "x")
				return g
			},
			want: [][]string{{"x", "y", "z"}},
		},
		{
			name: "IsolatedNodes",
			build: func() *graph.Graph[string] {
				g := graph.New[string]()
				g.AddNode("q")
				g.AddNode("p")
				return g
			},
			want: [][]string{{"p"}, {"q"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StronglyConnected(tt.build())
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("StronglyConnected() = %v, want %v", got, tt.want)
			}
		})
	}
}

// A dependency chain deeper than any plausible goroutine stack. The
// explicit work stack must handle it without recursion.
func TestStronglyConnected_DeepChain(t *testing.T) {
	const depth = 200_000
	g := graph.New[int]()
	for i := 0; i < depth; i++ {
		g.AddEdge(i, i+1)
	}

	comps := StronglyConnected(g)
	if len(comps) != depth+1 {
		t.Fatalf("got %d components, want %d", len(comps), depth+1)
	}
	for _, comp := range comps {
		if len(comp) != 1 {
			t.Fatalf("chain produced non-singleton component %v", comp)
		}
	}
}

func TestStronglyConnected_DeepCycle(t *testing.T) {
	const size = 100_000
	g := graph.New[int]()
	for i := 0; i < size; i++ {
		g.AddEdge(i, (i+1)%size)
	}

	comps := StronglyConnected(g)
	if len(comps) != 1 {
		t.Fatalf("got %d components, want 1", len(comps))
	}
	if len(comps[0]) != size {
		t.Errorf("component size = %d, want %d", len(comps[0]), size)
	}
}

func TestCycles(t *testing.T) {
	g := graph.New[string]()
	g.AddEdge("A", "B")
	g.AddEdge("B", "A")
	g.AddEdge("B", "C")

	cycles := Cycles(g)
	want := [][]string{{"A", "B"}}
	if !reflect.DeepEqual(cycles, want) {
		t.Errorf("Cycles() = %v, want %v", cycles, want)
	}
}

func TestCycles_AcyclicGraph(t *testing.T) {
	g := graph.New[string]()
	g.AddEdge("A", "B")
	g.AddEdge("B", "C")

	if cycles := Cycles(g); len(cycles) != 0 {
		t.Errorf("Cycles() = %v, want none", cycles)
	}
}

func TestStronglyConnected_Deterministic(t *testing.T) {
	build := func() *graph.Graph[string] {
		g := graph.New[string]()
		for i := 0; i < 50; i++ {
			g.AddEdge(fmt.Sprintf("n%02d", i), fmt.Sprintf("n%02d", (i*7)%50))
		}
		return g
	}

	first := StronglyConnected(build())
	for run := 0; run < 5; run++ {
		if got := StronglyConnected(build()); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d differs: %v vs %v", run, got, first)
		}
	}
}
