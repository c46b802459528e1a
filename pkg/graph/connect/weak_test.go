package connect

import (
	"reflect"
	"testing"

	"github.com/mbeckers/waveplan/pkg/graph"
)

func TestWeaklyConnected(t *testing.T) {
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
			name: "SingleIsland",
			build: func() *graph.Graph[string] {
				g := graph.New[string]()
				g.AddEdge("a", "b")
				g.AddEdge("c", "b")
				return g
			},
			want: [][]string{{"a", "b", "c"}},
		},
		{
			name: "TwoIslands",
			build: func() *graph.Graph[string] {
				g := graph.New[string]()
				g.AddEdge("a", "b")
				g.AddEdge("x", "y")
				return g
			},
			want: [][]string{{"a", "b"}, {"x", "y"}},
		},
		{
			name: "DirectionIgnored",
			build: func() *graph.Graph[string] {
				// a -> b and c -> b are weakly connected even though
				// a and c never reach each other.
				g := graph.New[string]()
				g.AddEdge("a", "b")
				g.AddEdge("c", "b")
				g.AddNode("solo")
				return g
			},
			want: [][]string{{"a", "b", "c"}, {"solo"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WeaklyConnected(tt.build())
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("WeaklyConnected() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWeaklyConnected_DeepChain(t *testing.T) {
	const depth = 200_000
	g := graph.New[int]()
	for i := 0; i < depth; i++ {
		g.AddEdge(i, i+1)
	}

	comps := WeaklyConnected(g)
	if len(comps) != 1 {
		t.Fatalf("got %d components, want 1", len(comps))
	}
	if len(comps[0]) != depth+1 {
		t.Errorf("component size = %d, want %d", len(comps[0]), depth+1)
	}
}
