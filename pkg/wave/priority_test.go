package wave

import (
	"testing"

	planerrors "github.com/mbeckers/waveplan/pkg/errors"
	"github.com/mbeckers/waveplan/pkg/graph"
	"github.com/mbeckers/waveplan/pkg/graph/connect"
)

func TestMatcher(t *testing.T) {
	tests := []struct {
		name     string
		patterns []string
		input    string
		want     bool
	}{
		{"ExactMatch", []string{"PKG_LOAD"}, "PKG_LOAD", true},
		{"ExactNoPrefixMatch", []string{"PKG_LOAD"}, "PKG_LOAD_V2", false},
		{"Glob", []string{"PKG_*"}, "PKG_LOAD", true},
		{"GlobNoMatch", []string{"PKG_*"}, "APKG_LOAD", false},
		{"QuestionMark", []string{"STG?"}, "STG1", true},
		{"CharClass", []string{"T[AB]"}, "TB", true},
		{"EmptyList", nil, "ANYTHING", false},
		{"SecondPattern", []string{"X_*", "Y_*"}, "Y_JOB", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := newMatcher(tt.patterns)
			if err != nil {
				t.Fatalf("newMatcher: %v", err)
			}
			if got := m.match(tt.input); got != tt.want {
				t.Errorf("match(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNewMatcher_Malformed(t *testing.T) {
	_, err := newMatcher([]string{"ok_*", "[unclosed"})
	if !planerrors.Is(err, planerrors.ErrCodeMalformedPattern) {
		t.Errorf("error = %v, want %s", err, planerrors.ErrCodeMalformedPattern)
	}
}

func TestRanking(t *testing.T) {
	g := graph.New[string]()
	g.AddEdge("B", "A") // A gains a dependent
	g.AddNode("PKG_X")

	cond := connect.Condense(g)
	p, err := NewPartitioner(g, cond, Config{
		MinSize: 1, MaxSize: 1,
		PrioritizePatterns: []string{"PKG_*"},
	})
	if err != nil {
		t.Fatalf("NewPartitioner: %v", err)
	}
	parts, err := p.Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	ranks := p.Ranking(parts)
	if len(ranks) != 3 {
		t.Fatalf("got %d ranks, want 3", len(ranks))
	}

	// Prioritized unit first, then ascending dependents.
	wantOrder := []string{"PKG_X", "B", "A"}
	for i, want := range wantOrder {
		if ranks[i].Members[0] != want {
			t.Errorf("rank %d = %s, want %s", i, ranks[i].Members[0], want)
		}
	}
	if ranks[0].Tier != tierPrioritized {
		t.Errorf("PKG_X tier = %d, want %d", ranks[0].Tier, tierPrioritized)
	}
	if ranks[2].Dependents != 1 {
		t.Errorf("A dependents = %d, want 1", ranks[2].Dependents)
	}
	if ranks[1].TransitiveDeps != 1 {
		t.Errorf("B transitive deps = %d, want 1", ranks[1].TransitiveDeps)
	}

	// Every rank carries the final partition number of its unit.
	pos := make(map[string]int)
	for _, part := range parts {
		for _, n := range part.Nodes {
			pos[n] = part.Number
		}
	}
	for _, r := range ranks {
		if r.Partition != pos[r.Members[0]] {
			t.Errorf("unit %v partition = %d, want %d", r.Members, r.Partition, pos[r.Members[0]])
		}
	}
}
