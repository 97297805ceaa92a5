package sector

import (
	"testing"

	"hd2api/internal/faction"
	"hd2api/internal/raw"
	"hd2api/internal/static"
)

func rows(owners ...int) []raw.PlanetStatus {
	out := make([]raw.PlanetStatus, len(owners))
	for i, o := range owners {
		out[i] = raw.PlanetStatus{Index: i, Owner: o}
	}
	return out
}

func TestCommonOwner(t *testing.T) {
	tests := []struct {
		name   string
		owners []int
		want   *int
	}{
		{name: "shared", owners: []int{1, 1, 1}, want: intPtr(1)},
		{name: "split", owners: []int{1, 2}, want: nil},
		{name: "empty", owners: nil, want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewState("Altus", rows(tt.owners...)...)
			switch {
			case tt.want == nil && s.Owner != nil:
				t.Fatalf("expected no owner, got %d", *s.Owner)
			case tt.want != nil && (s.Owner == nil || *s.Owner != *tt.want):
				t.Fatalf("expected owner %d, got %v", *tt.want, s.Owner)
			}
		})
	}
}

func TestAddRecomputesOwner(t *testing.T) {
	s := NewState("Altus", rows(faction.Humans, faction.Humans)...)
	if s.Owner == nil || s.OwnerName != "Humans" {
		t.Fatalf("expected Humans, got %v", s.Owner)
	}
	s.Add(raw.PlanetStatus{Index: 9, Owner: faction.Automaton})
	if s.Owner != nil || s.OwnerName != "" {
		t.Fatalf("expected owner cleared after mixed add, got %v", s.Owner)
	}
}

func TestStates(t *testing.T) {
	statics := &static.All{Galaxy: static.GalaxyStatic{Planets: map[int]static.PlanetStatic{
		1: {Sector: "Severin"},
		2: {Sector: "Altus"},
		3: {Sector: "Altus"},
	}}}
	snap := &raw.Snapshot{Status: &raw.WarStatus{PlanetStatus: []raw.PlanetStatus{
		{Index: 1, Owner: 3},
		{Index: 2, Owner: 1},
		{Index: 3, Owner: 1},
		{Index: 4, Owner: 2},
	}}}

	got := States(snap, statics)
	if len(got) != 2 {
		t.Fatalf("expected 2 sectors, got %d", len(got))
	}
	if got[0].Name != "Altus" || len(got[0].PlanetStatus) != 2 || got[0].Owner == nil || *got[0].Owner != 1 {
		t.Fatalf("unexpected Altus state: %+v", got[0])
	}
	if got[1].Name != "Severin" || got[1].OwnerName != "Automaton" {
		t.Fatalf("unexpected Severin state: %+v", got[1])
	}
}

func intPtr(v int) *int { return &v }
