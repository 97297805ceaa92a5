package region

import (
	"reflect"
	"testing"
	"time"

	"hd2api/internal/faction"
	"hd2api/internal/raw"
	"hd2api/internal/static"
)

var base = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func testStatics() *static.All {
	return &static.All{Galaxy: static.GalaxyStatic{
		Planets: map[int]static.PlanetStatic{
			3: {Name: "WIDOW'S HARBOR", Sector: "Altus"},
		},
		PlanetRegions: map[uint64]static.PlanetRegionStatic{
			55: {Name: "Harbor Spire", Description: "Lighthouse district"},
		},
	}}
}

func intPtr(v int) *int { return &v }

func testSnapshot() *raw.Snapshot {
	return &raw.Snapshot{
		Status: &raw.WarStatus{PlanetRegions: []raw.PlanetRegion{
			{RetrievedAt: base, PlanetIndex: 3, RegionIndex: 0, Owner: intPtr(faction.Terminids), Health: 400, RegenPerSecond: 2, IsAvailable: true, Players: 50},
			{RetrievedAt: base, PlanetIndex: 3, RegionIndex: 1, Health: 250, RegenPerSecond: -4, AvailabilityFactor: 0.7, IsAvailable: true, Players: 42},
			{RetrievedAt: base, PlanetIndex: 3, RegionIndex: 0, Health: 1},
		}},
		WarInfo: &raw.WarInfo{PlanetRegions: []raw.PlanetRegionInfo{
			{PlanetIndex: 3, RegionIndex: 0, SettingsHash: 55, MaxHealth: 1000, RegionSize: 2},
			{PlanetIndex: 3, RegionIndex: 2, SettingsHash: 56, MaxHealth: 800, RegionSize: 1},
		}},
	}
}

func TestBuildAllStitching(t *testing.T) {
	regions := BuildAll(testSnapshot(), testStatics())
	if len(regions) != 3 {
		t.Fatalf("expected 3 regions, got %d", len(regions))
	}

	byKey := map[string]Region{}
	for _, r := range regions {
		byKey[r.Key] = r
		if r.RegenPerSecond < 0 {
			t.Fatalf("%s: expected non-negative regen, got %v", r.Key, r.RegenPerSecond)
		}
		if r.ID != DisplayID(r.Key) {
			t.Fatalf("%s: expected display id derived from key", r.Key)
		}
	}

	t.Run("matched", func(t *testing.T) {
		r := byKey["3_0"]
		if r.Health != 400 || r.Players != 50 {
			t.Fatalf("expected first status row to win, got %+v", r)
		}
		if r.Name != "Harbor Spire" || r.Size != "City" || r.MaxHealth != 1000 {
			t.Fatalf("unexpected merged region: %+v", r)
		}
		if r.Owner != "Terminids" {
			t.Fatalf("expected Terminids, got %s", r.Owner)
		}
	})

	t.Run("status only", func(t *testing.T) {
		r, ok := byKey["3_1"]
		if !ok {
			t.Fatalf("expected status-only region kept")
		}
		if r.MaxHealth != 250 || r.SettingsHash != 0 || r.RegionSize != 0 {
			t.Fatalf("unexpected synthesized info: %+v", r)
		}
		if r.Name != static.UnnamedRegion || r.Description != static.RegionNoDescription {
			t.Fatalf("expected placeholder text, got %q / %q", r.Name, r.Description)
		}
		if r.RegenPerSecond != 0 {
			t.Fatalf("expected negative regen clamped, got %v", r.RegenPerSecond)
		}
		if r.IsAvailable || r.Players != 0 || r.AvailabilityFactor != 0 || r.Health != r.MaxHealth {
			t.Fatalf("expected zero state for status-only region, got %+v", r)
		}
	})

	t.Run("info only", func(t *testing.T) {
		r, ok := byKey["3_2"]
		if !ok {
			t.Fatalf("expected info-only region kept")
		}
		if r.Health != r.MaxHealth || r.IsAvailable || r.Players != 0 || r.OwnerID != nil {
			t.Fatalf("unexpected zero state: %+v", r)
		}
	})
}

func TestBuildAllMissingSections(t *testing.T) {
	if got := BuildAll(&raw.Snapshot{}, testStatics()); len(got) != 0 {
		t.Fatalf("expected no regions, got %d", len(got))
	}
}

func TestApplyParentContext(t *testing.T) {
	regions := BuildAll(testSnapshot(), testStatics())
	for i := range regions {
		regions[i].ApplyParentContext(ParentContext{PlanetName: "Widow's Harbor", Owner: faction.Humans})
	}
	for _, r := range regions {
		if r.PlanetName != "Widow's Harbor" {
			t.Fatalf("%s: expected parent planet name, got %q", r.Key, r.PlanetName)
		}
		want := "Humans"
		if r.Key == "3_0" {
			want = "Terminids"
		}
		if r.Owner != want {
			t.Fatalf("%s: expected owner %s, got %s", r.Key, want, r.Owner)
		}
	}
}

func TestSubAverageEstimate(t *testing.T) {
	info := raw.PlanetRegionInfo{PlanetIndex: 3, RegionIndex: 0, SettingsHash: 55, MaxHealth: 1000}
	s := testStatics()
	r1 := Build(raw.PlanetRegion{RetrievedAt: base, Health: 1000, Players: 10}, info, s)
	r2 := Build(raw.PlanetRegion{RetrievedAt: base.Add(600 * time.Second), Health: 800, Players: 30}, info, s)

	diff := r2.Sub(r1)
	if diff.Health != -200 || diff.Players != 20 || diff.Elapsed() != 600*time.Second {
		t.Fatalf("unexpected diff: %+v", diff)
	}

	p := r2.Estimate(diff)
	if p.Change > -0.333 || p.Change < -0.334 {
		t.Fatalf("expected about -0.333, got %v", p.Change)
	}
	if p.ETA == nil || !p.ETA.After(r2.RetrievedAt) {
		t.Fatalf("expected future ETA, got %v", p.ETA)
	}

	if got := Average([]Region{diff}); !reflect.DeepEqual(got, diff) {
		t.Fatalf("expected Average([x]) == x")
	}
	if got := r2.CalculateChange(r2.Sub(r2)); got != 0 {
		t.Fatalf("expected zero change for zero elapsed, got %v", got)
	}
}

func TestForPlanet(t *testing.T) {
	regions := []Region{{PlanetIndex: 1, Key: "1_0"}, {PlanetIndex: 2, Key: "2_0"}, {PlanetIndex: 1, Key: "1_1"}}
	got := ForPlanet(regions, 1)
	if len(got) != 2 || got[0].Key != "1_0" || got[1].Key != "1_1" {
		t.Fatalf("unexpected filter result: %+v", got)
	}
}
