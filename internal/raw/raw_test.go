package raw

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestUnknownFieldsKeptInExtra(t *testing.T) {
	data := []byte(`{"index":5,"owner":1,"health":900,"regenPerSecond":1.5,"players":12,"newThing":{"a":1}}`)

	var p PlanetStatus
	if err := json.Unmarshal(data, &p); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if p.Index != 5 || p.Health != 900 || p.Players != 12 {
		t.Fatalf("unexpected decoded row: %+v", p)
	}
	if len(p.Extra) != 1 {
		t.Fatalf("expected 1 extra key, got %d: %v", len(p.Extra), p.Extra)
	}
	if string(p.Extra["newThing"]) != `{"a":1}` {
		t.Fatalf("expected newThing preserved, got %s", p.Extra["newThing"])
	}

	out, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if !strings.Contains(string(out), `"newThing":{"a":1}`) {
		t.Fatalf("expected extra key re-emitted, got %s", out)
	}
}

func TestNoExtraForDeclaredFields(t *testing.T) {
	var c Campaign
	if err := json.Unmarshal([]byte(`{"id":1,"planetIndex":2,"type":0,"count":3,"race":2}`), &c); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if c.Extra != nil {
		t.Fatalf("expected nil extra, got %v", c.Extra)
	}
}

func TestEmbeddedCountersAreKnown(t *testing.T) {
	var s PlanetStats
	data := []byte(`{"planetIndex":64,"missionsWon":10,"accurracy":71,"deaths":4,"spare":true}`)
	if err := json.Unmarshal(data, &s); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if s.MissionsWon != 10 || s.Accuracy != 71 || s.Deaths != 4 {
		t.Fatalf("unexpected counters: %+v", s.StatCounters)
	}
	if len(s.Extra) != 1 {
		t.Fatalf("expected only spare in extra, got %v", s.Extra)
	}
}

func TestPlanetRegionRegenTypo(t *testing.T) {
	tests := []struct {
		name string
		data string
		want float64
	}{
		{name: "typo", data: `{"planetIndex":1,"regionIndex":2,"regerPerSecond":3.5}`, want: 3.5},
		{name: "correct", data: `{"planetIndex":1,"regionIndex":2,"regenPerSecond":2.25}`, want: 2.25},
		{name: "absent", data: `{"planetIndex":1,"regionIndex":2}`, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var r PlanetRegion
			if err := json.Unmarshal([]byte(tt.data), &r); err != nil {
				t.Fatalf("unmarshal failed: %v", err)
			}
			if r.RegenPerSecond != tt.want {
				t.Fatalf("expected regen %v, got %v", tt.want, r.RegenPerSecond)
			}
			if _, ok := r.Extra["regerPerSecond"]; ok {
				t.Fatalf("expected typo key consumed")
			}
			if r.Owner != nil {
				t.Fatalf("expected nil owner, got %d", *r.Owner)
			}
		})
	}
}

func TestWarInfoRegionInfosAlias(t *testing.T) {
	data := []byte(`{"warId":801,"startDate":1706040313,"regionInfos":[{"planetIndex":3,"regionIndex":0,"settingsHash":77,"maxHealth":1000,"regionSize":2}]}`)

	var info WarInfo
	if err := json.Unmarshal(data, &info); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if len(info.PlanetRegions) != 1 {
		t.Fatalf("expected 1 region info, got %d", len(info.PlanetRegions))
	}
	got := info.PlanetRegions[0]
	if got.PlanetIndex != 3 || got.SettingsHash != 77 || got.RegionSize != 2 {
		t.Fatalf("unexpected region info: %+v", got)
	}
	if _, ok := info.Extra["regionInfos"]; ok {
		t.Fatalf("expected alias key consumed")
	}
}

func TestSnapshotStamp(t *testing.T) {
	data := []byte(`{
		"status": {"time": 100, "planetStatus": [{"index": 1}], "planetRegions": [{"planetIndex": 1, "regionIndex": 0}]},
		"war_info": {"startDate": 1000, "planetInfos": [{"index": 1}]},
		"planet_stats": {"galaxy_stats": {"missionsWon": 1}, "planets_stats": [{"planetIndex": 1}]},
		"major_order": [{"id32": 9, "setting": {"tasks": [{"type": 11}], "reward": {"amount": 50}}}],
		"updates": []
	}`)

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if _, ok := snap.Extra["updates"]; !ok {
		t.Fatalf("expected updates kept in extra")
	}

	at := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	snap.Stamp(at)

	stamps := map[string]time.Time{
		"snapshot":      snap.RetrievedAt,
		"status":        snap.Status.RetrievedAt,
		"planet status": snap.Status.PlanetStatus[0].RetrievedAt,
		"region":        snap.Status.PlanetRegions[0].RetrievedAt,
		"planet info":   snap.WarInfo.PlanetInfos[0].RetrievedAt,
		"galaxy stats":  snap.Summary.GalaxyStats.RetrievedAt,
		"planet stats":  snap.Summary.PlanetStats[0].RetrievedAt,
		"assignment":    snap.MajorOrders[0].RetrievedAt,
		"task":          snap.MajorOrders[0].Setting.Tasks[0].RetrievedAt,
		"reward":        snap.MajorOrders[0].Setting.Reward.RetrievedAt,
	}
	for name, got := range stamps {
		if !got.Equal(at) {
			t.Fatalf("%s: expected %v, got %v", name, at, got)
		}
	}
}
