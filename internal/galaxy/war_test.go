package galaxy

import (
	"math"
	"reflect"
	"testing"
	"time"

	"hd2api/internal/raw"
	"hd2api/internal/shared/errors"
)

var base = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func snapshotAt(at time.Time, impact float64, won int64) *raw.Snapshot {
	snap := &raw.Snapshot{
		Status: &raw.WarStatus{
			WarID:            801,
			ImpactMultiplier: impact,
			PlanetStatus:     []raw.PlanetStatus{{Index: 1, Players: 100}, {Index: 2, Players: 250}},
		},
		WarInfo: &raw.WarInfo{StartDate: 1706040313, EndDate: 1800000000, MinimumClientVersion: "0.3.0"},
		Summary: &raw.WarSummary{GalaxyStats: &raw.GalaxyStats{StatCounters: raw.StatCounters{MissionsWon: won, BugKills: 5}}},
	}
	snap.Stamp(at)
	return snap
}

func TestBuildWar(t *testing.T) {
	war, err := BuildWar(snapshotAt(base, 0.05, 10))
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	if war.Statistics.PlayerCount != 350 {
		t.Fatalf("expected 350 players, got %d", war.Statistics.PlayerCount)
	}
	if war.Statistics.TerminidKills != 5 || war.Statistics.MissionsWon != 10 {
		t.Fatalf("unexpected statistics: %+v", war.Statistics)
	}
	if !war.Started.Equal(time.Unix(1706040313, 0)) {
		t.Fatalf("unexpected start %s", war.Started)
	}
	if !reflect.DeepEqual(war.Factions, []string{"Humans", "Terminids", "Automaton", "Illuminate"}) {
		t.Fatalf("unexpected factions %v", war.Factions)
	}
}

func TestBuildWarWithoutSummary(t *testing.T) {
	snap := snapshotAt(base, 0.05, 10)
	snap.Summary = nil
	war, err := BuildWar(snap)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	if war.Statistics.MissionsWon != 0 || war.Statistics.PlayerCount != 350 {
		t.Fatalf("expected zero counters with player count, got %+v", war.Statistics)
	}

	if _, err := BuildWar(&raw.Snapshot{}); !errors.Is(err, errors.ErrorTypePrecondition) {
		t.Fatalf("expected precondition error, got %v", err)
	}
}

func TestWarSub(t *testing.T) {
	earlier, _ := BuildWar(snapshotAt(base, 0.05, 10))
	later, _ := BuildWar(snapshotAt(base.Add(5*time.Minute), 0.04, 25))

	diff := later.Sub(*earlier)
	if math.Abs(diff.ImpactMultiplier-(-0.01)) > 1e-12 {
		t.Fatalf("expected -0.01, got %v", diff.ImpactMultiplier)
	}
	if diff.Statistics.MissionsWon != 15 || diff.Elapsed() != 5*time.Minute {
		t.Fatalf("unexpected diff: %+v", diff.Statistics)
	}
}
