package stats

import (
	"reflect"
	"testing"
	"time"

	"hd2api/internal/raw"
)

var base = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func sample(at time.Time, won, deaths, players int64) Statistics {
	return Build(raw.StatCounters{MissionsWon: won, Deaths: deaths, BugKills: won * 100, Accuracy: 70}, players, at)
}

func TestBuildMapsCounters(t *testing.T) {
	s := Build(raw.StatCounters{BugKills: 42, Accuracy: 66}, 9, base)
	if s.TerminidKills != 42 || s.Accuracy != 66 || s.PlayerCount != 9 {
		t.Fatalf("unexpected statistics: %+v", s)
	}
	if s.IsDelta() {
		t.Fatalf("expected a snapshot value")
	}
}

func TestSubAddRoundTrip(t *testing.T) {
	a := sample(base.Add(10*time.Minute), 50, 30, 1200)
	b := sample(base, 20, 10, 1000)

	diff := a.Sub(b)
	if diff.MissionsWon != 30 || diff.Deaths != 20 || diff.PlayerCount != 200 {
		t.Fatalf("unexpected diff: %+v", diff)
	}
	if diff.Elapsed() != 10*time.Minute {
		t.Fatalf("expected 10m delta, got %s", diff.Elapsed())
	}

	back := diff.Add(b)
	if !reflect.DeepEqual(back, a) {
		t.Fatalf("expected (a-b)+b == a\n got: %+v\nwant: %+v", back, a)
	}
}

func TestSubPtr(t *testing.T) {
	a := sample(base.Add(time.Minute), 5, 1, 10)

	if SubPtr(nil, nil) != nil {
		t.Fatalf("expected nil for two missing operands")
	}
	got := SubPtr(&a, nil)
	if got == nil || got.MissionsWon != 5 || got.Elapsed() != 0 {
		t.Fatalf("expected zero default for missing right side, got %+v", got)
	}
	got = SubPtr(nil, &a)
	if got == nil || got.MissionsWon != -5 {
		t.Fatalf("expected zero default for missing left side, got %+v", got)
	}
}

func TestAverage(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		if got := Average(nil); !reflect.DeepEqual(got, Statistics{}) {
			t.Fatalf("expected zero value, got %+v", got)
		}
	})

	t.Run("single", func(t *testing.T) {
		x := sample(base.Add(time.Hour), 9, 3, 7).Sub(sample(base, 2, 1, 4))
		if got := Average([]Statistics{x}); !reflect.DeepEqual(got, x) {
			t.Fatalf("expected Average([x]) == x\n got: %+v\nwant: %+v", got, x)
		}
	})

	t.Run("floor", func(t *testing.T) {
		d1 := sample(base.Add(time.Minute), 0, 0, 0).Sub(sample(base, 1, 0, 0))
		d2 := sample(base.Add(3*time.Minute), 0, 0, 0).Sub(sample(base.Add(time.Minute), 2, 0, 0))
		got := Average([]Statistics{d1, d2})
		// (-1 + -2) / 2 floors to -2
		if got.MissionsWon != -2 {
			t.Fatalf("expected -2, got %d", got.MissionsWon)
		}
		if got.Elapsed() != 90*time.Second {
			t.Fatalf("expected 90s mean delta, got %s", got.Elapsed())
		}
	})
}
