package planet

import (
	"math"
	"reflect"
	"testing"
	"time"

	"hd2api/internal/delta"
	"hd2api/internal/event"
	"hd2api/internal/stats"
)

func planetAt(offset time.Duration, health int64) Planet {
	return Planet{
		Stamp:      delta.At(retrieved.Add(offset)),
		Index:      126,
		Name:       "MALEVELON CREEK",
		MaxHealth:  1000,
		Health:     health,
		Position:   Position{X: 1, Y: 2},
		Statistics: &stats.Statistics{Stamp: delta.At(retrieved.Add(offset)), Deaths: health / 10},
	}
}

func TestSubSignConvention(t *testing.T) {
	earlier := planetAt(0, 1000)
	later := planetAt(600*time.Second, 800)

	diff := later.Sub(earlier)
	if diff.Health != -200 || diff.Elapsed() != 600*time.Second {
		t.Fatalf("unexpected diff: health %d over %s", diff.Health, diff.Elapsed())
	}
	if diff.Statistics == nil || diff.Statistics.Deaths != -20 {
		t.Fatalf("expected statistics diff, got %+v", diff.Statistics)
	}
	if diff.Name != later.Name || diff.Index != later.Index {
		t.Fatalf("expected identity copied from left operand")
	}

	change := later.CalculateChange(diff)
	if math.Abs(change-(-1.0/3.0)) > 1e-9 {
		t.Fatalf("expected -0.333, got %v", change)
	}
	p := later.Estimate(diff)
	if p.Direction != delta.DirectionTowardZero || p.ETA == nil {
		t.Fatalf("expected projection toward zero, got %+v", p)
	}
	if !later.CalculateTimeval(change).After(later.RetrievedAt) {
		t.Fatalf("expected timeval in the future")
	}
}

func TestSubEventRules(t *testing.T) {
	a := planetAt(time.Minute, 900)
	b := planetAt(0, 1000)
	a.Event = &event.Event{ID: 1, Health: 300}

	if got := a.Sub(b); got.Event != a.Event {
		t.Fatalf("expected left event kept when right has none")
	}
	b.Event = &event.Event{ID: 1, Health: 500}
	if got := a.Sub(b); got.Event == nil || got.Event.Health != -200 {
		t.Fatalf("expected event diff -200, got %+v", got.Event)
	}
	b.Statistics = nil
	if got := a.Sub(b); got.Statistics != nil {
		t.Fatalf("expected nil statistics when one side lacks them")
	}
}

func TestAverage(t *testing.T) {
	p0 := planetAt(0, 1000)
	p1 := planetAt(10*time.Minute, 900)
	p2 := planetAt(20*time.Minute, 700)
	p2.Position = Position{X: 3, Y: 4}

	d1, d2 := p1.Sub(p0), p2.Sub(p1)
	avg := Average([]Planet{d1, d2})
	if avg.Health != -150 {
		t.Fatalf("expected -150, got %d", avg.Health)
	}
	if avg.Position != (Position{X: 2, Y: 3}) {
		t.Fatalf("expected mean position {2 3}, got %+v", avg.Position)
	}
	if avg.Statistics == nil || avg.Statistics.Deaths != -15 {
		t.Fatalf("expected averaged statistics, got %+v", avg.Statistics)
	}

	if got := Average([]Planet{d1}); !reflect.DeepEqual(got, d1) {
		t.Fatalf("expected Average([x]) == x")
	}
	if got := Average(nil); !reflect.DeepEqual(got, Planet{}) {
		t.Fatalf("expected zero value for empty list")
	}
}

func TestZeroElapsedChange(t *testing.T) {
	p := planetAt(0, 500)
	if got := p.CalculateChange(p.Sub(p)); got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}
}
