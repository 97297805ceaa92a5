package planet

import (
	"time"

	"hd2api/internal/delta"
	"hd2api/internal/event"
	"hd2api/internal/stats"
)

// Sub returns p - other. Health is a difference, statistics and the event
// are subtracted when both sides have them; everything else is p's.
func (p Planet) Sub(other Planet) Planet {
	out := p
	out.Health = p.Health - other.Health
	if p.Statistics != nil && other.Statistics != nil {
		s := p.Statistics.Sub(*other.Statistics)
		out.Statistics = &s
	} else {
		out.Statistics = nil
	}
	out.Event = event.SubPtr(p.Event, other.Event)
	out.Stamp = delta.Between(p.Stamp, other.Stamp)
	return out
}

// Average floor-averages Health over len(list) and averages statistics,
// events and positions over the elements that carry them. Identity comes
// from the first element.
func Average(list []Planet) Planet {
	if len(list) == 0 {
		return Planet{}
	}
	out := list[0]

	health := make([]int64, len(list))
	stamps := make([]delta.Stamp, len(list))
	positions := make([]Position, len(list))
	var statistics []stats.Statistics
	var events []event.Event
	for i, p := range list {
		health[i] = p.Health
		stamps[i] = p.Stamp
		positions[i] = p.Position
		if p.Statistics != nil {
			statistics = append(statistics, *p.Statistics)
		}
		if p.Event != nil {
			events = append(events, *p.Event)
		}
	}

	out.Health = delta.MeanInt(health, len(list))
	out.Position = AveragePosition(positions)
	out.Stamp = delta.Mean(stamps)
	out.Statistics = nil
	if len(statistics) > 0 {
		s := stats.Average(statistics)
		out.Statistics = &s
	}
	out.Event = nil
	if len(events) > 0 {
		e := event.Average(events)
		out.Event = &e
	}
	return out
}

func (p Planet) CalculateChange(diff Planet) float64 {
	return delta.Rate(diff.Health, diff.Elapsed())
}

func (p Planet) CalculateTimeval(change float64) time.Time {
	return delta.ETA(p.RetrievedAt, p.Health, p.MaxHealth, change)
}

// Estimate projects planet health forward from an averaged difference.
func (p Planet) Estimate(diff Planet) delta.Projection {
	return delta.Project(p.RetrievedAt, p.Health, p.MaxHealth, diff.Health, diff.Elapsed())
}

func (p Planet) HealthPercent() float64 {
	return delta.HealthPercent(p.Health, p.MaxHealth)
}
