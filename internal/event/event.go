package event

import (
	"slices"
	"time"

	"hd2api/internal/delta"
	"hd2api/internal/faction"
	"hd2api/internal/raw"
)

// Event is an attack or defense timer running on a planet.
type Event struct {
	delta.Stamp
	ID                int       `json:"id"`
	EventType         int       `json:"eventType"`
	Faction           string    `json:"faction"`
	Health            int64     `json:"health"`
	MaxHealth         int64     `json:"maxHealth"`
	StartTime         time.Time `json:"startTime"`
	EndTime           time.Time `json:"endTime"`
	CampaignID        int       `json:"campaignId"`
	JointOperationIDs []int     `json:"jointOperationIds"`
}

// WarOrigin returns the wall-clock instant that wartime offset zero maps to.
// The game clock drifts from the season start date, so the origin is
// corrected by how far "now" (the retrieval time) is from start + status.Time.
func WarOrigin(status *raw.WarStatus, info *raw.WarInfo) time.Time {
	start := time.Unix(info.StartDate, 0).UTC()
	gameNow := start.Add(time.Duration(status.Time) * time.Second)
	deviation := status.RetrievedAt.Sub(gameNow)
	return start.Add(deviation)
}

// At converts a wartime offset in seconds to an absolute time.
func At(origin time.Time, offset int64) time.Time {
	return origin.Add(time.Duration(offset) * time.Second)
}

// Build converts a raw event row using a precomputed war origin.
func Build(row raw.PlanetEvent, origin time.Time) Event {
	return Event{
		Stamp:             delta.At(row.RetrievedAt),
		ID:                row.ID,
		EventType:         row.EventType,
		Faction:           faction.Name(row.Race),
		Health:            row.Health,
		MaxHealth:         row.MaxHealth,
		StartTime:         At(origin, row.StartTime),
		EndTime:           At(origin, row.ExpireTime),
		CampaignID:        row.CampaignID,
		JointOperationIDs: slices.Clone(row.JointOperationIDs),
	}
}

// Sub returns e - other. Only Health is a difference; everything else is
// copied from e.
func (e Event) Sub(other Event) Event {
	out := e
	out.Health = e.Health - other.Health
	out.Stamp = delta.Between(e.Stamp, other.Stamp)
	return out
}

// SubPtr subtracts optional events. When either side is missing the left
// operand is returned unchanged, which may be nil.
func SubPtr(a, b *Event) *Event {
	if a == nil || b == nil {
		return a
	}
	out := a.Sub(*b)
	return &out
}

// Average floor-averages Health over len(list); the rest comes from the
// first element.
func Average(list []Event) Event {
	if len(list) == 0 {
		return Event{}
	}
	out := list[0]
	health := make([]int64, len(list))
	stamps := make([]delta.Stamp, len(list))
	for i, e := range list {
		health[i] = e.Health
		stamps[i] = e.Stamp
	}
	out.Health = delta.MeanInt(health, len(list))
	out.Stamp = delta.Mean(stamps)
	return out
}

// CalculateChange is diff.Health per second of diff's time delta.
func (e Event) CalculateChange(diff Event) float64 {
	return delta.Rate(diff.Health, diff.Elapsed())
}

// CalculateTimeval projects when Health reaches zero or MaxHealth at the
// given rate, measured from e's retrieval time.
func (e Event) CalculateTimeval(change float64) time.Time {
	return delta.ETA(e.RetrievedAt, e.Health, e.MaxHealth, change)
}

// Estimate projects e forward using an averaged difference.
func (e Event) Estimate(diff Event) delta.Projection {
	return delta.Project(e.RetrievedAt, e.Health, e.MaxHealth, diff.Health, diff.Elapsed())
}

func (e Event) HealthPercent() float64 {
	return delta.HealthPercent(e.Health, e.MaxHealth)
}
