package campaign

import (
	"log/slog"

	"hd2api/internal/delta"
	"hd2api/internal/faction"
	"hd2api/internal/planet"
	"hd2api/internal/raw"
)

// Campaign is an ongoing fight for a planet. Planet is nil when the target
// planet was not built.
type Campaign struct {
	delta.Stamp
	ID      int            `json:"id"`
	Planet  *planet.Planet `json:"planet"`
	Type    int            `json:"type"`
	Count   int            `json:"count"`
	Faction string         `json:"faction"`
}

// Build joins one raw campaign row with its planet.
func Build(planets map[int]*planet.Planet, row raw.Campaign) Campaign {
	return Campaign{
		Stamp:   delta.At(row.RetrievedAt),
		ID:      row.ID,
		Planet:  planets[row.PlanetIndex],
		Type:    row.Type,
		Count:   row.Count,
		Faction: faction.Name(row.Race),
	}
}

// BuildAll builds every campaign in the snapshot's status, in status order.
func BuildAll(planets map[int]*planet.Planet, snap *raw.Snapshot) []Campaign {
	if snap == nil || snap.Status == nil {
		return []Campaign{}
	}
	logger := slog.With("component", "campaign", "operation", "build_all")

	out := make([]Campaign, 0, len(snap.Status.Campaigns))
	for _, row := range snap.Status.Campaigns {
		c := Build(planets, row)
		if c.Planet == nil {
			logger.Debug("Campaign targets unknown planet", "campaign_id", row.ID, "planet_index", row.PlanetIndex)
		}
		out = append(out, c)
	}
	return out
}

// Sub returns c - other with the planets subtracted. A missing planet on
// either side leaves c's planet in place.
func (c Campaign) Sub(other Campaign) Campaign {
	out := c
	if c.Planet != nil && other.Planet != nil {
		p := c.Planet.Sub(*other.Planet)
		out.Planet = &p
	}
	out.Stamp = delta.Between(c.Stamp, other.Stamp)
	return out
}

// Average averages the planets; the rest comes from the first element.
func Average(list []Campaign) Campaign {
	if len(list) == 0 {
		return Campaign{}
	}
	out := list[0]
	planets := make([]planet.Planet, 0, len(list))
	stamps := make([]delta.Stamp, len(list))
	for i, c := range list {
		stamps[i] = c.Stamp
		if c.Planet != nil {
			planets = append(planets, *c.Planet)
		}
	}
	out.Planet = nil
	if len(planets) > 0 {
		p := planet.Average(planets)
		out.Planet = &p
	}
	out.Stamp = delta.Mean(stamps)
	return out
}

// Estimate projects the campaign's planet; a campaign with no planet on
// either side is a stalemate.
func (c Campaign) Estimate(diff Campaign) delta.Projection {
	if c.Planet == nil || diff.Planet == nil {
		return delta.Projection{Direction: delta.DirectionStalemate}
	}
	return c.Planet.Estimate(*diff.Planet)
}
