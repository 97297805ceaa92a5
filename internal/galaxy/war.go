package galaxy

import (
	"time"

	"hd2api/internal/delta"
	"hd2api/internal/faction"
	"hd2api/internal/raw"
	"hd2api/internal/shared/errors"
	"hd2api/internal/stats"
)

// BuildWar summarizes the season. The player count is the sum over every
// planet status row.
func BuildWar(snap *raw.Snapshot) (*War, error) {
	if snap == nil || snap.Status == nil || snap.WarInfo == nil {
		return nil, errors.Precondition("war summary requires war status and war info")
	}
	status, info := snap.Status, snap.WarInfo

	var players int64
	for _, row := range status.PlanetStatus {
		players += row.Players
	}

	var counters raw.StatCounters
	if snap.Summary != nil && snap.Summary.GalaxyStats != nil {
		counters = snap.Summary.GalaxyStats.StatCounters
	}
	s := stats.Build(counters, players, status.RetrievedAt)

	return &War{
		Stamp:            delta.At(status.RetrievedAt),
		WarID:            status.WarID,
		Started:          time.Unix(info.StartDate, 0).UTC(),
		Ended:            time.Unix(info.EndDate, 0).UTC(),
		Now:              info.RetrievedAt,
		ClientVersion:    info.MinimumClientVersion,
		Factions:         faction.Playable(),
		ImpactMultiplier: status.ImpactMultiplier,
		Statistics:       &s,
	}, nil
}

// Sub returns w - other for the impact multiplier and statistics.
func (w War) Sub(other War) War {
	out := w
	out.ImpactMultiplier = w.ImpactMultiplier - other.ImpactMultiplier
	out.Statistics = stats.SubPtr(w.Statistics, other.Statistics)
	out.Stamp = delta.Between(w.Stamp, other.Stamp)
	return out
}
