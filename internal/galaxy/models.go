package galaxy

import (
	"time"

	"hd2api/internal/delta"
	"hd2api/internal/stats"
)

// War is the galaxy-wide summary of the current season.
type War struct {
	delta.Stamp
	WarID            int               `json:"warId"`
	Started          time.Time         `json:"started"`
	Ended            time.Time         `json:"ended"`
	Now              time.Time         `json:"now"`
	ClientVersion    string            `json:"clientVersion"`
	Factions         []string          `json:"factions"`
	ImpactMultiplier float64           `json:"impactMultiplier"`
	Statistics       *stats.Statistics `json:"statistics"`
}
