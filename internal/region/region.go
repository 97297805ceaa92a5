package region

import (
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"

	"hd2api/internal/delta"
	"hd2api/internal/faction"
	"hd2api/internal/raw"
	"hd2api/internal/static"
)

// Region joins a region's dynamic state with its configuration and static
// display text. Key is the identity; ID is a compact hash of Key for
// display only.
type Region struct {
	delta.Stamp
	Key                string  `json:"keyCombo"`
	ID                 uint32  `json:"id"`
	PlanetIndex        int     `json:"planetIndex"`
	RegionIndex        int     `json:"regionIndex"`
	PlanetName         string  `json:"planetName"`
	SettingsHash       uint64  `json:"settingsHash"`
	Name               string  `json:"name"`
	Description        string  `json:"description"`
	MaxHealth          int64   `json:"maxHealth"`
	RegionSize         int     `json:"regionSize"`
	Size               string  `json:"size"`
	OwnerID            *int    `json:"ownerId"`
	Owner              string  `json:"owner"`
	Health             int64   `json:"health"`
	RegenPerSecond     float64 `json:"regenPerSecond"`
	AvailabilityFactor float64 `json:"availabilityFactor"`
	IsAvailable        bool    `json:"isAvailable"`
	Players            int64   `json:"players"`
}

// ParentContext is what a region inherits from the planet it sits on.
type ParentContext struct {
	PlanetName string
	Owner      int
}

// Key is the composite identity "{planetIndex}_{regionIndex}".
func Key(planetIndex, regionIndex int) string {
	return fmt.Sprintf("%d_%d", planetIndex, regionIndex)
}

// DisplayID folds a key into 32 bits.
func DisplayID(key string) uint32 {
	return uint32(xxhash.Sum64String(key))
}

// Build merges one dynamic row with its info row.
func Build(dynamic raw.PlanetRegion, info raw.PlanetRegionInfo, statics *static.All) Region {
	key := Key(info.PlanetIndex, info.RegionIndex)
	text := statics.Galaxy.Region(info.SettingsHash)

	r := Region{
		Stamp:              delta.At(dynamic.RetrievedAt),
		Key:                key,
		ID:                 DisplayID(key),
		PlanetIndex:        info.PlanetIndex,
		RegionIndex:        info.RegionIndex,
		SettingsHash:       info.SettingsHash,
		Name:               text.Name,
		Description:        text.Description,
		MaxHealth:          info.MaxHealth,
		RegionSize:         info.RegionSize,
		Size:               faction.RegionSize(info.RegionSize),
		Health:             dynamic.Health,
		RegenPerSecond:     max(dynamic.RegenPerSecond, 0),
		AvailabilityFactor: dynamic.AvailabilityFactor,
		IsAvailable:        dynamic.IsAvailable,
		Players:            dynamic.Players,
	}
	if r.RetrievedAt.IsZero() {
		r.RetrievedAt = info.RetrievedAt
	}
	if dynamic.Owner != nil {
		owner := *dynamic.Owner
		r.OwnerID = &owner
		r.Owner = faction.Name(owner)
	}
	if p, ok := statics.Galaxy.Planet(info.PlanetIndex); ok {
		r.PlanetName = p.Name
	}
	return r
}

// ApplyParentContext fills what the region inherits from its planet. The
// planet name always comes from the parent; the owner only when the region
// reports none of its own.
func (r *Region) ApplyParentContext(parent ParentContext) {
	if parent.PlanetName != "" {
		r.PlanetName = parent.PlanetName
	}
	if r.OwnerID == nil {
		owner := parent.Owner
		r.OwnerID = &owner
		r.Owner = faction.Name(owner)
	}
}

// Sub returns r - other. Health and Players are differences; the rest is
// copied from r.
func (r Region) Sub(other Region) Region {
	out := r
	out.Health = r.Health - other.Health
	out.Players = r.Players - other.Players
	out.Stamp = delta.Between(r.Stamp, other.Stamp)
	return out
}

// Average floor-averages Health and Players over len(list).
func Average(list []Region) Region {
	if len(list) == 0 {
		return Region{}
	}
	out := list[0]
	health := make([]int64, len(list))
	players := make([]int64, len(list))
	stamps := make([]delta.Stamp, len(list))
	for i, r := range list {
		health[i] = r.Health
		players[i] = r.Players
		stamps[i] = r.Stamp
	}
	out.Health = delta.MeanInt(health, len(list))
	out.Players = delta.MeanInt(players, len(list))
	out.Stamp = delta.Mean(stamps)
	return out
}

func (r Region) CalculateChange(diff Region) float64 {
	return delta.Rate(diff.Health, diff.Elapsed())
}

func (r Region) CalculateTimeval(change float64) time.Time {
	return delta.ETA(r.RetrievedAt, r.Health, r.MaxHealth, change)
}

func (r Region) Estimate(diff Region) delta.Projection {
	return delta.Project(r.RetrievedAt, r.Health, r.MaxHealth, diff.Health, diff.Elapsed())
}

func (r Region) HealthPercent() float64 {
	return delta.HealthPercent(r.Health, r.MaxHealth)
}
