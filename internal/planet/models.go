package planet

import (
	"hd2api/internal/delta"
	"hd2api/internal/event"
	"hd2api/internal/region"
	"hd2api/internal/static"
	"hd2api/internal/stats"
)

// Planet is the merged view of one planet: static facts, configuration,
// dynamic state, statistics, the active event and its regions.
type Planet struct {
	delta.Stamp
	Index               int                  `json:"index"`
	Name                string               `json:"name"`
	Sector              string               `json:"sector"`
	SectorID            int                  `json:"sectorId"`
	Biome               *static.Biome        `json:"biome"`
	Hazards             []*static.Hazard     `json:"hazards"`
	Hash                uint64               `json:"hash"`
	Position            Position             `json:"position"`
	Waypoints           []int                `json:"waypoints"`
	MaxHealth           int64                `json:"maxHealth"`
	Health              int64                `json:"health"`
	Disabled            bool                 `json:"disabled"`
	InitialOwner        string               `json:"initialOwner"`
	CurrentOwner        string               `json:"currentOwner"`
	OwnerID             int                  `json:"ownerId"`
	RegenPerSecond      float64              `json:"regenPerSecond"`
	Statistics          *stats.Statistics    `json:"statistics"`
	Event               *event.Event         `json:"event"`
	Attacking           []int                `json:"attacking"`
	ActivePlanetEffects []static.KnownEffect `json:"activePlanetEffects"`
	Regions             []region.Region      `json:"regions"`
}

// Position is a point on the war map.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (p Position) Sub(other Position) Position {
	return Position{X: p.X - other.X, Y: p.Y - other.Y}
}

// AveragePosition is the arithmetic mean of positions.
func AveragePosition(list []Position) Position {
	if len(list) == 0 {
		return Position{}
	}
	var sum Position
	for _, p := range list {
		sum.X += p.X
		sum.Y += p.Y
	}
	n := float64(len(list))
	return Position{X: sum.X / n, Y: sum.Y / n}
}

// ParentContext is what the planet hands down to its regions.
func (p *Planet) ParentContext() region.ParentContext {
	return region.ParentContext{PlanetName: p.Name, Owner: p.OwnerID}
}
