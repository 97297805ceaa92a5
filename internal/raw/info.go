package raw

import (
	"encoding/json"
	"time"
)

// WarInfo is the slow-changing half of the war: season dates and planet
// topology.
type WarInfo struct {
	RetrievedAt          time.Time          `json:"retrieved_at,omitzero"`
	WarID                int                `json:"warId"`
	StartDate            int64              `json:"startDate"`
	EndDate              int64              `json:"endDate"`
	LayoutVersion        int                `json:"layoutVersion"`
	MinimumClientVersion string             `json:"minimumClientVersion"`
	PlanetInfos          []PlanetInfo       `json:"planetInfos"`
	HomeWorlds           []HomeWorld        `json:"homeWorlds"`
	PlanetRegions        []PlanetRegionInfo `json:"planetRegions"`
	Extra                Extra              `json:"-"`
}

func (w *WarInfo) UnmarshalJSON(data []byte) error {
	type alias WarInfo
	var a alias
	extra, err := decodeWithExtra(data, &a)
	if err != nil {
		return err
	}
	*w = WarInfo(a)
	w.Extra = extra

	// Some providers name the region table "regionInfos".
	if alt, ok := w.Extra["regionInfos"]; ok && len(w.PlanetRegions) == 0 {
		var regions []PlanetRegionInfo
		if err := json.Unmarshal(alt, &regions); err != nil {
			return err
		}
		w.PlanetRegions = regions
		delete(w.Extra, "regionInfos")
	}
	return nil
}

func (w WarInfo) MarshalJSON() ([]byte, error) {
	type alias WarInfo
	return encodeWithExtra(alias(w), w.Extra)
}

type PlanetInfo struct {
	RetrievedAt  time.Time   `json:"retrieved_at,omitzero"`
	Index        int         `json:"index"`
	SettingsHash uint64      `json:"settingsHash"`
	Position     Coordinates `json:"position"`
	Waypoints    []int       `json:"waypoints"`
	Sector       int         `json:"sector"`
	MaxHealth    int64       `json:"maxHealth"`
	Disabled     bool        `json:"disabled"`
	InitialOwner int         `json:"initialOwner"`
	Extra        Extra       `json:"-"`
}

func (p *PlanetInfo) UnmarshalJSON(data []byte) error {
	type alias PlanetInfo
	var a alias
	extra, err := decodeWithExtra(data, &a)
	if err != nil {
		return err
	}
	*p = PlanetInfo(a)
	p.Extra = extra
	return nil
}

func (p PlanetInfo) MarshalJSON() ([]byte, error) {
	type alias PlanetInfo
	return encodeWithExtra(alias(p), p.Extra)
}

// PlanetRegionInfo is the static configuration of one region.
type PlanetRegionInfo struct {
	RetrievedAt  time.Time `json:"retrieved_at,omitzero"`
	PlanetIndex  int       `json:"planetIndex"`
	RegionIndex  int       `json:"regionIndex"`
	SettingsHash uint64    `json:"settingsHash"`
	MaxHealth    int64     `json:"maxHealth"`
	RegionSize   int       `json:"regionSize"`
	Extra        Extra     `json:"-"`
}

func (p *PlanetRegionInfo) UnmarshalJSON(data []byte) error {
	type alias PlanetRegionInfo
	var a alias
	extra, err := decodeWithExtra(data, &a)
	if err != nil {
		return err
	}
	*p = PlanetRegionInfo(a)
	p.Extra = extra
	return nil
}

func (p PlanetRegionInfo) MarshalJSON() ([]byte, error) {
	type alias PlanetRegionInfo
	return encodeWithExtra(alias(p), p.Extra)
}

type HomeWorld struct {
	RetrievedAt   time.Time `json:"retrieved_at,omitzero"`
	Race          int       `json:"race"`
	PlanetIndices []int     `json:"planetIndices"`
	Extra         Extra     `json:"-"`
}

func (h *HomeWorld) UnmarshalJSON(data []byte) error {
	type alias HomeWorld
	var a alias
	extra, err := decodeWithExtra(data, &a)
	if err != nil {
		return err
	}
	*h = HomeWorld(a)
	h.Extra = extra
	return nil
}

func (h HomeWorld) MarshalJSON() ([]byte, error) {
	type alias HomeWorld
	return encodeWithExtra(alias(h), h.Extra)
}
