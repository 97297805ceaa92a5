package raw

import "time"

// StatCounters is the counter block shared by galaxy-wide and per-planet
// statistics. "accurracy" is the upstream spelling.
type StatCounters struct {
	MissionsWon        int64 `json:"missionsWon"`
	MissionsLost       int64 `json:"missionsLost"`
	MissionTime        int64 `json:"missionTime"`
	BugKills           int64 `json:"bugKills"`
	AutomatonKills     int64 `json:"automatonKills"`
	IlluminateKills    int64 `json:"illuminateKills"`
	BulletsFired       int64 `json:"bulletsFired"`
	BulletsHit         int64 `json:"bulletsHit"`
	TimePlayed         int64 `json:"timePlayed"`
	Deaths             int64 `json:"deaths"`
	Revives            int64 `json:"revives"`
	Friendlies         int64 `json:"friendlies"`
	MissionSuccessRate int64 `json:"missionSuccessRate"`
	Accuracy           int64 `json:"accurracy"`
}

// WarSummary holds galaxy and per-planet statistics.
type WarSummary struct {
	RetrievedAt time.Time     `json:"retrieved_at,omitzero"`
	GalaxyStats *GalaxyStats  `json:"galaxy_stats"`
	PlanetStats []PlanetStats `json:"planets_stats"`
	Extra       Extra         `json:"-"`
}

func (w *WarSummary) UnmarshalJSON(data []byte) error {
	type alias WarSummary
	var a alias
	extra, err := decodeWithExtra(data, &a)
	if err != nil {
		return err
	}
	*w = WarSummary(a)
	w.Extra = extra
	return nil
}

func (w WarSummary) MarshalJSON() ([]byte, error) {
	type alias WarSummary
	return encodeWithExtra(alias(w), w.Extra)
}

type GalaxyStats struct {
	RetrievedAt time.Time `json:"retrieved_at,omitzero"`
	StatCounters
	Extra Extra `json:"-"`
}

func (g *GalaxyStats) UnmarshalJSON(data []byte) error {
	type alias GalaxyStats
	var a alias
	extra, err := decodeWithExtra(data, &a)
	if err != nil {
		return err
	}
	*g = GalaxyStats(a)
	g.Extra = extra
	return nil
}

func (g GalaxyStats) MarshalJSON() ([]byte, error) {
	type alias GalaxyStats
	return encodeWithExtra(alias(g), g.Extra)
}

type PlanetStats struct {
	RetrievedAt time.Time `json:"retrieved_at,omitzero"`
	PlanetIndex int       `json:"planetIndex"`
	StatCounters
	Extra Extra `json:"-"`
}

func (p *PlanetStats) UnmarshalJSON(data []byte) error {
	type alias PlanetStats
	var a alias
	extra, err := decodeWithExtra(data, &a)
	if err != nil {
		return err
	}
	*p = PlanetStats(a)
	p.Extra = extra
	return nil
}

func (p PlanetStats) MarshalJSON() ([]byte, error) {
	type alias PlanetStats
	return encodeWithExtra(alias(p), p.Extra)
}
