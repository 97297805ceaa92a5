package raw

import (
	"encoding/json"
	"time"
)

// WarStatus is the fast-changing half of the war: per-planet state, events,
// attacks, campaigns and regions.
type WarStatus struct {
	RetrievedAt         time.Time            `json:"retrieved_at,omitzero"`
	WarID               int                  `json:"warId"`
	Time                int64                `json:"time"`
	ImpactMultiplier    float64              `json:"impactMultiplier"`
	PlanetStatus        []PlanetStatus       `json:"planetStatus"`
	PlanetRegions       []PlanetRegion       `json:"planetRegions"`
	PlanetAttacks       []PlanetAttack       `json:"planetAttacks"`
	Campaigns           []Campaign           `json:"campaigns"`
	JointOperations     []JointOperation     `json:"jointOperations"`
	PlanetEvents        []PlanetEvent        `json:"planetEvents"`
	PlanetActiveEffects []PlanetActiveEffect `json:"planetActiveEffects"`
	GlobalEvents        []GlobalEvent        `json:"globalEvents"`
	LayoutVersion       int                  `json:"layoutVersion"`
	Extra               Extra                `json:"-"`
}

func (w *WarStatus) UnmarshalJSON(data []byte) error {
	type alias WarStatus
	var a alias
	extra, err := decodeWithExtra(data, &a)
	if err != nil {
		return err
	}
	*w = WarStatus(a)
	w.Extra = extra
	return nil
}

func (w WarStatus) MarshalJSON() ([]byte, error) {
	type alias WarStatus
	return encodeWithExtra(alias(w), w.Extra)
}

// Coordinates is a point on the galactic war map.
type Coordinates struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type PlanetStatus struct {
	RetrievedAt    time.Time `json:"retrieved_at,omitzero"`
	Index          int       `json:"index"`
	Owner          int       `json:"owner"`
	Health         int64     `json:"health"`
	RegenPerSecond float64   `json:"regenPerSecond"`
	Players        int64     `json:"players"`
	// Some providers report a per-snapshot position; nil when absent.
	Position *Coordinates `json:"position,omitempty"`
	Extra    Extra        `json:"-"`
}

func (p *PlanetStatus) UnmarshalJSON(data []byte) error {
	type alias PlanetStatus
	var a alias
	extra, err := decodeWithExtra(data, &a)
	if err != nil {
		return err
	}
	*p = PlanetStatus(a)
	p.Extra = extra
	return nil
}

func (p PlanetStatus) MarshalJSON() ([]byte, error) {
	type alias PlanetStatus
	return encodeWithExtra(alias(p), p.Extra)
}

// PlanetRegion is the dynamic state of one region.
type PlanetRegion struct {
	RetrievedAt        time.Time `json:"retrieved_at,omitzero"`
	PlanetIndex        int       `json:"planetIndex"`
	RegionIndex        int       `json:"regionIndex"`
	Owner              *int      `json:"owner"`
	Health             int64     `json:"health"`
	RegenPerSecond     float64   `json:"regenPerSecond"`
	AvailabilityFactor float64   `json:"availabilityFactor"`
	IsAvailable        bool      `json:"isAvailable"`
	Players            int64     `json:"players"`
	Extra              Extra     `json:"-"`
}

func (p *PlanetRegion) UnmarshalJSON(data []byte) error {
	type alias PlanetRegion
	var a alias
	extra, err := decodeWithExtra(data, &a)
	if err != nil {
		return err
	}
	*p = PlanetRegion(a)
	p.Extra = extra

	// Upstream has shipped this field as "regerPerSecond".
	if typo, ok := p.Extra["regerPerSecond"]; ok && p.RegenPerSecond == 0 {
		var regen float64
		if err := json.Unmarshal(typo, &regen); err == nil {
			p.RegenPerSecond = regen
			delete(p.Extra, "regerPerSecond")
		}
	}
	return nil
}

func (p PlanetRegion) MarshalJSON() ([]byte, error) {
	type alias PlanetRegion
	return encodeWithExtra(alias(p), p.Extra)
}

type PlanetAttack struct {
	RetrievedAt time.Time `json:"retrieved_at,omitzero"`
	Source      int       `json:"source"`
	Target      int       `json:"target"`
	Extra       Extra     `json:"-"`
}

func (p *PlanetAttack) UnmarshalJSON(data []byte) error {
	type alias PlanetAttack
	var a alias
	extra, err := decodeWithExtra(data, &a)
	if err != nil {
		return err
	}
	*p = PlanetAttack(a)
	p.Extra = extra
	return nil
}

func (p PlanetAttack) MarshalJSON() ([]byte, error) {
	type alias PlanetAttack
	return encodeWithExtra(alias(p), p.Extra)
}

type Campaign struct {
	RetrievedAt time.Time `json:"retrieved_at,omitzero"`
	ID          int       `json:"id"`
	PlanetIndex int       `json:"planetIndex"`
	Type        int       `json:"type"`
	Count       int       `json:"count"`
	Race        int       `json:"race"`
	Extra       Extra     `json:"-"`
}

func (c *Campaign) UnmarshalJSON(data []byte) error {
	type alias Campaign
	var a alias
	extra, err := decodeWithExtra(data, &a)
	if err != nil {
		return err
	}
	*c = Campaign(a)
	c.Extra = extra
	return nil
}

func (c Campaign) MarshalJSON() ([]byte, error) {
	type alias Campaign
	return encodeWithExtra(alias(c), c.Extra)
}

type JointOperation struct {
	RetrievedAt time.Time `json:"retrieved_at,omitzero"`
	ID          int       `json:"id"`
	PlanetIndex int       `json:"planetIndex"`
	HQNodeIndex int       `json:"hqNodeIndex"`
	Extra       Extra     `json:"-"`
}

func (j *JointOperation) UnmarshalJSON(data []byte) error {
	type alias JointOperation
	var a alias
	extra, err := decodeWithExtra(data, &a)
	if err != nil {
		return err
	}
	*j = JointOperation(a)
	j.Extra = extra
	return nil
}

func (j JointOperation) MarshalJSON() ([]byte, error) {
	type alias JointOperation
	return encodeWithExtra(alias(j), j.Extra)
}

// PlanetEvent is an attack or defense timer. StartTime and ExpireTime are
// wartime offsets in seconds, not epoch seconds.
type PlanetEvent struct {
	RetrievedAt       time.Time `json:"retrieved_at,omitzero"`
	ID                int       `json:"id"`
	PlanetIndex       int       `json:"planetIndex"`
	EventType         int       `json:"eventType"`
	Race              int       `json:"race"`
	Health            int64     `json:"health"`
	MaxHealth         int64     `json:"maxHealth"`
	StartTime         int64     `json:"startTime"`
	ExpireTime        int64     `json:"expireTime"`
	CampaignID        int       `json:"campaignId"`
	JointOperationIDs []int     `json:"jointOperationIds"`
	Extra             Extra     `json:"-"`
}

func (p *PlanetEvent) UnmarshalJSON(data []byte) error {
	type alias PlanetEvent
	var a alias
	extra, err := decodeWithExtra(data, &a)
	if err != nil {
		return err
	}
	*p = PlanetEvent(a)
	p.Extra = extra
	return nil
}

func (p PlanetEvent) MarshalJSON() ([]byte, error) {
	type alias PlanetEvent
	return encodeWithExtra(alias(p), p.Extra)
}

type PlanetActiveEffect struct {
	RetrievedAt      time.Time `json:"retrieved_at,omitzero"`
	Index            int       `json:"index"`
	GalacticEffectID int       `json:"galacticEffectId"`
	Extra            Extra     `json:"-"`
}

func (p *PlanetActiveEffect) UnmarshalJSON(data []byte) error {
	type alias PlanetActiveEffect
	var a alias
	extra, err := decodeWithExtra(data, &a)
	if err != nil {
		return err
	}
	*p = PlanetActiveEffect(a)
	p.Extra = extra
	return nil
}

func (p PlanetActiveEffect) MarshalJSON() ([]byte, error) {
	type alias PlanetActiveEffect
	return encodeWithExtra(alias(p), p.Extra)
}

type GlobalEvent struct {
	RetrievedAt   time.Time `json:"retrieved_at,omitzero"`
	EventID       int       `json:"eventId"`
	Title         string    `json:"title"`
	Message       string    `json:"message"`
	Race          int       `json:"race"`
	Flag          int       `json:"flag"`
	EffectIDs     []int     `json:"effectIds"`
	PlanetIndices []int     `json:"planetIndices"`
	Extra         Extra     `json:"-"`
}

func (g *GlobalEvent) UnmarshalJSON(data []byte) error {
	type alias GlobalEvent
	var a alias
	extra, err := decodeWithExtra(data, &a)
	if err != nil {
		return err
	}
	*g = GlobalEvent(a)
	g.Extra = extra
	return nil
}

func (g GlobalEvent) MarshalJSON() ([]byte, error) {
	type alias GlobalEvent
	return encodeWithExtra(alias(g), g.Extra)
}
