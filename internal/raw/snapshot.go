package raw

import "time"

// Snapshot is everything one fetch returned. Its JSON shape matches the
// diveharder /raw/all document; the other providers assemble it piecewise.
type Snapshot struct {
	RetrievedAt    time.Time      `json:"retrieved_at,omitzero"`
	Status         *WarStatus     `json:"status"`
	WarInfo        *WarInfo       `json:"war_info"`
	Summary        *WarSummary    `json:"planet_stats"`
	MajorOrders    []Assignment   `json:"major_order"`
	PersonalOrders []Assignment   `json:"personal_order"`
	NewsFeed       []NewsFeedItem `json:"news_feed"`
	Extra          Extra          `json:"-"`
}

func (s *Snapshot) UnmarshalJSON(data []byte) error {
	type alias Snapshot
	var v alias
	extra, err := decodeWithExtra(data, &v)
	if err != nil {
		return err
	}
	*s = Snapshot(v)
	s.Extra = extra
	return nil
}

func (s Snapshot) MarshalJSON() ([]byte, error) {
	type alias Snapshot
	return encodeWithExtra(alias(s), s.Extra)
}

// Stamp sets the retrieval time on the snapshot and on every nested row.
func (s *Snapshot) Stamp(at time.Time) {
	s.RetrievedAt = at
	if st := s.Status; st != nil {
		st.RetrievedAt = at
		for i := range st.PlanetStatus {
			st.PlanetStatus[i].RetrievedAt = at
		}
		for i := range st.PlanetRegions {
			st.PlanetRegions[i].RetrievedAt = at
		}
		for i := range st.PlanetAttacks {
			st.PlanetAttacks[i].RetrievedAt = at
		}
		for i := range st.Campaigns {
			st.Campaigns[i].RetrievedAt = at
		}
		for i := range st.JointOperations {
			st.JointOperations[i].RetrievedAt = at
		}
		for i := range st.PlanetEvents {
			st.PlanetEvents[i].RetrievedAt = at
		}
		for i := range st.PlanetActiveEffects {
			st.PlanetActiveEffects[i].RetrievedAt = at
		}
		for i := range st.GlobalEvents {
			st.GlobalEvents[i].RetrievedAt = at
		}
	}
	if info := s.WarInfo; info != nil {
		info.RetrievedAt = at
		for i := range info.PlanetInfos {
			info.PlanetInfos[i].RetrievedAt = at
		}
		for i := range info.HomeWorlds {
			info.HomeWorlds[i].RetrievedAt = at
		}
		for i := range info.PlanetRegions {
			info.PlanetRegions[i].RetrievedAt = at
		}
	}
	if sum := s.Summary; sum != nil {
		sum.RetrievedAt = at
		if sum.GalaxyStats != nil {
			sum.GalaxyStats.RetrievedAt = at
		}
		for i := range sum.PlanetStats {
			sum.PlanetStats[i].RetrievedAt = at
		}
	}
	stampAssignments(s.MajorOrders, at)
	stampAssignments(s.PersonalOrders, at)
	for i := range s.NewsFeed {
		s.NewsFeed[i].RetrievedAt = at
	}
}

func stampAssignments(list []Assignment, at time.Time) {
	for i := range list {
		a := &list[i]
		a.RetrievedAt = at
		if a.Setting == nil {
			continue
		}
		a.Setting.RetrievedAt = at
		for j := range a.Setting.Tasks {
			a.Setting.Tasks[j].RetrievedAt = at
		}
		if a.Setting.Reward != nil {
			a.Setting.Reward.RetrievedAt = at
		}
		for j := range a.Setting.Rewards {
			a.Setting.Rewards[j].RetrievedAt = at
		}
	}
}
