package stats

import (
	"time"

	"hd2api/internal/delta"
	"hd2api/internal/raw"
)

// Statistics is the counter aggregate attached to planets and the war.
// On a delta value every counter is a difference.
type Statistics struct {
	delta.Stamp
	MissionsWon        int64 `json:"missionsWon"`
	MissionsLost       int64 `json:"missionsLost"`
	MissionTime        int64 `json:"missionTime"`
	TerminidKills      int64 `json:"terminidKills"`
	AutomatonKills     int64 `json:"automatonKills"`
	IlluminateKills    int64 `json:"illuminateKills"`
	BulletsFired       int64 `json:"bulletsFired"`
	BulletsHit         int64 `json:"bulletsHit"`
	TimePlayed         int64 `json:"timePlayed"`
	Deaths             int64 `json:"deaths"`
	Revives            int64 `json:"revives"`
	Friendlies         int64 `json:"friendlies"`
	MissionSuccessRate int64 `json:"missionSuccessRate"`
	Accuracy           int64 `json:"accuracy"`
	PlayerCount        int64 `json:"playerCount"`
}

// Build maps a raw counter block onto Statistics. Upstream reports players
// on the status row, not the stats row, so it is passed separately.
func Build(c raw.StatCounters, players int64, retrievedAt time.Time) Statistics {
	return Statistics{
		Stamp:              delta.At(retrievedAt),
		MissionsWon:        c.MissionsWon,
		MissionsLost:       c.MissionsLost,
		MissionTime:        c.MissionTime,
		TerminidKills:      c.BugKills,
		AutomatonKills:     c.AutomatonKills,
		IlluminateKills:    c.IlluminateKills,
		BulletsFired:       c.BulletsFired,
		BulletsHit:         c.BulletsHit,
		TimePlayed:         c.TimePlayed,
		Deaths:             c.Deaths,
		Revives:            c.Revives,
		Friendlies:         c.Friendlies,
		MissionSuccessRate: c.MissionSuccessRate,
		Accuracy:           c.Accuracy,
		PlayerCount:        players,
	}
}

func (s *Statistics) counters() []*int64 {
	return []*int64{
		&s.MissionsWon, &s.MissionsLost, &s.MissionTime,
		&s.TerminidKills, &s.AutomatonKills, &s.IlluminateKills,
		&s.BulletsFired, &s.BulletsHit, &s.TimePlayed,
		&s.Deaths, &s.Revives, &s.Friendlies,
		&s.MissionSuccessRate, &s.Accuracy, &s.PlayerCount,
	}
}

// Sub returns s - other counter by counter.
func (s Statistics) Sub(other Statistics) Statistics {
	out := s
	theirs := other.counters()
	for i, c := range out.counters() {
		*c -= *theirs[i]
	}
	out.Stamp = delta.Between(s.Stamp, other.Stamp)
	return out
}

// SubPtr is Sub for optional statistics. A missing operand counts as all
// zero counters at the other side's retrieval time.
func SubPtr(a, b *Statistics) *Statistics {
	switch {
	case a == nil && b == nil:
		return nil
	case a == nil:
		a = &Statistics{Stamp: delta.At(b.RetrievedAt)}
	case b == nil:
		b = &Statistics{Stamp: delta.At(a.RetrievedAt)}
	}
	out := a.Sub(*b)
	return &out
}

// Add applies a delta to s and is the inverse of Sub: a.Sub(b).Add(b)
// equals a. Adding a snapshot to a delta yields a snapshot.
func (s Statistics) Add(other Statistics) Statistics {
	out := s
	theirs := other.counters()
	for i, c := range out.counters() {
		*c += *theirs[i]
	}
	switch {
	case s.IsDelta() && other.IsDelta():
		d := s.Elapsed() + other.Elapsed()
		out.TimeDelta = &d
	default:
		out.TimeDelta = nil
	}
	return out
}

// Average floor-averages each counter over len(list). Identity and
// retrieval time come from the first element.
func Average(list []Statistics) Statistics {
	if len(list) == 0 {
		return Statistics{}
	}
	out := list[0]
	sums := make([]int64, len(out.counters()))
	stamps := make([]delta.Stamp, 0, len(list))
	for i := range list {
		for j, c := range list[i].counters() {
			sums[j] += *c
		}
		stamps = append(stamps, list[i].Stamp)
	}
	for j, c := range out.counters() {
		*c = delta.FloorDiv(sums[j], int64(len(list)))
	}
	out.Stamp = delta.Mean(stamps)
	return out
}
