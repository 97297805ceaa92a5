package sector

import (
	"log/slog"
	"slices"
	"strings"

	"hd2api/internal/delta"
	"hd2api/internal/faction"
	"hd2api/internal/raw"
	"hd2api/internal/static"
)

// NewState builds a sector state from rows and resolves its owner.
func NewState(name string, rows ...raw.PlanetStatus) *State {
	s := &State{
		Name:         name,
		Sector:       name,
		PlanetStatus: make([]raw.PlanetStatus, 0, len(rows)),
	}
	for _, row := range rows {
		s.PlanetStatus = append(s.PlanetStatus, row)
		if row.RetrievedAt.After(s.RetrievedAt) {
			s.Stamp = delta.At(row.RetrievedAt)
		}
	}
	s.checkCommonOwner()
	return s
}

// Add appends a row and re-resolves the owner.
func (s *State) Add(row raw.PlanetStatus) {
	s.PlanetStatus = append(s.PlanetStatus, row)
	if row.RetrievedAt.After(s.RetrievedAt) {
		s.Stamp = delta.At(row.RetrievedAt)
	}
	s.checkCommonOwner()
}

func (s *State) checkCommonOwner() {
	s.Owner = nil
	s.OwnerName = ""
	if len(s.PlanetStatus) == 0 {
		return
	}
	owner := s.PlanetStatus[0].Owner
	for _, row := range s.PlanetStatus[1:] {
		if row.Owner != owner {
			return
		}
	}
	s.Owner = &owner
	s.OwnerName = faction.Name(owner)
}

// States groups the snapshot's planet status rows by static sector name,
// sorted by name. Planets missing from the static set are left out.
func States(snap *raw.Snapshot, statics *static.All) []State {
	if snap == nil || snap.Status == nil {
		return []State{}
	}
	logger := slog.With("component", "sector", "operation", "states")

	bySector := make(map[string]*State)
	skipped := 0
	for _, row := range snap.Status.PlanetStatus {
		base, ok := statics.Galaxy.Planet(row.Index)
		if !ok {
			skipped++
			continue
		}
		if st, exists := bySector[base.Sector]; exists {
			st.Add(row)
			continue
		}
		st := NewState(base.Sector, row)
		st.Stamp = delta.At(snap.Status.RetrievedAt)
		bySector[base.Sector] = st
	}
	if skipped > 0 {
		logger.Debug("Skipped planets without static sector", "count", skipped)
	}

	out := make([]State, 0, len(bySector))
	for _, st := range bySector {
		out = append(out, *st)
	}
	slices.SortFunc(out, func(a, b State) int { return strings.Compare(a.Name, b.Name) })
	return out
}
