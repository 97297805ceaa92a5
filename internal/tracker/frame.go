package tracker

import (
	"hd2api/internal/assignment"
	"hd2api/internal/campaign"
	"hd2api/internal/galaxy"
	"hd2api/internal/planet"
	"hd2api/internal/raw"
	"hd2api/internal/region"
	"hd2api/internal/sector"
	"hd2api/internal/static"
)

// Frame is every aggregate built from one snapshot.
type Frame struct {
	Snapshot    *raw.Snapshot
	War         *galaxy.War
	Planets     map[int]*planet.Planet
	Regions     []region.Region
	Campaigns   []campaign.Campaign
	Sectors     []sector.State
	Assignments []assignment.Assignment
}

// BuildFrame runs every builder over snap.
func BuildFrame(snap *raw.Snapshot, statics *static.All, builder *planet.Builder) (*Frame, error) {
	planets, err := builder.BuildAll(snap, statics)
	if err != nil {
		return nil, err
	}
	war, err := galaxy.BuildWar(snap)
	if err != nil {
		return nil, err
	}

	// Regions with their planet's context, in stitch order.
	regions := region.BuildAll(snap, statics)
	for i := range regions {
		if p, ok := planets[regions[i].PlanetIndex]; ok {
			regions[i].ApplyParentContext(p.ParentContext())
		}
	}

	return &Frame{
		Snapshot:    snap,
		War:         war,
		Planets:     planets,
		Regions:     regions,
		Campaigns:   campaign.BuildAll(planets, snap),
		Sectors:     sector.States(snap, statics),
		Assignments: assignment.BuildAll(snap),
	}, nil
}
