package region

import (
	"log/slog"

	"hd2api/internal/raw"
	"hd2api/internal/shared/find"
	"hd2api/internal/static"
)

// BuildAll stitches the status feed's region rows to the info feed's region
// rows. A row present on only one side is kept and paired with a
// synthesized counterpart, so no region is dropped. Output is in status
// order followed by info-only regions in info order; parent context is not
// applied here.
func BuildAll(snap *raw.Snapshot, statics *static.All) []Region {
	logger := slog.With("component", "region", "operation", "build_all")

	var dynamics []raw.PlanetRegion
	var infos []raw.PlanetRegionInfo
	if snap.Status != nil {
		dynamics = snap.Status.PlanetRegions
	}
	if snap.WarInfo != nil {
		infos = snap.WarInfo.PlanetRegions
	}

	infoByKey := find.IndexBy(infos, func(i raw.PlanetRegionInfo) string {
		return Key(i.PlanetIndex, i.RegionIndex)
	})

	regions := make([]Region, 0, max(len(dynamics), len(infos)))
	seen := make(map[string]struct{}, len(dynamics))
	var synthesizedInfo, synthesizedState int

	for _, dyn := range dynamics {
		key := Key(dyn.PlanetIndex, dyn.RegionIndex)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		info, ok := infoByKey[key]
		if !ok {
			info = synthesizeInfo(dyn)
			dyn = unmatchedState(dyn, info)
			synthesizedInfo++
		}
		regions = append(regions, Build(dyn, info, statics))
	}

	for _, info := range infos {
		key := Key(info.PlanetIndex, info.RegionIndex)
		if _, done := seen[key]; done {
			continue
		}
		seen[key] = struct{}{}
		regions = append(regions, Build(zeroState(info), info, statics))
		synthesizedState++
	}

	if synthesizedInfo > 0 || synthesizedState > 0 {
		logger.Debug("Stitched unmatched region rows",
			"missing_info", synthesizedInfo,
			"missing_state", synthesizedState)
	}
	return regions
}

// zeroState stands in for a region the status feed did not report: no
// owner, full health, no regen and not available.
func zeroState(info raw.PlanetRegionInfo) raw.PlanetRegion {
	return raw.PlanetRegion{
		RetrievedAt: info.RetrievedAt,
		PlanetIndex: info.PlanetIndex,
		RegionIndex: info.RegionIndex,
		Health:      info.MaxHealth,
	}
}

// synthesizeInfo stands in for a region the info feed did not describe.
func synthesizeInfo(dyn raw.PlanetRegion) raw.PlanetRegionInfo {
	return raw.PlanetRegionInfo{
		RetrievedAt: dyn.RetrievedAt,
		PlanetIndex: dyn.PlanetIndex,
		RegionIndex: dyn.RegionIndex,
		MaxHealth:   max(dyn.Health, 0),
	}
}

// unmatchedState reduces a region the info feed did not describe to the
// same shape as zeroState. The reported owner is kept.
func unmatchedState(dyn raw.PlanetRegion, info raw.PlanetRegionInfo) raw.PlanetRegion {
	return raw.PlanetRegion{
		RetrievedAt: dyn.RetrievedAt,
		PlanetIndex: dyn.PlanetIndex,
		RegionIndex: dyn.RegionIndex,
		Owner:       dyn.Owner,
		Health:      info.MaxHealth,
	}
}

// ForPlanet returns the regions on one planet in their original order.
func ForPlanet(regions []Region, planetIndex int) []Region {
	return find.Filter(regions, func(r Region) bool { return r.PlanetIndex == planetIndex })
}
