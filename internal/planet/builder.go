package planet

import (
	"log/slog"
	"slices"
	"time"

	"golang.org/x/text/language"

	"hd2api/internal/delta"
	"hd2api/internal/event"
	"hd2api/internal/faction"
	"hd2api/internal/raw"
	"hd2api/internal/region"
	"hd2api/internal/shared/errors"
	"hd2api/internal/shared/find"
	"hd2api/internal/static"
	"hd2api/internal/stats"
)

// Builder merges snapshots into planets. Language selects which localized
// static name a planet gets.
type Builder struct {
	Language language.Tag
}

// NewBuilder parses lang as a BCP 47 tag, falling back to en-US.
func NewBuilder(lang string) *Builder {
	tag, err := language.Parse(lang)
	if err != nil {
		slog.With("component", "planet", "operation", "new_builder").
			Warn("Unparseable language, using en-US", "language", lang, "error", err)
		tag = language.AmericanEnglish
	}
	return &Builder{Language: tag}
}

var defaultBuilder = &Builder{Language: language.AmericanEnglish}

// Build merges the planet at index using the en-US names.
func Build(index int, snap *raw.Snapshot, statics *static.All) (*Planet, error) {
	return defaultBuilder.Build(index, snap, statics)
}

// BuildAll builds every planet using the en-US names.
func BuildAll(snap *raw.Snapshot, statics *static.All) (map[int]*Planet, error) {
	return defaultBuilder.BuildAll(snap, statics)
}

// shared is computed once per snapshot and reused for every planet.
type shared struct {
	origin  time.Time
	regions []region.Region
}

func prepare(snap *raw.Snapshot, statics *static.All) (*shared, error) {
	if snap == nil || snap.Status == nil || snap.WarInfo == nil {
		return nil, errors.Precondition("snapshot requires war status and war info")
	}
	return &shared{
		origin:  event.WarOrigin(snap.Status, snap.WarInfo),
		regions: region.BuildAll(snap, statics),
	}, nil
}

// Build merges every raw row for one planet. Only a snapshot without war
// status or war info is an error; any other gap becomes a placeholder.
func (b *Builder) Build(index int, snap *raw.Snapshot, statics *static.All) (*Planet, error) {
	sh, err := prepare(snap, statics)
	if err != nil {
		return nil, err
	}
	return b.build(index, snap, statics, sh), nil
}

// BuildAll returns one planet for every index in the static reference set
// plus every index only the info feed knows.
func (b *Builder) BuildAll(snap *raw.Snapshot, statics *static.All) (map[int]*Planet, error) {
	logger := slog.With("component", "planet", "operation", "build_all")

	sh, err := prepare(snap, statics)
	if err != nil {
		return nil, err
	}

	planets := make(map[int]*Planet, len(statics.Galaxy.Planets))
	for index := range statics.Galaxy.Planets {
		planets[index] = b.build(index, snap, statics, sh)
	}
	extra := 0
	for _, info := range snap.WarInfo.PlanetInfos {
		if _, ok := planets[info.Index]; ok {
			continue
		}
		planets[info.Index] = b.build(info.Index, snap, statics, sh)
		extra++
	}

	logger.Debug("Planets built", "count", len(planets), "unreferenced", extra)
	return planets, nil
}

func (b *Builder) build(index int, snap *raw.Snapshot, statics *static.All, sh *shared) *Planet {
	logger := slog.With("component", "planet", "operation", "build", "index", index)

	byIndex := func(s raw.PlanetStatus) int { return s.Index }
	status, ok := find.FirstBy(snap.Status.PlanetStatus, byIndex, index)
	if !ok {
		logger.Debug("No status row, using placeholder")
		status = raw.PlanetStatus{Index: index, RetrievedAt: snap.Status.RetrievedAt}
	}
	info, ok := find.FirstBy(snap.WarInfo.PlanetInfos, func(i raw.PlanetInfo) int { return i.Index }, index)
	if !ok {
		logger.Debug("No info row, using placeholder")
		info = raw.PlanetInfo{Index: index, RetrievedAt: snap.WarInfo.RetrievedAt}
	}
	counters := raw.PlanetStats{PlanetIndex: index}
	if snap.Summary != nil {
		counters = find.FirstOr(snap.Summary.PlanetStats,
			func(s raw.PlanetStats) bool { return s.PlanetIndex == index }, counters)
	}

	retrievedAt := status.RetrievedAt
	if retrievedAt.IsZero() {
		retrievedAt = snap.RetrievedAt
	}

	p := &Planet{
		Stamp:          delta.At(retrievedAt),
		Index:          index,
		SectorID:       info.Sector,
		Hash:           info.SettingsHash,
		Position:       Position{X: info.Position.X, Y: info.Position.Y},
		Waypoints:      slices.Clone(info.Waypoints),
		MaxHealth:      info.MaxHealth,
		Health:         status.Health,
		Disabled:       info.Disabled,
		InitialOwner:   faction.Name(info.InitialOwner),
		CurrentOwner:   faction.Name(status.Owner),
		OwnerID:        status.Owner,
		RegenPerSecond: status.RegenPerSecond,
	}
	if status.Position != nil {
		p.Position = Position{X: status.Position.X, Y: status.Position.Y}
	}

	if base, ok := statics.Galaxy.Planet(index); ok {
		p.Name = b.localizedName(base)
		p.Sector = base.Sector
		p.Biome = statics.Galaxy.BiomeFor(base.Biome)
		p.Hazards = statics.Galaxy.Hazards(base.HazardSlugs())
	} else {
		p.Name = PlaceholderName(uint32(info.SettingsHash))
		p.Sector = PlaceholderSector
		p.Hazards = []*static.Hazard{}
		logger.Debug("Planet missing from statics, using placeholder name", "name", p.Name)
	}

	s := stats.Build(counters.StatCounters, status.Players, retrievedAt)
	p.Statistics = &s

	p.ActivePlanetEffects = []static.KnownEffect{}
	for _, effect := range snap.Status.PlanetActiveEffects {
		if effect.Index != index {
			continue
		}
		known, ok := statics.Effects.Effect(effect.GalacticEffectID)
		if !ok {
			logger.Debug("Unknown galactic effect", "effect_id", effect.GalacticEffectID)
		}
		p.ActivePlanetEffects = append(p.ActivePlanetEffects, known)
	}

	p.Attacking = []int{}
	for _, attack := range snap.Status.PlanetAttacks {
		if attack.Source == index {
			p.Attacking = append(p.Attacking, attack.Target)
		}
	}

	if row, ok := find.First(snap.Status.PlanetEvents, func(e raw.PlanetEvent) bool { return e.PlanetIndex == index }); ok {
		e := event.Build(row, sh.origin)
		p.Event = &e
	}

	p.Regions = region.ForPlanet(sh.regions, index)
	if p.Regions == nil {
		p.Regions = []region.Region{}
	}
	parent := p.ParentContext()
	for i := range p.Regions {
		p.Regions[i].ApplyParentContext(parent)
	}
	return p
}

// localizedName picks the best static name for b.Language, then en-US, then
// the default name.
func (b *Builder) localizedName(base static.PlanetStatic) string {
	if len(base.Names) == 0 {
		return base.Name
	}
	keys := make([]string, 0, len(base.Names))
	for k := range base.Names {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	tags := make([]language.Tag, 0, len(keys))
	valid := make([]string, 0, len(keys))
	for _, k := range keys {
		tag, err := language.Parse(k)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
		valid = append(valid, k)
	}
	if len(tags) == 0 {
		return base.Name
	}

	_, idx, confidence := language.NewMatcher(tags).Match(b.Language, language.AmericanEnglish)
	if confidence == language.No {
		return base.Name
	}
	if name := base.Names[valid[idx]]; name != "" {
		return name
	}
	return base.Name
}
