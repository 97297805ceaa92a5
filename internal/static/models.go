package static

import "fmt"

// All is the full reference set. It is read-only once loaded and safe to
// share between goroutines.
type All struct {
	Galaxy  GalaxyStatic
	Effects EffectStatic
	// Embedded is set when the small sample set compiled into the binary
	// was loaded instead of a directory.
	Embedded bool
}

type GalaxyStatic struct {
	Biomes         map[string]Biome              `json:"biomes"`
	Environmentals map[string]Hazard             `json:"environmentals"`
	Planets        map[int]PlanetStatic          `json:"planets"`
	PlanetRegions  map[uint64]PlanetRegionStatic `json:"planetRegion"`
}

type Biome struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type Hazard struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type PlanetStatic struct {
	Name           string            `json:"name"`
	Sector         string            `json:"sector"`
	Biome          string            `json:"biome"`
	Environmentals []string          `json:"environmentals"`
	WeatherEffects []string          `json:"weather_effects"`
	Type           string            `json:"type"`
	Names          map[string]string `json:"names"`
}

// HazardSlugs lists environmental slugs followed by weather effect slugs.
func (p PlanetStatic) HazardSlugs() []string {
	slugs := make([]string, 0, len(p.Environmentals)+len(p.WeatherEffects))
	slugs = append(slugs, p.Environmentals...)
	return append(slugs, p.WeatherEffects...)
}

type PlanetRegionStatic struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Placeholder values for regions whose settings hash is not in the table.
const (
	UnnamedRegion        = "UNNAMED"
	RegionNoDescription  = "NoDescription"
	unknownEffectSummary = "Mysterious signature..."
)

type KnownEffect struct {
	GalacticEffectID int    `json:"galacticEffectId"`
	Name             string `json:"name"`
	Description      string `json:"description"`
}

type EffectStatic struct {
	PlanetEffects map[int]KnownEffect `json:"planetEffects"`
}

// Effect resolves a galactic effect id. Unknown ids get a generated entry
// rather than an error.
func (e EffectStatic) Effect(id int) (KnownEffect, bool) {
	if effect, ok := e.PlanetEffects[id]; ok {
		if effect.GalacticEffectID == 0 {
			effect.GalacticEffectID = id
		}
		return effect, true
	}
	return KnownEffect{
		GalacticEffectID: id,
		Name:             fmt.Sprintf("Effect %d", id),
		Description:      unknownEffectSummary,
	}, false
}

// Planet returns the static facts for a planet index.
func (g GalaxyStatic) Planet(index int) (PlanetStatic, bool) {
	p, ok := g.Planets[index]
	return p, ok
}

// Region resolves region display text by settings hash, falling back to
// the UNNAMED placeholder.
func (g GalaxyStatic) Region(hash uint64) PlanetRegionStatic {
	if r, ok := g.PlanetRegions[hash]; ok {
		return r
	}
	return PlanetRegionStatic{Name: UnnamedRegion, Description: RegionNoDescription}
}

// Hazards joins hazard slugs against the environmentals table. Unknown slugs
// leave a nil slot so positions stay aligned with the slug list.
func (g GalaxyStatic) Hazards(slugs []string) []*Hazard {
	out := make([]*Hazard, len(slugs))
	for i, slug := range slugs {
		if h, ok := g.Environmentals[slug]; ok {
			out[i] = &h
		}
	}
	return out
}

// BiomeFor joins a biome slug; nil when unknown or empty.
func (g GalaxyStatic) BiomeFor(slug string) *Biome {
	if b, ok := g.Biomes[slug]; ok {
		return &b
	}
	return nil
}
