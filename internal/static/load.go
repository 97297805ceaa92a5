package static

import (
	"embed"
	"encoding/json"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"strings"

	"hd2api/internal/shared/errors"
)

//go:embed data
var embedded embed.FS

const (
	planetsDir = "planets"
	effectsDir = "effects"
)

// Load reads the reference set from dir. An empty dir selects the copy
// compiled into the binary.
func Load(dir string) (*All, error) {
	if dir == "" {
		sub, err := fs.Sub(embedded, "data")
		if err != nil {
			return nil, errors.WrapInternal("failed to open embedded statics", err)
		}
		all, err := LoadFS(sub)
		if err != nil {
			return nil, err
		}
		all.Embedded = true
		slog.With("component", "static", "operation", "load").
			Warn("Using the embedded sample reference set; planets outside it get placeholder names. Set HD2_STATIC_PATH to a full static set in production",
				"planets", len(all.Galaxy.Planets))
		return all, nil
	}
	if _, err := os.Stat(dir); err != nil {
		return nil, errors.WrapValidation("static directory not readable", err)
	}
	return LoadFS(os.DirFS(dir))
}

// LoadFS reads planets/*.json and effects/*.json from fsys. Each file's name
// without extension is its category key.
func LoadFS(fsys fs.FS) (*All, error) {
	logger := slog.With("component", "static", "operation", "load")

	planets, err := readCategories(fsys, planetsDir)
	if err != nil {
		return nil, err
	}
	effects, err := readCategories(fsys, effectsDir)
	if err != nil {
		return nil, err
	}

	all := &All{}
	if err := remarshal(planets, &all.Galaxy); err != nil {
		return nil, errors.WrapValidation("invalid planet statics", err)
	}
	if err := remarshal(effects, &all.Effects); err != nil {
		return nil, errors.WrapValidation("invalid effect statics", err)
	}

	logger.Debug("Statics loaded",
		"planets", len(all.Galaxy.Planets),
		"regions", len(all.Galaxy.PlanetRegions),
		"biomes", len(all.Galaxy.Biomes),
		"hazards", len(all.Galaxy.Environmentals),
		"effects", len(all.Effects.PlanetEffects))
	return all, nil
}

// readCategories loads every JSON file directly under dir. Malformed files
// are logged and skipped; a missing dir is an error.
func readCategories(fsys fs.FS, dir string) (map[string]json.RawMessage, error) {
	logger := slog.With("component", "static", "operation", "read_categories", "dir", dir)

	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, errors.WrapValidation("static category directory missing: "+dir, err)
	}

	categories := make(map[string]json.RawMessage, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || path.Ext(name) != ".json" {
			continue
		}
		data, err := fs.ReadFile(fsys, path.Join(dir, name))
		if err != nil {
			logger.Warn("Skipping unreadable static file", "file", name, "error", err)
			continue
		}
		if !json.Valid(data) {
			logger.Warn("Skipping malformed static file", "file", name)
			continue
		}
		categories[strings.TrimSuffix(name, ".json")] = data
	}
	return categories, nil
}

func remarshal(categories map[string]json.RawMessage, dst any) error {
	data, err := json.Marshal(categories)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dst)
}
