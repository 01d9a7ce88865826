// Package manifest loads per-app metadata: the app manifest (JSON or TOML)
// and the shared registry files (apps.toml, antifeatures.toml).
package manifest

import (
	"encoding/json"
	"os"
	"path/filepath"

	"git.home.luguber.info/inful/readmegen/internal/errors"
	"github.com/pelletier/go-toml/v2"
)

// Manifest is the merged, language-agnostic metadata record for one app.
// Loaded once, immutable for the run.
type Manifest struct {
	ID      string
	Name    string
	Version string
	// Upstream maps link labels (website, code, demo, ...) to URLs.
	Upstream map[string]string
	// Antifeatures holds per-app description overrides keyed by antifeature.
	Antifeatures map[string]LocalizedText
	// Raw is the full decoded manifest, exposed to templates as-is.
	Raw map[string]any
	// Path is the file the manifest was loaded from.
	Path string
}

// Title returns the display name, falling back to the id.
func (m *Manifest) Title() string {
	if m.Name != "" {
		return m.Name
	}
	return m.ID
}

// Load reads the app manifest from dir, preferring manifest.json over
// manifest.toml. Neither present is a config error, as is any parse failure.
func Load(dir string) (*Manifest, error) {
	jsonPath := filepath.Join(dir, "manifest.json")
	if data, err := os.ReadFile(jsonPath); err == nil {
		return parseJSON(jsonPath, data)
	} else if !os.IsNotExist(err) {
		return nil, errors.ManifestParseError(jsonPath, err)
	}

	tomlPath := filepath.Join(dir, "manifest.toml")
	if data, err := os.ReadFile(tomlPath); err == nil {
		return parseTOML(tomlPath, data)
	} else if !os.IsNotExist(err) {
		return nil, errors.ManifestParseError(tomlPath, err)
	}

	return nil, errors.ManifestNotFound(dir)
}

func parseJSON(path string, data []byte) (*Manifest, error) {
	var f struct {
		ID           string                   `json:"id"`
		Name         string                   `json:"name"`
		Version      string                   `json:"version"`
		Upstream     map[string]string        `json:"upstream"`
		Antifeatures map[string]LocalizedText `json:"antifeatures"`
	}
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, errors.ManifestParseError(path, err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.ManifestParseError(path, err)
	}

	return assemble(path, f.ID, f.Name, f.Version, f.Upstream, f.Antifeatures, raw)
}

func parseTOML(path string, data []byte) (*Manifest, error) {
	var f struct {
		ID           string            `toml:"id"`
		Name         string            `toml:"name"`
		Version      string            `toml:"version"`
		Upstream     map[string]string `toml:"upstream"`
		Antifeatures map[string]any    `toml:"antifeatures"`
	}
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, errors.ManifestParseError(path, err)
	}

	antifeatures := make(map[string]LocalizedText, len(f.Antifeatures))
	for key, v := range f.Antifeatures {
		text, err := localizedFromAny(v)
		if err != nil {
			return nil, errors.ManifestParseError(path, err).WithContext("antifeature", key)
		}
		antifeatures[key] = text
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, errors.ManifestParseError(path, err)
	}

	return assemble(path, f.ID, f.Name, f.Version, f.Upstream, antifeatures, raw)
}

func assemble(path, id, name, version string, upstream map[string]string, antifeatures map[string]LocalizedText, raw map[string]any) (*Manifest, error) {
	if id == "" {
		return nil, errors.New(errors.CategoryConfig, errors.SeverityFatal, "manifest has no id").
			WithContext("path", path)
	}
	if upstream == nil {
		upstream = map[string]string{}
	}
	if antifeatures == nil {
		antifeatures = map[string]LocalizedText{}
	}
	return &Manifest{
		ID:           id,
		Name:         name,
		Version:      version,
		Upstream:     upstream,
		Antifeatures: antifeatures,
		Raw:          raw,
		Path:         path,
	}, nil
}
