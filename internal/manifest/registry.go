package manifest

import (
	"os"
	"path/filepath"
	"sort"

	"git.home.luguber.info/inful/readmegen/internal/errors"
	"github.com/pelletier/go-toml/v2"
)

// Registry filenames inside the shared apps registry checkout.
const (
	AppsFile         = "apps.toml"
	AntifeaturesFile = "antifeatures.toml"
)

// CatalogEntry is the per-app record from the global apps.toml registry.
type CatalogEntry struct {
	State        string   `toml:"state"`
	URL          string   `toml:"url"`
	Branch       string   `toml:"branch"`
	Category     string   `toml:"category"`
	Antifeatures []string `toml:"antifeatures"`
}

// AntifeatureDefinition is the global record for one antifeature key.
type AntifeatureDefinition struct {
	Title       LocalizedText
	Description LocalizedText
}

// Antifeature is the display record for one antifeature attached to an app:
// the global definition with the app's description override applied.
type Antifeature struct {
	Key         string
	Title       LocalizedText
	Description LocalizedText
}

// Registry holds the shared apps catalog and the antifeature definitions.
type Registry struct {
	Apps         map[string]CatalogEntry
	Antifeatures map[string]AntifeatureDefinition
	Dir          string
}

// LoadRegistry reads apps.toml and antifeatures.toml from dir. Both files
// are required.
func LoadRegistry(dir string) (*Registry, error) {
	appsPath := filepath.Join(dir, AppsFile)
	data, err := os.ReadFile(appsPath)
	if err != nil {
		return nil, errors.RegistryFileError(appsPath, err)
	}
	var apps map[string]CatalogEntry
	if err := toml.Unmarshal(data, &apps); err != nil {
		return nil, errors.RegistryFileError(appsPath, err)
	}

	afPath := filepath.Join(dir, AntifeaturesFile)
	data, err = os.ReadFile(afPath)
	if err != nil {
		return nil, errors.RegistryFileError(afPath, err)
	}
	var rawDefs map[string]struct {
		Title       any `toml:"title"`
		Description any `toml:"description"`
	}
	if err := toml.Unmarshal(data, &rawDefs); err != nil {
		return nil, errors.RegistryFileError(afPath, err)
	}

	defs := make(map[string]AntifeatureDefinition, len(rawDefs))
	for key, raw := range rawDefs {
		title, err := localizedFromAny(raw.Title)
		if err != nil {
			return nil, errors.RegistryFileError(afPath, err).WithContext("antifeature", key)
		}
		desc, err := localizedFromAny(raw.Description)
		if err != nil {
			return nil, errors.RegistryFileError(afPath, err).WithContext("antifeature", key)
		}
		defs[key] = AntifeatureDefinition{Title: title, Description: desc}
	}

	return &Registry{Apps: apps, Antifeatures: defs, Dir: dir}, nil
}

// Entry returns the catalog entry for an app id. An absent entry is an
// empty record, not an error.
func (r *Registry) Entry(id string) CatalogEntry {
	return r.Apps[id]
}

// AntifeaturesFor assembles display records for every antifeature key listed
// in the app's catalog entry, sorted by key. The title always comes from the
// global definition; the description is the manifest override when present,
// else the global default. A key missing from the global registry is a
// data-integrity violation and fails hard.
func (r *Registry) AntifeaturesFor(id string, overrides map[string]LocalizedText) ([]Antifeature, error) {
	entry := r.Entry(id)
	keys := append([]string(nil), entry.Antifeatures...)
	sort.Strings(keys)

	records := make([]Antifeature, 0, len(keys))
	for _, key := range keys {
		def, ok := r.Antifeatures[key]
		if !ok {
			return nil, errors.UnknownAntifeature(key, id)
		}
		record := Antifeature{Key: key, Title: def.Title, Description: def.Description}
		if override, ok := overrides[key]; ok && !override.IsZero() {
			record.Description = override
		}
		records = append(records, record)
	}
	return records, nil
}
