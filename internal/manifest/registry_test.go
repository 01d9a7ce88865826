package manifest

import (
	"testing"

	apperrors "git.home.luguber.info/inful/readmegen/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const appsToml = `
[myapp]
state = "working"
url = "https://example.org/myapp"
antifeatures = [ "tracking", "nonfree" ]

[other]
state = "notworking"
`

const antifeaturesToml = `
[nonfree]
title = "Non-free software"
description = "Depends on non-free components."

[tracking]
title = "Tracking"

[tracking.description]
en = "Phones home."
fr = "Téléphone à la maison."
`

func testRegistry(t *testing.T) *Registry {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, dir, AppsFile, appsToml)
	writeFile(t, dir, AntifeaturesFile, antifeaturesToml)

	r, err := LoadRegistry(dir)
	require.NoError(t, err)
	return r
}

func TestLoadRegistry(t *testing.T) {
	r := testRegistry(t)

	entry := r.Entry("myapp")
	assert.Equal(t, "working", entry.State)
	assert.Equal(t, []string{"tracking", "nonfree"}, entry.Antifeatures)

	// Absent entry is an empty record, not an error.
	assert.Empty(t, r.Entry("missing").Antifeatures)

	def := r.Antifeatures["tracking"]
	assert.Equal(t, "Tracking", def.Title.ValueForLang("fr"))
	assert.Equal(t, "Téléphone à la maison.", def.Description.ValueForLang("fr"))
}

func TestLoadRegistryMissingFilesFail(t *testing.T) {
	dir := t.TempDir()
	_, err := LoadRegistry(dir)
	require.Error(t, err)
	assert.True(t, apperrors.IsCategory(err, apperrors.CategoryRegistry))

	// apps.toml alone is not enough.
	writeFile(t, dir, AppsFile, appsToml)
	_, err = LoadRegistry(dir)
	require.Error(t, err)
	assert.True(t, apperrors.IsCategory(err, apperrors.CategoryRegistry))
}

func TestAntifeaturesForSortedByKey(t *testing.T) {
	r := testRegistry(t)

	records, err := r.AntifeaturesFor("myapp", nil)
	require.NoError(t, err)
	require.Len(t, records, 2)

	// Entry lists tracking before nonfree; output is sorted by key.
	assert.Equal(t, "nonfree", records[0].Key)
	assert.Equal(t, "tracking", records[1].Key)
}

func TestAntifeaturesForManifestOverride(t *testing.T) {
	r := testRegistry(t)

	overrides := map[string]LocalizedText{
		"nonfree": PlainText("Only the installer blob is non-free."),
	}
	records, err := r.AntifeaturesFor("myapp", overrides)
	require.NoError(t, err)

	var nonfree Antifeature
	for _, rec := range records {
		if rec.Key == "nonfree" {
			nonfree = rec
		}
	}
	// Title always comes from the global registry.
	assert.Equal(t, "Non-free software", nonfree.Title.ValueForLang("en"))
	assert.Equal(t, "Only the installer blob is non-free.", nonfree.Description.ValueForLang("en"))
}

func TestAntifeaturesForUnknownKeyIsFatal(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, AppsFile, "[myapp]\nantifeatures = [ \"bogus\" ]\n")
	writeFile(t, dir, AntifeaturesFile, antifeaturesToml)

	r, err := LoadRegistry(dir)
	require.NoError(t, err)

	_, err = r.AntifeaturesFor("myapp", nil)
	require.Error(t, err)
	assert.True(t, apperrors.IsCategory(err, apperrors.CategoryRegistry))
}

func TestAntifeaturesForAppWithoutEntry(t *testing.T) {
	r := testRegistry(t)
	records, err := r.AntifeaturesFor("missing", nil)
	require.NoError(t, err)
	assert.Empty(t, records)
}
