package readme

import (
	"os"
	"path/filepath"
	"testing"

	"git.home.luguber.info/inful/readmegen/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderReadmeIdentity(t *testing.T) {
	r := &Renderer{}
	ctx := Context{
		Lang:        "en",
		Title:       "My App",
		Version:     "1.0",
		Description: "Does useful things.",
		Screenshots: []string{"doc/screenshots/shot1.png"},
		Upstream: []UpstreamLink{
			{Label: "website", URL: "https://example.org"},
		},
		Antifeatures: []AntifeatureView{
			{Key: "nonfree", Title: "Non-free software", Description: "Has blobs."},
		},
	}

	out, err := r.RenderReadme(ctx, catalog.Identity("en"))
	require.NoError(t, err)

	assert.Contains(t, out, "# My App")
	assert.Contains(t, out, "## Overview")
	assert.Contains(t, out, "Does useful things.")
	assert.Contains(t, out, "**Shipped version:** 1.0")
	assert.Contains(t, out, "![Screenshot of My App](doc/screenshots/shot1.png)")
	assert.Contains(t, out, "- **Non-free software**: Has blobs.")
	assert.Contains(t, out, "- website: <https://example.org>")
	assert.Contains(t, out, "install My App quickly and simply")
}

func TestRenderReadmeOmitsAbsentSections(t *testing.T) {
	r := &Renderer{}
	out, err := r.RenderReadme(Context{Lang: "en", Title: "Bare"}, catalog.Identity("en"))
	require.NoError(t, err)

	assert.NotContains(t, out, "## Overview")
	assert.NotContains(t, out, "Shipped version")
	assert.NotContains(t, out, "## Screenshots")
	assert.NotContains(t, out, "## Disclaimers")
	assert.NotContains(t, out, "## Antifeatures")
	assert.NotContains(t, out, "## Documentation and resources")
}

func TestRenderReadmeTranslated(t *testing.T) {
	dir := t.TempDir()
	po := `msgid ""
msgstr ""

msgid "Overview"
msgstr "Aperçu"
`
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "fr"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "fr", "messages.po"), []byte(po), 0o644))
	cat := catalog.LoadCatalog(dir, "fr", "messages")

	r := &Renderer{}
	out, err := r.RenderReadme(Context{Lang: "fr", Title: "X", Description: "desc"}, cat)
	require.NoError(t, err)

	assert.Contains(t, out, "## Aperçu")
}

func TestRenderIndex(t *testing.T) {
	r := &Renderer{}
	links := []Link{
		{Label: "Lisez le README en français", File: "README_fr.md"},
	}
	out, err := r.RenderIndex(links, catalog.Identity("en"))
	require.NoError(t, err)

	assert.Contains(t, out, "# Translated README files")
	assert.Contains(t, out, "- [Lisez le README en français](README_fr.md)")
}

func TestRenderAssetsTemplateOverride(t *testing.T) {
	assets := t.TempDir()
	tplDir := filepath.Join(assets, "templates")
	require.NoError(t, os.MkdirAll(tplDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(tplDir, "README.md.tmpl"),
		[]byte("OVERRIDE {{ .Title }}"), 0o644))

	r := &Renderer{AssetsDir: assets}
	out, err := r.RenderReadme(Context{Title: "X"}, catalog.Identity("en"))
	require.NoError(t, err)
	assert.Equal(t, "OVERRIDE X", out)
}
