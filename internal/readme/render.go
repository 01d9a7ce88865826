package readme

import (
	"bytes"
	"embed"
	"os"
	"path/filepath"
	"text/template"

	"git.home.luguber.info/inful/readmegen/internal/catalog"
	"git.home.luguber.info/inful/readmegen/internal/errors"
)

//go:embed templates/README.md.tmpl templates/ALL_README.md.tmpl
var embeddedTemplates embed.FS

// UpstreamLink is one upstream resource link, label first for rendering.
type UpstreamLink struct {
	Label string
	URL   string
}

// AntifeatureView is an antifeature display record resolved for one language.
type AntifeatureView struct {
	Key         string
	Title       string
	Description string
}

// Link is one entry of the translations index page.
type Link struct {
	Label string
	File  string
}

// Context is the render input for one language's README.
type Context struct {
	Lang         string
	Title        string
	Version      string
	Description  string
	Disclaimer   string
	Screenshots  []string
	Upstream     []UpstreamLink
	Antifeatures []AntifeatureView
	// Manifest exposes the full decoded manifest to template overrides.
	Manifest map[string]any
}

// Renderer renders the README and index templates. Templates ship embedded;
// a file of the same name under <AssetsDir>/templates overrides the
// embedded copy.
type Renderer struct {
	AssetsDir string
}

// RenderReadme renders the main document template with gettext-style
// translation through cat.
func (r *Renderer) RenderReadme(ctx Context, cat *catalog.Catalog) (string, error) {
	return r.render("README.md.tmpl", ctx, cat)
}

// RenderIndex renders the index-of-translations template. Links must be in
// ascending language-code order; the renderer does not reorder them.
func (r *Renderer) RenderIndex(links []Link, cat *catalog.Catalog) (string, error) {
	return r.render("ALL_README.md.tmpl", struct{ Links []Link }{links}, cat)
}

func (r *Renderer) render(name string, data any, cat *catalog.Catalog) (string, error) {
	raw, err := r.templateSource(name)
	if err != nil {
		return "", errors.TemplateError(name, err)
	}

	funcs := template.FuncMap{
		"t": cat.Get,
	}
	tpl, err := template.New(name).Funcs(funcs).Option("missingkey=error").Parse(raw)
	if err != nil {
		return "", errors.TemplateError(name, err)
	}

	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		return "", errors.TemplateError(name, err)
	}
	return buf.String(), nil
}

// templateSource prefers a file override under assets, else the embedded
// template.
func (r *Renderer) templateSource(name string) (string, error) {
	if r.AssetsDir != "" {
		override := filepath.Join(r.AssetsDir, "templates", name)
		if data, err := os.ReadFile(override); err == nil {
			return string(data), nil
		}
	}
	data, err := embeddedTemplates.ReadFile("templates/" + name)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
