package readme

import (
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"

	"git.home.luguber.info/inful/readmegen/internal/catalog"
	"git.home.luguber.info/inful/readmegen/internal/errors"
	"git.home.luguber.info/inful/readmegen/internal/langname"
	"git.home.luguber.info/inful/readmegen/internal/linkcheck"
	"git.home.luguber.info/inful/readmegen/internal/logfields"
	"git.home.luguber.info/inful/readmegen/internal/manifest"
)

// Options configures one generation run.
type Options struct {
	// AppDir is the app package directory (manifest + doc/).
	AppDir string
	// RegistryDir is the shared registry checkout (apps.toml + antifeatures.toml).
	RegistryDir string
	// AssetsDir may override the embedded templates and messages.pot and
	// holds the translations tree under <AssetsDir>/translations.
	AssetsDir string
	// DefaultLang is the reference language; its README carries no suffix
	// and is always generated.
	DefaultLang string
	// Domain is the gettext domain (<lang>/<domain>.po).
	Domain string
}

// Plan is everything decided before any file is written: the loaded
// metadata, the guard outcome, and the language set.
type Plan struct {
	Manifest     *manifest.Manifest
	Registry     *manifest.Registry
	Antifeatures []manifest.Antifeature

	// Skip is set when the upstream/disclaimer guard fired.
	Skip       bool
	SkipReason string

	Eligible []string
	Excluded []catalog.Exclusion
}

// Generator produces the localized READMEs for one app.
type Generator struct {
	opts     Options
	renderer *Renderer
}

// New creates a Generator. Unset options get the usual defaults.
func New(opts Options) *Generator {
	if opts.DefaultLang == "" {
		opts.DefaultLang = "en"
	}
	if opts.Domain == "" {
		opts.Domain = "messages"
	}
	return &Generator{
		opts:     opts,
		renderer: &Renderer{AssetsDir: opts.AssetsDir},
	}
}

// translationsDir is where per-language catalog subdirectories live.
func (g *Generator) translationsDir() string {
	return filepath.Join(g.opts.AssetsDir, "translations")
}

// Plan loads metadata and decides what a run would do, without writing
// anything. check/languages commands stop here.
func (g *Generator) Plan() (*Plan, error) {
	m, err := manifest.Load(g.opts.AppDir)
	if err != nil {
		return nil, err
	}
	reg, err := manifest.LoadRegistry(g.opts.RegistryDir)
	if err != nil {
		return nil, err
	}
	// Unknown antifeature keys fail here, before any output exists.
	records, err := reg.AntifeaturesFor(m.ID, m.Antifeatures)
	if err != nil {
		return nil, err
	}

	plan := &Plan{Manifest: m, Registry: reg, Antifeatures: records}

	// Only auto-generate for apps that either point upstream or explicitly
	// disclaim official status.
	if len(m.Upstream) == 0 {
		if _, ok := Disclaimer(g.opts.AppDir, ""); !ok {
			plan.Skip = true
			plan.SkipReason = "manifest has no upstream links and doc/DISCLAIMER.md is absent"
			return plan, nil
		}
	}

	ref, err := catalog.LoadReference(g.opts.AssetsDir)
	if err != nil {
		return nil, errors.InternalError("failed to load reference strings", err)
	}
	checker := &catalog.Checker{Reference: ref, Dir: g.translationsDir(), Domain: g.opts.Domain}
	plan.Eligible, plan.Excluded, err = checker.Eligible()
	if err != nil {
		return nil, err
	}
	return plan, nil
}

// Run executes a full generation pass: the default-language README, one
// README per fully translated language, and the index page. Outputs are
// overwritten unconditionally; re-running regenerates everything.
func (g *Generator) Run() (*Report, error) {
	start := time.Now()

	plan, err := g.Plan()
	if err != nil {
		return nil, err
	}

	report := newReport(plan.Manifest.ID)
	report.Eligible = plan.Eligible
	report.Excluded = plan.Excluded

	if plan.Skip {
		report.Skipped = true
		report.SkipReason = plan.SkipReason
		report.Duration = time.Since(start)
		slog.Info("Skipping README generation", logfields.App(report.App), logfields.Reason(plan.SkipReason))
		return report, nil
	}

	for _, excl := range plan.Excluded {
		slog.Warn("Language excluded: translation catalog incomplete",
			logfields.App(report.App),
			logfields.Language(excl.Lang),
			slog.String("display_name", langname.DisplayName(excl.Lang)),
			slog.String("first_missing", excl.Missing))
	}

	screenshots, err := Screenshots(g.opts.AppDir)
	if err != nil {
		return nil, errors.Wrap(err, errors.CategoryFileSystem, errors.SeverityFatal, "screenshot discovery failed").
			WithContext("path", g.opts.AppDir)
	}

	// Default language first: always generated, identity translation.
	if err := g.generateOne(plan, g.opts.DefaultLang, catalog.Identity(g.opts.DefaultLang), screenshots, report); err != nil {
		return nil, err
	}

	for _, lang := range plan.Eligible {
		if lang == g.opts.DefaultLang {
			continue
		}
		cat := catalog.LoadCatalog(g.translationsDir(), lang, g.opts.Domain)
		if err := g.generateOne(plan, lang, cat, screenshots, report); err != nil {
			return nil, err
		}
	}

	if err := g.generateIndex(plan, report); err != nil {
		return nil, err
	}

	report.Duration = time.Since(start)
	slog.Info("README generation finished",
		logfields.App(report.App),
		logfields.RunID(report.RunID),
		logfields.Count(len(report.Files)),
		logfields.DurationMS(float64(report.Duration.Milliseconds())))
	return report, nil
}

// generateOne renders and writes one language's README.
func (g *Generator) generateOne(plan *Plan, lang string, cat *catalog.Catalog, screenshots []string, report *Report) error {
	suffix := SuffixForLang(lang, g.opts.DefaultLang)

	description, _ := Description(g.opts.AppDir, suffix)
	disclaimer, _ := Disclaimer(g.opts.AppDir, suffix)

	ctx := Context{
		Lang:         lang,
		Title:        plan.Manifest.Title(),
		Version:      plan.Manifest.Version,
		Description:  description,
		Disclaimer:   disclaimer,
		Screenshots:  screenshots,
		Upstream:     upstreamLinks(plan.Manifest.Upstream),
		Antifeatures: antifeatureViews(plan.Antifeatures, lang),
		Manifest:     plan.Manifest.Raw,
	}

	rendered, err := g.renderer.RenderReadme(ctx, cat)
	if err != nil {
		return err
	}
	return g.write("README"+suffix+".md", rendered, lang, report)
}

// generateIndex writes ALL_README.md linking every non-default generated
// README, in the same ascending order as the eligible set. Each label is
// the link text translated into the target language, around that language's
// autonym.
func (g *Generator) generateIndex(plan *Plan, report *Report) error {
	links := make([]Link, 0, len(plan.Eligible))
	for _, lang := range plan.Eligible {
		if lang == g.opts.DefaultLang {
			continue
		}
		cat := catalog.LoadCatalog(g.translationsDir(), lang, g.opts.Domain)
		links = append(links, Link{
			Label: cat.Get("Read the README in %s", langname.Autonym(lang)),
			File:  "README" + SuffixForLang(lang, g.opts.DefaultLang) + ".md",
		})
	}

	rendered, err := g.renderer.RenderIndex(links, catalog.Identity(g.opts.DefaultLang))
	if err != nil {
		return err
	}
	return g.write("ALL_README.md", rendered, g.opts.DefaultLang, report)
}

// write stores one output file, overwriting unconditionally, and runs the
// advisory link check on the result.
func (g *Generator) write(name, content, lang string, report *Report) error {
	path := filepath.Join(g.opts.AppDir, name)
	// #nosec G306 -- generated READMEs are public content
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return errors.WriteError(path, err)
	}
	report.Files = append(report.Files, name)
	slog.Info("Generated README", logfields.App(report.App), logfields.Language(lang), logfields.File(name))

	for _, finding := range linkcheck.BrokenRelative([]byte(content), g.opts.AppDir) {
		slog.Warn("Rendered document references a missing local file",
			logfields.App(report.App),
			logfields.File(name),
			logfields.Path(finding.Destination))
	}
	return nil
}

// upstreamLinks flattens the upstream map into label-sorted pairs so the
// rendered list is deterministic.
func upstreamLinks(upstream map[string]string) []UpstreamLink {
	labels := make([]string, 0, len(upstream))
	for label := range upstream {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	links := make([]UpstreamLink, 0, len(labels))
	for _, label := range labels {
		links = append(links, UpstreamLink{Label: label, URL: upstream[label]})
	}
	return links
}

// antifeatureViews resolves the display records for one language.
func antifeatureViews(records []manifest.Antifeature, lang string) []AntifeatureView {
	views := make([]AntifeatureView, 0, len(records))
	for _, rec := range records {
		views = append(views, AntifeatureView{
			Key:         rec.Key,
			Title:       rec.Title.ValueForLang(lang),
			Description: rec.Description.ValueForLang(lang),
		})
	}
	return views
}
