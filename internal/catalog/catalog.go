// Package catalog loads gettext translation catalogs and decides which
// languages are complete enough for README generation.
package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"git.home.luguber.info/inful/readmegen/internal/errors"
	"github.com/leonelquinteros/gotext"
)

// Catalog wraps one language's PO catalog. A nil inner catalog is the
// identity catalog used for the default language: literal strings pass
// through unchanged.
type Catalog struct {
	Lang string
	po   *gotext.Po
	// entries maps msgid -> translated (non-empty) for coverage checks.
	entries map[string]bool
}

// Identity returns the no-op catalog for the default language.
func Identity(lang string) *Catalog {
	return &Catalog{Lang: lang}
}

// LoadCatalog loads <dir>/<lang>/<domain>.po, falling back to the
// <lang>/LC_MESSAGES/<domain>.po gettext layout. A missing file yields an
// empty catalog (which can never be complete), not an error.
func LoadCatalog(dir, lang, domain string) *Catalog {
	candidates := []string{
		filepath.Join(dir, lang, domain+".po"),
		filepath.Join(dir, lang, "LC_MESSAGES", domain+".po"),
	}

	c := &Catalog{Lang: lang, entries: map[string]bool{}}
	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		po := gotext.NewPo()
		po.Parse(data)
		c.po = po
		for id, tr := range po.GetDomain().GetTranslations() {
			c.entries[id] = tr.IsTranslated()
		}
		break
	}
	return c
}

// Get translates msgid, applying fmt substitutions. Untranslated strings
// fall back to the msgid itself (gettext semantics); the identity catalog
// always does.
func (c *Catalog) Get(msgid string, vars ...any) string {
	if c.po != nil {
		return c.po.Get(msgid, vars...)
	}
	if len(vars) == 0 {
		return msgid
	}
	return fmt.Sprintf(msgid, vars...)
}

// Covers reports whether msgid is present in the catalog with a non-empty
// translation.
func (c *Catalog) Covers(msgid string) bool {
	return c.entries[msgid]
}

// Empty reports whether the catalog has no entries at all (missing or empty
// PO file).
func (c *Catalog) Empty() bool {
	return len(c.entries) == 0
}

// Exclusion records why a language was left out of the eligible set.
type Exclusion struct {
	Lang string
	// Missing is the first reference string that failed the check.
	Missing string
}

// Checker decides which languages are fully translated against a reference
// string set.
type Checker struct {
	Reference *Reference
	// Dir is the translations root: one subdirectory per language code.
	Dir    string
	Domain string
}

// Languages lists the language subdirectories of the translations root.
// A missing or unreadable root is a hard error.
func (c *Checker) Languages() ([]string, error) {
	infos, err := os.ReadDir(c.Dir)
	if err != nil {
		return nil, errors.TranslationsDirError(c.Dir, err)
	}
	langs := make([]string, 0, len(infos))
	for _, info := range infos {
		if !info.IsDir() || strings.HasPrefix(info.Name(), ".") {
			continue
		}
		langs = append(langs, info.Name())
	}
	return langs, nil
}

// Eligible returns the fully translated languages in ascending lexicographic
// order, plus an exclusion record per language that failed. Order is
// deterministic regardless of filesystem enumeration order.
func (c *Checker) Eligible() ([]string, []Exclusion, error) {
	langs, err := c.Languages()
	if err != nil {
		return nil, nil, err
	}
	eligible, excluded := c.CheckLanguages(langs)
	return eligible, excluded, nil
}

// CheckLanguages runs the completeness check over an explicit language list.
// The eligible result is sorted ascending no matter the input order.
func (c *Checker) CheckLanguages(langs []string) ([]string, []Exclusion) {
	var eligible []string
	var excluded []Exclusion
	for _, lang := range langs {
		cat := LoadCatalog(c.Dir, lang, c.Domain)
		if missing, ok := c.complete(cat); ok {
			eligible = append(eligible, lang)
		} else {
			excluded = append(excluded, Exclusion{Lang: lang, Missing: missing})
		}
	}
	sort.Strings(eligible)
	sort.Slice(excluded, func(i, j int) bool { return excluded[i].Lang < excluded[j].Lang })
	return eligible, excluded
}

// complete checks every non-blank reference string against the catalog,
// stopping at the first miss.
func (c *Checker) complete(cat *Catalog) (missing string, ok bool) {
	for _, msgid := range c.Reference.Strings() {
		if !cat.Covers(msgid) {
			return msgid, false
		}
	}
	return "", true
}
