// Package readme renders localized README documents for one app package
// directory: a README per fully translated language plus an index page.
package readme

import (
	"os"
	"path/filepath"
)

// SuffixForLang returns the filename suffix convention: empty for the
// default language, "_<lang>" otherwise. It applies to both output files
// (README_fr.md) and localized doc sources (DESCRIPTION_fr.md).
func SuffixForLang(lang, defaultLang string) string {
	if lang == defaultLang {
		return ""
	}
	return "_" + lang
}

// Description resolves the description text for a language suffix:
// doc/DESCRIPTION<suffix>.md when present, else doc/DESCRIPTION.md,
// else absent.
func Description(appDir, suffix string) (string, bool) {
	return resolveDoc(appDir, "DESCRIPTION", suffix)
}

// Disclaimer resolves the disclaimer text with the same fallback as
// Description, using DISCLAIMER<suffix>.md / DISCLAIMER.md.
func Disclaimer(appDir, suffix string) (string, bool) {
	return resolveDoc(appDir, "DISCLAIMER", suffix)
}

// resolveDoc reads the first existing candidate under doc/. Absence of both
// files is not an error; the renderer omits the section.
func resolveDoc(appDir, base, suffix string) (string, bool) {
	candidates := []string{filepath.Join(appDir, "doc", base+suffix+".md")}
	if suffix != "" {
		candidates = append(candidates, filepath.Join(appDir, "doc", base+".md"))
	}
	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		return string(data), true
	}
	return "", false
}
