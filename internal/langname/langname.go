// Package langname resolves human-readable names for language codes.
package langname

import (
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// DisplayName returns the English name of a language code ("fr" -> "French").
// Unknown or unparseable codes fall back to the code itself.
func DisplayName(code string) string {
	tag, err := language.Parse(code)
	if err != nil {
		return code
	}
	if name := display.English.Languages().Name(tag); name != "" {
		return name
	}
	return code
}

// Autonym returns the language's name for itself ("fr" -> "français").
// Unknown or unparseable codes fall back to the code itself.
func Autonym(code string) string {
	tag, err := language.Parse(code)
	if err != nil {
		return code
	}
	if name := display.Self.Name(tag); name != "" {
		return name
	}
	return code
}
