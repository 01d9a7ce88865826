package commands

import (
	"fmt"

	"git.home.luguber.info/inful/readmegen/internal/catalog"
	"git.home.luguber.info/inful/readmegen/internal/langname"
)

// LanguagesCmd lists every language in the translations tree with its
// completeness status. Operator diagnostics only; needs no app directory.
type LanguagesCmd struct {
	AssetFlags
}

func (l *LanguagesCmd) Run(_ *Global, root *CLI) error {
	cfg, err := loadConfig(root, RegistryFlags{}, l.AssetFlags)
	if err != nil {
		return err
	}

	ref, err := catalog.LoadReference(cfg.AssetsDir)
	if err != nil {
		return err
	}
	checker := &catalog.Checker{Reference: ref, Dir: translationsDir(cfg), Domain: cfg.Domain}

	eligible, excluded, err := checker.Eligible()
	if err != nil {
		return err
	}

	for _, lang := range eligible {
		fmt.Printf("%-8s %-24s %-24s complete\n", lang, langname.DisplayName(lang), langname.Autonym(lang))
	}
	for _, excl := range excluded {
		fmt.Printf("%-8s %-24s %-24s incomplete (missing %q)\n",
			excl.Lang, langname.DisplayName(excl.Lang), langname.Autonym(excl.Lang), excl.Missing)
	}
	fmt.Printf("%d complete, %d incomplete (%d reference strings)\n",
		len(eligible), len(excluded), len(ref.Strings()))
	return nil
}
