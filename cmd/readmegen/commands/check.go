package commands

import (
	"context"
	"fmt"

	"git.home.luguber.info/inful/readmegen/internal/langname"
)

// CheckCmd implements the 'check' command: the full decision pass with
// nothing written.
type CheckCmd struct {
	RegistryFlags
	AssetFlags

	AppPath string `arg:"" name:"app-path" help:"App package directory (manifest + doc/)" type:"existingdir"`
}

func (c *CheckCmd) Run(_ *Global, root *CLI) error {
	cfg, err := loadConfig(root, c.RegistryFlags, c.AssetFlags)
	if err != nil {
		return err
	}

	gen, err := newGenerator(context.Background(), c.AppPath, cfg)
	if err != nil {
		return err
	}

	plan, err := gen.Plan()
	if err != nil {
		return err
	}

	fmt.Printf("App: %s\n", plan.Manifest.ID)
	if plan.Skip {
		fmt.Printf("Would skip: %s\n", plan.SkipReason)
		return nil
	}

	fmt.Printf("Would generate README.md (%s)\n", cfg.DefaultLanguage)
	for _, lang := range plan.Eligible {
		if lang == cfg.DefaultLanguage {
			continue
		}
		fmt.Printf("Would generate README_%s.md (%s)\n", lang, langname.DisplayName(lang))
	}
	for _, excl := range plan.Excluded {
		fmt.Printf("Excluded %s (%s): missing %q\n",
			excl.Lang, langname.DisplayName(excl.Lang), excl.Missing)
	}
	fmt.Println("Would generate ALL_README.md")
	return nil
}
