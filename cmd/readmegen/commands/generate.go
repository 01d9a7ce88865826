package commands

import (
	"context"
	"fmt"
)

// GenerateCmd implements the 'generate' command, the default when only an
// app path is given.
type GenerateCmd struct {
	RegistryFlags
	AssetFlags

	AppPath string `arg:"" name:"app-path" help:"App package directory (manifest + doc/)" type:"existingdir"`
}

func (g *GenerateCmd) Run(_ *Global, root *CLI) error {
	cfg, err := loadConfig(root, g.RegistryFlags, g.AssetFlags)
	if err != nil {
		return err
	}

	gen, err := newGenerator(context.Background(), g.AppPath, cfg)
	if err != nil {
		return err
	}

	report, err := gen.Run()
	if err != nil {
		return err
	}

	if report.Skipped {
		// The guard is a policy outcome, not an error: exit 0.
		fmt.Printf("Skipping %s: %s\n", report.App, report.SkipReason)
		return nil
	}

	fmt.Printf("Generated %d file(s) for %s\n", len(report.Files), report.App)
	return nil
}
