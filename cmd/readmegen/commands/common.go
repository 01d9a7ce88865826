// Package commands holds the kong command implementations for readmegen.
package commands

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"git.home.luguber.info/inful/readmegen/internal/appsrepo"
	"git.home.luguber.info/inful/readmegen/internal/config"
	"git.home.luguber.info/inful/readmegen/internal/readme"
	"github.com/alecthomas/kong"
)

// Global context passed to subcommands if we need to share global state later.
type Global struct {
	Logger *slog.Logger
}

// CLI definition & global flags - used by commands that need access to root config.
type CLI struct {
	Config  string           `short:"c" help:"Tool configuration file path (.readmegen.yaml is probed when unset)"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Generate  GenerateCmd  `cmd:"" default:"withargs" help:"Generate localized README files for an app package directory"`
	Check     CheckCmd     `cmd:"" help:"Dry run: report guard outcome and language eligibility without writing"`
	Languages LanguagesCmd `cmd:"" help:"List translation languages with completeness status"`
	Watch     WatchCmd     `cmd:"" help:"Regenerate on changes to the manifest, doc/ or translations"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

// RegistryFlags are the shared registry-resolution flags. They override the
// corresponding config file settings.
type RegistryFlags struct {
	AppsDir  string `name:"apps-dir" help:"Local apps registry checkout (skips cloning)" type:"path"`
	AppsRepo string `name:"apps-repo" help:"Apps registry repository URL"`
	CacheDir string `name:"cache-dir" help:"Cache directory for the registry clone" type:"path"`
}

// AssetFlags override the assets location from the config file.
type AssetFlags struct {
	AssetsDir string `name:"assets-dir" help:"Assets directory (templates, messages.pot, translations)" type:"path"`
}

// loadConfig reads the tool config and applies the CLI flag overrides.
func loadConfig(root *CLI, rf RegistryFlags, af AssetFlags) (*config.Config, error) {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return nil, err
	}
	if rf.AppsDir != "" {
		cfg.Registry.Path = rf.AppsDir
	}
	if rf.AppsRepo != "" {
		cfg.Registry.URL = rf.AppsRepo
	}
	if rf.CacheDir != "" {
		cfg.Registry.CacheDir = rf.CacheDir
	}
	if af.AssetsDir != "" {
		cfg.AssetsDir = af.AssetsDir
	}
	return cfg, nil
}

// registryLocator picks the resolver: explicit local path when configured,
// else a cached clone of the registry repository.
func registryLocator(cfg *config.Config) appsrepo.Locator {
	if cfg.Registry.Path != "" {
		return appsrepo.DirLocator{Dir: cfg.Registry.Path}
	}
	return appsrepo.GitLocator{URL: cfg.Registry.URL, CacheDir: cfg.Registry.CacheDir}
}

// newGenerator resolves the registry and builds a generator for one app dir.
func newGenerator(ctx context.Context, appDir string, cfg *config.Config) (*readme.Generator, error) {
	registryDir, err := registryLocator(cfg).Locate(ctx)
	if err != nil {
		return nil, err
	}
	return readme.New(readme.Options{
		AppDir:      appDir,
		RegistryDir: registryDir,
		AssetsDir:   cfg.AssetsDir,
		DefaultLang: cfg.DefaultLanguage,
		Domain:      cfg.Domain,
	}), nil
}

// translationsDir mirrors the generator's layout for commands that inspect
// catalogs directly.
func translationsDir(cfg *config.Config) string {
	return filepath.Join(cfg.AssetsDir, "translations")
}
