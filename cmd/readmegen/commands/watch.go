package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"git.home.luguber.info/inful/readmegen/internal/logfields"
	"git.home.luguber.info/inful/readmegen/internal/watch"
)

// WatchCmd regenerates on changes to the app dir, its doc/ tree, or the
// translations directory. Each pass is one full sequential generation.
type WatchCmd struct {
	RegistryFlags
	AssetFlags

	AppPath  string        `arg:"" name:"app-path" help:"App package directory (manifest + doc/)" type:"existingdir"`
	Debounce time.Duration `help:"Settle time before regenerating after a change" default:"2s"`
}

func (w *WatchCmd) Run(_ *Global, root *CLI) error {
	cfg, err := loadConfig(root, w.RegistryFlags, w.AssetFlags)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	gen, err := newGenerator(ctx, w.AppPath, cfg)
	if err != nil {
		return err
	}

	regenerate := func(context.Context) {
		report, err := gen.Run()
		if err != nil {
			// A failed pass keeps the watcher alive; the next change retries.
			slog.Error("Regeneration failed", logfields.App(w.AppPath), logfields.Error(err))
			return
		}
		if report.Skipped {
			slog.Info("Generation skipped", logfields.App(report.App), logfields.Reason(report.SkipReason))
		}
	}

	// Initial pass before waiting for changes.
	regenerate(ctx)

	watcher, err := watch.New(w.Debounce, regenerate)
	if err != nil {
		return err
	}
	// The pass writes README*.md into the watched app dir; without this
	// filter every run would schedule the next one.
	watcher.Ignore = func(path string) bool {
		name := filepath.Base(path)
		if name == "ALL_README.md" {
			return true
		}
		return strings.HasPrefix(name, "README") && strings.HasSuffix(name, ".md")
	}
	for _, dir := range []string{
		w.AppPath,
		filepath.Join(w.AppPath, "doc"),
		filepath.Join(w.AppPath, "doc", "screenshots"),
		translationsDir(cfg),
	} {
		if err := watcher.Add(dir); err != nil {
			return err
		}
	}

	fmt.Println("Watching for changes, Ctrl-C to stop")
	return watcher.Run(ctx)
}
