// Package appsrepo resolves the filesystem location of the shared apps
// registry: either an explicit local checkout or a clone of the upstream
// repository kept in the user cache directory.
package appsrepo

import (
	"context"
	stderrors "errors"
	"log/slog"
	"os"
	"path/filepath"

	"git.home.luguber.info/inful/readmegen/internal/errors"
	"git.home.luguber.info/inful/readmegen/internal/logfields"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// Locator yields the path of a registry directory containing apps.toml and
// antifeatures.toml. The generator takes a Locator, not a path-resolution
// strategy.
type Locator interface {
	Locate(ctx context.Context) (string, error)
}

// DirLocator uses an explicit local directory as-is.
type DirLocator struct {
	Dir string
}

// Locate validates that the directory exists.
func (l DirLocator) Locate(_ context.Context) (string, error) {
	info, err := os.Stat(l.Dir)
	if err != nil {
		return "", errors.RegistryFileError(l.Dir, err)
	}
	if !info.IsDir() {
		return "", errors.New(errors.CategoryRegistry, errors.SeverityFatal, "registry path is not a directory").
			WithContext("path", l.Dir)
	}
	return l.Dir, nil
}

// GitLocator clones the registry repository into the cache directory, or
// fast-forwards an existing clone. A fetch failure with a usable existing
// clone degrades to a warning instead of failing the run.
type GitLocator struct {
	URL      string
	CacheDir string
	// Branch pins a branch; empty follows the remote default.
	Branch string
}

// Locate returns the clone path, cloning or updating as needed.
func (l GitLocator) Locate(ctx context.Context) (string, error) {
	target := filepath.Join(l.CacheDir, "apps")

	if _, err := os.Stat(filepath.Join(target, ".git")); err == nil {
		return l.update(ctx, target)
	}
	return l.clone(ctx, target)
}

func (l GitLocator) clone(ctx context.Context, target string) (string, error) {
	if err := os.MkdirAll(l.CacheDir, 0o750); err != nil {
		return "", errors.RegistryFileError(l.CacheDir, err)
	}
	slog.Info("Cloning apps registry", logfields.URL(l.URL), logfields.Path(target))

	opts := &git.CloneOptions{URL: l.URL}
	if l.Branch != "" {
		opts.ReferenceName = plumbing.NewBranchReferenceName(l.Branch)
		opts.SingleBranch = true
	}
	if _, err := git.PlainCloneContext(ctx, target, false, opts); err != nil {
		return "", errors.RegistryFetchError(l.URL, err)
	}
	return target, nil
}

func (l GitLocator) update(ctx context.Context, target string) (string, error) {
	repo, err := git.PlainOpen(target)
	if err != nil {
		return "", errors.RegistryFileError(target, err)
	}
	wt, err := repo.Worktree()
	if err != nil {
		return "", errors.RegistryFileError(target, err)
	}

	pullOpts := &git.PullOptions{RemoteName: "origin", Force: true}
	if l.Branch != "" {
		pullOpts.ReferenceName = plumbing.NewBranchReferenceName(l.Branch)
		pullOpts.SingleBranch = true
	}
	err = wt.PullContext(ctx, pullOpts)
	switch {
	case err == nil, stderrors.Is(err, git.NoErrAlreadyUpToDate):
		slog.Debug("Apps registry up to date", logfields.Path(target))
	default:
		// Stale registry beats no registry for a local generation step.
		slog.Warn("Apps registry update failed, using existing clone",
			logfields.URL(l.URL), logfields.Path(target), logfields.Error(err))
	}
	return target, nil
}
