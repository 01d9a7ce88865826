package appsrepo

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	apperrors "git.home.luguber.info/inful/readmegen/internal/errors"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirLocator(t *testing.T) {
	dir := t.TempDir()

	got, err := DirLocator{Dir: dir}.Locate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, dir, got)
}

func TestDirLocatorMissingDir(t *testing.T) {
	_, err := DirLocator{Dir: filepath.Join(t.TempDir(), "nope")}.Locate(context.Background())
	require.Error(t, err)
	assert.True(t, apperrors.IsCategory(err, apperrors.CategoryRegistry))
}

func TestDirLocatorFileNotDir(t *testing.T) {
	file := filepath.Join(t.TempDir(), "apps.toml")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	_, err := DirLocator{Dir: file}.Locate(context.Background())
	require.Error(t, err)
}

// initSourceRepo creates a local registry repository with one committed file.
func initSourceRepo(t *testing.T) (string, *git.Repository) {
	t.Helper()
	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	commitFile(t, repo, dir, "apps.toml", "[myapp]\nstate = \"working\"\n")
	return dir, repo
}

func commitFile(t *testing.T, repo *git.Repository, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))

	wt, err := repo.Worktree()
	require.NoError(t, err)
	_, err = wt.Add(name)
	require.NoError(t, err)
	_, err = wt.Commit("update "+name, &git.CommitOptions{
		Author: &object.Signature{Name: "test", Email: "test@example.org", When: time.Now()},
	})
	require.NoError(t, err)
}

func TestGitLocatorCloneAndUpdate(t *testing.T) {
	srcDir, srcRepo := initSourceRepo(t)
	cache := t.TempDir()
	loc := GitLocator{URL: srcDir, CacheDir: cache}

	// First call clones.
	target, err := loc.Locate(context.Background())
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(target, "apps.toml"))

	// Second call is a no-op update.
	again, err := loc.Locate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, target, again)

	// New upstream commit is pulled on the next call.
	commitFile(t, srcRepo, srcDir, "antifeatures.toml", "[nonfree]\ntitle = \"Non-free\"\n")
	_, err = loc.Locate(context.Background())
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(target, "antifeatures.toml"))
}

func TestGitLocatorCloneFailure(t *testing.T) {
	loc := GitLocator{URL: filepath.Join(t.TempDir(), "missing-repo"), CacheDir: t.TempDir()}

	_, err := loc.Locate(context.Background())
	require.Error(t, err)
	assert.True(t, apperrors.IsCategory(err, apperrors.CategoryRegistry))
}

func TestGitLocatorStaleCloneSurvivesFetchFailure(t *testing.T) {
	srcDir, _ := initSourceRepo(t)
	cache := t.TempDir()
	loc := GitLocator{URL: srcDir, CacheDir: cache}

	target, err := loc.Locate(context.Background())
	require.NoError(t, err)

	// Remove the upstream; the existing clone still serves.
	require.NoError(t, os.RemoveAll(srcDir))
	again, err := loc.Locate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, target, again)
	assert.FileExists(t, filepath.Join(again, "apps.toml"))
}
