package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWhenNoFile(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "assets", cfg.AssetsDir)
	assert.Equal(t, "en", cfg.DefaultLanguage)
	assert.Equal(t, "messages", cfg.Domain)
	assert.NotEmpty(t, cfg.Registry.URL)
	assert.NotEmpty(t, cfg.Registry.CacheDir)
}

func TestLoadExplicitMissingFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "readmegen.yaml")
	content := `
assets_dir: my-assets
default_language: fr
registry:
  path: /srv/apps
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "my-assets", cfg.AssetsDir)
	assert.Equal(t, "fr", cfg.DefaultLanguage)
	assert.Equal(t, "/srv/apps", cfg.Registry.Path)
	// Unset fields still get defaults.
	assert.Equal(t, "messages", cfg.Domain)
}

func TestEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "readmegen.yaml")
	require.NoError(t, os.WriteFile(path, []byte("assets_dir: from-file\n"), 0o644))

	t.Setenv("READMEGEN_ASSETS_DIR", "from-env")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.AssetsDir)
}

func TestEnvExpansionInYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "readmegen.yaml")
	require.NoError(t, os.WriteFile(path, []byte("registry:\n  path: ${REG_BASE}/apps\n"), 0o644))

	t.Setenv("REG_BASE", "/data")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/data/apps", cfg.Registry.Path)
}

func TestDotEnvLoaded(t *testing.T) {
	t.Chdir(t.TempDir())
	require.NoError(t, os.WriteFile(".env", []byte("READMEGEN_DOMAIN=appdocs\n"), 0o644))
	t.Setenv("READMEGEN_DOMAIN", "") // ensure not already set
	require.NoError(t, os.Unsetenv("READMEGEN_DOMAIN"))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "appdocs", cfg.Domain)
}
