package linkcheck

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractDestinations(t *testing.T) {
	body := []byte(`# Title

![Screenshot](doc/screenshots/shot1.png)

See [the docs](doc/ADMIN.md) or <https://example.org>.
`)

	found := ExtractDestinations(body)
	require.Len(t, found, 3)
	assert.Equal(t, "doc/screenshots/shot1.png", found[0].Destination)
	assert.True(t, found[0].IsImage)
	assert.Equal(t, "doc/ADMIN.md", found[1].Destination)
	assert.Equal(t, "https://example.org", found[2].Destination)
}

func TestBrokenRelative(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "doc"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "doc", "ADMIN.md"), []byte("x"), 0o644))

	body := []byte(`[exists](doc/ADMIN.md)
[missing](doc/NOPE.md)
[external](https://example.org/doc/NOPE.md)
[anchor](#section)
![gone](doc/screenshots/gone.png)
`)

	broken := BrokenRelative(body, dir)
	require.Len(t, broken, 2)
	assert.Equal(t, "doc/NOPE.md", broken[0].Destination)
	assert.Equal(t, "doc/screenshots/gone.png", broken[1].Destination)
	assert.True(t, broken[1].IsImage)
}

func TestBrokenRelativeIgnoresFragments(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "OTHER.md"), []byte("x"), 0o644))

	broken := BrokenRelative([]byte("[ok](OTHER.md#section)"), dir)
	assert.Empty(t, broken)
}
