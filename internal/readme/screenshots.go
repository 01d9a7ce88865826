package readme

import (
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
)

// screenshotsDir is relative to the app package directory.
const screenshotsDir = "doc/screenshots"

// Screenshots lists screenshot files under doc/screenshots/: regular files
// only, dotfiles excluded, paths relative to the app dir (forward slashes),
// sorted lexicographically. A missing directory yields an empty list.
func Screenshots(appDir string) ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(appDir, screenshotsDir))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	shots := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		// Skip hidden files
		if strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		shots = append(shots, path.Join(screenshotsDir, entry.Name()))
	}
	sort.Strings(shots)
	return shots, nil
}
