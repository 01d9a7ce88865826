// Package linkcheck inspects rendered markdown for relative link and image
// destinations that do not exist on disk. Findings are advisory: they are
// logged and never change the generation outcome.
package linkcheck

import (
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Finding is one suspect destination in a rendered document.
type Finding struct {
	// Destination as written in the document.
	Destination string
	// IsImage distinguishes image embeds from plain links.
	IsImage bool
}

// ExtractDestinations parses a markdown body and returns link and image
// destinations in document order.
func ExtractDestinations(body []byte) []Finding {
	md := goldmark.New()
	root := md.Parser().Parse(text.NewReader(body))

	var found []Finding
	_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *gmast.Image:
			found = append(found, Finding{Destination: string(node.Destination), IsImage: true})
		case *gmast.Link:
			found = append(found, Finding{Destination: string(node.Destination)})
		case *gmast.AutoLink:
			found = append(found, Finding{Destination: string(node.URL(body))})
		}
		return gmast.WalkContinue, nil
	})
	return found
}

// BrokenRelative returns the findings whose destination is a relative path
// that does not exist under baseDir. Absolute URLs, anchors, and other
// README files in the same directory family are left alone.
func BrokenRelative(body []byte, baseDir string) []Finding {
	var broken []Finding
	for _, f := range ExtractDestinations(body) {
		dest := f.Destination
		if dest == "" || strings.HasPrefix(dest, "#") {
			continue
		}
		if u, err := url.Parse(dest); err != nil || u.Scheme != "" || u.Host != "" {
			continue
		}
		// Strip any fragment before the filesystem probe.
		if i := strings.IndexByte(dest, '#'); i >= 0 {
			dest = dest[:i]
		}
		if _, err := os.Stat(filepath.Join(baseDir, filepath.FromSlash(dest))); err != nil {
			broken = append(broken, f)
		}
	}
	return broken
}
