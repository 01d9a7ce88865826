package catalog

import (
	_ "embed"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/leonelquinteros/gotext"
)

// defaultReference is the reference string set extracted from the shipped
// README templates. An assets_dir copy of messages.pot overrides it.
//
//go:embed messages.pot
var defaultReference []byte

// Reference is the set of translatable strings a catalog must cover to be
// considered fully translated. Blank (whitespace-only) strings are excluded
// from the set entirely.
type Reference struct {
	msgids []string
}

// LoadReference reads <assetsDir>/messages.pot when present, else the
// embedded default.
func LoadReference(assetsDir string) (*Reference, error) {
	data := defaultReference
	if assetsDir != "" {
		path := filepath.Join(assetsDir, "messages.pot")
		if fileData, err := os.ReadFile(path); err == nil {
			data = fileData
		} else if !os.IsNotExist(err) {
			return nil, err
		}
	}
	return parseReference(data), nil
}

// ReferenceFromStrings builds a reference set directly, filtering blanks.
func ReferenceFromStrings(msgids []string) *Reference {
	ref := &Reference{}
	for _, id := range msgids {
		if strings.TrimSpace(id) == "" {
			continue
		}
		ref.msgids = append(ref.msgids, id)
	}
	return ref
}

func parseReference(data []byte) *Reference {
	pot := gotext.NewPo()
	pot.Parse(data)

	ids := make([]string, 0, len(pot.GetDomain().GetTranslations()))
	for id := range pot.GetDomain().GetTranslations() {
		ids = append(ids, id)
	}
	// Map order is random; keep the check order stable.
	sort.Strings(ids)
	return ReferenceFromStrings(ids)
}

// Strings returns the non-blank reference strings in stable order.
func (r *Reference) Strings() []string {
	return r.msgids
}
