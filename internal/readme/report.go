package readme

import (
	"time"

	"git.home.luguber.info/inful/readmegen/internal/catalog"
	"github.com/google/uuid"
)

// Report summarizes one generation run. It is logged, never persisted:
// the only files a run leaves behind are the READMEs themselves.
type Report struct {
	RunID string
	App   string

	// Skipped is set when the upstream/disclaimer guard fired; no files
	// were written and SkipReason explains why.
	Skipped    bool
	SkipReason string

	// Eligible languages in ascending order; Excluded carries the first
	// missing string per failed language.
	Eligible []string
	Excluded []catalog.Exclusion

	// Files written, in write order.
	Files []string

	Duration time.Duration
}

func newReport(app string) *Report {
	return &Report{RunID: uuid.NewString(), App: app}
}
