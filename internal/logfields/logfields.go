package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyApp        = "app"
	KeyLanguage   = "language"
	KeyPath       = "path"
	KeyFile       = "file"
	KeyCount      = "count"
	KeyURL        = "url"
	KeyReason     = "reason"
	KeyRunID      = "run_id"
	KeyDurationMS = "duration_ms"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func App(id string) slog.Attr         { return slog.String(KeyApp, id) }
func Language(code string) slog.Attr  { return slog.String(KeyLanguage, code) }
func Path(p string) slog.Attr         { return slog.String(KeyPath, p) }
func File(f string) slog.Attr         { return slog.String(KeyFile, f) }
func Count(n int) slog.Attr           { return slog.Int(KeyCount, n) }
func URL(u string) slog.Attr          { return slog.String(KeyURL, u) }
func Reason(r string) slog.Attr       { return slog.String(KeyReason, r) }
func RunID(id string) slog.Attr       { return slog.String(KeyRunID, id) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
