package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
)

// LocalizedText is a per-language text value: either a flat string or a
// mapping from language code to string.
//
// The zero value is "no text" and resolves to "" for every language.
type LocalizedText struct {
	values map[string]string
	order  []string
}

// PlainText wraps a flat string that applies to every language.
func PlainText(s string) LocalizedText {
	return LocalizedText{values: map[string]string{"": s}, order: []string{""}}
}

// LocalizedFromMap builds a LocalizedText with the given key order.
// Keys missing from order are appended sorted; this keeps callers honest
// about the order they claim.
func LocalizedFromMap(values map[string]string, order []string) LocalizedText {
	seen := make(map[string]bool, len(order))
	keep := make([]string, 0, len(values))
	for _, k := range order {
		if _, ok := values[k]; ok && !seen[k] {
			keep = append(keep, k)
			seen[k] = true
		}
	}
	rest := make([]string, 0, len(values))
	for k := range values {
		if !seen[k] {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)
	keep = append(keep, rest...)

	copied := make(map[string]string, len(values))
	for k, v := range values {
		copied[k] = v
	}
	return LocalizedText{values: copied, order: keep}
}

// IsZero reports whether no text is present at all.
func (t LocalizedText) IsZero() bool {
	return len(t.values) == 0
}

// ValueForLang resolves the text for a language. Resolution chain:
// exact language key, then "en", then the first value in source order.
// A flat string matches any language.
func (t LocalizedText) ValueForLang(lang string) string {
	if len(t.values) == 0 {
		return ""
	}
	if v, ok := t.values[""]; ok {
		return v
	}
	if v, ok := t.values[lang]; ok {
		return v
	}
	if v, ok := t.values["en"]; ok {
		return v
	}
	return t.values[t.order[0]]
}

// UnmarshalJSON accepts either a JSON string or an object of language
// code to string. Object key order is preserved as source order so the
// last-resort fallback in ValueForLang is deterministic for a given file.
func (t *LocalizedText) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}

	switch v := tok.(type) {
	case string:
		*t = PlainText(v)
		return nil
	case json.Delim:
		if v != '{' {
			return fmt.Errorf("localized text: expected string or object, got %v", v)
		}
	default:
		return fmt.Errorf("localized text: expected string or object, got %T", tok)
	}

	values := make(map[string]string)
	var order []string
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("localized text: non-string key %v", keyTok)
		}
		valTok, err := dec.Token()
		if err != nil {
			return err
		}
		val, ok := valTok.(string)
		if !ok {
			return fmt.Errorf("localized text: non-string value for %q", key)
		}
		if _, dup := values[key]; !dup {
			order = append(order, key)
		}
		values[key] = val
	}
	if _, err := dec.Token(); err != nil { // closing brace
		return err
	}

	t.values = values
	t.order = order
	return nil
}

// localizedFromAny normalizes a decoded TOML value (string or table) into a
// LocalizedText. TOML tables decode to Go maps, which do not retain source
// order; keys are sorted so the last-resort fallback stays deterministic.
func localizedFromAny(v any) (LocalizedText, error) {
	switch val := v.(type) {
	case nil:
		return LocalizedText{}, nil
	case string:
		return PlainText(val), nil
	case map[string]any:
		values := make(map[string]string, len(val))
		order := make([]string, 0, len(val))
		for k, raw := range val {
			s, ok := raw.(string)
			if !ok {
				return LocalizedText{}, fmt.Errorf("localized text: non-string value for %q", k)
			}
			values[k] = s
			order = append(order, k)
		}
		sort.Strings(order)
		return LocalizedText{values: values, order: order}, nil
	case map[string]string:
		values := make(map[string]string, len(val))
		order := make([]string, 0, len(val))
		for k, s := range val {
			values[k] = s
			order = append(order, k)
		}
		sort.Strings(order)
		return LocalizedText{values: values, order: order}, nil
	default:
		return LocalizedText{}, fmt.Errorf("localized text: unsupported type %T", v)
	}
}
