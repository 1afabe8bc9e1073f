package sanitizer

import (
	"strings"

	"toolbelt/pkg/records"
)

// entityEscaper encodes the XSS-relevant characters in a single pass, so
// already-produced entities are never escaped twice within one call.
var entityEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// InputFilter escapes a single untrusted value: single quotes become double
// quotes, surrounding whitespace is trimmed, backslash escape characters are
// removed, and & < > " ' are entity-encoded.
func InputFilter(s string) string {
	s = strings.ReplaceAll(s, "'", `"`)
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, `\`, "")
	return entityEscaper.Replace(s)
}

// ArraySanitize returns a new record with InputFilter applied to string
// values. With no keys given every string value is filtered; otherwise only
// the selected keys are replaced and the rest pass through untouched.
// Non-string values (including nil) are never modified.
func ArraySanitize(r *records.Record, keys ...string) *records.Record {
	selected := make(map[string]bool, len(keys))
	for _, k := range keys {
		selected[k] = true
	}

	out := records.New()
	for pair := r.Oldest(); pair != nil; pair = pair.Next() {
		value := pair.Value
		if len(keys) == 0 || selected[pair.Key] {
			if s, ok := value.(string); ok {
				value = InputFilter(s)
			}
		}
		out.Set(pair.Key, value)
	}
	return out
}
