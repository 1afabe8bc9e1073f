// Package urlutil builds query strings and inspects query parameters.
package urlutil

import (
	"net/url"
	"sort"
	"strings"
)

// Concat appends params to rawURL as a percent-encoded query string. With
// empty params the URL is returned unchanged. Trailing "&" or "?" are
// stripped first, and the separator is chosen by whether the URL already
// carries a query. Keys are emitted in sorted order so the output is stable
// across map iteration orders.
func Concat(rawURL string, params map[string]string) string {
	if len(params) == 0 {
		return rawURL
	}

	base := strings.TrimRight(rawURL, "&?")

	sep := "?"
	if strings.Contains(base, "?") {
		sep = "&"
	}

	pairs := make([]string, 0, len(params))
	for _, key := range sortedKeys(params) {
		pairs = append(pairs, url.QueryEscape(key)+"="+url.QueryEscape(params[key]))
	}

	return base + sep + strings.Join(pairs, "&")
}

// HasAnyParam reports whether at least one of the expected keys is present
// in the query; values are not inspected.
func HasAnyParam(keys []string, query url.Values) bool {
	for _, key := range keys {
		if query.Has(key) {
			return true
		}
	}
	return false
}

func sortedKeys(values map[string]string) []string {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
