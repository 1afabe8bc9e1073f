// Package httputil provides header, redirect, and referer helpers that
// operate on explicit request/response values rather than ambient state.
package httputil

import (
	"net/http"
	"net/url"
	"sort"
	"strings"

	"toolbelt/pkg/errors"
)

// Header is one outgoing header value. Replace and Code, when non-nil,
// override the call-level defaults for this header only.
type Header struct {
	Value   string
	Replace *bool
	Code    *int
}

// CheckReferer reports whether the referrer's host (including a non-default
// port, if present) exactly matches the request's Host header.
func CheckReferer(r *http.Request) bool {
	referer := r.Referer()
	if referer == "" {
		return false
	}
	u, err := url.Parse(referer)
	if err != nil {
		return false
	}
	return u.Host != "" && u.Host == r.Host
}

// Redirect writes a redirect to target with the given status code; a zero
// code defaults to 303 See Other. Nothing further may be written to w.
func Redirect(w http.ResponseWriter, target string, code int) {
	if code == 0 {
		code = http.StatusSeeOther
	}
	w.Header().Set("Location", target)
	w.WriteHeader(code)
}

// Set applies a map of headers to the response. replace selects Set versus
// Add semantics and code, when non-zero, is written as the status after all
// headers are applied; per-header overrides win over both defaults. Headers
// are applied in sorted name order so override resolution is deterministic.
func Set(w http.ResponseWriter, headers map[string]Header, replace bool, code int) {
	names := make([]string, 0, len(headers))
	for name := range headers {
		names = append(names, name)
	}
	sort.Strings(names)

	status := code
	for _, name := range names {
		h := headers[name]

		rep := replace
		if h.Replace != nil {
			rep = *h.Replace
		}
		if rep {
			w.Header().Set(name, h.Value)
		} else {
			w.Header().Add(name, h.Value)
		}

		if h.Code != nil {
			status = *h.Code
		}
	}

	if status != 0 {
		w.WriteHeader(status)
	}
}

// SetLine applies a single raw "Name: value" header line.
func SetLine(w http.ResponseWriter, line string, replace bool, code int) error {
	name, value, found := strings.Cut(line, ":")
	name = strings.TrimSpace(name)
	if !found || name == "" {
		return errors.InvalidArgumentf("malformed header line %q", line)
	}

	Set(w, map[string]Header{name: {Value: strings.TrimSpace(value)}}, replace, code)
	return nil
}
