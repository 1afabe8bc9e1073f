// Package sanitizer provides textual escaping for untrusted input.
//
// InputFilter is idempotent-friendly escaping only: it normalizes quotes,
// trims whitespace, strips backslash escapes, and entity-encodes the five
// XSS-relevant characters. It is NOT a parser-aware sanitizer and is not
// sufficient against context-aware injection, e.g. attribute-breaking
// payloads using encodings other than the characters checked.
package sanitizer
