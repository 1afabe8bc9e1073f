// Package records provides helpers over ordered string-keyed records.
//
// A Record keeps its keys in insertion order, which the ordering and
// sanitization helpers rely on: reordering and filtering must never shuffle
// keys the caller did not ask to move.
package records

import (
	"reflect"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Record is an ordered mapping from string keys to arbitrary values.
type Record = orderedmap.OrderedMap[string, any]

// Pair is a single key/value entry used to build records literally.
type Pair struct {
	Key   string
	Value any
}

func New() *Record {
	return orderedmap.New[string, any]()
}

// FromPairs builds a record whose key order follows the given pairs.
// A repeated key updates the value but keeps the first position.
func FromPairs(pairs ...Pair) *Record {
	r := orderedmap.New[string, any](len(pairs))
	for _, p := range pairs {
		r.Set(p.Key, p.Value)
	}
	return r
}

// Keys returns the record's keys in order.
func Keys(r *Record) []string {
	keys := make([]string, 0, r.Len())
	for pair := r.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// CheckEmpty reports whether every checked key is present in r, and, unless
// allowEmpty is set, holds a non-empty value. With no keys given, every key
// of r is checked. Empty means nil, an empty string, or a container with no
// elements; numeric zero counts as non-empty.
func CheckEmpty(r *Record, keys []string, allowEmpty bool) bool {
	if r == nil {
		return false
	}

	if len(keys) == 0 {
		for pair := r.Oldest(); pair != nil; pair = pair.Next() {
			if !allowEmpty && isEmptyValue(pair.Value) {
				return false
			}
		}
		return true
	}

	for _, key := range keys {
		value, ok := r.Get(key)
		if !ok {
			return false
		}
		if !allowEmpty && isEmptyValue(value) {
			return false
		}
	}
	return true
}

// Order returns a new record whose keys follow order exactly, skipping keys
// absent from r. With keepUnlisted set, the remaining keys of r are appended
// afterward in their original relative order. The result never aliases r.
func Order(r *Record, order []string, keepUnlisted bool) *Record {
	if r == nil {
		return New()
	}
	out := orderedmap.New[string, any](r.Len())

	for _, key := range order {
		if _, done := out.Get(key); done {
			continue
		}
		if value, ok := r.Get(key); ok {
			out.Set(key, value)
		}
	}

	if keepUnlisted {
		for pair := r.Oldest(); pair != nil; pair = pair.Next() {
			if _, done := out.Get(pair.Key); !done {
				out.Set(pair.Key, pair.Value)
			}
		}
	}

	return out
}

func isEmptyValue(v any) bool {
	if v == nil {
		return true
	}
	switch t := v.(type) {
	case string:
		return t == ""
	case *Record:
		return t == nil || t.Len() == 0
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Map, reflect.Array, reflect.Chan:
		return rv.Len() == 0
	case reflect.Ptr, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
