// Package sorting provides a stable, direction-validated sort over record
// lists keyed by a single field.
package sorting

import (
	"sort"
	"strings"

	"github.com/spf13/cast"

	"toolbelt/pkg/errors"
	"toolbelt/pkg/records"
)

const (
	Ascending  = "ASC"
	Descending = "DESC"
)

// ByField returns a new slice sorted by the given field. The direction must
// case-insensitively equal "ASC" or "DESC" and the field must exist on the
// first element; both are contract violations and fail with an
// INVALID_ARGUMENT error. The sort is stable: elements with equal field
// values keep their relative order. The input slice is not mutated.
func ByField(list []*records.Record, direction, field string) ([]*records.Record, error) {
	dir := strings.ToUpper(strings.TrimSpace(direction))
	if dir != Ascending && dir != Descending {
		return nil, errors.InvalidArgumentf("sort direction must be ASC or DESC, got %q", direction)
	}

	if len(list) == 0 {
		return []*records.Record{}, nil
	}

	if _, ok := list[0].Get(field); !ok {
		return nil, errors.InvalidArgumentf("sort field %q does not exist", field)
	}

	out := make([]*records.Record, len(list))
	copy(out, list)

	sort.SliceStable(out, func(i, j int) bool {
		a, _ := out[i].Get(field)
		b, _ := out[j].Get(field)
		if dir == Descending {
			return compare(b, a)
		}
		return compare(a, b)
	})

	return out, nil
}

// compare reports whether a orders strictly before b. Values that both
// coerce to numbers compare numerically, anything else lexically.
func compare(a, b any) bool {
	fa, errA := cast.ToFloat64E(a)
	fb, errB := cast.ToFloat64E(b)
	if errA == nil && errB == nil {
		return fa < fb
	}
	return cast.ToString(a) < cast.ToString(b)
}
