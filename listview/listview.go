// Package listview derives filtered, sorted views over in-memory entity
// slices: one canonical pipeline replacing the per-screen copies of the same
// fetch-filter-sort logic. The derivation is pure — the source slice is never
// mutated and identical inputs always produce identical output — and is
// recomputed only when source, query, sort key or direction changes.
package listview

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Field extracts a searchable or sortable value from an item. Strings,
// numbers and time.Time compare natively; anything else falls back to its
// printed form.
type Field[T any] func(T) any

// View owns the pipeline state for one list screen.
type View[T any] struct {
	searchable []Field[T]
	sortFields map[string]Field[T]

	source  []T
	query   string
	sortKey string
	asc     bool

	dirty  bool
	cached []T
}

// New builds a view. searchable fields feed the substring filter; sortFields
// maps sort keys to the value they order by.
func New[T any](searchable []Field[T], sortFields map[string]Field[T]) *View[T] {
	return &View[T]{
		searchable: searchable,
		sortFields: sortFields,
		asc:        true,
		dirty:      true,
	}
}

func (v *View[T]) SetSource(items []T) {
	v.source = items
	v.dirty = true
}

func (v *View[T]) SetQuery(query string) {
	if query != v.query {
		v.query = query
		v.dirty = true
	}
}

func (v *View[T]) SortBy(key string) {
	if key != v.sortKey {
		v.sortKey = key
		v.dirty = true
	}
}

func (v *View[T]) SetAscending(asc bool) {
	if asc != v.asc {
		v.asc = asc
		v.dirty = true
	}
}

func (v *View[T]) ToggleDirection() {
	v.asc = !v.asc
	v.dirty = true
}

func (v *View[T]) Ascending() bool {
	return v.asc
}

// Items returns the derived view, reusing the cached result when none of the
// four inputs changed since the last call.
func (v *View[T]) Items() []T {
	if !v.dirty {
		return v.cached
	}

	result := make([]T, 0, len(v.source))
	if v.query == "" {
		result = append(result, v.source...)
	} else {
		q := strings.ToLower(v.query)
		for _, item := range v.source {
			if v.matches(item, q) {
				result = append(result, item)
			}
		}
	}

	if field, ok := v.sortFields[v.sortKey]; ok {
		// Stable: ties keep their original relative order
		sort.SliceStable(result, func(i, j int) bool {
			cmp := compareValues(field(result[i]), field(result[j]))
			if v.asc {
				return cmp < 0
			}
			return cmp > 0
		})
	}

	v.cached = result
	v.dirty = false
	return v.cached
}

func (v *View[T]) matches(item T, loweredQuery string) bool {
	for _, field := range v.searchable {
		if strings.Contains(strings.ToLower(displayText(field(item))), loweredQuery) {
			return true
		}
	}
	return false
}

func displayText(value any) string {
	switch x := value.(type) {
	case nil:
		return ""
	case string:
		return x
	case time.Time:
		return x.Format(time.RFC3339)
	default:
		return fmt.Sprint(x)
	}
}

const (
	rankNumeric = iota
	rankTemporal
	rankText
)

type sortValue struct {
	rank int
	num  float64
	when time.Time
	text string
}

// classify maps a raw field value into the total order: numeric values
// first, then timestamps, then case-insensitive text. Strings holding a
// number count as numeric so a float rendered as a string by one code path
// still orders against real numbers.
func classify(value any) sortValue {
	switch x := value.(type) {
	case nil:
		return sortValue{rank: rankText}
	case time.Time:
		return sortValue{rank: rankTemporal, when: x}
	case string:
		if n, err := strconv.ParseFloat(strings.TrimSpace(x), 64); err == nil {
			return sortValue{rank: rankNumeric, num: n}
		}
		return sortValue{rank: rankText, text: strings.ToLower(x)}
	default:
		if n, ok := toFloat(x); ok {
			return sortValue{rank: rankNumeric, num: n}
		}
		return sortValue{rank: rankText, text: strings.ToLower(fmt.Sprint(x))}
	}
}

func toFloat(value any) (float64, bool) {
	switch n := value.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

func compareValues(a, b any) int {
	va, vb := classify(a), classify(b)
	if va.rank != vb.rank {
		return va.rank - vb.rank
	}
	switch va.rank {
	case rankNumeric:
		switch {
		case va.num < vb.num:
			return -1
		case va.num > vb.num:
			return 1
		}
		return 0
	case rankTemporal:
		switch {
		case va.when.Before(vb.when):
			return -1
		case va.when.After(vb.when):
			return 1
		}
		return 0
	default:
		return strings.Compare(va.text, vb.text)
	}
}
