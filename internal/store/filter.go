package store

import (
	"reflect"
	"strings"

	"hotelcore/pkg/domain"
)

// Filter selects records by field. Each entry is one predicate; all entries
// must hold (AND). A predicate value is one of:
//   - a literal: equality
//   - a slice of literals: membership ("IN")
//   - a Condition: range and substring matching
type Filter map[string]any

// Condition matches a field against range bounds and/or a case-insensitive
// substring. Zero-valued parts are skipped.
type Condition struct {
	GreaterOrEqual any
	LessOrEqual    any
	ContainsFold   string
}

// Matches reports whether every predicate in the filter holds for rec.
// A nil filter matches everything.
func (f Filter) Matches(rec domain.Record) bool {
	for field, want := range f {
		got, present := rec[field]
		switch w := want.(type) {
		case Condition:
			if !present || !w.matches(got) {
				return false
			}
		case []any:
			if !present || !containsValue(w, got) {
				return false
			}
		case []string:
			if !present {
				return false
			}
			vals := make([]any, len(w))
			for i, v := range w {
				vals[i] = v
			}
			if !containsValue(vals, got) {
				return false
			}
		default:
			if want == nil {
				if present && got != nil {
					return false
				}
				continue
			}
			if !present || !looseEqual(got, want) {
				return false
			}
		}
	}
	return true
}

func (c Condition) matches(got any) bool {
	if c.GreaterOrEqual != nil {
		cmp, ok := compareValues(got, c.GreaterOrEqual)
		if !ok || cmp < 0 {
			return false
		}
	}
	if c.LessOrEqual != nil {
		cmp, ok := compareValues(got, c.LessOrEqual)
		if !ok || cmp > 0 {
			return false
		}
	}
	if c.ContainsFold != "" {
		s, ok := got.(string)
		if !ok || !strings.Contains(strings.ToLower(s), strings.ToLower(c.ContainsFold)) {
			return false
		}
	}
	return true
}

func containsValue(candidates []any, got any) bool {
	for _, c := range candidates {
		if looseEqual(got, c) {
			return true
		}
	}
	return false
}

// looseEqual compares across the numeric types that enter records from JSON
// decoding (float64) and from direct caller input (int and friends).
func looseEqual(a, b any) bool {
	if af, ok := asFloat(a); ok {
		if bf, ok := asFloat(b); ok {
			return af == bf
		}
		return false
	}
	if reflect.TypeOf(a) == reflect.TypeOf(b) {
		return reflect.DeepEqual(a, b)
	}
	return false
}

// compareValues orders two values when both are numeric or both strings.
func compareValues(got, bound any) (int, bool) {
	if gf, ok := asFloat(got); ok {
		bf, ok := asFloat(bound)
		if !ok {
			return 0, false
		}
		switch {
		case gf < bf:
			return -1, true
		case gf > bf:
			return 1, true
		default:
			return 0, true
		}
	}
	gs, ok1 := got.(string)
	bs, ok2 := bound.(string)
	if ok1 && ok2 {
		return strings.Compare(gs, bs), true
	}
	return 0, false
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	default:
		return 0, false
	}
}
