package proposicao

import (
	"encoding/json"
	"strconv"
	"strings"
)

// chainGet walks a sequence of nested-map lookups, returning nil as soon as
// a step is missing, nil, or not a map. It never panics on odd shapes.
func chainGet(container any, keys ...string) any {
	cur := container
	for _, k := range keys {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		cur = m[k]
		if cur == nil {
			return nil
		}
	}
	return cur
}

// chainGetOr is chainGet with an explicit fallback value.
func chainGetOr(container any, def any, keys ...string) any {
	if v := chainGet(container, keys...); v != nil {
		return v
	}
	return def
}

// rawAt returns the first present, non-nil value among the candidate keys.
func rawAt(m map[string]any, keys ...string) any {
	for _, k := range keys {
		if v, ok := m[k]; ok && v != nil {
			return v
		}
	}
	return nil
}

// stringAt returns the first non-empty string among the candidate keys.
func stringAt(m map[string]any, keys ...string) string {
	for _, k := range keys {
		if s := toString(m[k]); s != "" {
			return s
		}
	}
	return ""
}

// intAt returns the first value among the candidate keys that can be read
// as an integer, or nil when none can.
func intAt(m map[string]any, keys ...string) *int64 {
	for _, k := range keys {
		if n, ok := toInt64(m[k]); ok {
			return &n
		}
	}
	return nil
}

// mapAt returns the first nested map among the candidate keys. The fallback
// is an empty map, never nil, so chained lookups stay safe downstream.
func mapAt(m map[string]any, keys ...string) map[string]any {
	for _, k := range keys {
		if sub, ok := m[k].(map[string]any); ok && sub != nil {
			return sub
		}
	}
	return map[string]any{}
}

func toString(v any) string {
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(s)
}

// toInt64 coerces the scalar shapes JSON decoding produces for numbers.
// Bulk annual files have been seen carrying ids as strings.
func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case float64:
		return int64(n), true
	case int:
		return int64(n), true
	case int64:
		return n, true
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i, true
		}
		if f, err := n.Float64(); err == nil {
			return int64(f), true
		}
	case string:
		s := strings.TrimSpace(n)
		if s == "" {
			return 0, false
		}
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return i, true
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return int64(f), true
		}
	}
	return 0, false
}
