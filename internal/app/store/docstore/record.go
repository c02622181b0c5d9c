// internal/app/store/docstore/record.go
package docstore

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Record is one document from a collection: its store-assigned id plus an
// untyped field map.
type Record struct {
	ID     string
	Fields map[string]any
}

// String resolves a string value through keys in priority order.
// The first key holding a non-empty string wins.
func (r Record) String(keys ...string) (string, bool) {
	for _, k := range keys {
		if s, ok := r.Fields[k].(string); ok && s != "" {
			return s, true
		}
	}
	return "", false
}

// StringOr resolves like String but falls back to def.
func (r Record) StringOr(def string, keys ...string) string {
	if s, ok := r.String(keys...); ok {
		return s
	}
	return def
}

// Time resolves a timestamp through keys in priority order. Each candidate
// value is coerced from the shapes a document store hands back: native time
// values, BSON datetimes/timestamps, or date strings.
func (r Record) Time(keys ...string) (time.Time, bool) {
	for _, k := range keys {
		if t, ok := coerceTime(r.Fields[k]); ok {
			return t, true
		}
	}
	return time.Time{}, false
}

// Number resolves a numeric value through keys in priority order.
func (r Record) Number(keys ...string) (float64, bool) {
	for _, k := range keys {
		if f, ok := coerceNumber(r.Fields[k]); ok {
			return f, true
		}
	}
	return 0, false
}

// Has reports whether any of the keys is present, regardless of type.
func (r Record) Has(keys ...string) bool {
	for _, k := range keys {
		if _, ok := r.Fields[k]; ok {
			return true
		}
	}
	return false
}

func coerceTime(v any) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t, true
	case *time.Time:
		if t != nil {
			return *t, true
		}
	case primitive.DateTime:
		return t.Time(), true
	case primitive.Timestamp:
		return time.Unix(int64(t.T), 0).UTC(), true
	case string:
		for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02"} {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed, true
			}
		}
	}
	return time.Time{}, false
}

func coerceNumber(v any) (float64, bool) {
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
	}
	return 0, false
}
