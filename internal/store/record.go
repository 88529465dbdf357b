package store

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Record is one row of a collection keyed by column name.
//
// Providers hand back whatever their driver produces (time.Time or timestamp
// strings, int64 or float64, bool or 0/1), so the accessors below normalize
// on read instead of each provider normalizing on write.
type Record map[string]any

// Clone returns a shallow copy; values are immutable scalars.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Merge returns a copy of r with every column of patch applied over it.
func (r Record) Merge(patch Record) Record {
	out := r.Clone()
	for k, v := range patch {
		out[k] = v
	}
	return out
}

// Quoted returns a copy whose keys are quoted SQL identifiers.
func (r Record) Quoted() map[string]any {
	out := make(map[string]any, len(r))
	for k, v := range r {
		out[quoteIdent(k)] = v
	}
	return out
}

// Has reports whether the column is present and non-nil.
func (r Record) Has(col string) bool {
	v, ok := r[col]
	return ok && v != nil
}

// String returns a required text column.
func (r Record) String(col string) (string, error) {
	v, ok := r[col]
	if !ok || v == nil {
		return "", fmt.Errorf("column %s: missing", col)
	}
	switch t := v.(type) {
	case string:
		return t, nil
	case []byte:
		return string(t), nil
	case fmt.Stringer:
		return t.String(), nil
	}
	return "", fmt.Errorf("column %s: expected text, got %T", col, v)
}

// OptionalString returns a nullable text column; missing and NULL are nil.
func (r Record) OptionalString(col string) (*string, error) {
	if !r.Has(col) {
		return nil, nil
	}
	s, err := r.String(col)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// StringOrEmpty returns a text column treating missing and NULL as "".
func (r Record) StringOrEmpty(col string) (string, error) {
	if !r.Has(col) {
		return "", nil
	}
	return r.String(col)
}

// UUID returns a required uuid column.
func (r Record) UUID(col string) (uuid.UUID, error) {
	v, ok := r[col]
	if !ok || v == nil {
		return uuid.Nil, fmt.Errorf("column %s: missing", col)
	}
	switch t := v.(type) {
	case uuid.UUID:
		return t, nil
	case [16]byte:
		return uuid.UUID(t), nil
	case string:
		id, err := uuid.Parse(t)
		if err != nil {
			return uuid.Nil, fmt.Errorf("column %s: %w", col, err)
		}
		return id, nil
	case []byte:
		id, err := uuid.ParseBytes(t)
		if err != nil {
			return uuid.Nil, fmt.Errorf("column %s: %w", col, err)
		}
		return id, nil
	}
	return uuid.Nil, fmt.Errorf("column %s: expected uuid, got %T", col, v)
}

// Bool returns a boolean column; NULL and missing are false.
func (r Record) Bool(col string) (bool, error) {
	if !r.Has(col) {
		return false, nil
	}
	switch t := r[col].(type) {
	case bool:
		return t, nil
	case int64:
		return t != 0, nil
	case int:
		return t != 0, nil
	case float64:
		return t != 0, nil
	case string:
		b, err := strconv.ParseBool(t)
		if err != nil {
			return false, fmt.Errorf("column %s: %w", col, err)
		}
		return b, nil
	}
	return false, fmt.Errorf("column %s: expected boolean, got %T", col, r[col])
}

// Int returns a required integer column.
func (r Record) Int(col string) (int, error) {
	v, ok := r[col]
	if !ok || v == nil {
		return 0, fmt.Errorf("column %s: missing", col)
	}
	switch t := v.(type) {
	case int:
		return t, nil
	case int16:
		return int(t), nil
	case int32:
		return int(t), nil
	case int64:
		return int(t), nil
	case float64:
		if t != math.Trunc(t) {
			return 0, fmt.Errorf("column %s: %v is not an integer", col, t)
		}
		return int(t), nil
	case json.Number:
		n, err := t.Int64()
		if err != nil {
			return 0, fmt.Errorf("column %s: %w", col, err)
		}
		return int(n), nil
	case string:
		n, err := strconv.Atoi(t)
		if err != nil {
			return 0, fmt.Errorf("column %s: %w", col, err)
		}
		return n, nil
	}
	return 0, fmt.Errorf("column %s: expected integer, got %T", col, v)
}

// timeLayouts are the timestamp text forms produced by the supported drivers.
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
}

// Time returns a required timestamp column in UTC.
func (r Record) Time(col string) (time.Time, error) {
	v, ok := r[col]
	if !ok || v == nil {
		return time.Time{}, fmt.Errorf("column %s: missing", col)
	}
	switch t := v.(type) {
	case time.Time:
		return t.UTC(), nil
	case string:
		return ParseTime(col, t)
	case []byte:
		return ParseTime(col, string(t))
	}
	return time.Time{}, fmt.Errorf("column %s: expected timestamp, got %T", col, v)
}

// ParseTime parses a timestamp in any of the supported text layouts.
func ParseTime(col, s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("column %s: unparsable timestamp %q", col, s)
}
