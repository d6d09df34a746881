// Package listfield decodes list-valued columns that accumulated mixed
// encodings over time: canonical JSON arrays, legacy comma-separated
// strings, and plain NULL/empty values.
package listfield

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// Decode turns a raw column value into a string slice. Fallback order:
//  1. empty or blank input decodes to an empty (non-nil) slice
//  2. a valid JSON string array decodes as-is
//  3. anything else is treated as comma-separated and split with trimming
func Decode(raw string) []string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return []string{}
	}

	var fromJSON []string
	if err := json.Unmarshal([]byte(trimmed), &fromJSON); err == nil {
		if fromJSON == nil {
			return []string{}
		}
		return fromJSON
	}

	parts := strings.Split(trimmed, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// StringList is a []string stored as a text column. It writes canonical
// JSON and reads any of the encodings Decode tolerates.
type StringList []string

// MarshalJSON emits [] for a nil list. GORM leaves a NULL column's
// field at its nil zero value without calling Scan, and a nil slice
// would otherwise serialize as null.
func (l StringList) MarshalJSON() ([]byte, error) {
	if l == nil {
		l = StringList{}
	}
	return json.Marshal([]string(l))
}

// Value implements driver.Valuer.
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(l))
	if err != nil {
		return nil, fmt.Errorf("failed to encode list field: %w", err)
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (l *StringList) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*l = StringList{}
	case string:
		*l = Decode(v)
	case []byte:
		*l = Decode(string(v))
	default:
		return fmt.Errorf("cannot scan %T into StringList", src)
	}
	return nil
}
