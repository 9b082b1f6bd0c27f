package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// JSONValue stores an arbitrary JSON document (object, array, scalar)
// as text in a JSON column. The bytes submitted by a client are kept
// verbatim, so whatever shape was stored comes back unchanged.
type JSONValue json.RawMessage

// Value implements driver.Valuer. An empty value is stored as NULL.
func (v JSONValue) Value() (driver.Value, error) {
	if len(v) == 0 {
		return nil, nil
	}
	return string(v), nil
}

// Scan implements sql.Scanner. Valid JSON text is kept as-is; text
// that does not parse as JSON is re-encoded as a JSON string, so a
// corrupted column degrades to its raw content instead of an error.
func (v *JSONValue) Scan(src interface{}) error {
	var raw []byte
	switch s := src.(type) {
	case nil:
		*v = nil
		return nil
	case string:
		raw = []byte(s)
	case []byte:
		raw = s
	default:
		return fmt.Errorf("cannot scan %T into JSONValue", src)
	}

	if json.Valid(raw) {
		*v = append((*v)[:0], raw...)
		return nil
	}

	quoted, err := json.Marshal(string(raw))
	if err != nil {
		return fmt.Errorf("failed to recover malformed JSON column: %w", err)
	}
	*v = quoted
	return nil
}

// MarshalJSON returns the stored bytes untouched.
func (v JSONValue) MarshalJSON() ([]byte, error) {
	if len(v) == 0 {
		return []byte("null"), nil
	}
	return v, nil
}

// UnmarshalJSON captures the incoming bytes untouched.
func (v *JSONValue) UnmarshalJSON(data []byte) error {
	if v == nil {
		return fmt.Errorf("JSONValue: UnmarshalJSON on nil pointer")
	}
	*v = append((*v)[:0], data...)
	return nil
}

// Present reports whether the value holds a usable document. A missing
// field and an explicit JSON null both count as absent, matching the
// presence checks the handlers apply to labels, questions and answers.
func (v JSONValue) Present() bool {
	return len(v) > 0 && string(v) != "null"
}

// GormDataType tells GORM to migrate JSONValue columns as JSON.
func (JSONValue) GormDataType() string {
	return "json"
}
