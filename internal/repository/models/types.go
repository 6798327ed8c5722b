package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
)

// StringSlice stores a list of strings as a JSON array in a text column.
type StringSlice []string

// Value implements the driver.Valuer interface
func (s StringSlice) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	jsonData, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil
}

// Scan implements the sql.Scanner interface
func (s *StringSlice) Scan(value interface{}) error {
	return scanJSON(value, s, func() { *s = StringSlice{} })
}

// Flag stores a boolean as 0/1 so the same schema works on Postgres
// SMALLINT and Oracle NUMBER(1).
type Flag bool

// Value implements the driver.Valuer interface
func (f Flag) Value() (driver.Value, error) {
	if f {
		return int64(1), nil
	}
	return int64(0), nil
}

// Scan implements the sql.Scanner interface
func (f *Flag) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*f = false
	case bool:
		*f = Flag(v)
	case int64:
		*f = v != 0
	case float64:
		*f = v != 0
	case []byte:
		return f.parse(string(v))
	case string:
		return f.parse(v)
	default:
		return fmt.Errorf("Flag Scan: unsupported type %T", value)
	}
	return nil
}

func (f *Flag) parse(s string) error {
	if b, err := strconv.ParseBool(s); err == nil {
		*f = Flag(b)
		return nil
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("Flag Scan: cannot parse %q", s)
	}
	*f = n != 0
	return nil
}

// scanJSON decodes a JSON text column into dest. NULL, empty text and the
// literal null all leave dest at its empty value.
func scanJSON(value interface{}, dest interface{}, empty func()) error {
	var data []byte
	switch v := value.(type) {
	case nil:
		empty()
		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("JSON Scan: unsupported type %T", value)
	}

	if len(data) == 0 || string(data) == "null" {
		empty()
		return nil
	}
	return json.Unmarshal(data, dest)
}
